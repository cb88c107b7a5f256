package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mahir-soa/FYP/domain"
)

// SubscriptionHandlers handles subscription requests
type SubscriptionHandlers struct {
	subscriptionRepo domain.SubscriptionRepository
	subscriptionSvc  domain.SubscriptionService
}

// NewSubscriptionHandlers creates new subscription handlers
func NewSubscriptionHandlers(repo domain.SubscriptionRepository, svc domain.SubscriptionService) *SubscriptionHandlers {
	return &SubscriptionHandlers{subscriptionRepo: repo, subscriptionSvc: svc}
}

// List returns all subscriptions
func (h *SubscriptionHandlers) List(c *gin.Context) {
	subs, err := h.subscriptionRepo.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list subscriptions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Get returns a single subscription
func (h *SubscriptionHandlers) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	sub, err := h.subscriptionRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Subscription not found"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Create stores a new subscription
func (h *SubscriptionHandlers) Create(c *gin.Context) {
	var sub domain.Subscription
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	sub.ID = 0
	if sub.Status == "" {
		sub.Status = domain.SubscriptionActive
	}


	if err := h.subscriptionRepo.Create(c.Request.Context(), &sub); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create subscription"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Update replaces the mutable fields of an existing subscription
func (h *SubscriptionHandlers) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req domain.Subscription
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	existing, err := h.subscriptionRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Subscription not found"})
		return
	}

	existing.Name = req.Name
	existing.Cost = req.Cost
	existing.BillingCycle = req.BillingCycle
	existing.NextPaymentDate = req.NextPaymentDate
	existing.LastUsedDate = req.LastUsedDate
	existing.Status = req.Status
	existing.ProviderKey = req.ProviderKey
	existing.Category = req.Category

	if err := h.subscriptionRepo.Update(c.Request.Context(), existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update subscription"})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// Delete removes a subscription
func (h *SubscriptionHandlers) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.subscriptionRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete subscription"})
		return
	}
	c.Status(http.StatusOK)
}

// Upcoming returns active subscriptions billing within the next N days
func (h *SubscriptionHandlers) Upcoming(c *gin.Context) {
	days := queryDays(c, 7)
	subs, err := h.subscriptionSvc.Upcoming(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list upcoming subscriptions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Inactive returns active subscriptions unused for at least N days
func (h *SubscriptionHandlers) Inactive(c *gin.Context) {
	days := queryDays(c, 30)
	subs, err := h.subscriptionSvc.Inactive(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list inactive subscriptions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// MarkUsed stamps a subscription's last-used date with today
func (h *SubscriptionHandlers) MarkUsed(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	sub, err := h.subscriptionSvc.MarkUsed(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Subscription not found"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Cancel sets a subscription's status to CANCELLED
func (h *SubscriptionHandlers) Cancel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	sub, err := h.subscriptionSvc.Cancel(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Subscription not found"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

func queryDays(c *gin.Context, fallback int) int {
	raw := c.Query("days")
	if raw == "" {
		return fallback
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		return fallback
	}
	return days
}
