package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mahir-soa/FYP/domain"
)

// ExpenseHandlers handles expense CRUD requests
type ExpenseHandlers struct {
	expenseRepo domain.ExpenseRepository
}

// NewExpenseHandlers creates new expense handlers
func NewExpenseHandlers(expenseRepo domain.ExpenseRepository) *ExpenseHandlers {
	return &ExpenseHandlers{expenseRepo: expenseRepo}
}

// List returns all expenses
func (h *ExpenseHandlers) List(c *gin.Context) {
	expenses, err := h.expenseRepo.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list expenses"})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Create stores a new expense
func (h *ExpenseHandlers) Create(c *gin.Context) {
	var expense domain.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	expense.ID = 0

	if err := h.expenseRepo.Create(c.Request.Context(), &expense); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create expense"})
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Update replaces the mutable fields of an existing expense
func (h *ExpenseHandlers) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req domain.Expense
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	existing, err := h.expenseRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Expense not found"})
		return
	}

	existing.Date = req.Date
	existing.Description = req.Description
	existing.Amount = req.Amount
	existing.Category = req.Category
	existing.Mood = req.Mood
	existing.SubType = req.SubType
	existing.FromZone = req.FromZone
	existing.ToZone = req.ToZone
	existing.IsPeak = req.IsPeak

	if err := h.expenseRepo.Update(c.Request.Context(), existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update expense"})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// Delete removes an expense
func (h *ExpenseHandlers) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.expenseRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete expense"})
		return
	}
	c.Status(http.StatusOK)
}

// parseID reads the :id path parameter, writing the error response itself
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, err
	}
	return uint(id), nil
}
