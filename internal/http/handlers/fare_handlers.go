package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mahir-soa/FYP/domain"
)

// FareHandlers handles transport fare lookups
type FareHandlers struct {
	fareSvc domain.FareService
}

// NewFareHandlers creates new fare handlers
func NewFareHandlers(fareSvc domain.FareService) *FareHandlers {
	return &FareHandlers{fareSvc: fareSvc}
}

// Lookup resolves a fare for the given transport type, zones and time of day
func (h *FareHandlers) Lookup(c *gin.Context) {
	transportType := c.Query("type")
	if transportType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Transport type is required"})
		return
	}

	fromZone := queryZone(c, "fromZone")
	toZone := queryZone(c, "toZone")
	isPeak := c.Query("isPeak") == "true"

	fare, ok, err := h.fareSvc.CalculateFare(c.Request.Context(), transportType, fromZone, toZone, isPeak)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to calculate fare"})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Could not calculate fare",
			"message": "Missing zone information for train journey",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transportType": transportType,
		"fromZone":      zoneOrNA(fromZone),
		"toZone":        zoneOrNA(toZone),
		"isPeak":        isPeak,
		"fare":          fare,
	})
}

func zoneOrNA(zone *int) interface{} {
	if zone == nil {
		return "N/A"
	}
	return *zone
}

func queryZone(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	zone, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &zone
}
