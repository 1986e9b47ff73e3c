package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every endpoint handler so routes can be
// registered from one place.
type HandlerBundle struct {
	BookAppointmentHandler gin.HandlerFunc
	BookedSlotsHandler     gin.HandlerFunc
	HealthHandler          gin.HandlerFunc
}
