package handlers

import (
	"net/http"

	"clinicbook/models"
	"clinicbook/services/booking"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	svc    booking.Service
	logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// BookAppointment handles POST /book-appointment.
func (h *BookingHandler) BookAppointment(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}

	result, err := h.svc.BookAppointment(c.Request.Context(), req)
	if err != nil {
		if booking.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
			return
		}
		h.logger.Error("booking failed",
			zap.String("date", req.Date),
			zap.String("time", req.Time),
			zap.Error(err),
		)
		utils.JSONError(c, http.StatusInternalServerError,
			"An error occurred while booking the appointment.", err.Error())
		return
	}

	if result.AlreadyBooked {
		// A taken slot is a normal outcome, not an error.
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Slot already booked",
		})
		return
	}

	resp := gin.H{"message": "Appointment booked successfully"}
	if result.MeetLink != "" {
		resp["meetLink"] = result.MeetLink
	}
	if result.EmailFailed {
		// Persist already committed; the caller just learns the
		// confirmation mail did not go out.
		resp["message"] = "Appointment booked, but confirmation email failed"
		resp["emailSent"] = false
	}
	c.JSON(http.StatusOK, resp)
}

// BookedSlots handles GET /booked-slots?date=YYYY-MM-DD.
func (h *BookingHandler) BookedSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date query parameter", "date is required")
		return
	}

	times, err := h.svc.BookedTimes(c.Request.Context(), date)
	if err != nil {
		if booking.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
			return
		}
		h.logger.Error("failed to list booked slots", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, times)
}

// Health handles GET /health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
