package handler

import (
	"errors"
	"log"
	"net/http"

	"therapy_platform/internal/model"
	"therapy_platform/internal/service"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles appointment requests
type AppointmentHandler struct {
	service service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler
func NewAppointmentHandler(s service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: s}
}

func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appointment, err := h.service.BookAppointment(c.Request.Context(), user.ID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error booking appointment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":        "Appointment booked successfully",
		"appointment_id": appointment.ID,
	})
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), user)
	if err != nil {
		log.Printf("Error listing appointments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// RegisterAppointmentRoutes registers appointment routes
func (h *AppointmentHandler) RegisterAppointmentRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/appointment", authMW, h.BookAppointment)
	rg.GET("/appointments", authMW, h.ListAppointments)
}
