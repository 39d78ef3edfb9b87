package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"farmventure-api/internal/adapters/primary/http/dto"
	"farmventure-api/internal/adapters/primary/http/middleware"
)

func (h *Handler) CreateBooking(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Tickets == 0 {
		req.Tickets = 1
	}

	booking, err := h.bookingSvc.Create(c.Request.Context(), user, req.ActivityID, req.Tickets)
	if err != nil {
		log.WithError(err).Error("create booking failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	bookings, err := h.bookingSvc.ListMine(c.Request.Context(), user, c.Query("status"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) GetBooking(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := h.bookingSvc.Get(c.Request.Context(), user, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Tickets == nil {
		booking, err := h.bookingSvc.Get(c.Request.Context(), user, id)
		if err != nil {
			mapDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
		return
	}

	booking, err := h.bookingSvc.UpdateTickets(c.Request.Context(), user, id, *req.Tickets)
	if err != nil {
		log.WithError(err).Error("update booking failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if err := h.bookingSvc.Cancel(c.Request.Context(), user, id); err != nil {
		log.WithError(err).Error("cancel booking failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

func (h *Handler) ListAllBookings(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	userID, _ := strconv.ParseInt(c.Query("user_id"), 10, 64)
	activityID, _ := strconv.ParseInt(c.Query("activity_id"), 10, 64)

	bookings, err := h.bookingSvc.ListAll(c.Request.Context(), user, userID, activityID, c.Query("status"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) BookingStats(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	stats, err := h.bookingSvc.Stats(c.Request.Context(), user)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
