package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"farmventure-api/internal/adapters/primary/http/dto"
	"farmventure-api/internal/adapters/primary/http/middleware"
	"farmventure-api/internal/core/domain"
)

func (h *Handler) ListActivities(c *gin.Context) {
	upcomingOnly := c.DefaultQuery("upcoming_only", "true") != "false"
	search := c.Query("search")

	activities, err := h.activitySvc.List(c.Request.Context(), upcomingOnly, search)
	if err != nil {
		log.WithError(err).Error("list activities failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponses(activities))
}

func (h *Handler) GetActivity(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	activity, err := h.activitySvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

func (h *Handler) CreateActivity(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activitySvc.Create(c.Request.Context(), user, &domain.Activity{
		Title:           req.Title,
		Description:     req.Description,
		StartsAt:        req.StartsAt,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		MaxCapacity:     req.MaxCapacity,
		Category:        req.Category,
		Location:        req.Location,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		log.WithError(err).Error("create activity failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToActivityResponse(activity))
}

func (h *Handler) UpdateActivity(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.StartsAt != nil {
		updates["starts_at"] = *req.StartsAt
	}
	if req.DurationMinutes != nil {
		updates["duration_minutes"] = *req.DurationMinutes
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.MaxCapacity != nil {
		updates["max_capacity"] = *req.MaxCapacity
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	activity, err := h.activitySvc.Update(c.Request.Context(), user, id, updates)
	if err != nil {
		log.WithError(err).Error("update activity failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

func (h *Handler) DeleteActivity(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	if err := h.activitySvc.Delete(c.Request.Context(), user, id); err != nil {
		log.WithError(err).Error("delete activity failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "activity deactivated"})
}

func (h *Handler) ToggleActivity(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	activity, err := h.activitySvc.Toggle(c.Request.Context(), user, id)
	if err != nil {
		log.WithError(err).Error("toggle activity failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	tickets, _ := strconv.Atoi(c.DefaultQuery("tickets", "1"))

	availability, err := h.bookingSvc.CheckAvailability(c.Request.Context(), user, id, tickets)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	resp := gin.H{
		"available":  availability.Available,
		"spots_left": availability.SpotsLeft,
		"message":    availability.Message,
	}
	if availability.Activity != nil {
		resp["activity"] = dto.ToActivityResponse(availability.Activity)
	}
	c.JSON(http.StatusOK, resp)
}
