package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"farmventure-api/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrFavoriteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflicts
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrAlreadyFavorited):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / business rejections
	case errors.Is(err, domain.ErrActivityInPast),
		errors.Is(err, domain.ErrActivityClosed),
		errors.Is(err, domain.ErrNotEnoughSpots),
		errors.Is(err, domain.ErrInvalidTickets),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidItemType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Authentication
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	// Authorization
	case errors.Is(err, domain.ErrAdminOnly),
		errors.Is(err, domain.ErrCustomerOnly),
		errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrNotBookingOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
