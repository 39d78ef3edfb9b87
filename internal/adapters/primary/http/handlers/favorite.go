package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"farmventure-api/internal/adapters/primary/http/dto"
	"farmventure-api/internal/adapters/primary/http/middleware"
	"farmventure-api/internal/core/domain"
)

func (h *Handler) AddFavorite(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req dto.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favorite, err := h.favoriteSvc.Add(c.Request.Context(), user, req.ItemID, domain.ItemType(req.ItemType))
	if err != nil {
		log.WithError(err).Error("add favorite failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFavoriteResponse(favorite))
}

func (h *Handler) ListFavorites(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	favorites, err := h.favoriteSvc.List(c.Request.Context(), user, domain.ItemType(c.Query("item_type")))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := make([]dto.FavoriteDetailResponse, 0, len(favorites))
	for _, fav := range favorites {
		items = append(items, dto.ToFavoriteDetailResponse(fav))
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) ListFavoriteIDs(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	ids, err := h.favoriteSvc.IDs(c.Request.Context(), user, domain.ItemType(c.Query("item_type")))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ids)
}

func (h *Handler) CheckFavorite(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	itemID, ok := parseID(c, "item_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	favorited, err := h.favoriteSvc.Check(c.Request.Context(), user, itemID, domain.ItemType(c.Param("item_type")))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorited": favorited})
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	itemID, ok := parseID(c, "item_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	removed, err := h.favoriteSvc.Remove(c.Request.Context(), user, itemID, domain.ItemType(c.Param("item_type")))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	message := "item was not in favorites"
	if removed {
		message = "item removed from favorites"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "success": true})
}
