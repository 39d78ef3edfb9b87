package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"farmventure-api/internal/adapters/primary/http/dto"
	"farmventure-api/internal/adapters/primary/http/middleware"
	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/core/ports/output"
)

func (h *Handler) ListProducts(c *gin.Context) {
	limit, offset := parsePagination(c)

	filter := ports.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    limit,
		Offset:   offset,
	}
	if v := c.Query("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil && p >= 0 {
			filter.MinPrice = &p
		}
	}
	if v := c.Query("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil && p >= 0 {
			filter.MaxPrice = &p
		}
	}

	products, err := h.productSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list products failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := h.productSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

func (h *Handler) CreateProduct(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productSvc.Create(c.Request.Context(), user, &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		log.WithError(err).Error("create product failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	product, err := h.productSvc.Update(c.Request.Context(), user, id, updates)
	if err != nil {
		log.WithError(err).Error("update product failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.productSvc.Delete(c.Request.Context(), user, id); err != nil {
		log.WithError(err).Error("delete product failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func (h *Handler) ListUserProducts(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	limit, offset := parsePagination(c)
	products, err := h.productSvc.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

func (h *Handler) AdminListProducts(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	showInactive := c.DefaultQuery("show_inactive", "false") == "true"
	limit, offset := parsePagination(c)

	products, err := h.productSvc.AdminList(c.Request.Context(), user, showInactive, limit, offset)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

func (h *Handler) RestoreProduct(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := h.productSvc.Restore(c.Request.Context(), user, id)
	if err != nil {
		log.WithError(err).Error("restore product failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}
