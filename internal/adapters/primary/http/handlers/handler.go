package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"farmventure-api/internal/core/services"
)

type Handler struct {
	userSvc     *services.UserService
	productSvc  *services.ProductService
	activitySvc *services.ActivityService
	bookingSvc  *services.BookingService
	favoriteSvc *services.FavoriteService
}

func New(
	userSvc *services.UserService,
	productSvc *services.ProductService,
	activitySvc *services.ActivityService,
	bookingSvc *services.BookingService,
	favoriteSvc *services.FavoriteService,
) *Handler {
	return &Handler{
		userSvc:     userSvc,
		productSvc:  productSvc,
		activitySvc: activitySvc,
		bookingSvc:  bookingSvc,
		favoriteSvc: favoriteSvc,
	}
}

// RegisterRoutes wires the API surface. auth is applied per-route: catalog
// reads are public, everything that acts on behalf of a user requires it.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	// Auth
	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/login", h.Login)
	api.GET("/auth/me", auth, h.Me)

	// Products
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.POST("/products", auth, h.CreateProduct)
	api.PUT("/products/:id", auth, h.UpdateProduct)
	api.DELETE("/products/:id", auth, h.DeleteProduct)
	api.GET("/users/:id/products", h.ListUserProducts)

	// Activities
	api.GET("/activities", h.ListActivities)
	api.GET("/activities/:id", h.GetActivity)
	api.POST("/activities", auth, h.CreateActivity)
	api.PUT("/activities/:id", auth, h.UpdateActivity)
	api.DELETE("/activities/:id", auth, h.DeleteActivity)
	api.PATCH("/activities/:id/toggle", auth, h.ToggleActivity)
	api.GET("/activities/:id/availability", auth, h.CheckAvailability)

	// Bookings
	bookings := api.Group("/bookings", auth)
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListMyBookings)
	bookings.GET("/:id", h.GetBooking)
	bookings.PUT("/:id", h.UpdateBooking)
	bookings.DELETE("/:id", h.CancelBooking)

	// Favorites
	favorites := api.Group("/favorites", auth)
	favorites.POST("", h.AddFavorite)
	favorites.GET("", h.ListFavorites)
	favorites.GET("/ids", h.ListFavoriteIDs)
	favorites.GET("/check/:item_type/:item_id", h.CheckFavorite)
	favorites.DELETE("/:item_type/:item_id", h.RemoveFavorite)

	// Admin
	admin := api.Group("/admin", auth)
	admin.GET("/products", h.AdminListProducts)
	admin.PUT("/products/:id/restore", h.RestoreProduct)
	admin.GET("/bookings", h.ListAllBookings)
	admin.GET("/bookings/stats", h.BookingStats)
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
