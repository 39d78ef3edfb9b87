package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/core/ports/output"
)

func TestListProducts(t *testing.T) {
	env := setupRouter()

	env.products.On("List", mock.Anything, mock.MatchedBy(func(f ports.ProductFilter) bool {
		return f.Category == "honey" && !f.IncludeInactive && f.MinPrice != nil && *f.MinPrice == 5
	})).Return([]*domain.Product{
		{ID: 11, Name: "raw honey", Price: 9.5, IsActive: true},
	}, nil)

	w := doJSON(env.router, "GET", "/api/products?category=honey&min_price=5", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp, 1)
	assert.Equal(t, "raw honey", resp[0]["name"])
}

func TestGetProduct_NotFound(t *testing.T) {
	env := setupRouter()

	env.products.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrProductNotFound)

	w := doJSON(env.router, "GET", "/api/products/99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProduct_BadID(t *testing.T) {
	env := setupRouter()

	w := doJSON(env.router, "GET", "/api/products/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProduct(t *testing.T) {
	env := setupRouter()
	user := &domain.User{ID: 5, Username: "bob", Role: domain.RoleCustomer}
	auth := env.authHeader(t, user)

	env.products.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Product).ID = 11
		}).Return(nil)
	env.products.On("GetByID", mock.Anything, int64(11)).
		Return(&domain.Product{ID: 11, Name: "raw honey", UserID: 5, IsActive: true}, nil)

	w := doJSON(env.router, "POST", "/api/products", auth, map[string]interface{}{
		"name":     "raw honey",
		"price":    9.5,
		"category": "honey",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateProduct_Unauthenticated(t *testing.T) {
	env := setupRouter()

	w := doJSON(env.router, "POST", "/api/products", "", map[string]interface{}{
		"name":  "raw honey",
		"price": 9.5,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProduct_NotOwner(t *testing.T) {
	env := setupRouter()
	stranger := &domain.User{ID: 99, Username: "eve", Role: domain.RoleCustomer}
	auth := env.authHeader(t, stranger)

	env.products.On("GetByID", mock.Anything, int64(11)).
		Return(&domain.Product{ID: 11, UserID: 5, IsActive: true}, nil)

	w := doJSON(env.router, "PUT", "/api/products/11", auth, map[string]interface{}{
		"name": "stolen honey",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminListProducts_CustomerRejected(t *testing.T) {
	env := setupRouter()
	customer := &domain.User{ID: 5, Username: "bob", Role: domain.RoleCustomer}
	auth := env.authHeader(t, customer)

	w := doJSON(env.router, "GET", "/api/admin/products", auth, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
