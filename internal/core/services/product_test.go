package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/core/ports/output"
	"farmventure-api/internal/testutil"
)

func TestProductService_Create(t *testing.T) {
	repo := new(testutil.MockProductRepo)
	svc := NewProductService(repo)
	owner := &domain.User{ID: 5, Role: domain.RoleCustomer}

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Product)
			assert.Equal(t, int64(5), p.UserID)
			assert.True(t, p.IsActive)
			p.ID = 11
		}).Return(nil)
	repo.On("GetByID", mock.Anything, int64(11)).
		Return(&domain.Product{ID: 11, Name: "raw honey", UserID: 5, IsActive: true}, nil)

	product, err := svc.Create(context.Background(), owner, &domain.Product{Name: "raw honey", Price: 9.5})
	assert.NoError(t, err)
	assert.Equal(t, int64(11), product.ID)
	repo.AssertExpectations(t)
}

func TestProductService_Get_InactiveHidden(t *testing.T) {
	repo := new(testutil.MockProductRepo)
	svc := NewProductService(repo)

	repo.On("GetByID", mock.Anything, int64(11)).
		Return(&domain.Product{ID: 11, IsActive: false}, nil)

	_, err := svc.Get(context.Background(), 11)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductService_List_ForcesActiveOnlyAndClampsPage(t *testing.T) {
	repo := new(testutil.MockProductRepo)
	svc := NewProductService(repo)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f ports.ProductFilter) bool {
		return !f.IncludeInactive && f.Limit == 20 && f.Offset == 0
	})).Return([]*domain.Product{}, nil)

	_, err := svc.List(context.Background(), ports.ProductFilter{IncludeInactive: true, Limit: 0, Offset: -5})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProductService_List_CapsLimit(t *testing.T) {
	repo := new(testutil.MockProductRepo)
	svc := NewProductService(repo)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f ports.ProductFilter) bool {
		return f.Limit == 100
	})).Return([]*domain.Product{}, nil)

	_, err := svc.List(context.Background(), ports.ProductFilter{Limit: 5000})
	assert.NoError(t, err)
}

func TestProductService_Update_NotOwner(t *testing.T) {
	repo := new(testutil.MockProductRepo)
	svc := NewProductService(repo)
	stranger := &domain.User{ID: 99, Role: domain.RoleCustomer}

	repo.On("GetByID", mock.Anything, int64(11)).
		Return(&domain.Product{ID: 11, UserID: 5, IsActive: true}, nil)

	_, err := svc.Update(context.Background(), stranger, 11, map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestProductService_Update_AdminAllowed(t *testing.T) {
	repo := new(testutil.MockProductRepo)
	svc := NewProductService(repo)
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}

	repo.On("GetByID", mock.Anything, int64(11)).
		Return(&domain.Product{ID: 11, UserID: 5, Name: "old", IsActive: true}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Name == "new" && p.Price == 12.0
	})).Return(nil)

	_, err := svc.Update(context.Background(), admin, 11, map[string]interface{}{
		"name":  "new",
		"price": 12.0,
	})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProductService_Delete_SoftDeletes(t *testing.T) {
	repo := new(testutil.MockProductRepo)
	svc := NewProductService(repo)
	owner := &domain.User{ID: 5, Role: domain.RoleCustomer}

	repo.On("GetByID", mock.Anything, int64(11)).
		Return(&domain.Product{ID: 11, UserID: 5, IsActive: true}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return !p.IsActive
	})).Return(nil)

	err := svc.Delete(context.Background(), owner, 11)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProductService_AdminList_CustomerRejected(t *testing.T) {
	repo := new(testutil.MockProductRepo)
	svc := NewProductService(repo)
	customer := &domain.User{ID: 5, Role: domain.RoleCustomer}

	_, err := svc.AdminList(context.Background(), customer, true, 20, 0)
	assert.ErrorIs(t, err, domain.ErrAdminOnly)
}

func TestProductService_Restore(t *testing.T) {
	repo := new(testutil.MockProductRepo)
	svc := NewProductService(repo)
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}

	repo.On("GetByID", mock.Anything, int64(11)).
		Return(&domain.Product{ID: 11, UserID: 5, IsActive: false}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.IsActive
	})).Return(nil)

	_, err := svc.Restore(context.Background(), admin, 11)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
