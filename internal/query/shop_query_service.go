package query

import (
	"context"

	"github.com/restexample/shop-service/internal/cqrs"
	"github.com/restexample/shop-service/internal/models"
	"github.com/restexample/shop-service/internal/repository"
)

// ShopFinder is the read side of the shop repository.
type ShopFinder interface {
	List(ctx context.Context) ([]models.Shop, error)
	FindFirst(ctx context.Context, match repository.Match) (*models.Shop, error)
}

// ShopQueryService answers shop lookups. Every single-shop query returns the
// first match in insertion order or repository.ErrShopNotFound.
type ShopQueryService struct {
	finder ShopFinder
}

func NewShopQueryService(finder ShopFinder) *ShopQueryService {
	return &ShopQueryService{finder: finder}
}

func (s *ShopQueryService) ListShops(ctx context.Context, _ cqrs.ListShopsQuery) ([]models.Shop, error) {
	return s.finder.List(ctx)
}

func (s *ShopQueryService) GetShopByName(ctx context.Context, q cqrs.GetShopByNameQuery) (*models.Shop, error) {
	return s.finder.FindFirst(ctx, repository.ByName(q.Name))
}

func (s *ShopQueryService) GetShopByEmployees(ctx context.Context, q cqrs.GetShopByEmployeesQuery) (*models.Shop, error) {
	return s.finder.FindFirst(ctx, repository.ByEmployeeCount(q.NumberOfEmployees))
}

func (s *ShopQueryService) GetShopByAddressAndEmployees(ctx context.Context, q cqrs.GetShopByAddressAndEmployeesQuery) (*models.Shop, error) {
	return s.finder.FindFirst(ctx, repository.ByAddressAndEmployeeCount(q.ShopAddress, q.NumberOfEmployees))
}
