package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/restexample/shop-service/internal/models"
)

var ErrShopNotFound = errors.New("shop not found")

// Match reports whether a shop satisfies a lookup.
type Match func(models.Shop) bool

func ByName(name string) Match {
	return func(s models.Shop) bool { return s.ShopName == name }
}

func ByID(id string) Match {
	return func(s models.Shop) bool { return s.ID == id }
}

// ByEmployeeCount never matches when n is nil.
func ByEmployeeCount(n *int) Match {
	return func(s models.Shop) bool { return n != nil && s.NumberOfEmployees == *n }
}

func ByAddressAndEmployeeCount(address string, n *int) Match {
	byCount := ByEmployeeCount(n)
	return func(s models.Shop) bool { return s.ShopAddress == address && byCount(s) }
}

// ShopRepository holds the ordered in-memory shop collection. All access is
// serialised by a single RWMutex; callers only ever see copies.
//
// Ids are not unique. Every id based operation acts on the first match in
// insertion order.
type ShopRepository struct {
	mu    sync.RWMutex
	shops []models.Shop
}

// NewShopRepository returns a repository preloaded with seed, in order.
func NewShopRepository(seed ...models.Shop) *ShopRepository {
	shops := make([]models.Shop, len(seed))
	copy(shops, seed)
	return &ShopRepository{shops: shops}
}

// Add appends shop without any uniqueness or validation check.
func (r *ShopRepository) Add(_ context.Context, shop models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shops = append(r.shops, shop)
	return nil
}

// List returns a snapshot of every shop. The result is never nil.
func (r *ShopRepository) List(_ context.Context) ([]models.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Shop, len(r.shops))
	copy(out, r.shops)
	return out, nil
}

func (r *ShopRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shops)
}

// FindFirst returns the first shop accepted by match, or ErrShopNotFound.
func (r *ShopRepository) FindFirst(_ context.Context, match Match) (*models.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(match)
	if i < 0 {
		return nil, ErrShopNotFound
	}
	shop := r.shops[i]
	return &shop, nil
}

func (r *ShopRepository) FindByName(ctx context.Context, name string) (*models.Shop, error) {
	return r.FindFirst(ctx, ByName(name))
}

func (r *ShopRepository) FindByID(ctx context.Context, id string) (*models.Shop, error) {
	return r.FindFirst(ctx, ByID(id))
}

func (r *ShopRepository) FindByEmployeeCount(ctx context.Context, n *int) (*models.Shop, error) {
	return r.FindFirst(ctx, ByEmployeeCount(n))
}

func (r *ShopRepository) FindByAddressAndEmployeeCount(ctx context.Context, address string, n *int) (*models.Shop, error) {
	return r.FindFirst(ctx, ByAddressAndEmployeeCount(address, n))
}

// UpdateByID applies mutate to the first shop with id while holding the write
// lock and returns the result. If mutate fails the stored shop is untouched.
func (r *ShopRepository) UpdateByID(_ context.Context, id string, mutate func(*models.Shop) error) (*models.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(ByID(id))
	if i < 0 {
		return nil, ErrShopNotFound
	}
	updated := r.shops[i]
	if err := mutate(&updated); err != nil {
		return nil, err
	}
	r.shops[i] = updated
	return &updated, nil
}

// Remove deletes the first shop equal to shop in every field.
func (r *ShopRepository) Remove(_ context.Context, shop models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(func(s models.Shop) bool { return s == shop })
	if i < 0 {
		return ErrShopNotFound
	}
	r.removeAt(i)
	return nil
}

// RemoveByID deletes the first shop with id and returns it. The lookup and the
// removal happen under one lock.
func (r *ShopRepository) RemoveByID(_ context.Context, id string) (*models.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(ByID(id))
	if i < 0 {
		return nil, ErrShopNotFound
	}
	removed := r.shops[i]
	r.removeAt(i)
	return &removed, nil
}

func (r *ShopRepository) indexOf(match Match) int {
	for i, s := range r.shops {
		if match(s) {
			return i
		}
	}
	return -1
}

func (r *ShopRepository) removeAt(i int) {
	r.shops = append(r.shops[:i], r.shops[i+1:]...)
}
