package command

import (
	"context"

	"github.com/restexample/shop-service/internal/cqrs"
	"github.com/restexample/shop-service/internal/events"
	"github.com/restexample/shop-service/internal/models"
	"github.com/sirupsen/logrus"
)

// ShopStore is the write side of the shop repository.
type ShopStore interface {
	Add(ctx context.Context, shop models.Shop) error
	UpdateByID(ctx context.Context, id string, mutate func(*models.Shop) error) (*models.Shop, error)
	RemoveByID(ctx context.Context, id string) (*models.Shop, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data any) error
}

// Validator rejects a mutated shop before it is stored.
type Validator func(models.Shop) error

// ShopCommandService applies shop mutations and announces each one as an
// event. A failed publish is logged and never fails the mutation.
type ShopCommandService struct {
	store     ShopStore
	publisher EventPublisher
	logger    logrus.FieldLogger
	validate  Validator
}

type Option func(*ShopCommandService)

// WithUpdateValidation makes both update commands run v on the mutated shop.
// Without it updates are stored as given, the way creation leaves validation
// to the request boundary.
func WithUpdateValidation(v Validator) Option {
	return func(s *ShopCommandService) { s.validate = v }
}

func NewShopCommandService(store ShopStore, publisher EventPublisher, logger logrus.FieldLogger, opts ...Option) *ShopCommandService {
	s := &ShopCommandService{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateShop appends the shop unconditionally and echoes it back.
func (s *ShopCommandService) CreateShop(ctx context.Context, cmd cqrs.CreateShopCommand) (*models.Shop, error) {
	shop := cmd.Shop
	if err := s.store.Add(ctx, shop); err != nil {
		return nil, err
	}
	s.publish(ctx, events.ShopCreated, events.ShopCreatedEvent{
		ShopID:            shop.ID,
		ShopName:          shop.ShopName,
		ShopAddress:       shop.ShopAddress,
		NumberOfEmployees: shop.NumberOfEmployees,
	})
	return &shop, nil
}

func (s *ShopCommandService) UpdateShopName(ctx context.Context, cmd cqrs.UpdateShopNameCommand) (*models.Shop, error) {
	shop, err := s.store.UpdateByID(ctx, cmd.ShopID, func(shop *models.Shop) error {
		shop.ShopName = cmd.Name
		return s.check(*shop)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.ShopRenamed, events.ShopRenamedEvent{
		ShopID:   shop.ID,
		ShopName: shop.ShopName,
	})
	return shop, nil
}

func (s *ShopCommandService) UpdateShop(ctx context.Context, cmd cqrs.UpdateShopCommand) (*models.Shop, error) {
	shop, err := s.store.UpdateByID(ctx, cmd.ShopID, func(shop *models.Shop) error {
		shop.ShopName = cmd.Name
		shop.NumberOfEmployees = cmd.NumberOfEmployees
		return s.check(*shop)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.ShopUpdated, events.ShopUpdatedEvent{
		ShopID:            shop.ID,
		ShopName:          shop.ShopName,
		NumberOfEmployees: shop.NumberOfEmployees,
	})
	return shop, nil
}

// DeleteShop removes the first shop with the id and returns it.
func (s *ShopCommandService) DeleteShop(ctx context.Context, cmd cqrs.DeleteShopCommand) (*models.Shop, error) {
	shop, err := s.store.RemoveByID(ctx, cmd.ShopID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.ShopDeleted, events.ShopDeletedEvent{ShopID: shop.ID})
	return shop, nil
}

func (s *ShopCommandService) check(shop models.Shop) error {
	if s.validate == nil {
		return nil
	}
	return s.validate(shop)
}

func (s *ShopCommandService) publish(ctx context.Context, eventType string, data any) {
	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		s.logger.WithError(err).WithField("event", eventType).Warn("failed to publish shop event")
	}
}
