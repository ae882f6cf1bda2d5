package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zsyio/api/internal/domain"
	fs "github.com/zsyio/api/internal/platform/firestore"
	"github.com/zsyio/api/internal/repositories"
)

var (
	// ErrServiceSlugRequired is returned when add_item is called without a slug.
	ErrServiceSlugRequired = errors.New("cart: service_slug is required")
	// ErrServiceNotFound is returned when the referenced service does not exist.
	ErrServiceNotFound = errors.New("cart: service not found")
	// ErrCartNotFound is returned when a cart lookup misses.
	ErrCartNotFound = errors.New("cart: not found")
)

// CartService manages guest carts.
type CartService struct {
	carts    repositories.CartRepository
	services repositories.ServiceRepository
	logger   *zap.Logger
	clock    func() time.Time
}

// CartServiceDeps lists the dependencies for NewCartService.
type CartServiceDeps struct {
	Carts    repositories.CartRepository
	Services repositories.ServiceRepository
	Logger   *zap.Logger
	Clock    func() time.Time
}

// NewCartService wires the cart service.
func NewCartService(deps CartServiceDeps) (*CartService, error) {
	if deps.Carts == nil {
		return nil, errors.New("cart: cart repository is required")
	}
	if deps.Services == nil {
		return nil, errors.New("cart: service repository is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	wrapped := func() time.Time { return clock().UTC() }
	return &CartService{
		carts:    deps.Carts,
		services: deps.Services,
		logger:   logger,
		clock:    wrapped,
	}, nil
}

// List returns every cart, most recently updated first.
func (s *CartService) List(ctx context.Context) ([]domain.Cart, error) {
	carts, err := s.carts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cart: list: %w", err)
	}
	return carts, nil
}

// Get fetches a single cart by document id.
func (s *CartService) Get(ctx context.Context, id string) (domain.Cart, error) {
	cart, err := s.carts.Get(ctx, id)
	if fs.IsNotFound(err) {
		return domain.Cart{}, ErrCartNotFound
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("cart: get: %w", err)
	}
	return cart, nil
}

// GetByGuest returns the guest's cart, or an empty unsaved cart when none exists.
func (s *CartService) GetByGuest(ctx context.Context, guestID string) (domain.Cart, error) {
	cart, err := s.carts.FindByGuestID(ctx, guestID)
	if fs.IsNotFound(err) {
		return domain.Cart{GuestID: guestID, Items: []domain.CartItem{}}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("cart: find by guest: %w", err)
	}
	return cart, nil
}

// AddItem appends a service to the guest's cart, incrementing the quantity
// when the service is already present. The read-modify-replace sequence is
// not transactional; concurrent adds to the same cart can lose an update.
func (s *CartService) AddItem(ctx context.Context, guestID, serviceSlug string, quantity int) (domain.Cart, error) {
	serviceSlug = strings.TrimSpace(serviceSlug)
	if serviceSlug == "" {
		return domain.Cart{}, ErrServiceSlugRequired
	}
	if quantity <= 0 {
		quantity = 1
	}

	service, err := s.services.GetByIDOrSlug(ctx, serviceSlug)
	if fs.IsNotFound(err) {
		return domain.Cart{}, ErrServiceNotFound
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("cart: resolve service: %w", err)
	}

	now := s.clock()
	cart, err := s.carts.FindByGuestID(ctx, guestID)
	if fs.IsNotFound(err) {
		cart = domain.Cart{GuestID: guestID, Items: []domain.CartItem{}, CreatedAt: now}
	} else if err != nil {
		return domain.Cart{}, fmt.Errorf("cart: find by guest: %w", err)
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ServiceSlug == service.Slug {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, domain.CartItem{
			ServiceSlug:  service.Slug,
			ServiceTitle: service.Title,
			UnitPrice:    service.BaseRate,
			Quantity:     quantity,
		})
	}
	cart.UpdatedAt = now

	saved, err := s.carts.Save(ctx, cart)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("cart: save: %w", err)
	}
	return saved, nil
}

// Clear removes every item from the guest's cart. Clearing a missing cart is
// a no-op.
func (s *CartService) Clear(ctx context.Context, guestID string) (domain.Cart, error) {
	cart, err := s.carts.FindByGuestID(ctx, guestID)
	if fs.IsNotFound(err) {
		return domain.Cart{GuestID: guestID, Items: []domain.CartItem{}}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("cart: find by guest: %w", err)
	}

	cart.Items = []domain.CartItem{}
	cart.UpdatedAt = s.clock()

	saved, err := s.carts.Save(ctx, cart)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("cart: save: %w", err)
	}
	return saved, nil
}
