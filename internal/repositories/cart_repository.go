package repositories

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/zsyio/api/internal/domain"
	fs "github.com/zsyio/api/internal/platform/firestore"
)

type cartRepository struct {
	base *fs.BaseRepository[domain.Cart]
}

// NewCartRepository builds the Firestore-backed cart repository.
func NewCartRepository(provider *fs.Provider) CartRepository {
	return &cartRepository{
		base: fs.NewBaseRepository[domain.Cart](provider, collectionCarts, nil, nil),
	}
}

func (r *cartRepository) List(ctx context.Context) ([]domain.Cart, error) {
	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.OrderBy("updated_at", firestore.Desc)
	})
	if err != nil {
		return nil, err
	}
	carts := make([]domain.Cart, 0, len(docs))
	for _, doc := range docs {
		cart := doc.Data
		cart.ID = doc.ID
		carts = append(carts, cart)
	}
	return carts, nil
}

func (r *cartRepository) Get(ctx context.Context, id string) (domain.Cart, error) {
	doc, err := r.base.Get(ctx, id)
	if err != nil {
		return domain.Cart{}, err
	}
	cart := doc.Data
	cart.ID = doc.ID
	return cart, nil
}

func (r *cartRepository) FindByGuestID(ctx context.Context, guestID string) (domain.Cart, error) {
	doc, err := r.base.QueryOne(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("guest_id", "==", guestID)
	})
	if err != nil {
		return domain.Cart{}, err
	}
	cart := doc.Data
	cart.ID = doc.ID
	return cart, nil
}

// Save replaces the full cart document. Concurrent add_item calls can lose
// updates; the last write wins.
func (r *cartRepository) Save(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	if cart.ID == "" {
		cart.ID = NewID()
	}
	if _, err := r.base.Set(ctx, cart.ID, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}
