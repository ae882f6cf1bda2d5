package handlers

import (
	"context"
	"strings"

	"github.com/zsyio/api/internal/domain"
)

type notFoundError struct{ msg string }

func (e notFoundError) Error() string       { return e.msg }
func (e notFoundError) IsNotFound() bool    { return true }
func (e notFoundError) IsConflict() bool    { return false }
func (e notFoundError) IsUnavailable() bool { return false }

func errNotFound() error { return notFoundError{msg: "not found"} }

type fakeCartRepository struct {
	carts map[string]domain.Cart
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{carts: map[string]domain.Cart{}}
}

func (r *fakeCartRepository) List(context.Context) ([]domain.Cart, error) {
	out := []domain.Cart{}
	for _, cart := range r.carts {
		out = append(out, cart)
	}
	return out, nil
}

func (r *fakeCartRepository) Get(_ context.Context, id string) (domain.Cart, error) {
	cart, ok := r.carts[id]
	if !ok {
		return domain.Cart{}, errNotFound()
	}
	return cart, nil
}

func (r *fakeCartRepository) FindByGuestID(_ context.Context, guestID string) (domain.Cart, error) {
	for _, cart := range r.carts {
		if cart.GuestID == guestID {
			return cart, nil
		}
	}
	return domain.Cart{}, errNotFound()
}

func (r *fakeCartRepository) Save(_ context.Context, cart domain.Cart) (domain.Cart, error) {
	if cart.ID == "" {
		cart.ID = "cart-1"
	}
	r.carts[cart.ID] = cart
	return cart, nil
}

type fakeServiceRepository struct {
	services map[string]domain.Service
}

func newFakeServiceRepository(services ...domain.Service) *fakeServiceRepository {
	byKey := map[string]domain.Service{}
	for _, svc := range services {
		byKey[svc.Slug] = svc
		if svc.ID != "" {
			byKey[svc.ID] = svc
		}
	}
	return &fakeServiceRepository{services: byKey}
}

func (r *fakeServiceRepository) List(context.Context) ([]domain.Service, error) {
	seen := map[string]bool{}
	out := []domain.Service{}
	for _, svc := range r.services {
		if !seen[svc.Slug] {
			seen[svc.Slug] = true
			out = append(out, svc)
		}
	}
	return out, nil
}

func (r *fakeServiceRepository) GetByIDOrSlug(_ context.Context, key string) (domain.Service, error) {
	svc, ok := r.services[key]
	if !ok {
		return domain.Service{}, errNotFound()
	}
	return svc, nil
}

func (r *fakeServiceRepository) Create(_ context.Context, svc domain.Service) (domain.Service, error) {
	if svc.ID == "" {
		svc.ID = "svc-" + svc.Slug
	}
	r.services[svc.Slug] = svc
	r.services[svc.ID] = svc
	return svc, nil
}

func (r *fakeServiceRepository) Update(_ context.Context, id string, svc domain.Service) (domain.Service, error) {
	svc.ID = id
	r.services[svc.Slug] = svc
	r.services[id] = svc
	return svc, nil
}

func (r *fakeServiceRepository) Delete(_ context.Context, id string) error {
	if svc, ok := r.services[id]; ok {
		delete(r.services, svc.Slug)
	}
	delete(r.services, id)
	return nil
}

type fakeSubscriberRepository struct {
	byEmail map[string]domain.Subscriber
}

func newFakeSubscriberRepository(existing ...domain.Subscriber) *fakeSubscriberRepository {
	byEmail := map[string]domain.Subscriber{}
	for _, sub := range existing {
		byEmail[strings.ToLower(sub.Email)] = sub
	}
	return &fakeSubscriberRepository{byEmail: byEmail}
}

func (r *fakeSubscriberRepository) FindByEmail(_ context.Context, email string) (domain.Subscriber, error) {
	sub, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return domain.Subscriber{}, errNotFound()
	}
	return sub, nil
}

func (r *fakeSubscriberRepository) Create(_ context.Context, sub domain.Subscriber) (domain.Subscriber, error) {
	sub.ID = "sub-1"
	r.byEmail[strings.ToLower(sub.Email)] = sub
	return sub, nil
}

type fakeContactRepository struct {
	created []domain.ContactSubmission
}

func (r *fakeContactRepository) Create(_ context.Context, submission domain.ContactSubmission) (domain.ContactSubmission, error) {
	submission.ID = "contact-1"
	r.created = append(r.created, submission)
	return submission, nil
}

func (r *fakeContactRepository) List(context.Context) ([]domain.ContactSubmission, error) {
	return r.created, nil
}

type fakeUserRepository struct {
	users map[string]domain.User
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := r.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return domain.User{}, errNotFound()
	}
	return user, nil
}

type recordingAudit struct {
	entries []struct {
		Collection string
		Doc        map[string]any
	}
}

func (l *recordingAudit) Log(_ context.Context, collection string, doc map[string]any) bool {
	l.entries = append(l.entries, struct {
		Collection string
		Doc        map[string]any
	}{collection, doc})
	return true
}
