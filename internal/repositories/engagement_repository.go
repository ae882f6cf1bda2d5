package repositories

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"

	"github.com/zsyio/api/internal/domain"
	fs "github.com/zsyio/api/internal/platform/firestore"
)

type siteConfigRepository struct {
	base *fs.BaseRepository[domain.SiteConfig]
}

// NewSiteConfigRepository builds the singleton site config repository.
func NewSiteConfigRepository(provider *fs.Provider) SiteConfigRepository {
	return &siteConfigRepository{
		base: fs.NewBaseRepository[domain.SiteConfig](provider, collectionSiteConfig, nil, nil),
	}
}

func (r *siteConfigRepository) Get(ctx context.Context) (domain.SiteConfig, error) {
	doc, err := r.base.Get(ctx, docKeySiteConfig)
	if err != nil {
		return domain.SiteConfig{}, err
	}
	return doc.Data, nil
}

func (r *siteConfigRepository) Set(ctx context.Context, cfg domain.SiteConfig) error {
	_, err := r.base.Set(ctx, docKeySiteConfig, cfg)
	return err
}

type subscriberRepository struct {
	base *fs.BaseRepository[domain.Subscriber]
}

// NewSubscriberRepository builds the Firestore-backed subscriber repository.
func NewSubscriberRepository(provider *fs.Provider) SubscriberRepository {
	return &subscriberRepository{
		base: fs.NewBaseRepository[domain.Subscriber](provider, collectionSubscribers, nil, nil),
	}
}

func (r *subscriberRepository) FindByEmail(ctx context.Context, email string) (domain.Subscriber, error) {
	doc, err := r.base.QueryOne(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("email", "==", strings.ToLower(strings.TrimSpace(email)))
	})
	if err != nil {
		return domain.Subscriber{}, err
	}
	sub := doc.Data
	sub.ID = doc.ID
	return sub, nil
}

func (r *subscriberRepository) Create(ctx context.Context, sub domain.Subscriber) (domain.Subscriber, error) {
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))
	id := NewID()
	if _, err := r.base.Set(ctx, id, sub); err != nil {
		return domain.Subscriber{}, err
	}
	sub.ID = id
	return sub, nil
}

type contactRepository struct {
	base *fs.BaseRepository[domain.ContactSubmission]
}

// NewContactRepository builds the Firestore-backed contact repository.
func NewContactRepository(provider *fs.Provider) ContactRepository {
	return &contactRepository{
		base: fs.NewBaseRepository[domain.ContactSubmission](provider, collectionContact, nil, nil),
	}
}

func (r *contactRepository) Create(ctx context.Context, submission domain.ContactSubmission) (domain.ContactSubmission, error) {
	id := NewID()
	if _, err := r.base.Set(ctx, id, submission); err != nil {
		return domain.ContactSubmission{}, err
	}
	submission.ID = id
	return submission, nil
}

func (r *contactRepository) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.OrderBy("created_at", firestore.Desc)
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.ContactSubmission, 0, len(docs))
	for _, doc := range docs {
		submission := doc.Data
		submission.ID = doc.ID
		out = append(out, submission)
	}
	return out, nil
}

type chatMessageRepository struct {
	base *fs.BaseRepository[domain.ChatMessage]
}

// NewChatMessageRepository builds the Firestore-backed chat message repository.
func NewChatMessageRepository(provider *fs.Provider) ChatMessageRepository {
	return &chatMessageRepository{
		base: fs.NewBaseRepository[domain.ChatMessage](provider, collectionChatMessages, nil, nil),
	}
}

func (r *chatMessageRepository) Create(ctx context.Context, msg domain.ChatMessage) (domain.ChatMessage, error) {
	id := NewID()
	if _, err := r.base.Set(ctx, id, msg); err != nil {
		return domain.ChatMessage{}, err
	}
	msg.ID = id
	return msg, nil
}

type userRepository struct {
	base *fs.BaseRepository[domain.User]
}

// NewUserRepository builds the Firestore-backed user repository.
func NewUserRepository(provider *fs.Provider) UserRepository {
	return &userRepository{
		base: fs.NewBaseRepository[domain.User](provider, collectionUsers, nil, nil),
	}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	doc, err := r.base.QueryOne(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("email", "==", strings.ToLower(strings.TrimSpace(email)))
	})
	if err != nil {
		return domain.User{}, err
	}
	user := doc.Data
	user.ID = doc.ID
	return user, nil
}
