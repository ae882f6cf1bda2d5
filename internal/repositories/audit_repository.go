package repositories

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"

	fs "github.com/zsyio/api/internal/platform/firestore"
)

type auditLogRepository struct {
	provider *fs.Provider
}

// NewAuditLogRepository builds the Firestore-backed audit log repository.
// Unlike the typed repositories it writes into caller-chosen collections.
func NewAuditLogRepository(provider *fs.Provider) AuditLogRepository {
	return &auditLogRepository{provider: provider}
}

func (r *auditLogRepository) Insert(ctx context.Context, collection string, doc map[string]any) error {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return errors.New("repositories: audit collection is required")
	}
	if doc == nil {
		doc = map[string]any{}
	}

	client, err := r.provider.Client(ctx)
	if err != nil {
		return err
	}
	_, _, err = client.Collection(collection).Add(ctx, doc)
	if err != nil {
		return fs.WrapError(collection+".insert", err)
	}
	return nil
}

type estimationRulesRepository struct {
	base *fs.BaseRepository[map[string]any]
}

// NewEstimationRulesRepository builds the repository reading pricing default overrides.
func NewEstimationRulesRepository(provider *fs.Provider) EstimationRulesRepository {
	return &estimationRulesRepository{
		base: fs.NewBaseRepository[map[string]any](provider, collectionEstimationRules, fs.MapEncoder[map[string]any](), fs.MapDecoder()),
	}
}

// Defaults returns the stored defaults override document, if one exists.
func (r *estimationRulesRepository) Defaults(ctx context.Context) (map[string]map[string]any, bool, error) {
	doc, err := r.base.QueryOne(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("type", "==", "defaults")
	})
	if fs.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	raw, ok := doc.Data["data"].(map[string]any)
	if !ok {
		return nil, false, nil
	}

	defaults := make(map[string]map[string]any, len(raw))
	for serviceID, value := range raw {
		if params, ok := value.(map[string]any); ok {
			defaults[serviceID] = params
		}
	}
	return defaults, true, nil
}
