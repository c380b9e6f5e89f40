package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/form"
	"gorm.io/gorm"
)

// OptionLookup is the option-fetch collaborator consumed by the cascade
// resolver. Implementations must be idempotent and side-effect-free.
type OptionLookup interface {
	// FetchOptions returns the ordered option set for lookupKey, narrowed by
	// the immediate parent value resolved in the same section instance.
	FetchOptions(ctx context.Context, lookupKey string, filters map[string]string) ([]form.Option, error)
	// ResolveValue maps a selected option value back to its internal identity.
	ResolveValue(ctx context.Context, lookupKey, value string) (uuid.UUID, error)
	WithTx(tx *gorm.DB) OptionLookup
}

type DBOptionLookup struct {
	db *gorm.DB
}

func NewOptionLookup(db *gorm.DB) *DBOptionLookup {
	return &DBOptionLookup{db: db}
}

func (r *DBOptionLookup) WithTx(tx *gorm.DB) OptionLookup {
	return &DBOptionLookup{db: tx}
}

func (r *DBOptionLookup) FetchOptions(ctx context.Context, lookupKey string, filters map[string]string) ([]form.Option, error) {
	q := r.db.WithContext(ctx).
		Model(&form.ReferenceOption{}).
		Where("lookup_key = ?", lookupKey)

	if len(filters) > 0 {
		values := make([]string, 0, len(filters))
		for _, v := range filters {
			values = append(values, v)
		}
		q = q.Where("parent_value IN ?", values)
	}

	var refs []form.ReferenceOption
	// Ascending option order, ties broken by fetch (insertion) order.
	if err := q.Order("sort_order asc").Order("created_at asc").Find(&refs).Error; err != nil {
		return nil, err
	}

	options := make([]form.Option, 0, len(refs))
	for i, ref := range refs {
		options = append(options, form.Option{
			ID:    ref.ID,
			Value: ref.Value,
			Order: i,
		})
	}
	return options, nil
}

func (r *DBOptionLookup) ResolveValue(ctx context.Context, lookupKey, value string) (uuid.UUID, error) {
	var ref form.ReferenceOption
	err := r.db.WithContext(ctx).
		Where("lookup_key = ? AND value = ?", lookupKey, value).
		Order("created_at asc").
		First(&ref).Error
	if err != nil {
		return uuid.Nil, err
	}
	return ref.ID, nil
}
