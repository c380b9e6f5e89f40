package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/signer"
	"gorm.io/gorm"
)

// SignerContext scopes a signer lookup. An empty result means "no
// context-specific override"; callers fall back to the form defaults.
type SignerContext struct {
	FormID       uuid.UUID
	ProjectID    *uuid.UUID
	DepartmentID *uuid.UUID
	Category     string
	RequesterID  *uuid.UUID
}

type SignerLookup interface {
	FetchSigners(ctx context.Context, sc SignerContext) ([]signer.Signer, error)
	WithTx(tx *gorm.DB) SignerLookup
}

type DBSignerLookup struct {
	db *gorm.DB
}

func NewSignerLookup(db *gorm.DB) *DBSignerLookup {
	return &DBSignerLookup{db: db}
}

func (r *DBSignerLookup) WithTx(tx *gorm.DB) SignerLookup {
	return &DBSignerLookup{db: tx}
}

func (r *DBSignerLookup) FetchSigners(ctx context.Context, sc SignerContext) ([]signer.Signer, error) {
	q := r.db.WithContext(ctx).Where("form_id = ?", sc.FormID)

	switch {
	case sc.ProjectID != nil:
		q = q.Where("project_id = ?", *sc.ProjectID)
	case sc.DepartmentID != nil:
		q = q.Where("department_id = ?", *sc.DepartmentID)
	case sc.Category != "":
		q = q.Where("category = ?", sc.Category)
	default:
		// No scoping context at all: nothing overrides the defaults.
		return nil, nil
	}

	var signers []signer.Signer
	err := q.Order("sort_order asc").Find(&signers).Error
	return signers, err
}
