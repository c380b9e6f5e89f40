package repository

import (
	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/form"
	"github.com/reqflow-io/reqflow/internal/domain/signer"
	"gorm.io/gorm"
)

type FormRepo interface {
	ListForms() ([]form.Form, error)
	GetFormByID(id uuid.UUID) (form.Form, error)
	GetFormByName(name string) (form.Form, error)
	CreateForm(f *form.Form) error
	DefaultSigners(formID uuid.UUID) ([]signer.Signer, error)
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{db: db}
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	return &DBFormRepo{db: tx}
}

func (r *DBFormRepo) ListForms() ([]form.Form, error) {
	var forms []form.Form
	err := r.db.Order("created_at asc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) GetFormByID(id uuid.UUID) (form.Form, error) {
	var f form.Form
	err := r.db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("form_sections.sort_order asc")
		}).
		Preload("Sections.Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("form_fields.sort_order asc")
		}).
		Preload("Sections.Fields.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("form_field_options.sort_order asc")
		}).
		First(&f, "id = ?", id).Error
	return f, err
}

func (r *DBFormRepo) GetFormByName(name string) (form.Form, error) {
	var f form.Form
	err := r.db.First(&f, "name = ?", name).Error
	return f, err
}

func (r *DBFormRepo) CreateForm(f *form.Form) error {
	return r.db.Create(f).Error
}

// DefaultSigners returns the form's static approver chain: rows without any
// project/department/category scoping.
func (r *DBFormRepo) DefaultSigners(formID uuid.UUID) ([]signer.Signer, error) {
	var signers []signer.Signer
	err := r.db.
		Where("form_id = ? AND project_id IS NULL AND department_id IS NULL AND category = ''", formID).
		Order("sort_order asc").
		Find(&signers).Error
	return signers, err
}
