package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/request"
	"gorm.io/gorm"
)

type RequestRepo interface {
	// SubmitRequest persists a request with its flattened responses and
	// signer list in one transaction and returns its handle.
	SubmitRequest(ctx context.Context, req *request.Request) (request.Handle, error)
	GetRequestByID(id uuid.UUID) (request.Request, error)
	ListRequestsByRequester(requesterID uuid.UUID) ([]request.Request, error)
	// GetNamedResponses returns a request's responses joined with field
	// names, in field order then insertion order.
	GetNamedResponses(ctx context.Context, requestID uuid.UUID) ([]request.NamedResponse, error)
	UpdateStatus(id uuid.UUID, status request.Status) error
	WithTx(tx *gorm.DB) RequestRepo
}

type DBRequestRepo struct {
	db *gorm.DB
}

func NewRequestRepo(db *gorm.DB) *DBRequestRepo {
	return &DBRequestRepo{db: db}
}

func (r *DBRequestRepo) WithTx(tx *gorm.DB) RequestRepo {
	return &DBRequestRepo{db: tx}
}

func (r *DBRequestRepo) SubmitRequest(ctx context.Context, req *request.Request) (request.Handle, error) {
	if req.Code == "" {
		req.Code = newRequestCode()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(req).Error
	})
	if err != nil {
		return request.Handle{}, err
	}
	return request.Handle{ID: req.ID, Code: req.Code}, nil
}

func (r *DBRequestRepo) GetRequestByID(id uuid.UUID) (request.Request, error) {
	var req request.Request
	err := r.db.
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Order("request_responses.created_at asc")
		}).
		Preload("Signers", func(db *gorm.DB) *gorm.DB {
			return db.Order("request_signers.sort_order asc")
		}).
		First(&req, "id = ?", id).Error
	return req, err
}

func (r *DBRequestRepo) ListRequestsByRequester(requesterID uuid.UUID) ([]request.Request, error) {
	var reqs []request.Request
	err := r.db.Where("requester_id = ?", requesterID).Order("created_at desc").Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) GetNamedResponses(ctx context.Context, requestID uuid.UUID) ([]request.NamedResponse, error) {
	var rows []request.NamedResponse
	err := r.db.WithContext(ctx).
		Table("request_responses").
		Select("request_responses.field_id, form_fields.name AS field_name, form_fields.sort_order AS field_order, request_responses.duplicatable_id, request_responses.value").
		Joins("JOIN form_fields ON form_fields.id = request_responses.field_id").
		Where("request_responses.request_id = ?", requestID).
		Order("form_fields.sort_order asc").
		Order("request_responses.created_at asc").
		Scan(&rows).Error
	return rows, err
}

func (r *DBRequestRepo) UpdateStatus(id uuid.UUID, status request.Status) error {
	return r.db.Model(&request.Request{}).Where("id = ?", id).Update("status", status).Error
}

func newRequestCode() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("REQ-%s", strings.ToUpper(hex.EncodeToString(buf)))
}
