package weetools

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repo is a thin CRUD convenience over a gorm DB for a single model type.
type Repo[T any] struct {
	db *gorm.DB
}

// NewRepo returns a repository for T backed by db.
func NewRepo[T any](db *gorm.DB) *Repo[T] {
	return &Repo[T]{db: db}
}

// Get fetches the record with the given primary key.
// Returns ErrNotFound when no row matches.
func (r *Repo[T]) Get(ctx context.Context, id any) (*T, error) {
	var out T
	err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %v", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Insert creates the record.
func (r *Repo[T]) Insert(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Update saves all fields of the record.
func (r *Repo[T]) Update(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// Delete removes the record.
func (r *Repo[T]) Delete(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Delete(rec).Error
}

// List returns up to limit records starting at offset.
func (r *Repo[T]) List(ctx context.Context, limit, offset int) ([]T, error) {
	var out []T
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&out).Error
	return out, err
}

// FilterJSONB lists the records whose JSONB column contains every (AND) or
// any accumulated (OR) filter term, via BuildJSONBQuery.
func (r *Repo[T]) FilterJSONB(ctx context.Context, column string, filters []Filter, mode ...ClauseMode) ([]T, error) {
	var model T
	q, err := BuildJSONBQuery(r.db.WithContext(ctx).Model(&model), column, filters, mode...)
	if err != nil {
		return nil, err
	}
	var out []T
	err = q.Find(&out).Error
	return out, err
}
