package repositories

import (
	"context"
	"errors"

	"github.com/ascent-cms/models"
	"gorm.io/gorm"
)

// EntityRepository persists the rows of one content collection
type EntityRepository[T any] interface {
	// List returns every row ordered by the collection's sort key, ties by id
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	// Create inserts the row; any id on the input is ignored
	Create(ctx context.Context, entity T) (T, error)
	// Update replaces the whole row stored under id
	Update(ctx context.Context, id int64, entity T) (T, error)
	// Delete removes the row; deleting a missing id is not an error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// GormRepository handles database operations for one content collection
type GormRepository[T any, P models.EntityPtr[T]] struct {
	db     *gorm.DB
	schema models.Schema
}

// NewGormRepository creates a new repository over the collection described by schema
func NewGormRepository[T any, P models.EntityPtr[T]](db *gorm.DB, schema models.Schema) *GormRepository[T, P] {
	return &GormRepository[T, P]{db: db, schema: schema}
}

// List retrieves all rows in display order
func (r *GormRepository[T, P]) List(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	query := r.db.WithContext(ctx).Order(r.schema.SortKey + " asc")
	if r.schema.SortKey != "id" {
		query = query.Order("id asc")
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fetchError(ctx, r.schema.Collection, "list", err)
	}
	return rows, nil
}

// Get retrieves a row by its ID
func (r *GormRepository[T, P]) Get(ctx context.Context, id int64) (T, error) {
	var row T
	err := r.db.WithContext(ctx).First(P(&row), "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, &models.NotFoundError{Collection: r.schema.Collection, ID: id}
	}
	if err != nil {
		return row, fetchError(ctx, r.schema.Collection, "get", err)
	}
	return row, nil
}

// Create inserts a new row and returns it with its assigned ID
func (r *GormRepository[T, P]) Create(ctx context.Context, entity T) (T, error) {
	P(&entity).SetID(0)
	if err := r.db.WithContext(ctx).Create(P(&entity)).Error; err != nil {
		return entity, writeError(ctx, r.schema.Collection, "create", err)
	}
	return entity, nil
}

// Update replaces every column of an existing row
func (r *GormRepository[T, P]) Update(ctx context.Context, id int64, entity T) (T, error) {
	P(&entity).SetID(id)
	result := r.db.WithContext(ctx).
		Model(P(&entity)).
		Select("*").
		Omit("id", "created_at").
		Updates(P(&entity))
	if result.Error != nil {
		return entity, writeError(ctx, r.schema.Collection, "update", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity, &models.NotFoundError{Collection: r.schema.Collection, ID: id}
	}
	return r.Get(ctx, id)
}

// Delete removes a row; a missing row is treated as already deleted
func (r *GormRepository[T, P]) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(P(new(T)), id).Error; err != nil {
		return writeError(ctx, r.schema.Collection, "delete", err)
	}
	return nil
}

// Count returns the number of rows in the collection
func (r *GormRepository[T, P]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(P(new(T))).Count(&count).Error; err != nil {
		return 0, fetchError(ctx, r.schema.Collection, "count", err)
	}
	return count, nil
}

func isTimeout(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}

func fetchError(ctx context.Context, collection, op string, err error) error {
	if isTimeout(ctx, err) {
		return &models.TimeoutError{Op: op + " " + collection, Err: err}
	}
	return &models.FetchError{Collection: collection, Err: err}
}

func writeError(ctx context.Context, collection, op string, err error) error {
	if isTimeout(ctx, err) {
		return &models.TimeoutError{Op: op + " " + collection, Err: err}
	}
	return &models.WriteError{Collection: collection, Op: op, Err: err}
}
