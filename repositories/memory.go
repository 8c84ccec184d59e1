package repositories

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/ascent-cms/models"
)

// MemoryRepository keeps a collection in process. It backs the memory
// database driver, local development and the service tests.
type MemoryRepository[T any, P models.EntityPtr[T]] struct {
	mu     sync.RWMutex
	schema models.Schema
	rows   map[int64]T
	nextID int64
	now    func() time.Time
}

// NewMemoryRepository creates an empty in-process collection
func NewMemoryRepository[T any, P models.EntityPtr[T]](schema models.Schema) *MemoryRepository[T, P] {
	return &MemoryRepository[T, P]{
		schema: schema,
		rows:   make(map[int64]T),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *MemoryRepository[T, P]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, fetchError(ctx, r.schema.Collection, "list", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]T, 0, len(r.rows))
	for _, row := range r.rows {
		cp, err := clone(row)
		if err != nil {
			return nil, fetchError(ctx, r.schema.Collection, "list", err)
		}
		rows = append(rows, cp)
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := P(&rows[i]), P(&rows[j])
		if a.SortOrder() != b.SortOrder() {
			return a.SortOrder() < b.SortOrder()
		}
		return a.GetID() < b.GetID()
	})
	return rows, nil
}

func (r *MemoryRepository[T, P]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fetchError(ctx, r.schema.Collection, "get", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return zero, &models.NotFoundError{Collection: r.schema.Collection, ID: id}
	}
	cp, err := clone(row)
	if err != nil {
		return zero, fetchError(ctx, r.schema.Collection, "get", err)
	}
	return cp, nil
}

func (r *MemoryRepository[T, P]) Create(ctx context.Context, entity T) (T, error) {
	if err := ctx.Err(); err != nil {
		return entity, writeError(ctx, r.schema.Collection, "create", err)
	}
	row, err := clone(entity)
	if err != nil {
		return entity, writeError(ctx, r.schema.Collection, "create", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	P(&row).SetID(r.nextID)
	P(&row).Stamp(time.Time{}, r.now().UTC())
	r.nextID++
	r.rows[P(&row).GetID()] = row
	return clone(row)
}

func (r *MemoryRepository[T, P]) Update(ctx context.Context, id int64, entity T) (T, error) {
	if err := ctx.Err(); err != nil {
		return entity, writeError(ctx, r.schema.Collection, "update", err)
	}
	row, err := clone(entity)
	if err != nil {
		return entity, writeError(ctx, r.schema.Collection, "update", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[id]
	if !ok {
		return entity, &models.NotFoundError{Collection: r.schema.Collection, ID: id}
	}
	P(&row).SetID(id)
	P(&row).Stamp(P(&existing).Created(), r.now().UTC())
	r.rows[id] = row
	return clone(row)
}

func (r *MemoryRepository[T, P]) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return writeError(ctx, r.schema.Collection, "delete", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *MemoryRepository[T, P]) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fetchError(ctx, r.schema.Collection, "count", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), nil
}

// clone deep-copies a row so callers never share slices or pointers with the store
func clone[T any](row T) (T, error) {
	var out T
	raw, err := json.Marshal(row)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
