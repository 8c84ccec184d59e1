package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ascent-cms/events"
	"github.com/ascent-cms/imaging"
	"github.com/ascent-cms/logger"
	"github.com/ascent-cms/metrics"
	"github.com/ascent-cms/models"
	"github.com/ascent-cms/repositories"
	"github.com/ascent-cms/storage"
)

// Upload is an image file staged with a submission
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Submission is one admin form post
type Submission struct {
	// ID selects the row to update; zero creates a new row
	ID     int64
	Fields map[string]interface{}
	Image  *Upload
	// Crop, when set, is applied to Image before it is uploaded
	Crop *imaging.Rect
}

// SaveResult is the outcome of a save cycle
type SaveResult[T any] struct {
	Entity T
	// Items is the collection as re-read after the write
	Items []T
	Trace []State
}

// Collection is the type-independent view of a content manager
type Collection interface {
	Schema() models.Schema
	Entities(ctx context.Context) ([]models.Entity, error)
	Count(ctx context.Context) (int64, error)
	// Import saves one entry from plain field values and returns its id
	Import(ctx context.Context, fields map[string]interface{}) (int64, error)
}

// ContentManager runs the admin save cycle for one content type
type ContentManager[T any, P models.EntityPtr[T]] struct {
	schema    models.Schema
	repo      repositories.EntityRepository[T]
	store     storage.ObjectStorage
	publisher events.Publisher
	timeout   time.Duration
	log       *zap.Logger
	crop      func([]byte, *imaging.Rect) ([]byte, error)
	now       func() time.Time
}

// ManagerDeps are the collaborators shared by every content manager
type ManagerDeps struct {
	Storage   storage.ObjectStorage
	Publisher events.Publisher
	Timeout   time.Duration
	Logger    *zap.Logger
}

// NewContentManager creates a content manager for the collection described by schema
func NewContentManager[T any, P models.EntityPtr[T]](schema models.Schema, repo repositories.EntityRepository[T], deps ManagerDeps) *ContentManager[T, P] {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentManager[T, P]{
		schema:    schema,
		repo:      repo,
		store:     deps.Storage,
		publisher: deps.Publisher,
		timeout:   deps.Timeout,
		log:       log.With(zap.String("collection", schema.Collection)),
		crop:      imaging.Crop,
		now:       time.Now,
	}
}

func (m *ContentManager[T, P]) Schema() models.Schema {
	return m.schema
}

// step derives the deadline of one network call from the caller's context
func (m *ContentManager[T, P]) step(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.timeout)
}

// Fetch reads the collection and reports failures
func (m *ContentManager[T, P]) Fetch(ctx context.Context) ([]T, error) {
	stepCtx, cancel := m.step(ctx)
	defer cancel()

	items, err := m.repo.List(stepCtx)
	metrics.RecordContentOperation(m.schema.Collection, "list", err)
	return items, err
}

// List reads the collection for the admin list; a failed read yields an empty list
func (m *ContentManager[T, P]) List(ctx context.Context) []T {
	items, err := m.Fetch(ctx)
	if err != nil {
		logger.FromContext(ctx, m.log).Warn("Failed to load collection, showing empty list", zap.Error(err))
		return []T{}
	}
	return items
}

// Entities reads the collection as entities
func (m *ContentManager[T, P]) Entities(ctx context.Context) ([]models.Entity, error) {
	items, err := m.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Entity, len(items))
	for i := range items {
		out[i] = P(&items[i])
	}
	return out, nil
}

// Get reads one row
func (m *ContentManager[T, P]) Get(ctx context.Context, id int64) (T, error) {
	stepCtx, cancel := m.step(ctx)
	defer cancel()
	return m.repo.Get(stepCtx, id)
}

// Count returns the number of rows
func (m *ContentManager[T, P]) Count(ctx context.Context) (int64, error) {
	stepCtx, cancel := m.step(ctx)
	defer cancel()

	count, err := m.repo.Count(stepCtx)
	metrics.RecordContentOperation(m.schema.Collection, "count", err)
	return count, err
}

// Save runs one complete save cycle for the submission
func (m *ContentManager[T, P]) Save(ctx context.Context, sub Submission) (SaveResult[T], error) {
	session := m.Begin(sub.ID, sub.Fields)
	if sub.Image != nil {
		if err := session.Stage(*sub.Image); err != nil {
			return SaveResult[T]{Trace: session.Trace()}, err
		}
	}
	if sub.Crop != nil {
		// fields are checked before the crop so a bad form never costs a decode
		if err := session.Validate(); err != nil {
			return SaveResult[T]{Trace: session.Trace()}, err
		}
		if err := session.Crop(sub.Crop); err != nil {
			return SaveResult[T]{Trace: session.Trace()}, err
		}
	}
	return session.Submit(ctx)
}

// Import saves a new row from field values without an image upload
func (m *ContentManager[T, P]) Import(ctx context.Context, fields map[string]interface{}) (int64, error) {
	result, err := m.Save(ctx, Submission{Fields: fields})
	if err != nil {
		return 0, err
	}
	return P(&result.Entity).GetID(), nil
}

// Delete removes a row and returns the refreshed list. Deleting a missing row succeeds.
func (m *ContentManager[T, P]) Delete(ctx context.Context, id int64) ([]T, error) {
	log := logger.FromContext(ctx, m.log).With(zap.Int64("id", id))

	stepCtx, cancel := m.step(ctx)
	err := m.repo.Delete(stepCtx, id)
	cancel()
	metrics.RecordContentOperation(m.schema.Collection, "delete", err)
	if err != nil {
		log.Error("Failed to delete entry", zap.Error(err))
		return nil, err
	}

	log.Info("Entry deleted")
	m.announce(ctx, events.OpDelete, id)
	return m.List(ctx), nil
}

// write creates or updates the entity
func (m *ContentManager[T, P]) write(ctx context.Context, id int64, entity T) (T, error) {
	stepCtx, cancel := m.step(ctx)
	defer cancel()

	if id == 0 {
		saved, err := m.repo.Create(stepCtx, entity)
		metrics.RecordContentOperation(m.schema.Collection, "create", err)
		return saved, err
	}
	saved, err := m.repo.Update(stepCtx, id, entity)
	metrics.RecordContentOperation(m.schema.Collection, "update", err)
	return saved, err
}

func (m *ContentManager[T, P]) upload(ctx context.Context, img Upload) (string, error) {
	stepCtx, cancel := m.step(ctx)
	defer cancel()

	url, err := m.store.Upload(stepCtx, storage.Object{
		Prefix:      m.schema.ImagePrefix,
		FileName:    img.FileName,
		ContentType: img.ContentType,
		Data:        img.Data,
	})
	if err != nil {
		return "", err
	}
	metrics.RecordUpload(len(img.Data))
	return url, nil
}

// announce publishes a change; a failed publish is logged and does not fail the write
func (m *ContentManager[T, P]) announce(ctx context.Context, op events.Operation, id int64) {
	if m.publisher == nil {
		return
	}
	stepCtx, cancel := m.step(ctx)
	defer cancel()

	change := events.Change{Collection: m.schema.Collection, Op: op, ID: id, At: m.now().UTC()}
	if err := m.publisher.Publish(stepCtx, change); err != nil {
		logger.FromContext(ctx, m.log).Warn("Failed to publish change", zap.String("op", string(op)), zap.Error(err))
	}
}
