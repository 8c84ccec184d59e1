package services

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/ascent-cms/events"
	"github.com/ascent-cms/imaging"
	"github.com/ascent-cms/logger"
	"github.com/ascent-cms/models"
)

// State is a step of the save cycle
type State string

const (
	StateIdle       State = "idle"
	StateEditing    State = "editing"
	StateCropping   State = "cropping"
	StateCropFailed State = "crop_failed"
	StateSubmitting State = "submitting"
	StateUploading  State = "uploading"
	StateSaving     State = "saving"
	StateFailed     State = "failed"
)

// EditSession holds one admin form between attempts. A failed submit keeps the
// draft and the staged image so the same session can be submitted again.
type EditSession[T any, P models.EntityPtr[T]] struct {
	mu      sync.Mutex
	manager *ContentManager[T, P]
	state   State
	trace   []State
	id      int64
	fields  map[string]interface{}
	image   *Upload
}

// Begin opens a form for a new row (id 0) or for the row with the given id
func (m *ContentManager[T, P]) Begin(id int64, fields map[string]interface{}) *EditSession[T, P] {
	s := &EditSession[T, P]{manager: m, state: StateIdle, trace: []State{StateIdle}}
	s.id = id
	s.fields = copyFields(fields)
	s.enter(StateEditing)
	return s
}

func (s *EditSession[T, P]) enter(state State) {
	s.state = state
	s.trace = append(s.trace, state)
}

// State returns the current step
func (s *EditSession[T, P]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Trace returns every step entered so far
func (s *EditSession[T, P]) Trace() []State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]State(nil), s.trace...)
}

// Draft returns the form values and the staged image
func (s *EditSession[T, P]) Draft() (int64, map[string]interface{}, *Upload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var img *Upload
	if s.image != nil {
		cp := *s.image
		img = &cp
	}
	return s.id, copyFields(s.fields), img
}

// Set merges values into the draft
func (s *EditSession[T, P]) Set(fields map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fields == nil {
		s.fields = make(map[string]interface{}, len(fields))
	}
	for k, v := range fields {
		s.fields[k] = v
	}
}

// Stage selects the image to upload on submit, replacing any staged one.
// Content types without an image field reject it.
func (s *EditSession[T, P]) Stage(img Upload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.manager.schema.ImageField == "" {
		_, err := s.fail(s.manager.log, "Image rejected", &models.ValidationError{Field: "image", Message: "is not accepted"})
		return err
	}
	s.image = &img
	return nil
}

// Validate checks the draft against the schema without leaving the form
func (s *EditSession[T, P]) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.manager.schema.Normalize(s.fields); err != nil {
		_, err = s.fail(s.manager.log, "Submission rejected", err)
		return err
	}
	return nil
}

// Crop replaces the staged image with the given region of it. On failure the
// staged image is left untouched.
func (s *EditSession[T, P]) Crop(rect *imaging.Rect) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enter(StateCropping)
	if s.image == nil {
		s.enter(StateCropFailed)
		s.enter(StateEditing)
		return &models.CropError{Reason: "no image staged"}
	}

	cropped, err := s.manager.crop(s.image.Data, rect)
	if err != nil {
		s.enter(StateCropFailed)
		s.enter(StateEditing)
		return err
	}

	s.image = &Upload{
		FileName:    jpegName(s.image.FileName),
		ContentType: imaging.ContentType,
		Data:        cropped,
	}
	s.enter(StateEditing)
	return nil
}

// Submit validates the draft, uploads the staged image, then writes the row.
// The write never starts unless the upload succeeded.
func (s *EditSession[T, P]) Submit(ctx context.Context) (SaveResult[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.manager
	log := logger.FromContext(ctx, m.log).With(zap.Int64("id", s.id))
	s.enter(StateSubmitting)

	entity, err := models.Decode[T](m.schema, s.fields)
	if err != nil {
		return s.fail(log, "Submission rejected", err)
	}

	if s.image != nil {
		s.enter(StateUploading)
		url, err := m.upload(ctx, *s.image)
		if err != nil {
			return s.fail(log, "Image upload failed", err)
		}
		P(&entity).SetImageRef(&url)
	} else if s.id != 0 && m.schema.ImageField != "" && !m.schema.Provided(s.fields, m.schema.ImageField) {
		existing, err := m.Get(ctx, s.id)
		if err != nil {
			return s.fail(log, "Failed to load entry", err)
		}
		P(&entity).SetImageRef(P(&existing).ImageRef())
	}

	s.enter(StateSaving)
	saved, err := m.write(ctx, s.id, entity)
	if err != nil {
		return s.fail(log, "Failed to save entry", err)
	}

	op := events.OpUpdate
	if s.id == 0 {
		op = events.OpCreate
	}
	id := P(&saved).GetID()
	log.Info("Entry saved", zap.String("op", string(op)), zap.Int64("saved_id", id))

	m.announce(ctx, op, id)
	items := m.List(ctx)

	s.enter(StateIdle)
	result := SaveResult[T]{Entity: saved, Items: items, Trace: append([]State(nil), s.trace...)}
	s.fields = nil
	s.image = nil
	return result, nil
}

func (s *EditSession[T, P]) fail(log *zap.Logger, msg string, err error) (SaveResult[T], error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		log.Info(msg, zap.Error(err))
	} else {
		log.Error(msg, zap.Error(err))
	}
	s.enter(StateFailed)
	s.enter(StateEditing)
	return SaveResult[T]{Trace: append([]State(nil), s.trace...)}, err
}

func copyFields(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
