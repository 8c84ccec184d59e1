package mirror

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ascent-cms/events"
	"github.com/ascent-cms/metrics"
	"github.com/ascent-cms/models"
)

// Source loads one collection for the public site
type Source interface {
	Schema() models.Schema
	Entities(ctx context.Context) ([]models.Entity, error)
}

// Item is an entry as rendered on the public site
type Item struct {
	Entity   models.Entity `json:"entity"`
	ImageURL *string       `json:"image_url"`
	// Fallback is shown in place of a missing image
	Fallback string `json:"fallback,omitempty"`
}

// Snapshot is the last loaded state of one collection
type Snapshot struct {
	Collection string    `json:"collection"`
	Items      []Item    `json:"items"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// Mirror keeps read-only snapshots of the public collections. A collection is
// loaded once at start and afterwards only when a change for it arrives.
type Mirror struct {
	mu        sync.RWMutex
	sources   map[string]Source
	bySlug    map[string]string
	snapshots map[string]Snapshot

	watchMu  sync.Mutex
	watchers map[chan string]struct{}

	feed events.Bus
	log  *zap.Logger
	now  func() time.Time
}

// New creates a mirror over sources fed by the change feed
func New(feed events.Bus, log *zap.Logger, sources ...Source) *Mirror {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Mirror{
		sources:   make(map[string]Source, len(sources)),
		bySlug:    make(map[string]string, len(sources)),
		snapshots: make(map[string]Snapshot, len(sources)),
		watchers:  make(map[chan string]struct{}),
		feed:      feed,
		log:       log,
		now:       time.Now,
	}
	for _, src := range sources {
		schema := src.Schema()
		m.sources[schema.Collection] = src
		m.bySlug[schema.Slug] = schema.Collection
	}
	return m
}

// Start subscribes to the change feed, loads every collection and then reloads
// collections as changes arrive until ctx ends
func (m *Mirror) Start(ctx context.Context) error {
	changes, err := m.feed.Subscribe(ctx)
	if err != nil {
		return err
	}

	for collection := range m.sources {
		m.reload(ctx, collection)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			if _, known := m.sources[change.Collection]; known {
				m.reload(ctx, change.Collection)
			}
			m.notify(change.Collection)
		}
	}
}

// reload replaces the snapshot of a collection; on failure the previous snapshot stays
func (m *Mirror) reload(ctx context.Context, collection string) {
	src := m.sources[collection]
	entities, err := src.Entities(ctx)
	metrics.RecordMirrorReload(collection, err)
	if err != nil {
		m.log.Warn("Failed to reload public collection, keeping previous snapshot",
			zap.String("collection", collection), zap.Error(err))
		m.mu.Lock()
		if _, ok := m.snapshots[collection]; !ok {
			m.snapshots[collection] = Snapshot{Collection: collection, Items: []Item{}, LoadedAt: m.now().UTC()}
		}
		m.mu.Unlock()
		return
	}

	items := make([]Item, 0, len(entities))
	for _, e := range entities {
		if c, ok := e.(*models.ContactInfo); ok && !c.Visible() {
			continue
		}
		item := Item{Entity: e, ImageURL: e.ImageRef()}
		if item.ImageURL == nil {
			item.Fallback = e.Fallback()
		}
		items = append(items, item)
	}

	m.mu.Lock()
	m.snapshots[collection] = Snapshot{Collection: collection, Items: items, LoadedAt: m.now().UTC()}
	m.mu.Unlock()
}

// Snapshot returns the last loaded state of a collection, looked up by table name or slug
func (m *Mirror) Snapshot(name string) (Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if collection, ok := m.bySlug[name]; ok {
		name = collection
	}
	if _, known := m.sources[name]; !known {
		return Snapshot{}, false
	}
	snap, ok := m.snapshots[name]
	if !ok {
		return Snapshot{Collection: name, Items: []Item{}}, true
	}
	return snap, true
}

// Watch returns a channel receiving the name of every refreshed collection.
// Call the returned function to stop watching.
func (m *Mirror) Watch() (<-chan string, func()) {
	ch := make(chan string, 8)
	m.watchMu.Lock()
	m.watchers[ch] = struct{}{}
	m.watchMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.watchMu.Lock()
			delete(m.watchers, ch)
			m.watchMu.Unlock()
			close(ch)
		})
	}
}

func (m *Mirror) notify(collection string) {
	m.watchMu.Lock()
	defer m.watchMu.Unlock()
	for ch := range m.watchers {
		select {
		case ch <- collection:
		default:
		}
	}
}
