package storage

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ascent-cms/models"
)

// StoredObject is an object held by MemoryStorage
type StoredObject struct {
	ContentType  string
	CacheControl string
	Data         []byte
}

// MemoryStorage keeps objects in process; it backs the memory storage driver and tests
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string]StoredObject
	baseURL string
	now     func() time.Time
	failErr error
}

// NewMemoryStorage creates an empty store whose URLs start with baseURL
func NewMemoryStorage(baseURL string) *MemoryStorage {
	if baseURL == "" {
		baseURL = "memory://objects"
	}
	return &MemoryStorage{
		objects: make(map[string]StoredObject),
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// SetClock replaces the time source used for object names
func (m *MemoryStorage) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// FailWith makes every following upload fail with err; nil restores normal behavior
func (m *MemoryStorage) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}

func (m *MemoryStorage) Upload(ctx context.Context, obj Object) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := ObjectName(obj.Prefix, m.now(), obj.FileName)
	if err := ctx.Err(); err != nil {
		return "", uploadError(ctx, key, err)
	}
	if m.failErr != nil {
		return "", uploadError(ctx, key, m.failErr)
	}
	if _, ok := m.objects[key]; ok {
		return "", &models.UploadError{Key: key, Err: models.ErrObjectExists}
	}

	data := make([]byte, len(obj.Data))
	copy(data, obj.Data)
	m.objects[key] = StoredObject{ContentType: obj.ContentType, CacheControl: CacheControl, Data: data}
	return m.PublicURL(key), nil
}

func (m *MemoryStorage) PublicURL(key string) string {
	return m.baseURL + "/" + url.PathEscape(key)
}

// Object returns a stored object by key
func (m *MemoryStorage) Object(key string) (StoredObject, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	return obj, ok
}

// ObjectByURL returns the object a public URL points at
func (m *MemoryStorage) ObjectByURL(rawURL string) (StoredObject, bool) {
	key, err := url.PathUnescape(strings.TrimPrefix(rawURL, m.baseURL+"/"))
	if err != nil {
		return StoredObject{}, false
	}
	return m.Object(key)
}

// Len returns the number of stored objects
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
