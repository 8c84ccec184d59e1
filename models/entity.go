package models

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Entity is a row of one content collection
type Entity interface {
	GetID() int64
	SetID(id int64)
	// SortOrder is the value the collection is ordered by, ties broken by ID
	SortOrder() int64
	DisplayName() string
	// ImageRef is the stored image or logo URL, nil when none was uploaded
	ImageRef() *string
	SetImageRef(url *string)
	// Fallback is rendered in place of a missing image
	Fallback() string
	Created() time.Time
	Stamp(created, now time.Time)
}

// EntityPtr constrains generic code to pointers of entity structs
type EntityPtr[T any] interface {
	*T
	Entity
}

// Base holds the columns every content table shares
type Base struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b Base) GetID() int64 { return b.ID }

func (b *Base) SetID(id int64) { b.ID = id }

func (b Base) Created() time.Time { return b.CreatedAt }

// Stamp sets the row timestamps; a zero created time means the row is new
func (b *Base) Stamp(created, now time.Time) {
	if created.IsZero() {
		created = now
	}
	b.CreatedAt = created
	b.UpdatedAt = now
}

// Initial returns the first letter of name, uppercased
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
