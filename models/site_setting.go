package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ServiceStatusKey is the site_settings key holding the service toggles
const ServiceStatusKey = "service_status"

// Flags custom type for JSON storage
type Flags map[string]bool

func (f Flags) Value() (driver.Value, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f)
}

func (f *Flags) Scan(value interface{}) error {
	if value == nil {
		*f = make(Flags)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, f)
}

// SiteSetting is a keyed blob of site-wide state
type SiteSetting struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     Flags     `json:"value" gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
