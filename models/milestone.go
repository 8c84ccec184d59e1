package models

// Milestone is an entry of the About page timeline
type Milestone struct {
	Base
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"not null"`
	Year        string  `json:"year" gorm:"not null"`
	ImageURL    *string `json:"image_url" gorm:"default:null"`
}

// TableName sets the table name for Milestone model
func (Milestone) TableName() string {
	return "about_timeline"
}

func (m Milestone) SortOrder() int64 { return m.ID }

func (m Milestone) DisplayName() string { return m.Title }

func (m Milestone) ImageRef() *string { return m.ImageURL }

func (m *Milestone) SetImageRef(url *string) { m.ImageURL = url }

// Fallback renders the year in place of a missing image
func (m Milestone) Fallback() string { return m.Year }
