package models

// ContactInfo is a footer contact entry (email, phone, social link...)
type ContactInfo struct {
	Base
	Key          *string `json:"key" gorm:"default:null;index"`
	Label        string  `json:"label" gorm:"not null"`
	Value        string  `json:"value" gorm:"not null"`
	Link         *string `json:"link" gorm:"default:null"`
	Type         *string `json:"type" gorm:"default:null"`
	DisplayOrder int     `json:"display_order" gorm:"default:0;index"`
	IsActive     *bool   `json:"is_active" gorm:"default:null"`
}

func (ContactInfo) TableName() string {
	return "contact_infos"
}

func (c ContactInfo) SortOrder() int64 { return int64(c.DisplayOrder) }

func (c ContactInfo) DisplayName() string { return c.Label }

func (ContactInfo) ImageRef() *string { return nil }

func (*ContactInfo) SetImageRef(*string) {}

func (c ContactInfo) Fallback() string { return Initial(c.Label) }

// Visible reports whether the entry is shown publicly; unset means active
func (c ContactInfo) Visible() bool {
	return c.IsActive == nil || *c.IsActive
}
