package models

// Partnership is a partner business shown in the partnerships strip
type Partnership struct {
	Base
	BusinessName string  `json:"business_name" gorm:"not null"`
	PartnerName  string  `json:"partner_name" gorm:"default:null"`
	Bio          *string `json:"bio" gorm:"default:null"`
	LogoURL      *string `json:"logo_url" gorm:"default:null"`
	WebsiteURL   *string `json:"website_url" gorm:"default:null"`
	DisplayOrder int     `json:"display_order" gorm:"default:0;index"`
}

func (Partnership) TableName() string {
	return "partnerships"
}

func (p Partnership) SortOrder() int64 { return int64(p.DisplayOrder) }

func (p Partnership) DisplayName() string { return p.BusinessName }

func (p Partnership) ImageRef() *string { return p.LogoURL }

func (p *Partnership) SetImageRef(url *string) { p.LogoURL = url }

func (p Partnership) Fallback() string { return Initial(p.BusinessName) }
