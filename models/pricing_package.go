package models

import "github.com/lib/pq"

// PricingPackage is one card of the pricing section
type PricingPackage struct {
	Base
	Name        string         `json:"name" gorm:"not null"`
	Price       string         `json:"price" gorm:"not null"`
	Description string         `json:"description" gorm:"not null"`
	Features    pq.StringArray `json:"features" gorm:"type:text[]"`
	Popular     bool           `json:"popular" gorm:"default:false"`
}

func (PricingPackage) TableName() string {
	return "pricing_packages"
}

func (p PricingPackage) SortOrder() int64 { return p.ID }

func (p PricingPackage) DisplayName() string { return p.Name }

func (PricingPackage) ImageRef() *string { return nil }

func (*PricingPackage) SetImageRef(*string) {}

func (p PricingPackage) Fallback() string { return Initial(p.Name) }
