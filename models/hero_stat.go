package models

// HeroStat is a stat tile on the homepage hero
type HeroStat struct {
	Base
	Value string `json:"value" gorm:"not null"`
	Label string `json:"label" gorm:"not null"`
}

func (HeroStat) TableName() string {
	return "hero_stats"
}

func (s HeroStat) SortOrder() int64 { return s.ID }

func (s HeroStat) DisplayName() string { return s.Label }

func (HeroStat) ImageRef() *string { return nil }

func (*HeroStat) SetImageRef(*string) {}

func (s HeroStat) Fallback() string { return s.Value }
