package models

// TeamMember is a person shown in the team section
type TeamMember struct {
	Base
	Name           string  `json:"name" gorm:"not null"`
	Role           string  `json:"role" gorm:"not null"`
	Bio            string  `json:"bio" gorm:"not null"`
	ImageURL       *string `json:"image_url" gorm:"default:null"`
	LinkedinURL    *string `json:"linkedin_url" gorm:"default:null"`
	GithubURL      *string `json:"github_url" gorm:"default:null"`
	DisplayOrder   int     `json:"display_order" gorm:"default:0;index"`
	IsHighPosition bool    `json:"is_high_position" gorm:"default:false"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

func (t TeamMember) SortOrder() int64 { return int64(t.DisplayOrder) }

func (t TeamMember) DisplayName() string { return t.Name }

func (t TeamMember) ImageRef() *string { return t.ImageURL }

func (t *TeamMember) SetImageRef(url *string) { t.ImageURL = url }

func (t TeamMember) Fallback() string { return Initial(t.Name) }
