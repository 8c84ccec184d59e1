package models

// Client is a client record, also rendered as a testimonial
type Client struct {
	Base
	Name         string  `json:"name" gorm:"not null"`
	CompanyName  string  `json:"company_name" gorm:"default:null"`
	Description  string  `json:"description" gorm:"not null"`
	LogoURL      *string `json:"logo_url" gorm:"default:null"`
	Rating       *int    `json:"rating" gorm:"default:null"` // 1-5
	WebsiteURL   *string `json:"website_url" gorm:"default:null"`
	DisplayOrder int     `json:"display_order" gorm:"default:0;index"`
}

func (Client) TableName() string {
	return "clients"
}

func (c Client) SortOrder() int64 { return int64(c.DisplayOrder) }

func (c Client) DisplayName() string {
	if c.CompanyName != "" {
		return c.CompanyName
	}
	return c.Name
}

func (c Client) ImageRef() *string { return c.LogoURL }

func (c *Client) SetImageRef(url *string) { c.LogoURL = url }

func (c Client) Fallback() string { return Initial(c.DisplayName()) }
