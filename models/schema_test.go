package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Milestone(t *testing.T) {
	m, err := Decode[Milestone](MilestoneSchema, map[string]interface{}{
		"title":       "  Inception ",
		"description": "Founded",
		"year":        "2025",
	})
	require.NoError(t, err)
	assert.Equal(t, "Inception", m.Title)
	assert.Equal(t, "2025", m.Year)
	assert.Nil(t, m.ImageURL)
	assert.Zero(t, m.ID)
}

func TestDecode_RequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]interface{}
		field string
	}{
		{"missing title", map[string]interface{}{"description": "d", "year": "2020"}, "title"},
		{"blank description", map[string]interface{}{"title": "t", "description": "   ", "year": "2020"}, "description"},
		{"empty year", map[string]interface{}{"title": "t", "description": "d", "year": ""}, "year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[Milestone](MilestoneSchema, tt.input)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestDecode_ClientAliases(t *testing.T) {
	c, err := Decode[Client](ClientSchema, map[string]interface{}{
		"client_name":   "Jane",
		"business_name": "Acme",
		"feedback":      "Great work",
		"image_url":     "https://cdn.example.com/acme.png",
		"rating":        "5",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", c.Name)
	assert.Equal(t, "Acme", c.CompanyName)
	assert.Equal(t, "Great work", c.Description)
	require.NotNil(t, c.LogoURL)
	assert.Equal(t, "https://cdn.example.com/acme.png", *c.LogoURL)
	require.NotNil(t, c.Rating)
	assert.Equal(t, 5, *c.Rating)
}

func TestDecode_CanonicalNameWins(t *testing.T) {
	c, err := Decode[Client](ClientSchema, map[string]interface{}{
		"name":        "Jane",
		"description": "canonical",
		"message":     "legacy",
	})
	require.NoError(t, err)
	assert.Equal(t, "canonical", c.Description)
	assert.Nil(t, c.Rating)
}

func TestDecode_RatingOutOfRange(t *testing.T) {
	_, err := Decode[Client](ClientSchema, map[string]interface{}{
		"name": "Jane", "description": "d", "rating": 6,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "rating", verr.Field)
}

func TestDecode_InvalidURL(t *testing.T) {
	_, err := Decode[TeamMember](TeamMemberSchema, map[string]interface{}{
		"name": "Sam", "role": "CTO", "bio": "b", "linkedin_url": "not a url",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "linkedin_url", verr.Field)
}

func TestDecode_PricingFeaturesKeepOrder(t *testing.T) {
	features := []string{"Zeta support", "Alpha hosting", "Mid tier SLA"}

	fromJSON, err := Decode[PricingPackage](PricingPackageSchema, map[string]interface{}{
		"name": "Pro", "price": "$99", "description": "d",
		"features": []interface{}{features[0], features[1], features[2]},
		"popular":  true,
	})
	require.NoError(t, err)
	assert.Equal(t, features, []string(fromJSON.Features))
	assert.True(t, fromJSON.Popular)

	fromForm, err := Decode[PricingPackage](PricingPackageSchema, map[string]interface{}{
		"name": "Pro", "price": "$99", "description": "d",
		"features": "Zeta support\n\n  Alpha hosting \nMid tier SLA\n",
		"popular":  "on",
	})
	require.NoError(t, err)
	assert.Equal(t, features, []string(fromForm.Features))
	assert.True(t, fromForm.Popular)
}

func TestDecode_TeamMemberTypes(t *testing.T) {
	m, err := Decode[TeamMember](TeamMemberSchema, map[string]interface{}{
		"name": "Sam", "designation": "CTO", "bio": "b",
		"display_order": "3", "is_high_position": "true",
	})
	require.NoError(t, err)
	assert.Equal(t, "CTO", m.Role)
	assert.Equal(t, 3, m.DisplayOrder)
	assert.True(t, m.IsHighPosition)

	_, err = Decode[TeamMember](TeamMemberSchema, map[string]interface{}{
		"name": "Sam", "role": "CTO", "bio": "b", "display_order": "first",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "display_order", verr.Field)
}

func TestDecode_ContactInfoActiveByDefault(t *testing.T) {
	c, err := Decode[ContactInfo](ContactInfoSchema, map[string]interface{}{
		"label": "Email", "value": "hello@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, c.IsActive)
	assert.True(t, *c.IsActive)
	assert.True(t, c.Visible())

	c, err = Decode[ContactInfo](ContactInfoSchema, map[string]interface{}{
		"label": "Email", "value": "hello@example.com", "is_active": false,
	})
	require.NoError(t, err)
	assert.False(t, c.Visible())
}

func TestSchema_Provided(t *testing.T) {
	assert.True(t, ClientSchema.Provided(map[string]interface{}{"image_url": ""}, "logo_url"))
	assert.False(t, ClientSchema.Provided(map[string]interface{}{"name": "x"}, "logo_url"))
	assert.False(t, ClientSchema.Provided(map[string]interface{}{"name": "x"}, "unknown"))
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, "2025", Milestone{Year: "2025"}.Fallback())
	assert.Equal(t, "A", Partnership{BusinessName: "acme"}.Fallback())
	assert.Equal(t, "J", TeamMember{Name: " jane"}.Fallback())
	assert.Equal(t, "Ö", Client{Name: "x", CompanyName: "ökonom"}.Fallback())
	assert.Equal(t, "", Initial("   "))
}
