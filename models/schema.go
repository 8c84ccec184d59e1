package models

import (
	"encoding/json"
	"fmt"

	"github.com/asaskevich/govalidator"

	"github.com/ascent-cms/utils"
)

// FieldKind tells the form decoder how to coerce and validate a value
type FieldKind string

const (
	KindText   FieldKind = "text"
	KindURL    FieldKind = "url"
	KindInt    FieldKind = "int"
	KindBool   FieldKind = "bool"
	KindList   FieldKind = "list"
	KindRating FieldKind = "rating"
)

// Field describes one form field of a content type
type Field struct {
	Name     string    `json:"name"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	// Aliases are deprecated input names accepted for this field
	Aliases []string `json:"aliases,omitempty"`
	// Default is used when the input does not mention the field at all
	Default interface{} `json:"default,omitempty"`
}

// Schema is the declarative form descriptor of one content type
type Schema struct {
	Collection  string  `json:"collection"`
	Slug        string  `json:"slug"`
	Label       string  `json:"label"`
	SortKey     string  `json:"sort_key"`
	ImageField  string  `json:"image_field,omitempty"`
	ImagePrefix string  `json:"-"`
	Fields      []Field `json:"fields"`
}

func text(name string, required bool, aliases ...string) Field {
	return Field{Name: name, Kind: KindText, Required: required, Aliases: aliases}
}

func field(name string, kind FieldKind, aliases ...string) Field {
	return Field{Name: name, Kind: kind, Aliases: aliases}
}

var (
	MilestoneSchema = Schema{
		Collection:  "about_timeline",
		Slug:        "milestones",
		Label:       "milestone",
		SortKey:     "id",
		ImageField:  "image_url",
		ImagePrefix: "about",
		Fields: []Field{
			text("title", true),
			text("description", true),
			text("year", true),
			field("image_url", KindURL),
		},
	}

	HeroStatSchema = Schema{
		Collection: "hero_stats",
		Slug:       "hero-stats",
		Label:      "stat",
		SortKey:    "id",
		Fields: []Field{
			text("value", true),
			text("label", true),
		},
	}

	ClientSchema = Schema{
		Collection:  "clients",
		Slug:        "clients",
		Label:       "client",
		SortKey:     "display_order",
		ImageField:  "logo_url",
		ImagePrefix: "client",
		Fields: []Field{
			text("name", true, "client_name"),
			text("company_name", false, "business_name"),
			text("description", true, "message", "feedback", "bio"),
			field("logo_url", KindURL, "image_url"),
			field("rating", KindRating),
			field("website_url", KindURL),
			field("display_order", KindInt),
		},
	}

	PricingPackageSchema = Schema{
		Collection: "pricing_packages",
		Slug:       "pricing",
		Label:      "package",
		SortKey:    "id",
		Fields: []Field{
			text("name", true),
			text("price", true),
			text("description", true),
			field("features", KindList),
			field("popular", KindBool),
		},
	}

	TeamMemberSchema = Schema{
		Collection:  "team_members",
		Slug:        "team",
		Label:       "team member",
		SortKey:     "display_order",
		ImageField:  "image_url",
		ImagePrefix: "team",
		Fields: []Field{
			text("name", true),
			text("role", true, "designation"),
			text("bio", true),
			field("image_url", KindURL),
			field("linkedin_url", KindURL),
			field("github_url", KindURL),
			field("display_order", KindInt),
			field("is_high_position", KindBool),
		},
	}

	PartnershipSchema = Schema{
		Collection:  "partnerships",
		Slug:        "partnerships",
		Label:       "partnership",
		SortKey:     "display_order",
		ImageField:  "logo_url",
		ImagePrefix: "partner",
		Fields: []Field{
			text("business_name", true, "name"),
			text("partner_name", false),
			text("bio", false),
			field("logo_url", KindURL, "image_url"),
			field("website_url", KindURL),
			field("display_order", KindInt),
		},
	}

	ContactInfoSchema = Schema{
		Collection: "contact_infos",
		Slug:       "contacts",
		Label:      "contact",
		SortKey:    "display_order",
		Fields: []Field{
			text("key", false),
			text("label", true),
			text("value", true),
			field("link", KindURL),
			text("type", false),
			field("display_order", KindInt),
			{Name: "is_active", Kind: KindBool, Default: true},
		},
	}
)

// Schemas lists every content type in admin display order
func Schemas() []Schema {
	return []Schema{
		MilestoneSchema,
		HeroStatSchema,
		ClientSchema,
		PricingPackageSchema,
		TeamMemberSchema,
		PartnershipSchema,
		ContactInfoSchema,
	}
}

// resolve finds the input key holding a field's value, canonical name first
func (s Schema) resolve(input map[string]interface{}, f Field) (string, bool) {
	if _, ok := input[f.Name]; ok {
		return f.Name, true
	}
	for _, alias := range f.Aliases {
		if _, ok := input[alias]; ok {
			return alias, true
		}
	}
	return "", false
}

// Provided reports whether the input carries a value for the named field
func (s Schema) Provided(input map[string]interface{}, name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			_, ok := s.resolve(input, f)
			return ok
		}
	}
	return false
}

// Normalize validates input against the schema and returns canonical values.
// Unknown keys are dropped; empty optional values become null.
func (s Schema) Normalize(input map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(s.Fields))
	for _, f := range s.Fields {
		key, ok := s.resolve(input, f)
		if !ok && f.Default != nil {
			out[f.Name] = f.Default
			continue
		}

		switch f.Kind {
		case KindText, KindURL:
			val := utils.GetString(input, key)
			if val == "" {
				if f.Required {
					return nil, &ValidationError{Field: f.Name, Message: "is required"}
				}
				out[f.Name] = nil
				continue
			}
			if f.Kind == KindURL && !govalidator.IsURL(val) {
				return nil, &ValidationError{Field: f.Name, Message: "must be a valid URL"}
			}
			out[f.Name] = val

		case KindInt:
			val, err := utils.GetInt(input, key)
			if err != nil {
				return nil, &ValidationError{Field: f.Name, Message: "must be a whole number"}
			}
			out[f.Name] = val

		case KindRating:
			val, err := utils.GetInt(input, key)
			if err != nil || val < 0 || val > 5 {
				return nil, &ValidationError{Field: f.Name, Message: "must be between 1 and 5"}
			}
			if val == 0 {
				out[f.Name] = nil
				continue
			}
			out[f.Name] = val

		case KindBool:
			val, err := utils.GetBool(input, key)
			if err != nil {
				return nil, &ValidationError{Field: f.Name, Message: "must be true or false"}
			}
			out[f.Name] = val

		case KindList:
			out[f.Name] = utils.GetStringList(input, key)

		default:
			return nil, fmt.Errorf("schema %s: unknown kind %q for field %s", s.Collection, f.Kind, f.Name)
		}
	}
	return out, nil
}

// Decode validates input and builds the entity it describes
func Decode[T any](s Schema, input map[string]interface{}) (T, error) {
	var entity T
	values, err := s.Normalize(input)
	if err != nil {
		return entity, err
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return entity, fmt.Errorf("failed to encode %s form: %w", s.Label, err)
	}
	if err := json.Unmarshal(raw, &entity); err != nil {
		return entity, fmt.Errorf("failed to decode %s form: %w", s.Label, err)
	}
	return entity, nil
}
