package models

import "time"

// Category identifies one of the fixed project categories.
type Category string

const (
	CategoryGaming      Category = "gaming"
	CategoryDevelopment Category = "development"
	CategoryResearch    Category = "research"
)

// Categories lists all known project categories in display order.
var Categories = []Category{CategoryGaming, CategoryDevelopment, CategoryResearch}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryGaming, CategoryDevelopment, CategoryResearch:
		return true
	}
	return false
}

// Post is a collaborative project listing.
type Post struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`

	TeamSize   string   `json:"teamSize,omitempty"`
	SkillLevel string   `json:"skillLevel,omitempty"`
	Deadline   string   `json:"deadline,omitempty"`
	Tags       []string `json:"tags,omitempty"`

	ContactMethod string `json:"contactMethod,omitempty"`
	ContactInfo   string `json:"contactInfo,omitempty"`

	// CreatedBy is the author's user id.
	CreatedBy string `json:"createdBy,omitempty"`
	Status    string `json:"status,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// PostDraft is the payload for creating or updating a post.
type PostDraft struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      Category `json:"category"`
	TeamSize      string   `json:"teamSize,omitempty"`
	SkillLevel    string   `json:"skillLevel,omitempty"`
	Deadline      string   `json:"deadline,omitempty"`
	Tags          []string `json:"tags"`
	ContactMethod string   `json:"contactMethod"`
	ContactInfo   string   `json:"contactInfo"`
}
