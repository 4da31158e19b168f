package draft

import "time"

// CategoryID identifies the submission flavour a seller picked. Each id maps
// to its own field table; adding a category means adding table entries, not
// code paths.
type CategoryID string

const (
	CategoryMotors       CategoryID = "motors"
	CategoryJobs         CategoryID = "jobs"
	CategoryPropertySale CategoryID = "property-sale"
	CategoryPropertyRent CategoryID = "property-rent"
	CategoryClassifieds  CategoryID = "classifieds"
)

func (c CategoryID) Valid() bool {
	switch c {
	case CategoryMotors, CategoryJobs, CategoryPropertySale, CategoryPropertyRent, CategoryClassifieds:
		return true
	}

	return false
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Fields holds category-specific values: strings, bools or string slices,
// keyed by field name.
type Fields map[string]any

// Draft is the in-progress submission accumulated across the workflow.
// It is owned by exactly one workflow instance and only reaches the backend
// through the publish gateway.
type Draft struct {
	ID        string     `json:"id"`
	UserID    int        `json:"-"`
	Location  string     `json:"location"`
	Category  CategoryID `json:"category"`
	Fields    Fields     `json:"fields"`
	Summary   Fields     `json:"summary"`
	Status    Status     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
