package catalog

import (
	"errors"
	"fmt"
)

var ErrCategoryNotFound = errors.New("category not found")

// Store holds the browse catalog. It is built once at startup and is
// immutable afterwards, so reads need no locking.
type Store struct {
	categories []Category
	listings   []Listing
	groups     map[string]Group
}

// NewStore validates the collections and freezes them in their given order.
// Every listing whose category resolves to the property group must carry a
// property type; a violation here is a data defect, not a runtime condition.
func NewStore(categories []Category, listings []Listing) (*Store, error) {
	groups := make(map[string]Group, len(categories))

	for _, c := range categories {
		if _, ok := groups[c.Name]; ok {
			return nil, fmt.Errorf("duplicate category name %q", c.Name)
		}
		groups[c.Name] = c.Group
	}

	for _, l := range listings {
		if groups[l.CategoryName] == GroupProperty && l.PropertyType == nil {
			return nil, fmt.Errorf("property listing %q has no property type", l.ID)
		}
	}

	return &Store{
		categories: categories,
		listings:   listings,
		groups:     groups,
	}, nil
}

// Categories returns all categories in insertion order.
func (s *Store) Categories() []Category {
	return s.categories
}

// Listings returns all listings in insertion order.
func (s *Store) Listings() []Listing {
	return s.listings
}

// GroupOf resolves a category name (exact, case-sensitive) to its group.
// Callers must treat ErrCategoryNotFound as "exclude from group filters".
func (s *Store) GroupOf(name string) (Group, error) {
	group, ok := s.groups[name]
	if !ok {
		return "", ErrCategoryNotFound
	}

	return group, nil
}
