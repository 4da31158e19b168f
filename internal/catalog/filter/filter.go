// Package filter derives the visible subset of the catalog for a browse
// selection. All functions are pure and deterministic: same selection and
// same catalog in, same subset out, in the same relative order.
package filter

import (
	"strings"

	"github.com/dxbsouq/souq-backend/internal/catalog"
)

type Tab string

const (
	TabAll       Tab = "all"
	TabFurniture Tab = "furniture"
	TabProperty  Tab = "property"
)

type PropertySubType string

const (
	SubTypeBuy  PropertySubType = "buy"
	SubTypeRent PropertySubType = "rent"
)

// Selection is a browse surface state: the active top-level tab, the
// property buy/rent toggle (meaningful only on the property tab) and an
// optional free-text query. A blank or whitespace-only query is a no-op.
type Selection struct {
	Tab             Tab
	PropertySubType PropertySubType
	Query           string
}

// GroupResolver maps a listing's category name to its group. Unresolvable
// names exclude the listing from group filters; they never fail the filter.
type GroupResolver interface {
	GroupOf(name string) (catalog.Group, error)
}

// Categories filters the category collection. Capping the result to a
// display count is the caller's concern.
func Categories(categories []catalog.Category, sel Selection) []catalog.Category {
	out := make([]catalog.Category, 0, len(categories))

	for _, c := range categories {
		if !categoryMatches(c, sel) {
			continue
		}
		if !queryMatches(c.Name, sel.Query) {
			continue
		}
		out = append(out, c)
	}

	return out
}

// Listings filters the listing collection, resolving each listing's group
// through the resolver. On the property tab the listing's own property type
// discriminator is used.
func Listings(listings []catalog.Listing, groups GroupResolver, sel Selection) []catalog.Listing {
	out := make([]catalog.Listing, 0, len(listings))

	for _, l := range listings {
		if !listingMatches(l, groups, sel) {
			continue
		}
		if !queryMatches(l.Title, sel.Query) {
			continue
		}
		out = append(out, l)
	}

	return out
}

func categoryMatches(c catalog.Category, sel Selection) bool {
	switch sel.Tab {
	case TabFurniture:
		return c.Group == catalog.GroupFurniture
	case TabProperty:
		if c.Group != catalog.GroupProperty {
			return false
		}
		return propertySideMatches(c.PropertyType, sel.PropertySubType)
	default:
		return true
	}
}

func listingMatches(l catalog.Listing, groups GroupResolver, sel Selection) bool {
	switch sel.Tab {
	case TabFurniture:
		group, err := groups.GroupOf(l.CategoryName)
		if err != nil {
			return false
		}
		return group == catalog.GroupFurniture
	case TabProperty:
		group, err := groups.GroupOf(l.CategoryName)
		if err != nil {
			return false
		}
		if group != catalog.GroupProperty {
			return false
		}
		return propertySideMatches(l.PropertyType, sel.PropertySubType)
	default:
		return true
	}
}

func propertySideMatches(pt *catalog.PropertyType, sub PropertySubType) bool {
	switch sub {
	case SubTypeBuy:
		return pt != nil && *pt == catalog.PropertyForSale
	case SubTypeRent:
		return pt != nil && *pt == catalog.PropertyForRent
	default:
		return true
	}
}

func queryMatches(text, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}
