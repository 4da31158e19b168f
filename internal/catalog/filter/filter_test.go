package filter

import (
	"strings"
	"testing"

	"github.com/dxbsouq/souq-backend/internal/catalog"
	"github.com/stretchr/testify/require"
)

func ptype(pt catalog.PropertyType) *catalog.PropertyType {
	return &pt
}

func testStore(t *testing.T) *catalog.Store {
	t.Helper()

	categories := []catalog.Category{
		{Name: "Sofas & Seating", Group: catalog.GroupFurniture},
		{Name: "Home Decor", Group: catalog.GroupFurniture},
		{Name: "Mobile Phones", Group: catalog.GroupElectronics},
		{Name: "Cars", Group: catalog.GroupVehicles},
		{Name: "Clothing", Group: catalog.GroupFashion},
		{Name: "Residential Sale", Group: catalog.GroupProperty, PropertyType: ptype(catalog.PropertyForSale)},
		{Name: "Residential Rent", Group: catalog.GroupProperty, PropertyType: ptype(catalog.PropertyForRent)},
		{Name: "Off-Plan", Group: catalog.GroupProperty, PropertyType: ptype(catalog.PropertyForSale)},
		{Name: "Commercial", Group: catalog.GroupProperty},
	}

	listings := []catalog.Listing{
		{ID: "1", Title: "Modern Leather Sofa", CategoryName: "Sofas & Seating"},
		{ID: "2", Title: "Designer Table Lamp", CategoryName: "Home Decor"},
		{ID: "3", Title: "iPhone 14 Pro Max", CategoryName: "Mobile Phones"},
		{ID: "4", Title: "2 Beds in Al Majaz", CategoryName: "Residential Sale", PropertyType: ptype(catalog.PropertyForSale)},
		{ID: "5", Title: "Studio in Bu Daniq", CategoryName: "Residential Rent", PropertyType: ptype(catalog.PropertyForRent)},
		{ID: "6", Title: "Vintage Sofa Table", CategoryName: "Unknown Category"},
	}

	store, err := catalog.NewStore(categories, listings)
	require.NoError(t, err)

	return store
}

func TestCategories(t *testing.T) {
	store := testStore(t)

	tests := []struct {
		name          string
		sel           Selection
		expectedNames []string
	}{
		{
			name:          "all tab returns everything",
			sel:           Selection{Tab: TabAll},
			expectedNames: []string{"Sofas & Seating", "Home Decor", "Mobile Phones", "Cars", "Clothing", "Residential Sale", "Residential Rent", "Off-Plan", "Commercial"},
		},
		{
			name:          "furniture tab keys on group",
			sel:           Selection{Tab: TabFurniture},
			expectedNames: []string{"Sofas & Seating", "Home Decor"},
		},
		{
			name:          "property buy side",
			sel:           Selection{Tab: TabProperty, PropertySubType: SubTypeBuy},
			expectedNames: []string{"Residential Sale", "Off-Plan"},
		},
		{
			name:          "property rent side",
			sel:           Selection{Tab: TabProperty, PropertySubType: SubTypeRent},
			expectedNames: []string{"Residential Rent"},
		},
		{
			name:          "property without sub type returns the whole group",
			sel:           Selection{Tab: TabProperty},
			expectedNames: []string{"Residential Sale", "Residential Rent", "Off-Plan", "Commercial"},
		},
		{
			name:          "query narrows by name",
			sel:           Selection{Tab: TabFurniture, Query: "sofa"},
			expectedNames: []string{"Sofas & Seating"},
		},
		{
			name:          "whitespace query is a no-op",
			sel:           Selection{Tab: TabFurniture, Query: "   "},
			expectedNames: []string{"Sofas & Seating", "Home Decor"},
		},
		{
			name:          "unmatched query returns empty, not nil",
			sel:           Selection{Tab: TabFurniture, Query: "zzz"},
			expectedNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categories(store.Categories(), tt.sel)

			names := make([]string, 0, len(got))
			for _, c := range got {
				names = append(names, c.Name)
			}

			require.Equal(t, tt.expectedNames, names)
		})
	}
}

func TestListings(t *testing.T) {
	store := testStore(t)

	tests := []struct {
		name        string
		sel         Selection
		expectedIDs []string
	}{
		{
			name:        "all tab returns everything",
			sel:         Selection{Tab: TabAll},
			expectedIDs: []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:        "furniture tab resolves groups through the store",
			sel:         Selection{Tab: TabFurniture},
			expectedIDs: []string{"1", "2"},
		},
		{
			name:        "unknown category is excluded from group filters, not an error",
			sel:         Selection{Tab: TabFurniture, Query: "table"},
			expectedIDs: []string{"2"},
		},
		{
			name:        "property buy keys on the listing discriminator",
			sel:         Selection{Tab: TabProperty, PropertySubType: SubTypeBuy},
			expectedIDs: []string{"4"},
		},
		{
			name:        "property rent keys on the listing discriminator",
			sel:         Selection{Tab: TabProperty, PropertySubType: SubTypeRent},
			expectedIDs: []string{"5"},
		},
		{
			name:        "query is case-insensitive on title",
			sel:         Selection{Tab: TabAll, Query: "IPHONE"},
			expectedIDs: []string{"3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Listings(store.Listings(), store, tt.sel)

			ids := make([]string, 0, len(got))
			for _, l := range got {
				ids = append(ids, l.ID)
			}

			require.Equal(t, tt.expectedIDs, ids)
		})
	}
}

// Filtering an already filtered collection by the same selection must return
// it unchanged, and a query can only ever shrink a result.
func TestFilterProperties(t *testing.T) {
	store := testStore(t)

	selections := []Selection{
		{Tab: TabAll},
		{Tab: TabFurniture},
		{Tab: TabProperty, PropertySubType: SubTypeBuy},
		{Tab: TabProperty, PropertySubType: SubTypeRent},
	}

	for _, sel := range selections {
		once := Listings(store.Listings(), store, sel)
		twice := Listings(once, store, sel)
		require.Equal(t, once, twice)

		narrowed := Listings(once, store, Selection{Tab: sel.Tab, PropertySubType: sel.PropertySubType, Query: "a"})
		require.LessOrEqual(t, len(narrowed), len(once))
		for _, l := range narrowed {
			require.Contains(t, strings.ToLower(l.Title), "a")
		}
	}
}

// Furniture, property-buy and property-rent plus the remaining groups must
// partition the resolvable catalog: nothing is silently dropped.
func TestFilterPartition(t *testing.T) {
	store := testStore(t)

	furniture := Listings(store.Listings(), store, Selection{Tab: TabFurniture})
	buy := Listings(store.Listings(), store, Selection{Tab: TabProperty, PropertySubType: SubTypeBuy})
	rent := Listings(store.Listings(), store, Selection{Tab: TabProperty, PropertySubType: SubTypeRent})
	all := Listings(store.Listings(), store, Selection{Tab: TabAll})

	rest := 0
	for _, l := range all {
		group, err := store.GroupOf(l.CategoryName)
		if err != nil || (group != catalog.GroupFurniture && group != catalog.GroupProperty) {
			rest++
		}
	}

	require.Equal(t, len(all), len(furniture)+len(buy)+len(rent)+rest)
}
