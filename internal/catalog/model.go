package catalog

// Group is the canonical classification of a category. Filtering keys on
// this field only; the category name is display text.
type Group string

const (
	GroupFurniture   Group = "furniture"
	GroupElectronics Group = "electronics"
	GroupVehicles    Group = "vehicles"
	GroupFashion     Group = "fashion"
	GroupProperty    Group = "property"
)

// PropertyType discriminates sale and rent entries within the property
// group. It is a separate field from Group.
type PropertyType string

const (
	PropertyForSale PropertyType = "for_sale"
	PropertyForRent PropertyType = "for_rent"
)

type Category struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Group Group  `json:"group"`
	// PropertyType is set only for property categories that belong to the
	// buy or rent side. Property categories outside both (e.g. Commercial)
	// leave it nil and only show up on the unfiltered tab.
	PropertyType *PropertyType `json:"propertyType,omitempty"`
}

type Listing struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Price        string        `json:"price"`
	CategoryName string        `json:"category"`
	Image        string        `json:"image"`
	Description  string        `json:"description"`
	Seller       string        `json:"seller"`
	Location     string        `json:"location"`
	Featured     bool          `json:"featured"`
	PropertyType *PropertyType `json:"propertyType,omitempty"`
}
