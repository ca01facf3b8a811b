package enums

import "fmt"

// ItemSort names the supported catalog orderings.
type ItemSort string

const (
	// ItemSortFeatured is the storefront default and currently aliases
	// newest-first; items carry no dedicated featured flag.
	ItemSortFeatured  ItemSort = "featured"
	ItemSortPriceAsc  ItemSort = "price_asc"
	ItemSortPriceDesc ItemSort = "price_desc"
	ItemSortNameAsc   ItemSort = "name_asc"
	ItemSortNewest    ItemSort = "newest"
)

var validItemSorts = []ItemSort{
	ItemSortFeatured,
	ItemSortPriceAsc,
	ItemSortPriceDesc,
	ItemSortNameAsc,
	ItemSortNewest,
}

// String implements fmt.Stringer.
func (s ItemSort) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ItemSort.
func (s ItemSort) IsValid() bool {
	for _, candidate := range validItemSorts {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseItemSort converts raw input into an ItemSort. Empty input selects
// the default ordering.
func ParseItemSort(value string) (ItemSort, error) {
	if value == "" {
		return ItemSortNewest, nil
	}
	for _, candidate := range validItemSorts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item sort %q", value)
}
