package catalog

import (
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ItemListFilters describe the supported filter knobs for the browse endpoint.
type ItemListFilters struct {
	Query    string           `json:"q,omitempty"`
	Category string           `json:"category,omitempty"`
	PriceMin *decimal.Decimal `json:"min,omitempty"`
	PriceMax *decimal.Decimal `json:"max,omitempty"`
}

// ListItemsInput captures the inputs needed to paginate/filter the catalog.
type ListItemsInput struct {
	Filters    ItemListFilters
	Sort       enums.ItemSort
	Pagination pagination.Params
}

// ItemListResult is the page envelope returned to browse clients.
type ItemListResult struct {
	Items []ItemDTO `json:"items"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Pages int       `json:"pages"`
}
