package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/responses"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/validators"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/catalog"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/logger"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/pagination"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
)

const maxSearchLen = 200

// createItemRequest is the admin payload to add a catalog item.
type createItemRequest struct {
	Name          string           `json:"name" validate:"required,max=200"`
	Slug          string           `json:"slug,omitempty" validate:"omitempty,max=200"`
	Category      string           `json:"category" validate:"required,max=100"`
	PricePerDay   decimal.Decimal  `json:"price_per_day" validate:"required"`
	PricePerWeek  *decimal.Decimal `json:"price_per_week,omitempty"`
	Images        []types.Image    `json:"images,omitempty" validate:"omitempty,dive"`
	Stock         int              `json:"stock,omitempty" validate:"omitempty,min=0"`
	Tags          []string         `json:"tags,omitempty"`
	Dimensions    types.Dimensions `json:"dimensions,omitempty"`
	RequiresSetup bool             `json:"requires_setup,omitempty"`
	Description   string           `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// updateItemRequest is the admin payload to edit a catalog item. All fields
// are optional; absent fields keep their stored values.
type updateItemRequest struct {
	Name          *string           `json:"name,omitempty" validate:"omitempty,max=200"`
	Slug          *string           `json:"slug,omitempty" validate:"omitempty,max=200"`
	Category      *string           `json:"category,omitempty" validate:"omitempty,max=100"`
	PricePerDay   *decimal.Decimal  `json:"price_per_day,omitempty"`
	PricePerWeek  *decimal.Decimal  `json:"price_per_week,omitempty"`
	Images        *[]types.Image    `json:"images,omitempty" validate:"omitempty,dive"`
	Stock         *int              `json:"stock,omitempty" validate:"omitempty,min=0"`
	Tags          *[]string         `json:"tags,omitempty"`
	Dimensions    *types.Dimensions `json:"dimensions,omitempty"`
	RequiresSetup *bool             `json:"requires_setup,omitempty"`
	Description   *string           `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// ListItems serves the public catalog browse endpoint.
func ListItems(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := parseListItemsQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListItems(r.Context(), *input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// GetItem serves the public item detail endpoint, keyed by id or slug.
func GetItem(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := svc.GetItem(r.Context(), chi.URLParam(r, "idOrSlug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// ListCategories serves the category filter options.
func ListCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"categories": categories})
	}
}

// AdminCreateItem serves the admin create endpoint.
func AdminCreateItem(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.CreateItem(r.Context(), catalog.CreateItemInput{
			Name:          validators.SanitizeString(body.Name, 200),
			Slug:          body.Slug,
			Category:      validators.SanitizeString(body.Category, 100),
			PricePerDay:   body.PricePerDay,
			PricePerWeek:  body.PricePerWeek,
			Images:        body.Images,
			Stock:         body.Stock,
			Tags:          body.Tags,
			Dimensions:    body.Dimensions,
			RequiresSetup: body.RequiresSetup,
			Description:   body.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// AdminUpdateItem serves the admin edit endpoint.
func AdminUpdateItem(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := parseIDParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.UpdateItem(r.Context(), itemID, catalog.UpdateItemInput{
			Name:          body.Name,
			Slug:          body.Slug,
			Category:      body.Category,
			PricePerDay:   body.PricePerDay,
			PricePerWeek:  body.PricePerWeek,
			Images:        body.Images,
			Stock:         body.Stock,
			Tags:          body.Tags,
			Dimensions:    body.Dimensions,
			RequiresSetup: body.RequiresSetup,
			Description:   body.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// AdminDeleteItem serves the admin delete endpoint.
func AdminDeleteItem(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := parseIDParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteItem(r.Context(), itemID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func parseListItemsQuery(r *http.Request) (*catalog.ListItemsInput, error) {
	page, err := validators.ParseQueryInt(r, "page", 1, 1, 1000000)
	if err != nil {
		return nil, err
	}
	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return nil, err
	}
	priceMin, err := validators.ParseQueryDecimal(r, "min")
	if err != nil {
		return nil, err
	}
	priceMax, err := validators.ParseQueryDecimal(r, "max")
	if err != nil {
		return nil, err
	}
	sort, err := enums.ParseItemSort(r.URL.Query().Get("sort"))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported sort").WithDetails(map[string]any{"field": "sort"})
	}

	return &catalog.ListItemsInput{
		Filters: catalog.ItemListFilters{
			Query:    validators.SanitizeString(r.URL.Query().Get("q"), maxSearchLen),
			Category: validators.SanitizeString(r.URL.Query().Get("category"), 100),
			PriceMin: priceMin,
			PriceMax: priceMax,
		},
		Sort:       sort,
		Pagination: pagination.Params{Page: page, Limit: limit},
	}, nil
}

func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid id").WithDetails(map[string]any{"field": name})
	}
	return id, nil
}
