package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/responses"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/validators"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/packages"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/logger"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
)

type createPackageRequest struct {
	Name          string           `json:"name" validate:"required,max=200"`
	Slug          string           `json:"slug,omitempty" validate:"omitempty,max=200"`
	IncludedItems []types.LineItem `json:"included_items,omitempty" validate:"omitempty,dive"`
	BasePrice     decimal.Decimal  `json:"base_price" validate:"required"`
	Upsells       []types.Upsell   `json:"upsells,omitempty" validate:"omitempty,dive"`
	Description   string           `json:"description,omitempty" validate:"omitempty,max=5000"`
}

type updatePackageRequest struct {
	Name          *string           `json:"name,omitempty" validate:"omitempty,max=200"`
	Slug          *string           `json:"slug,omitempty" validate:"omitempty,max=200"`
	IncludedItems *[]types.LineItem `json:"included_items,omitempty" validate:"omitempty,dive"`
	BasePrice     *decimal.Decimal  `json:"base_price,omitempty"`
	Upsells       *[]types.Upsell   `json:"upsells,omitempty" validate:"omitempty,dive"`
	Description   *string           `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// ListPackages serves the public package listing.
func ListPackages(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListPackages(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"packages": rows})
	}
}

// GetPackage serves the public package detail endpoint, keyed by slug.
func GetPackage(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		row, err := svc.GetPackage(r.Context(), chi.URLParam(r, "idOrSlug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

// AdminCreatePackage serves the admin create endpoint.
func AdminCreatePackage(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createPackageRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.CreatePackage(r.Context(), packages.CreatePackageInput{
			Name:          validators.SanitizeString(body.Name, 200),
			Slug:          body.Slug,
			IncludedItems: body.IncludedItems,
			BasePrice:     body.BasePrice,
			Upsells:       body.Upsells,
			Description:   body.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

// AdminUpdatePackage serves the admin edit endpoint.
func AdminUpdatePackage(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "packageId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updatePackageRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.UpdatePackage(r.Context(), id, packages.UpdatePackageInput{
			Name:          body.Name,
			Slug:          body.Slug,
			IncludedItems: body.IncludedItems,
			BasePrice:     body.BasePrice,
			Upsells:       body.Upsells,
			Description:   body.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

// AdminDeletePackage serves the admin delete endpoint.
func AdminDeletePackage(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "packageId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeletePackage(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
