package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/responses"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/validators"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/menu"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/logger"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
)

type createMenuItemRequest struct {
	Name           string          `json:"name" validate:"required,max=200"`
	Cuisine        string          `json:"cuisine,omitempty" validate:"omitempty,max=100"`
	PricePerPerson decimal.Decimal `json:"price_per_person" validate:"required"`
	Allergens      []string        `json:"allergens,omitempty"`
	Images         []types.Image   `json:"images,omitempty" validate:"omitempty,dive"`
	Description    string          `json:"description,omitempty" validate:"omitempty,max=5000"`
}

type updateMenuItemRequest struct {
	Name           *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	Cuisine        *string          `json:"cuisine,omitempty" validate:"omitempty,max=100"`
	PricePerPerson *decimal.Decimal `json:"price_per_person,omitempty"`
	Allergens      *[]string        `json:"allergens,omitempty"`
	Images         *[]types.Image   `json:"images,omitempty" validate:"omitempty,dive"`
	Description    *string          `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// ListMenu serves the public catering menu, optionally filtered by cuisine.
func ListMenu(svc menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListMenuItems(r.Context(), validators.SanitizeString(r.URL.Query().Get("cuisine"), 100))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}

// AdminCreateMenuItem serves the admin create endpoint.
func AdminCreateMenuItem(svc menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createMenuItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.CreateMenuItem(r.Context(), menu.CreateMenuItemInput{
			Name:           validators.SanitizeString(body.Name, 200),
			Cuisine:        validators.SanitizeString(body.Cuisine, 100),
			PricePerPerson: body.PricePerPerson,
			Allergens:      body.Allergens,
			Images:         body.Images,
			Description:    body.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// AdminUpdateMenuItem serves the admin edit endpoint.
func AdminUpdateMenuItem(svc menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "menuItemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateMenuItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.UpdateMenuItem(r.Context(), id, menu.UpdateMenuItemInput{
			Name:           body.Name,
			Cuisine:        body.Cuisine,
			PricePerPerson: body.PricePerPerson,
			Allergens:      body.Allergens,
			Images:         body.Images,
			Description:    body.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// AdminDeleteMenuItem serves the admin delete endpoint.
func AdminDeleteMenuItem(svc menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "menuItemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteMenuItem(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
