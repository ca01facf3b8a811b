package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/responses"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/validators"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/booking"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/logger"
)

// cartTokenHeader carries the opaque guest cart identifier. The server
// mints one on first touch and echoes it on every cart response.
const cartTokenHeader = "X-Cart-Token"

type addCartItemRequest struct {
	ItemID uuid.UUID `json:"item_id" validate:"required"`
	Qty    int       `json:"qty" validate:"required,min=1"`
}

type setCartQuantityRequest struct {
	Qty int `json:"qty" validate:"required,min=1"`
}

// GetCart returns the visitor's cart with current catalog pricing.
func GetCart(svc booking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := cartToken(r)
		w.Header().Set(cartTokenHeader, token)

		cart, err := svc.GetCart(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cart)
	}
}

// AddCartItem merges an item into the cart.
func AddCartItem(svc booking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := cartToken(r)
		w.Header().Set(cartTokenHeader, token)

		var body addCartItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.AddItem(r.Context(), token, body.ItemID, body.Qty)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cart)
	}
}

// SetCartQuantity replaces the quantity on a cart line.
func SetCartQuantity(svc booking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := cartToken(r)
		w.Header().Set(cartTokenHeader, token)

		itemID, err := parseIDParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body setCartQuantityRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.SetQuantity(r.Context(), token, itemID, body.Qty)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cart)
	}
}

// RemoveCartItem drops a line from the cart.
func RemoveCartItem(svc booking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := cartToken(r)
		w.Header().Set(cartTokenHeader, token)

		itemID, err := parseIDParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.RemoveItem(r.Context(), token, itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cart)
	}
}

// ClearCart empties the cart entirely.
func ClearCart(svc booking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := cartToken(r)
		w.Header().Set(cartTokenHeader, token)

		if err := svc.ClearCart(r.Context(), token); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}

// cartToken returns the caller's cart token, minting one when the header
// is missing or not a UUID.
func cartToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get(cartTokenHeader))
	if raw != "" {
		if token, err := uuid.Parse(raw); err == nil {
			return token.String()
		}
	}
	return uuid.NewString()
}
