package controllers

import (
	"net/http"
	"time"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/middleware"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/responses"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/validators"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/auth"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/config"
	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/logger"
	"github.com/google/uuid"
)

// AuthLogin wires the login endpoint into the HTTP layer. The minted JWT is
// delivered as an HTTP-only cookie so the admin SPA never touches it.
func AuthLogin(svc auth.Service, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.SetCookie(w, sessionCookie(cfg, result.Token, result.ExpiresAt))
		responses.WriteSuccess(w, result)
	}
}

// AuthLogout revokes the presented session and clears the cookie. Runs
// behind Auth, so the access ID is always on the context.
func AuthLogout(svc auth.Service, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Logout(r.Context(), middleware.AccessIDFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.SetCookie(w, expiredSessionCookie(cfg))
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

// AuthMe returns the authenticated account.
func AuthMe(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		user, err := svc.CurrentUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

func sessionCookie(cfg *config.Config, token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.JWT.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   cfg.App.IsProd(),
		SameSite: http.SameSiteLaxMode,
	}
}

func expiredSessionCookie(cfg *config.Config) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.JWT.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.App.IsProd(),
		SameSite: http.SameSiteLaxMode,
	}
}
