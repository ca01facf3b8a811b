package controllers

import (
	"net/http"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/responses"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/validators"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/faq"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/logger"
)

type createFAQRequest struct {
	Question string `json:"question" validate:"required,max=500"`
	Answer   string `json:"answer" validate:"required,max=5000"`
	Sort     int    `json:"sort,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type updateFAQRequest struct {
	Question *string `json:"question,omitempty" validate:"omitempty,max=500"`
	Answer   *string `json:"answer,omitempty" validate:"omitempty,max=5000"`
	Sort     *int    `json:"sort,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ListFAQ serves the public FAQ list; only active entries are returned.
func ListFAQ(svc faq.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"faqs": rows})
	}
}

// AdminListFAQ returns every entry, drafts included.
func AdminListFAQ(svc faq.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"faqs": rows})
	}
}

// AdminCreateFAQ serves the admin create endpoint. New entries default to
// active unless the payload says otherwise.
func AdminCreateFAQ(svc faq.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createFAQRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		isActive := true
		if body.IsActive != nil {
			isActive = *body.IsActive
		}

		row, err := svc.CreateFAQ(r.Context(), faq.CreateFAQInput{
			Question: validators.SanitizeString(body.Question, 500),
			Answer:   validators.SanitizeString(body.Answer, 5000),
			Sort:     body.Sort,
			IsActive: isActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

// AdminUpdateFAQ serves the admin edit endpoint.
func AdminUpdateFAQ(svc faq.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "faqId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateFAQRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.UpdateFAQ(r.Context(), id, faq.UpdateFAQInput{
			Question: body.Question,
			Answer:   body.Answer,
			Sort:     body.Sort,
			IsActive: body.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

// AdminDeleteFAQ serves the admin delete endpoint.
func AdminDeleteFAQ(svc faq.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "faqId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteFAQ(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
