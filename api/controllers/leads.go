package controllers

import (
	"net/http"
	"time"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/responses"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/validators"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/leads"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/logger"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/pagination"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
)

const eventDateLayout = "2006-01-02"

type submitLeadRequest struct {
	FirstName string           `json:"first_name" validate:"required,max=100"`
	LastName  string           `json:"last_name" validate:"required,max=100"`
	Email     string           `json:"email" validate:"required,email"`
	Phone     string           `json:"phone" validate:"required,min=7,max=30"`
	EventDate string           `json:"event_date" validate:"required,datetime=2006-01-02"`
	EventTime string           `json:"event_time" validate:"required,max=50"`
	Address   types.Address    `json:"address" validate:"required"`
	Guests    int              `json:"guests" validate:"gte=0"`
	Items     []types.LineItem `json:"items,omitempty" validate:"omitempty,dive"`
	Notes     string           `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Recaptcha string           `json:"recaptcha,omitempty"`
}

type updateLeadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// updateLeadRequest is the admin payload to edit a lead. All fields are
// optional; absent fields keep their stored values.
type updateLeadRequest struct {
	FirstName *string        `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string        `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email     *string        `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string        `json:"phone,omitempty" validate:"omitempty,min=7,max=30"`
	EventDate *string        `json:"event_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EventTime *string        `json:"event_time,omitempty" validate:"omitempty,max=50"`
	Address   *types.Address `json:"address,omitempty"`
	Guests    *int           `json:"guests,omitempty" validate:"omitempty,gte=0"`
	Notes     *string        `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Status    *string        `json:"status,omitempty"`
}

// SubmitLead serves the public inquiry intake endpoint.
func SubmitLead(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body submitLeadRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		eventDate, err := time.Parse(eventDateLayout, body.EventDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "event_date must be YYYY-MM-DD"))
			return
		}

		lead, err := svc.SubmitLead(r.Context(), leads.SubmitLeadInput{
			FirstName: validators.SanitizeString(body.FirstName, 100),
			LastName:  validators.SanitizeString(body.LastName, 100),
			Email:     body.Email,
			Phone:     validators.SanitizeString(body.Phone, 30),
			EventDate: eventDate,
			EventTime: validators.SanitizeString(body.EventTime, 50),
			Address:   body.Address,
			Guests:    body.Guests,
			Items:     body.Items,
			Notes:     validators.SanitizeString(body.Notes, 2000),
			Recaptcha: body.Recaptcha,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, lead)
	}
}

// AdminListLeads serves the admin lead table with optional status filter.
func AdminListLeads(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1000000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := leads.ListLeadsInput{
			Pagination: pagination.Params{Page: page, Limit: limit},
		}
		if raw := r.URL.Query().Get("status"); raw != "" {
			status, err := enums.ParseLeadStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "unsupported status").WithDetails(map[string]any{"field": "status"}))
				return
			}
			input.Status = &status
		}

		result, err := svc.ListLeads(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AdminGetLead serves the admin lead detail endpoint.
func AdminGetLead(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "leadId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lead, err := svc.GetLead(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, lead)
	}
}

// AdminUpdateLead serves the admin lead edit endpoint.
func AdminUpdateLead(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "leadId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateLeadRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := leads.UpdateLeadInput{
			FirstName: body.FirstName,
			LastName:  body.LastName,
			Email:     body.Email,
			Phone:     body.Phone,
			EventTime: body.EventTime,
			Address:   body.Address,
			Guests:    body.Guests,
			Notes:     body.Notes,
		}
		if body.EventDate != nil {
			eventDate, err := time.Parse(eventDateLayout, *body.EventDate)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "event_date must be YYYY-MM-DD"))
				return
			}
			input.EventDate = &eventDate
		}
		if body.Status != nil {
			status, err := enums.ParseLeadStatus(*body.Status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "unsupported status").WithDetails(map[string]any{"field": "status"}))
				return
			}
			input.Status = &status
		}

		lead, err := svc.UpdateLead(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, lead)
	}
}

// AdminDeleteLead serves the admin lead delete endpoint.
func AdminDeleteLead(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "leadId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteLead(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminUpdateLeadStatus moves a lead through the pipeline.
func AdminUpdateLeadStatus(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "leadId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateLeadStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseLeadStatus(body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "unsupported status").WithDetails(map[string]any{"field": "status"}))
			return
		}

		lead, err := svc.UpdateLeadStatus(r.Context(), id, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, lead)
	}
}
