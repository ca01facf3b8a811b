package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/internal/leads"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
)

type fakeLeadsService struct {
	submitCalls int
	lastInput   leads.SubmitLeadInput
}

func (f *fakeLeadsService) SubmitLead(ctx context.Context, input leads.SubmitLeadInput) (*leads.LeadDTO, error) {
	f.submitCalls++
	f.lastInput = input
	return &leads.LeadDTO{ID: uuid.New(), Status: enums.LeadStatusNew}, nil
}

func (f *fakeLeadsService) ListLeads(ctx context.Context, input leads.ListLeadsInput) (*leads.LeadListResult, error) {
	return &leads.LeadListResult{}, nil
}

func (f *fakeLeadsService) GetLead(ctx context.Context, id uuid.UUID) (*leads.LeadDTO, error) {
	return &leads.LeadDTO{ID: id}, nil
}

func (f *fakeLeadsService) UpdateLead(ctx context.Context, id uuid.UUID, input leads.UpdateLeadInput) (*leads.LeadDTO, error) {
	return &leads.LeadDTO{ID: id}, nil
}

func (f *fakeLeadsService) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status enums.LeadStatus) (*leads.LeadDTO, error) {
	return &leads.LeadDTO{ID: id, Status: status}, nil
}

func (f *fakeLeadsService) DeleteLead(ctx context.Context, id uuid.UUID) error {
	return nil
}

func postLead(t *testing.T, svc *fakeLeadsService, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := SubmitLead(svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

const leadBodyNoGuests = `{
  "first_name": "Maria",
  "last_name": "Lopez",
  "email": "maria@example.com",
  "phone": "555-0100",
  "event_date": "2030-06-15",
  "event_time": "2pm-8pm",
  "address": {"street": "123 Main St", "city": "Fresno", "state": "CA", "zip": "93701"}`

func TestSubmitLeadAllowsZeroGuests(t *testing.T) {
	svc := &fakeLeadsService{}

	rec := postLead(t, svc, leadBodyNoGuests+`, "guests": 0}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for zero guests, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.submitCalls != 1 {
		t.Fatalf("expected service invoked, got %d calls", svc.submitCalls)
	}
	if svc.lastInput.Guests != 0 {
		t.Fatalf("expected guests 0, got %d", svc.lastInput.Guests)
	}
}

func TestSubmitLeadDefaultsOmittedGuestsToZero(t *testing.T) {
	svc := &fakeLeadsService{}

	rec := postLead(t, svc, leadBodyNoGuests+`}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 without guests field, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastInput.Guests != 0 {
		t.Fatalf("expected guests defaulted to 0, got %d", svc.lastInput.Guests)
	}
}

func TestSubmitLeadRejectsNegativeGuests(t *testing.T) {
	svc := &fakeLeadsService{}

	rec := postLead(t, svc, leadBodyNoGuests+`, "guests": -3}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative guests, got %d", rec.Code)
	}
	if svc.submitCalls != 0 {
		t.Fatalf("expected service untouched on invalid body")
	}
}
