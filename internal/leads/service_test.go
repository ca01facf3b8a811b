package leads

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/logger"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/pagination"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
)

type stubLeadStore struct {
	leads map[uuid.UUID]*models.Lead
}

func newStubLeadStore() *stubLeadStore {
	return &stubLeadStore{leads: map[uuid.UUID]*models.Lead{}}
}

func (s *stubLeadStore) CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	lead.ID = uuid.New()
	lead.CreatedAt = time.Now().UTC()
	lead.UpdatedAt = lead.CreatedAt
	s.leads[lead.ID] = lead
	return lead, nil
}

func (s *stubLeadStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	if lead, ok := s.leads[id]; ok {
		return lead, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubLeadStore) UpdateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	s.leads[lead.ID] = lead
	return lead, nil
}

func (s *stubLeadStore) DeleteLead(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := s.leads[id]; !ok {
		return 0, nil
	}
	delete(s.leads, id)
	return 1, nil
}

func (s *stubLeadStore) ListLeads(ctx context.Context, input ListLeadsInput) ([]models.Lead, int64, error) {
	var rows []models.Lead
	for _, lead := range s.leads {
		if input.Status != nil && lead.Status != *input.Status {
			continue
		}
		rows = append(rows, *lead)
	}
	return rows, int64(len(rows)), nil
}

type stubNotifier struct {
	mu      sync.Mutex
	enabled bool
	err     error
	sent    []string
	done    chan struct{}
}

func newStubNotifier(enabled bool, err error) *stubNotifier {
	return &stubNotifier{enabled: enabled, err: err, done: make(chan struct{}, 1)}
}

func (n *stubNotifier) Enabled() bool {
	return n.enabled
}

func (n *stubNotifier) Send(subject, htmlBody string) error {
	n.mu.Lock()
	n.sent = append(n.sent, subject)
	n.mu.Unlock()
	n.done <- struct{}{}
	return n.err
}

func (n *stubNotifier) waitForSend(t *testing.T) {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("notifier was never called")
	}
}

func validSubmitInput() SubmitLeadInput {
	return SubmitLeadInput{
		FirstName: "  Maria ",
		LastName:  "Lopez",
		Email:     "Maria.Lopez@Example.com",
		Phone:     "555-0100",
		EventDate: time.Now().UTC().AddDate(0, 0, 14),
		EventTime: "2pm-8pm",
		Address: types.Address{
			Street: "123 Main St",
			City:   "Fresno",
			State:  "CA",
			Zip:    "93701",
		},
		Guests: 40,
		Items:  []types.LineItem{{ItemID: uuid.New(), Qty: 2}},
		Notes:  "backyard party",
	}
}

func buildLeadService(t *testing.T, notifier Notifier) (Service, *stubLeadStore) {
	t.Helper()
	store := newStubLeadStore()
	svc, err := NewService(store, notifier, logger.New(logger.Options{ServiceName: "test"}))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, store
}

func TestSubmitLeadPersistsAndNormalizes(t *testing.T) {
	notifier := newStubNotifier(true, nil)
	svc, store := buildLeadService(t, notifier)

	dto, err := svc.SubmitLead(context.Background(), validSubmitInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if dto.Email != "maria.lopez@example.com" {
		t.Fatalf("expected lowercased email, got %q", dto.Email)
	}
	if dto.FirstName != "Maria" {
		t.Fatalf("expected trimmed first name, got %q", dto.FirstName)
	}
	if dto.Status != enums.LeadStatusNew {
		t.Fatalf("expected new status, got %s", dto.Status)
	}
	if dto.Source != "website" {
		t.Fatalf("expected website source, got %q", dto.Source)
	}
	if _, ok := store.leads[dto.ID]; !ok {
		t.Fatalf("expected lead persisted")
	}

	notifier.waitForSend(t)
}

func TestSubmitLeadRejectsPastEventDate(t *testing.T) {
	svc, store := buildLeadService(t, nil)

	input := validSubmitInput()
	input.EventDate = time.Now().UTC().AddDate(0, 0, -1)

	_, err := svc.SubmitLead(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(store.leads) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestSubmitLeadNotifierFailureDoesNotFailRequest(t *testing.T) {
	notifier := newStubNotifier(true, fmt.Errorf("smtp down"))
	svc, _ := buildLeadService(t, notifier)

	dto, err := svc.SubmitLead(context.Background(), validSubmitInput())
	if err != nil {
		t.Fatalf("expected submit to succeed despite notifier failure, got %v", err)
	}
	if dto == nil {
		t.Fatalf("expected lead dto")
	}

	notifier.waitForSend(t)
}

func TestSubmitLeadSkipsDisabledNotifier(t *testing.T) {
	notifier := newStubNotifier(false, nil)
	svc, _ := buildLeadService(t, notifier)

	if _, err := svc.SubmitLead(context.Background(), validSubmitInput()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	select {
	case <-notifier.done:
		t.Fatalf("expected no email for disabled notifier")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUpdateLeadStatus(t *testing.T) {
	svc, store := buildLeadService(t, nil)

	dto, err := svc.SubmitLead(context.Background(), validSubmitInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	updated, err := svc.UpdateLeadStatus(context.Background(), dto.ID, enums.LeadStatusContacted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != enums.LeadStatusContacted {
		t.Fatalf("expected contacted, got %s", updated.Status)
	}
	if store.leads[dto.ID].Status != enums.LeadStatusContacted {
		t.Fatalf("expected status persisted")
	}

	if _, err := svc.UpdateLeadStatus(context.Background(), dto.ID, enums.LeadStatus("bogus")); err == nil {
		t.Fatalf("expected invalid status to be rejected")
	}
}

func TestUpdateLeadAppliesPartialFields(t *testing.T) {
	svc, store := buildLeadService(t, nil)

	dto, err := svc.SubmitLead(context.Background(), validSubmitInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	notes := "  needs generator "
	guests := 75
	status := enums.LeadStatusQuoted
	updated, err := svc.UpdateLead(context.Background(), dto.ID, UpdateLeadInput{
		Notes:  &notes,
		Guests: &guests,
		Status: &status,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Notes != "needs generator" {
		t.Fatalf("expected trimmed notes, got %q", updated.Notes)
	}
	if updated.Guests != 75 {
		t.Fatalf("expected guests 75, got %d", updated.Guests)
	}
	if updated.Status != enums.LeadStatusQuoted {
		t.Fatalf("expected quoted, got %s", updated.Status)
	}
	if updated.FirstName != "Maria" {
		t.Fatalf("expected untouched first name, got %q", updated.FirstName)
	}
	if store.leads[dto.ID].Guests != 75 {
		t.Fatalf("expected update persisted")
	}

	zero := 0
	if _, err := svc.UpdateLead(context.Background(), dto.ID, UpdateLeadInput{Guests: &zero}); err != nil {
		t.Fatalf("expected zero guests to be allowed, got %v", err)
	}

	negative := -1
	if _, err := svc.UpdateLead(context.Background(), dto.ID, UpdateLeadInput{Guests: &negative}); err == nil {
		t.Fatalf("expected negative guests to be rejected")
	}
}

func TestDeleteLead(t *testing.T) {
	svc, store := buildLeadService(t, nil)

	dto, err := svc.SubmitLead(context.Background(), validSubmitInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := svc.DeleteLead(context.Background(), dto.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.leads) != 0 {
		t.Fatalf("expected lead removed")
	}

	err = svc.DeleteLead(context.Background(), dto.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestGetLeadNotFound(t *testing.T) {
	svc, _ := buildLeadService(t, nil)

	_, err := svc.GetLead(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListLeadsPaginatesAndFilters(t *testing.T) {
	svc, store := buildLeadService(t, nil)

	for i := 0; i < 3; i++ {
		if _, err := svc.SubmitLead(context.Background(), validSubmitInput()); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	for _, lead := range store.leads {
		lead.Status = enums.LeadStatusContacted
		break
	}

	status := enums.LeadStatusContacted
	result, err := svc.ListLeads(context.Background(), ListLeadsInput{
		Status:     &status,
		Pagination: pagination.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 1 || len(result.Items) != 1 {
		t.Fatalf("expected 1 contacted lead, got total=%d items=%d", result.Total, len(result.Items))
	}
	if result.Pages != 1 {
		t.Fatalf("expected 1 page, got %d", result.Pages)
	}
}
