package leads

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/logger"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/pagination"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier delivers the new-lead email. Delivery is best-effort and never
// blocks or fails the intake request.
type Notifier interface {
	Enabled() bool
	Send(subject, htmlBody string) error
}

// Service exposes public lead intake plus admin lead management.
type Service interface {
	SubmitLead(ctx context.Context, input SubmitLeadInput) (*LeadDTO, error)
	ListLeads(ctx context.Context, input ListLeadsInput) (*LeadListResult, error)
	GetLead(ctx context.Context, id uuid.UUID) (*LeadDTO, error)
	UpdateLead(ctx context.Context, id uuid.UUID, input UpdateLeadInput) (*LeadDTO, error)
	UpdateLeadStatus(ctx context.Context, id uuid.UUID, status enums.LeadStatus) (*LeadDTO, error)
	DeleteLead(ctx context.Context, id uuid.UUID) error
}

// SubmitLeadInput holds the validated intake payload. Items is a snapshot of
// the visitor's cart taken at submit time.
type SubmitLeadInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	EventDate time.Time
	EventTime string
	Address   types.Address
	Guests    int
	Items     []types.LineItem
	Notes     string
	Recaptcha string
}

// UpdateLeadInput holds optional mutation values for a lead. Absent fields
// keep their stored values.
type UpdateLeadInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	EventDate *time.Time
	EventTime *string
	Address   *types.Address
	Guests    *int
	Notes     *string
	Status    *enums.LeadStatus
}

type leadStore interface {
	CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Lead, error)
	UpdateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	DeleteLead(ctx context.Context, id uuid.UUID) (int64, error)
	ListLeads(ctx context.Context, input ListLeadsInput) ([]models.Lead, int64, error)
}

type service struct {
	repo     leadStore
	notifier Notifier
	logg     *logger.Logger
}

// NewService constructs a lead service instance.
func NewService(repo leadStore, notifier Notifier, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("lead repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, notifier: notifier, logg: logg}, nil
}

// SubmitLead persists the inquiry and fires the notification email in the
// background. Email failure never surfaces to the caller.
func (s *service) SubmitLead(ctx context.Context, input SubmitLeadInput) (*LeadDTO, error) {
	if input.EventDate.Before(startOfDay(time.Now().UTC())) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event_date cannot be in the past")
	}

	lead := &models.Lead{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:     strings.TrimSpace(input.Phone),
		EventDate: input.EventDate,
		EventTime: strings.TrimSpace(input.EventTime),
		Address:   input.Address,
		Guests:    input.Guests,
		Items:     types.LineItemList(input.Items),
		Notes:     strings.TrimSpace(input.Notes),
		Status:    enums.LeadStatusNew,
		Source:    "website",
		Recaptcha: input.Recaptcha,
	}
	if lead.Items == nil {
		lead.Items = types.LineItemList{}
	}

	created, err := s.repo.CreateLead(ctx, lead)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating lead")
	}

	s.notifyAsync(ctx, created)

	return NewLeadDTO(created), nil
}

// ListLeads returns one page of leads for the admin table.
func (s *service) ListLeads(ctx context.Context, input ListLeadsInput) (*LeadListResult, error) {
	input.Pagination = input.Pagination.Normalize()

	rows, total, err := s.repo.ListLeads(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing leads")
	}

	return &LeadListResult{
		Items: NewLeadDTOs(rows),
		Total: total,
		Page:  input.Pagination.Page,
		Pages: pagination.Pages(total, input.Pagination.Limit),
	}, nil
}

// GetLead loads one lead for the admin detail view.
func (s *service) GetLead(ctx context.Context, id uuid.UUID) (*LeadDTO, error) {
	lead, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "lead not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading lead")
	}
	return NewLeadDTO(lead), nil
}

// UpdateLead applies the provided fields to an existing lead.
func (s *service) UpdateLead(ctx context.Context, id uuid.UUID, input UpdateLeadInput) (*LeadDTO, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status %q", *input.Status))
	}
	if input.Guests != nil && *input.Guests < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "guests cannot be negative")
	}

	lead, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "lead not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading lead")
	}

	if input.FirstName != nil {
		lead.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		lead.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		lead.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Phone != nil {
		lead.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.EventDate != nil {
		lead.EventDate = *input.EventDate
	}
	if input.EventTime != nil {
		lead.EventTime = strings.TrimSpace(*input.EventTime)
	}
	if input.Address != nil {
		lead.Address = *input.Address
	}
	if input.Guests != nil {
		lead.Guests = *input.Guests
	}
	if input.Notes != nil {
		lead.Notes = strings.TrimSpace(*input.Notes)
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}

	updated, err := s.repo.UpdateLead(ctx, lead)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating lead")
	}
	return NewLeadDTO(updated), nil
}

// UpdateLeadStatus moves a lead through the pipeline.
func (s *service) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status enums.LeadStatus) (*LeadDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status %q", status))
	}

	lead, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "lead not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading lead")
	}

	lead.Status = status
	updated, err := s.repo.UpdateLead(ctx, lead)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating lead status")
	}
	return NewLeadDTO(updated), nil
}

// DeleteLead removes a lead permanently.
func (s *service) DeleteLead(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.DeleteLead(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting lead")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "lead not found")
	}
	return nil
}

// notifyAsync sends the new-lead email without blocking the request. The
// goroutine reuses the request's logger fields but not its cancellation.
func (s *service) notifyAsync(ctx context.Context, lead *models.Lead) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return
	}

	bg := context.WithoutCancel(ctx)
	subject := fmt.Sprintf("New lead: %s %s (%s)", lead.FirstName, lead.LastName, lead.EventDate.Format("2006-01-02"))
	body := leadEmailBody(lead)

	go func() {
		if err := s.notifier.Send(subject, body); err != nil {
			s.logg.Warn(bg, fmt.Sprintf("lead notification email failed (lead_id=%s): %v", lead.ID, err))
		}
	}()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
