package faq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes FAQ browse and admin management operations.
type Service interface {
	ListActive(ctx context.Context) ([]FAQDTO, error)
	ListAll(ctx context.Context) ([]FAQDTO, error)
	CreateFAQ(ctx context.Context, input CreateFAQInput) (*FAQDTO, error)
	UpdateFAQ(ctx context.Context, id uuid.UUID, input UpdateFAQInput) (*FAQDTO, error)
	DeleteFAQ(ctx context.Context, id uuid.UUID) error
}

// FAQDTO represents the FAQ payload returned to clients.
type FAQDTO struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Sort      int       `json:"sort"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateFAQInput holds the validated payload to create a FAQ entry.
type CreateFAQInput struct {
	Question string
	Answer   string
	Sort     int
	IsActive bool
}

// UpdateFAQInput holds optional mutation values for a FAQ entry.
type UpdateFAQInput struct {
	Question *string
	Answer   *string
	Sort     *int
	IsActive *bool
}

type service struct {
	repo *Repository
}

// NewService constructs a FAQ service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("faq repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListActive(ctx context.Context) ([]FAQDTO, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing faqs")
	}
	return newFAQDTOs(rows), nil
}

func (s *service) ListAll(ctx context.Context) ([]FAQDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing faqs")
	}
	return newFAQDTOs(rows), nil
}

func (s *service) CreateFAQ(ctx context.Context, input CreateFAQInput) (*FAQDTO, error) {
	row := &models.FAQ{
		Question: input.Question,
		Answer:   input.Answer,
		Sort:     input.Sort,
		IsActive: input.IsActive,
	}

	created, err := s.repo.CreateFAQ(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating faq")
	}
	return newFAQDTO(created), nil
}

func (s *service) UpdateFAQ(ctx context.Context, id uuid.UUID, input UpdateFAQInput) (*FAQDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "faq not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading faq")
	}

	if input.Question != nil {
		row.Question = *input.Question
	}
	if input.Answer != nil {
		row.Answer = *input.Answer
	}
	if input.Sort != nil {
		row.Sort = *input.Sort
	}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}

	updated, err := s.repo.UpdateFAQ(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating faq")
	}
	return newFAQDTO(updated), nil
}

func (s *service) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.DeleteFAQ(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting faq")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "faq not found")
	}
	return nil
}

func newFAQDTO(row *models.FAQ) *FAQDTO {
	return &FAQDTO{
		ID:        row.ID,
		Question:  row.Question,
		Answer:    row.Answer,
		Sort:      row.Sort,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func newFAQDTOs(rows []models.FAQ) []FAQDTO {
	dtos := make([]FAQDTO, len(rows))
	for i := range rows {
		dtos[i] = *newFAQDTO(&rows[i])
	}
	return dtos
}
