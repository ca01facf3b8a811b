package packages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service exposes event package browse and admin management operations.
type Service interface {
	ListPackages(ctx context.Context) ([]PackageDTO, error)
	GetPackage(ctx context.Context, idOrSlug string) (*PackageDTO, error)
	CreatePackage(ctx context.Context, input CreatePackageInput) (*PackageDTO, error)
	UpdatePackage(ctx context.Context, id uuid.UUID, input UpdatePackageInput) (*PackageDTO, error)
	DeletePackage(ctx context.Context, id uuid.UUID) error
}

// PackageDTO represents the event package payload returned to clients.
type PackageDTO struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	IncludedItems []types.LineItem `json:"included_items"`
	BasePrice     decimal.Decimal  `json:"base_price"`
	Upsells       []types.Upsell   `json:"upsells"`
	Description   string           `json:"description,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// CreatePackageInput holds the validated payload to create a package.
type CreatePackageInput struct {
	Name          string
	Slug          string
	IncludedItems []types.LineItem
	BasePrice     decimal.Decimal
	Upsells       []types.Upsell
	Description   string
}

// UpdatePackageInput holds optional mutation values for a package.
type UpdatePackageInput struct {
	Name          *string
	Slug          *string
	IncludedItems *[]types.LineItem
	BasePrice     *decimal.Decimal
	Upsells       *[]types.Upsell
	Description   *string
}

type service struct {
	repo *Repository
}

// NewService constructs a package service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("package repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListPackages(ctx context.Context) ([]PackageDTO, error) {
	rows, err := s.repo.ListPackages(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing packages")
	}

	dtos := make([]PackageDTO, len(rows))
	for i := range rows {
		dtos[i] = *newPackageDTO(&rows[i])
	}
	return dtos, nil
}

// GetPackage returns one package by UUID or URL slug.
func (s *service) GetPackage(ctx context.Context, idOrSlug string) (*PackageDTO, error) {
	key := strings.TrimSpace(idOrSlug)
	if key == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "package id or slug is required")
	}

	var (
		row *models.Package
		err error
	)
	if id, parseErr := uuid.Parse(key); parseErr == nil {
		row, err = s.repo.FindByID(ctx, id)
	} else {
		row, err = s.repo.FindBySlug(ctx, strings.ToLower(key))
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading package")
	}
	return newPackageDTO(row), nil
}

func (s *service) CreatePackage(ctx context.Context, input CreatePackageInput) (*PackageDTO, error) {
	if input.BasePrice.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "base_price cannot be negative")
	}

	row := &models.Package{
		Name:          input.Name,
		Slug:          normalizeSlug(input.Slug, input.Name),
		IncludedItems: types.LineItemList(input.IncludedItems),
		BasePrice:     input.BasePrice,
		Upsells:       types.UpsellList(input.Upsells),
		Description:   input.Description,
	}
	if row.IncludedItems == nil {
		row.IncludedItems = types.LineItemList{}
	}
	if row.Upsells == nil {
		row.Upsells = types.UpsellList{}
	}

	created, err := s.repo.CreatePackage(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err, "packages_slug_key") || db.IsUniqueViolation(err, "packages_name_key") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "a package with this name or slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating package")
	}
	return newPackageDTO(created), nil
}

func (s *service) UpdatePackage(ctx context.Context, id uuid.UUID, input UpdatePackageInput) (*PackageDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading package")
	}

	if input.Name != nil {
		row.Name = *input.Name
	}
	if input.Slug != nil {
		row.Slug = normalizeSlug(*input.Slug, row.Name)
	}
	if input.IncludedItems != nil {
		row.IncludedItems = types.LineItemList(*input.IncludedItems)
	}
	if input.BasePrice != nil {
		if input.BasePrice.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "base_price cannot be negative")
		}
		row.BasePrice = *input.BasePrice
	}
	if input.Upsells != nil {
		row.Upsells = types.UpsellList(*input.Upsells)
	}
	if input.Description != nil {
		row.Description = *input.Description
	}

	updated, err := s.repo.UpdatePackage(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err, "packages_slug_key") || db.IsUniqueViolation(err, "packages_name_key") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "a package with this name or slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating package")
	}
	return newPackageDTO(updated), nil
}

func (s *service) DeletePackage(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.DeletePackage(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting package")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
	}
	return nil
}

func newPackageDTO(row *models.Package) *PackageDTO {
	return &PackageDTO{
		ID:            row.ID,
		Name:          row.Name,
		Slug:          row.Slug,
		IncludedItems: append([]types.LineItem{}, row.IncludedItems...),
		BasePrice:     row.BasePrice,
		Upsells:       append([]types.Upsell{}, row.Upsells...),
		Description:   row.Description,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func normalizeSlug(slug, name string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		slug = strings.TrimSpace(strings.ToLower(name))
	}
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}
