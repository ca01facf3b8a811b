package leads

import (
	"time"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/pagination"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
	"github.com/google/uuid"
)

// LeadDTO represents the lead payload returned to the admin screens.
type LeadDTO struct {
	ID        uuid.UUID        `json:"id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	EventDate string           `json:"event_date"`
	EventTime string           `json:"event_time"`
	Address   types.Address    `json:"address"`
	Guests    int              `json:"guests"`
	Items     []types.LineItem `json:"items"`
	Notes     string           `json:"notes,omitempty"`
	Status    enums.LeadStatus `json:"status"`
	Source    string           `json:"source"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ListLeadsInput captures the admin list filters.
type ListLeadsInput struct {
	Status     *enums.LeadStatus
	Pagination pagination.Params
}

// LeadListResult is the page envelope for the admin lead table.
type LeadListResult struct {
	Items []LeadDTO `json:"items"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Pages int       `json:"pages"`
}

// NewLeadDTO builds a DTO from the persisted model. The event date is
// rendered as YYYY-MM-DD to match the intake payload.
func NewLeadDTO(lead *models.Lead) *LeadDTO {
	return &LeadDTO{
		ID:        lead.ID,
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Email:     lead.Email,
		Phone:     lead.Phone,
		EventDate: lead.EventDate.Format("2006-01-02"),
		EventTime: lead.EventTime,
		Address:   lead.Address,
		Guests:    lead.Guests,
		Items:     append([]types.LineItem{}, lead.Items...),
		Notes:     lead.Notes,
		Status:    lead.Status,
		Source:    lead.Source,
		CreatedAt: lead.CreatedAt,
		UpdatedAt: lead.UpdatedAt,
	}
}

// NewLeadDTOs maps the model slice.
func NewLeadDTOs(rows []models.Lead) []LeadDTO {
	dtos := make([]LeadDTO, len(rows))
	for i := range rows {
		dtos[i] = *NewLeadDTO(&rows[i])
	}
	return dtos
}
