package enums

import "fmt"

// LeadStatus tracks where an inquiry sits in the sales funnel.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQuoted    LeadStatus = "quoted"
	LeadStatusBooked    LeadStatus = "booked"
	LeadStatusClosed    LeadStatus = "closed"
)

var validLeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQuoted,
	LeadStatusBooked,
	LeadStatusClosed,
}

// String implements fmt.Stringer.
func (s LeadStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known LeadStatus.
func (s LeadStatus) IsValid() bool {
	for _, candidate := range validLeadStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseLeadStatus converts raw input into a LeadStatus.
func ParseLeadStatus(value string) (LeadStatus, error) {
	for _, candidate := range validLeadStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid lead status %q", value)
}
