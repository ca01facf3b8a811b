package types

// Address is the event location captured with a lead.
type Address struct {
	Street string `json:"street" gorm:"column:street;not null" validate:"required"`
	City   string `json:"city" gorm:"column:city;not null" validate:"required"`
	State  string `json:"state" gorm:"column:state;not null" validate:"required"`
	Zip    string `json:"zip" gorm:"column:zip;not null" validate:"required,min=4"`
}
