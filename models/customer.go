package models

// Customer represents a fabric buyer that orders are placed for
type Customer struct {
	ID             uint    `gorm:"primaryKey" json:"Id"`
	SeqNumber      *int    `json:"SeqNumber,omitempty"`
	FullName       string  `gorm:"not null" json:"FullName"`
	Country        string  `gorm:"not null" json:"Country"`
	Email          string  `gorm:"uniqueIndex;not null" json:"Email"`
	PhoneNumber    string  `gorm:"not null" json:"PhoneNumber"`
	Address        string  `gorm:"not null" json:"Address"`
	Fax            *string `json:"Fax,omitempty"`
	WebSite        *string `json:"WebSite,omitempty"`
	ExhibitionName *string `json:"ExhibitionName,omitempty"`
	Note           *string `json:"Note,omitempty"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
