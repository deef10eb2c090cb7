package entity

import "fmt"

// Patient is identified by PatientNo, which never changes after creation.
type Patient struct {
	PatientNo int      `json:"patient_no,omitempty"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Address   *Address `json:"address,omitempty"`
	AddressID *int     `json:"address_id,omitempty"`
}

// FullName joins first and last name the way listings display it.
func (p *Patient) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}
