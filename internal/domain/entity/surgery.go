package entity

// Surgery is a physical clinic location.
type Surgery struct {
	SurgeryNo int      `json:"surgery_no,omitempty"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Address   *Address `json:"address,omitempty"`
	AddressID *int     `json:"address_id,omitempty"`
}
