package entity

// Address is a postal address owned by the backend and referenced by patients and surgeries.
type Address struct {
	ID      int    `json:"id,omitempty"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}
