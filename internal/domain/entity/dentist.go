package entity

// Dentist belongs to at most one surgery.
type Dentist struct {
	ID             int      `json:"id,omitempty"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	Specialization string   `json:"specialization"`
	Surgery        *Surgery `json:"surgery,omitempty"`
	SurgeryID      *int     `json:"surgery_id,omitempty"`
}
