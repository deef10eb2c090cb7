package dto

type DashboardStats struct {
	Patients     int `json:"patients"`
	Dentists     int `json:"dentists"`
	Appointments int `json:"appointments"`
	Surgeries    int `json:"surgeries"`
}

type DashboardCard struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Value *int   `json:"value,omitempty"`
}

// DashboardResponse only carries Stats for admins.
type DashboardResponse struct {
	Stats *DashboardStats `json:"stats,omitempty"`
	Cards []DashboardCard `json:"cards"`
	Error string          `json:"error,omitempty"`
}
