package model

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	Products   int     `json:"products"`
	Categories int     `json:"categories"`
	Users      int     `json:"users"`
	Orders     int     `json:"orders"`
	Revenue    float64 `json:"revenue"`
}
