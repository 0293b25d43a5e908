package toggle_location_active

// ToggleActiveRequest HTTP request model
type ToggleActiveRequest struct {
	Active bool `json:"active"`
}
