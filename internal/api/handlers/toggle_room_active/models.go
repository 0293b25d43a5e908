package toggle_room_active

// ToggleActiveRequest HTTP request model
type ToggleActiveRequest struct {
	Active bool `json:"active"`
}
