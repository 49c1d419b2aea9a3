package entities

// Slot is the public view of a parking slot.
type Slot struct {
	Number int    `json:"number"`
	Status string `json:"status"`
}
