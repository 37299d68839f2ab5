package domain

type Airport struct {
	Name      string `json:"name"`
	City      City   `json:"city"`
	Terminals int    `json:"terminals"`
}
