package dto

type CatalogResponse struct {
	Dates          []string            `json:"dates"`
	VehiclesByDate map[string][]string `json:"vehicles_by_date"`
}
