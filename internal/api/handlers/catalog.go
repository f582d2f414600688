package handlers

import (
	"net/http"

	"route-compare-service/internal/api/dto"
	"route-compare-service/internal/domain"
)

// CatalogHandler exposes the derived selection catalog.
type CatalogHandler struct {
	Catalog domain.SelectionCatalog
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	res := dto.CatalogResponse{
		Dates:          h.Catalog.Dates,
		VehiclesByDate: h.Catalog.VehiclesByDate,
	}
	if res.Dates == nil {
		res.Dates = []string{}
	}
	if res.VehiclesByDate == nil {
		res.VehiclesByDate = map[string][]string{}
	}

	writeJSON(w, r, http.StatusOK, res)
}
