package handlers

import (
	"net/http"

	"github.com/andrewpaige1/cosmic-travel-api/models"
)

// GET /planets
func (db *DBHandler) GetPlanets(w http.ResponseWriter, r *http.Request) {
	var planets []models.Planet
	if err := db.Order("id").Find(&planets).Error; err != nil {
		writeServerError(w, r, "GetPlanets", err)
		return
	}

	response := make([]models.PlanetSummary, 0, len(planets))
	for _, p := range planets {
		response = append(response, p.Summary())
	}

	writeJSON(w, http.StatusOK, response)
}
