package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/andrewpaige1/cosmic-travel-api/models"
)

type missionRequest struct {
	Name        string
	ScientistID uint
	PlanetID    uint
}

func newMissionRequest(body requestBody) (req missionRequest, err error) {
	if req.Name, err = body.String("name"); err != nil {
		return req, err
	}
	if req.ScientistID, err = body.ID("scientist_id"); err != nil {
		return req, err
	}
	req.PlanetID, err = body.ID("planet_id")
	return req, err
}

func (req missionRequest) valid() bool {
	return req.Name != "" && req.ScientistID != 0 && req.PlanetID != 0
}

// POST /missions
//
// The referenced scientist and planet are not looked up first; a dangling id
// is only rejected if the store enforces the foreign key.
func (db *DBHandler) CreateMission(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeServerError(w, r, "CreateMission", err)
		return
	}

	req, err := newMissionRequest(body)
	if err != nil {
		writeServerError(w, r, "CreateMission", err)
		return
	}

	if !req.valid() {
		writeValidationErrors(w)
		return
	}

	mission := models.Mission{
		Name:        req.Name,
		ScientistID: req.ScientistID,
		PlanetID:    req.PlanetID,
	}
	if err := db.Create(&mission).Error; err != nil {
		writeServerError(w, r, "CreateMission", err)
		return
	}

	if err := db.Preload("Scientist").Preload("Planet").First(&mission, mission.ID).Error; err != nil {
		writeServerError(w, r, "CreateMission", err)
		return
	}

	log.Info().
		Uint("id", mission.ID).
		Uint("scientist_id", mission.ScientistID).
		Uint("planet_id", mission.PlanetID).
		Msg("Created mission")
	writeJSON(w, http.StatusCreated, mission.View())
}
