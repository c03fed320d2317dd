package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andrewpaige1/cosmic-travel-api/models"
	"github.com/andrewpaige1/cosmic-travel-api/utils"
)

type scientistRequest struct {
	Name         string
	FieldOfStudy string
}

func newScientistRequest(body requestBody) (req scientistRequest, err error) {
	if req.Name, err = body.String("name"); err != nil {
		return req, err
	}
	req.FieldOfStudy, err = body.String("field_of_study")
	return req, err
}

// readScientistRequest decodes the body, answering 500 itself on failure
func readScientistRequest(w http.ResponseWriter, r *http.Request, op string) (scientistRequest, bool) {
	body, err := decodeBody(r)
	if err == nil {
		var req scientistRequest
		if req, err = newScientistRequest(body); err == nil {
			return req, true
		}
	}

	writeServerError(w, r, op, err)
	return scientistRequest{}, false
}

func (req scientistRequest) valid() bool {
	return req.Name != "" && req.FieldOfStudy != ""
}

// findScientist loads a scientist by the {id} path value. It writes the 404
// or 500 response itself and returns false when the caller should stop.
func (db *DBHandler) findScientist(w http.ResponseWriter, r *http.Request, op string) (models.Scientist, bool) {
	var scientist models.Scientist

	id, ok := utils.GetPathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return scientist, false
	}

	if err := db.First(&scientist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Debug().Str("op", op).Uint("id", id).Msg("Scientist not found")
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "Scientist not found"})
			return scientist, false
		}
		writeServerError(w, r, op, err)
		return scientist, false
	}

	return scientist, true
}

// loadMissions fills in the scientist's missions with their planets
func (db *DBHandler) loadMissions(scientist *models.Scientist) error {
	scientist.Missions = []models.Mission{}
	return db.Preload("Planet").Where("scientist_id = ?", scientist.ID).Order("id").Find(&scientist.Missions).Error
}

// GET /scientists
func (db *DBHandler) GetScientists(w http.ResponseWriter, r *http.Request) {
	var scientists []models.Scientist
	if err := db.Order("id").Find(&scientists).Error; err != nil {
		writeServerError(w, r, "GetScientists", err)
		return
	}

	response := make([]models.ScientistSummary, 0, len(scientists))
	for _, s := range scientists {
		response = append(response, s.Summary())
	}

	writeJSON(w, http.StatusOK, response)
}

// GET /scientists/{id}
func (db *DBHandler) GetScientistByID(w http.ResponseWriter, r *http.Request) {
	scientist, ok := db.findScientist(w, r, "GetScientistByID")
	if !ok {
		return
	}

	if err := db.loadMissions(&scientist); err != nil {
		writeServerError(w, r, "GetScientistByID", err)
		return
	}

	writeJSON(w, http.StatusOK, scientist)
}

// POST /scientists
func (db *DBHandler) CreateScientist(w http.ResponseWriter, r *http.Request) {
	req, ok := readScientistRequest(w, r, "CreateScientist")
	if !ok {
		return
	}

	if !req.valid() {
		writeValidationErrors(w)
		return
	}

	scientist := models.Scientist{
		Name:         req.Name,
		FieldOfStudy: req.FieldOfStudy,
	}
	if err := db.Create(&scientist).Error; err != nil {
		writeServerError(w, r, "CreateScientist", err)
		return
	}
	scientist.Missions = []models.Mission{}

	log.Info().Uint("id", scientist.ID).Str("name", scientist.Name).Msg("Created scientist")
	writeJSON(w, http.StatusCreated, scientist)
}

// PATCH /scientists/{id}
func (db *DBHandler) UpdateScientistByID(w http.ResponseWriter, r *http.Request) {
	scientist, ok := db.findScientist(w, r, "UpdateScientistByID")
	if !ok {
		return
	}

	req, ok := readScientistRequest(w, r, "UpdateScientistByID")
	if !ok {
		return
	}

	if !req.valid() {
		writeValidationErrors(w)
		return
	}

	scientist.Name = req.Name
	scientist.FieldOfStudy = req.FieldOfStudy

	// Both columns go out in a single UPDATE
	err := db.Model(&scientist).Select("Name", "FieldOfStudy").Updates(&scientist).Error
	if err != nil {
		writeServerError(w, r, "UpdateScientistByID", err)
		return
	}

	if err := db.loadMissions(&scientist); err != nil {
		writeServerError(w, r, "UpdateScientistByID", err)
		return
	}

	log.Info().Uint("id", scientist.ID).Msg("Updated scientist")
	writeJSON(w, http.StatusAccepted, scientist)
}

// DELETE /scientists/{id}
func (db *DBHandler) DeleteScientistByID(w http.ResponseWriter, r *http.Request) {
	scientist, ok := db.findScientist(w, r, "DeleteScientistByID")
	if !ok {
		return
	}

	// Missions go with the scientist even when the store does not enforce
	// foreign keys
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Select("Missions").Delete(&scientist).Error
	})
	if err != nil {
		writeServerError(w, r, "DeleteScientistByID", err)
		return
	}

	log.Info().Uint("id", scientist.ID).Msg("Deleted scientist")
	w.WriteHeader(http.StatusNoContent)
}
