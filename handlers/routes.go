package handlers

import "net/http"

// Routes registers every endpoint on a new mux
func (db *DBHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", db.Home)

	// Scientists
	mux.HandleFunc("GET /scientists", db.GetScientists)
	mux.HandleFunc("POST /scientists", db.CreateScientist)
	mux.HandleFunc("GET /scientists/{id}", db.GetScientistByID)
	mux.HandleFunc("PATCH /scientists/{id}", db.UpdateScientistByID)
	mux.HandleFunc("DELETE /scientists/{id}", db.DeleteScientistByID)

	// Planets
	mux.HandleFunc("GET /planets", db.GetPlanets)

	// Missions
	mux.HandleFunc("POST /missions", db.CreateMission)

	return mux
}

// Home is the liveness placeholder
func (db *DBHandler) Home(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
