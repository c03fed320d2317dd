package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andrewpaige1/cosmic-travel-api/models"
)

// Seed fills an empty store with sample planets, scientists and missions.
// It does nothing when any scientist already exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Scientist{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count scientists: %w", err)
	}
	if count > 0 {
		log.Debug().Int64("scientists", count).Msg("Seed skipped, store not empty")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		planets := []models.Planet{
			{Name: "TauCeti F", DistanceFromEarth: 12, NearestStar: "TauCeti"},
			{Name: "Maxxor", DistanceFromEarth: 7836, NearestStar: "Canus Maximus"},
			{Name: "Kepler-22b", DistanceFromEarth: 620, NearestStar: "Kepler-22"},
		}
		if err := tx.Create(&planets).Error; err != nil {
			return fmt.Errorf("seed planets: %w", err)
		}

		scientists := []models.Scientist{
			{Name: "Mel T. Valent", FieldOfStudy: "xenobiology"},
			{Name: "P. Legrange", FieldOfStudy: "orbital mechanics"},
			{Name: "Bevan Ellsworth", FieldOfStudy: "astrophysics"},
		}
		if err := tx.Create(&scientists).Error; err != nil {
			return fmt.Errorf("seed scientists: %w", err)
		}

		missions := []models.Mission{
			{Name: "Explore Maxxor", ScientistID: scientists[0].ID, PlanetID: planets[1].ID},
			{Name: "Survey TauCeti F", ScientistID: scientists[1].ID, PlanetID: planets[0].ID},
			{Name: "Map Kepler-22b", ScientistID: scientists[1].ID, PlanetID: planets[2].ID},
		}
		if err := tx.Create(&missions).Error; err != nil {
			return fmt.Errorf("seed missions: %w", err)
		}

		log.Info().
			Int("planets", len(planets)).
			Int("scientists", len(scientists)).
			Int("missions", len(missions)).
			Msg("Seeded database")

		return nil
	})
}
