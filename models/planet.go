package models

type Planet struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"size:100" json:"name"`
	DistanceFromEarth int       `json:"distance_from_earth"`
	NearestStar       string    `gorm:"size:100" json:"nearest_star"`
	Missions          []Mission `gorm:"foreignKey:PlanetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"missions,omitempty"`
}

// PlanetSummary is the list projection of a Planet
type PlanetSummary struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	DistanceFromEarth int    `json:"distance_from_earth"`
	NearestStar       string `json:"nearest_star"`
}

func (p Planet) Summary() PlanetSummary {
	return PlanetSummary{
		ID:                p.ID,
		Name:              p.Name,
		DistanceFromEarth: p.DistanceFromEarth,
		NearestStar:       p.NearestStar,
	}
}
