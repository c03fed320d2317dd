package models

// Scientist represents a researcher who can be assigned to missions
type Scientist struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"unique;not null;size:100" json:"name"`
	FieldOfStudy string    `gorm:"not null;size:100" json:"field_of_study"`
	Missions     []Mission `gorm:"foreignKey:ScientistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"missions"`
}

// ScientistSummary is the list projection of a Scientist
type ScientistSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	FieldOfStudy string `json:"field_of_study"`
}

func (s Scientist) Summary() ScientistSummary {
	return ScientistSummary{
		ID:           s.ID,
		Name:         s.Name,
		FieldOfStudy: s.FieldOfStudy,
	}
}
