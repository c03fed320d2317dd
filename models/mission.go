package models

// Mission joins one Scientist with one Planet
type Mission struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:200" json:"name"`
	ScientistID uint   `gorm:"not null;index" json:"scientist_id"`
	PlanetID    uint   `gorm:"not null;index" json:"planet_id"`

	// Loaded on demand; nil when not preloaded or the row is missing
	Scientist *Scientist `gorm:"foreignKey:ScientistID" json:"scientist,omitempty"`
	Planet    *Planet    `gorm:"foreignKey:PlanetID" json:"planet,omitempty"`
}

// MissionView serializes a mission with flat summaries of its scientist
// and planet instead of the full nested records
type MissionView struct {
	Mission
	Scientist *ScientistSummary `json:"scientist,omitempty"`
	Planet    *PlanetSummary    `json:"planet,omitempty"`
}

func (m Mission) View() MissionView {
	view := MissionView{Mission: m}
	if m.Scientist != nil {
		s := m.Scientist.Summary()
		view.Scientist = &s
	}
	if m.Planet != nil {
		p := m.Planet.Summary()
		view.Planet = &p
	}
	return view
}

// All returns every model managed by the schema migration
func All() []any {
	return []any{&Scientist{}, &Planet{}, &Mission{}}
}
