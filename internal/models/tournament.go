package models

// Tournament is a competition a fencer can enter.
type Tournament struct {
	Meta      `yaml:",inline"`
	Name      string `json:"name" yaml:"name"`
	Location  string `json:"location,omitempty" yaml:"location,omitempty"`
	StartDate string `json:"startDate" yaml:"startDate"`
	EndDate   string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Level     string `json:"level,omitempty" yaml:"level,omitempty"` // Local, Regional, National, International
}

// TournamentPatch is a partial update. Nil fields are left untouched.
type TournamentPatch struct {
	Name      *string
	Location  *string
	StartDate *string
	EndDate   *string
	Level     *string
}

// Apply merges the patch into t.
func (p TournamentPatch) Apply(t *Tournament) {
	setString(&t.Name, p.Name)
	setString(&t.Location, p.Location)
	setString(&t.StartDate, p.StartDate)
	setString(&t.EndDate, p.EndDate)
	setString(&t.Level, p.Level)
}
