package models

// Entry is one fencer's registration in one tournament.
type Entry struct {
	Meta           `yaml:",inline"`
	FencerID       string `json:"fencerId" yaml:"fencerId"`
	TournamentID   string `json:"tournamentId" yaml:"tournamentId"`
	Weapon         string `json:"weapon,omitempty" yaml:"weapon,omitempty"`
	AgeCategory    string `json:"ageCategory,omitempty" yaml:"ageCategory,omitempty"`
	InitialSeeding int    `json:"initialSeeding,omitempty" yaml:"initialSeeding,omitempty"`
	FinalPlacing   int    `json:"finalPlacing,omitempty" yaml:"finalPlacing,omitempty"`
	Notes          string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// EntryPatch is a partial update. The fencer and tournament links are fixed at creation.
type EntryPatch struct {
	Weapon         *string
	AgeCategory    *string
	InitialSeeding *int
	FinalPlacing   *int
	Notes          *string
}

// Apply merges the patch into e.
func (p EntryPatch) Apply(e *Entry) {
	setString(&e.Weapon, p.Weapon)
	setString(&e.AgeCategory, p.AgeCategory)
	setInt(&e.InitialSeeding, p.InitialSeeding)
	setInt(&e.FinalPlacing, p.FinalPlacing)
	setString(&e.Notes, p.Notes)
}

// Pool is a round-robin group inside an entry.
type Pool struct {
	Meta            `yaml:",inline"`
	EntryID         string `json:"entryId" yaml:"entryId"`
	PoolNumber      int    `json:"poolNumber" yaml:"poolNumber"`
	NumberOfFencers int    `json:"numberOfFencers,omitempty" yaml:"numberOfFencers,omitempty"`
}

// PoolPatch is a partial update. The entry link is fixed at creation.
type PoolPatch struct {
	PoolNumber      *int
	NumberOfFencers *int
}

// Apply merges the patch into p.
func (p PoolPatch) Apply(pool *Pool) {
	setInt(&pool.PoolNumber, p.PoolNumber)
	setInt(&pool.NumberOfFencers, p.NumberOfFencers)
}
