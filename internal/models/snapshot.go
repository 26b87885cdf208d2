package models

// Snapshot is a point-in-time copy of all six collections.
type Snapshot struct {
	Fencers     []Fencer     `json:"fencers" yaml:"fencers"`
	Tournaments []Tournament `json:"tournaments" yaml:"tournaments"`
	Entries     []Entry      `json:"entries" yaml:"entries"`
	Pools       []Pool       `json:"pools" yaml:"pools"`
	Bouts       []Bout       `json:"bouts" yaml:"bouts"`
	DEBouts     []DEBout     `json:"deBouts" yaml:"deBouts"`
}
