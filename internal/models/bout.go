package models

// Bout is one pool match result.
type Bout struct {
	Meta         `yaml:",inline"`
	PoolID       string `json:"poolId" yaml:"poolId"`
	OpponentName string `json:"opponentName" yaml:"opponentName"`
	ScoreFor     int    `json:"scoreFor" yaml:"scoreFor"`
	ScoreAgainst int    `json:"scoreAgainst" yaml:"scoreAgainst"`
	Victory      bool   `json:"victory" yaml:"victory"`
}

// DEBout is one direct-elimination match result.
type DEBout struct {
	Meta         `yaml:",inline"`
	EntryID      string `json:"entryId" yaml:"entryId"`
	Round        int    `json:"round" yaml:"round"`
	OpponentName string `json:"opponentName" yaml:"opponentName"`
	ScoreFor     int    `json:"scoreFor" yaml:"scoreFor"`
	ScoreAgainst int    `json:"scoreAgainst" yaml:"scoreAgainst"`
	Victory      bool   `json:"victory" yaml:"victory"`
}

// BoutPatch is a partial update shared by pool and DE bouts.
// Round only applies to DE bouts.
type BoutPatch struct {
	OpponentName *string
	ScoreFor     *int
	ScoreAgainst *int
	Victory      *bool
	Round        *int
}

// Apply merges the patch into a pool bout.
func (p BoutPatch) Apply(b *Bout) {
	setString(&b.OpponentName, p.OpponentName)
	setInt(&b.ScoreFor, p.ScoreFor)
	setInt(&b.ScoreAgainst, p.ScoreAgainst)
	setBool(&b.Victory, p.Victory)
}

// ApplyDE merges the patch into a DE bout.
func (p BoutPatch) ApplyDE(b *DEBout) {
	setString(&b.OpponentName, p.OpponentName)
	setInt(&b.ScoreFor, p.ScoreFor)
	setInt(&b.ScoreAgainst, p.ScoreAgainst)
	setBool(&b.Victory, p.Victory)
	setInt(&b.Round, p.Round)
}

// DERounds lists valid bracket sizes, earliest round first.
var DERounds = []int{64, 32, 16, 8, 4, 2, 1}

// IsDERound reports whether round is a valid bracket size.
func IsDERound(round int) bool {
	for _, r := range DERounds {
		if r == round {
			return true
		}
	}
	return false
}
