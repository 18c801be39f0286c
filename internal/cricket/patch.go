package cricket

// PlayerPatch carries the fields of a partial player update. Nil fields are
// left unchanged.
type PlayerPatch struct {
	ID           string        `json:"id"`
	FullName     *string       `json:"fullName"`
	ShortName    *string       `json:"shortName"`
	BattingStyle *BattingStyle `json:"battingStyle"`
	BowlingStyle *string       `json:"bowlingStyle"`
	Role         *Role         `json:"role"`
	IsActive     *bool         `json:"isActive"`
}

// Apply copies the set fields of the patch onto p.
func (patch PlayerPatch) Apply(p *Player) {
	if patch.FullName != nil {
		p.FullName = *patch.FullName
	}
	if patch.ShortName != nil {
		p.ShortName = *patch.ShortName
	}
	if patch.BattingStyle != nil {
		p.BattingStyle = *patch.BattingStyle
	}
	if patch.BowlingStyle != nil {
		style := *patch.BowlingStyle
		p.BowlingStyle = &style
	}
	if patch.Role != nil {
		p.Role = *patch.Role
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
}
