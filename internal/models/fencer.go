package models

// Fencer is an athlete being tracked.
type Fencer struct {
	Meta            `yaml:",inline"`
	Name            string `json:"name" yaml:"name"`
	Club            string `json:"club,omitempty" yaml:"club,omitempty"`
	PrimaryWeapon   string `json:"primaryWeapon,omitempty" yaml:"primaryWeapon,omitempty"`
	SecondaryWeapon string `json:"secondaryWeapon,omitempty" yaml:"secondaryWeapon,omitempty"`
	Rating          string `json:"rating,omitempty" yaml:"rating,omitempty"`
	DateOfBirth     string `json:"dateOfBirth,omitempty" yaml:"dateOfBirth,omitempty"`
	Gender          string `json:"gender,omitempty" yaml:"gender,omitempty"`
}

// FencerPatch is a partial update. Nil fields are left untouched.
type FencerPatch struct {
	Name            *string
	Club            *string
	PrimaryWeapon   *string
	SecondaryWeapon *string
	Rating          *string
	DateOfBirth     *string
	Gender          *string
}

// Apply merges the patch into f.
func (p FencerPatch) Apply(f *Fencer) {
	setString(&f.Name, p.Name)
	setString(&f.Club, p.Club)
	setString(&f.PrimaryWeapon, p.PrimaryWeapon)
	setString(&f.SecondaryWeapon, p.SecondaryWeapon)
	setString(&f.Rating, p.Rating)
	setString(&f.DateOfBirth, p.DateOfBirth)
	setString(&f.Gender, p.Gender)
}

// Gender codes.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// GenderName returns the display name for a gender code.
func GenderName(code string) string {
	switch code {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	}
	return code
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
