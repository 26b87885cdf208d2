package models

import (
	"fmt"
	"strings"
)

// Weapon codes.
const (
	WeaponFoil  = "F"
	WeaponEpee  = "E"
	WeaponSaber = "S"
)

var weaponNames = map[string]string{
	WeaponFoil:  "Foil",
	WeaponEpee:  "Épée",
	WeaponSaber: "Saber",
}

// ParseWeapon normalizes a weapon code or name to its code.
func ParseWeapon(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "foil":
		return WeaponFoil, true
	case "e", "épée", "epee":
		return WeaponEpee, true
	case "s", "saber", "sabre":
		return WeaponSaber, true
	}
	return "", false
}

// WeaponName returns the display name for a weapon code.
// Unknown codes are returned unchanged.
func WeaponName(code string) string {
	if name, ok := weaponNames[code]; ok {
		return name
	}
	return code
}

// AgeCategories lists known age category codes, youngest first.
var AgeCategories = []string{"Y10", "Y12", "Y14", "Cadet", "Junior", "Senior", "Veteran"}

var ageCategoryNames = map[string]string{
	"Y10":     "Y10 (Under 10)",
	"Y12":     "Y12 (Under 12)",
	"Y14":     "Y14 (Under 14)",
	"Cadet":   "Cadet (Under 17)",
	"Junior":  "Junior (Under 20)",
	"Senior":  "Senior (Open)",
	"Veteran": "Veteran (40+)",
}

// IsAgeCategory reports whether code is a known age category.
func IsAgeCategory(code string) bool {
	_, ok := ageCategoryNames[code]
	return ok
}

// AgeCategoryName returns the display name for an age category code.
func AgeCategoryName(code string) string {
	if name, ok := ageCategoryNames[code]; ok {
		return name
	}
	return code
}

// DERoundName returns the display name for a DE bracket size.
func DERoundName(round int) string {
	switch round {
	case 64:
		return "Table of 64"
	case 32:
		return "Table of 32"
	case 16:
		return "Table of 16"
	case 8:
		return "Quarterfinals"
	case 4:
		return "Semifinals"
	case 2:
		return "Finals"
	case 1:
		return "Gold Medal Bout"
	}
	return fmt.Sprintf("Round of %d", round)
}

// FormatPlacing renders a placing as an ordinal ("1st", "12th", "23rd").
// Zero means not recorded and renders as an empty string.
func FormatPlacing(placing int) string {
	if placing <= 0 {
		return ""
	}
	j, k := placing%10, placing%100
	switch {
	case j == 1 && k != 11:
		return fmt.Sprintf("%dst", placing)
	case j == 2 && k != 12:
		return fmt.Sprintf("%dnd", placing)
	case j == 3 && k != 13:
		return fmt.Sprintf("%drd", placing)
	}
	return fmt.Sprintf("%dth", placing)
}
