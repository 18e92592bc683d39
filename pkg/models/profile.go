package models

// Skin type values a profile may declare.
const (
	SkinTypeNormal      = "normal"
	SkinTypeDry         = "dry"
	SkinTypeOily        = "oily"
	SkinTypeCombination = "combination"
	SkinTypeSensitive   = "sensitive"
)

// SkinTypeAll is the catalog sentinel meaning an ingredient affects every skin type.
const SkinTypeAll = "all"

// ValidSkinTypes contains all valid skin type values.
var ValidSkinTypes = []string{SkinTypeNormal, SkinTypeDry, SkinTypeOily, SkinTypeCombination, SkinTypeSensitive}

// Sensitivity level values a profile may declare.
const (
	SensitivityNone     = "none"
	SensitivityMild     = "mild"
	SensitivityModerate = "moderate"
	SensitivitySevere   = "severe"
)

// ValidSensitivities contains all valid sensitivity values.
var ValidSensitivities = []string{SensitivityNone, SensitivityMild, SensitivityModerate, SensitivitySevere}

// IsValidSkinType checks if the given skin type is valid.
func IsValidSkinType(skinType string) bool {
	for _, t := range ValidSkinTypes {
		if t == skinType {
			return true
		}
	}
	return false
}

// IsValidSensitivity checks if the given sensitivity level is valid.
func IsValidSensitivity(sensitivity string) bool {
	for _, s := range ValidSensitivities {
		if s == sensitivity {
			return true
		}
	}
	return false
}

// SkinProfile is a user's declared skin type, sensitivity level and known
// allergy categories. It is immutable for the duration of one analysis.
type SkinProfile struct {
	SkinType    string   `json:"skin_type"`
	Sensitivity string   `json:"sensitivity"`
	Allergies   []string `json:"allergies"`
}
