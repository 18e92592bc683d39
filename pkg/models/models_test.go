package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSkinType(t *testing.T) {
	for _, skinType := range ValidSkinTypes {
		assert.True(t, IsValidSkinType(skinType))
	}

	assert.False(t, IsValidSkinType(""))
	assert.False(t, IsValidSkinType("scaly"))
	// The catalog sentinel is not a valid profile value.
	assert.False(t, IsValidSkinType(SkinTypeAll))
}

func TestIsValidSensitivity(t *testing.T) {
	for _, sensitivity := range ValidSensitivities {
		assert.True(t, IsValidSensitivity(sensitivity))
	}

	assert.False(t, IsValidSensitivity(""))
	assert.False(t, IsValidSensitivity("extreme"))
}

func TestAffectsSkinType(t *testing.T) {
	record := IngredientRecord{AffectedSkinTypes: []string{SkinTypeDry, SkinTypeSensitive}}

	assert.True(t, record.AffectsSkinType(SkinTypeDry))
	assert.True(t, record.AffectsSkinType(SkinTypeSensitive))
	assert.False(t, record.AffectsSkinType(SkinTypeOily))
	assert.False(t, record.AffectsSkinType(""))
}

func TestAffectsSkinTypeAllSentinel(t *testing.T) {
	record := IngredientRecord{AffectedSkinTypes: []string{SkinTypeAll}}

	for _, skinType := range ValidSkinTypes {
		assert.True(t, record.AffectsSkinType(skinType))
	}
}

func TestAffectsSkinTypeEmpty(t *testing.T) {
	record := IngredientRecord{}
	assert.False(t, record.AffectsSkinType(SkinTypeDry))
}
