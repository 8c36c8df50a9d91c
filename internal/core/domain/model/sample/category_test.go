package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"labflow/internal/pkg/errs"
)

func TestCategoryFromString(t *testing.T) {
	t.Run("should parse known category names", func(t *testing.T) {
		category, err := CategoryFromString("bloodChemistry")
		assert.NoError(t, err)
		assert.Equal(t, CategoryBloodChemistry, category)

		category, err = CategoryFromString("completeBloodCount")
		assert.NoError(t, err)
		assert.Equal(t, CategoryCompleteBloodCount, category)
	})

	t.Run("should return error for unknown name", func(t *testing.T) {
		category, err := CategoryFromString("urinalysis")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, CategoryUnknown, category)
	})
}

func TestCategoryValidate(t *testing.T) {
	t.Run("should accept known categories", func(t *testing.T) {
		assert.NoError(t, CategoryBloodChemistry.Validate())
		assert.NoError(t, CategoryCompleteBloodCount.Validate())
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		assert.ErrorIs(t, CategoryUnknown.Validate(), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, Category(99).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "bloodChemistry", CategoryBloodChemistry.String())
	assert.Equal(t, "completeBloodCount", CategoryCompleteBloodCount.String())
	assert.Equal(t, "unknown", CategoryUnknown.String())
	assert.Equal(t, "unknown", Category(99).String())
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name         string
		analysisName string
		expected     Category
	}{
		{"should match english chemistry marker", "Blood Chemistry Panel", CategoryBloodChemistry},
		{"should match spanish chemistry marker", "Química sanguínea de 6 elementos", CategoryBloodChemistry},
		{"should match unaccented spanish chemistry marker", "Quimica Sanguinea", CategoryBloodChemistry},
		{"should match english blood count marker", "Complete Blood Count", CategoryCompleteBloodCount},
		{"should match spanish blood count marker", "Biometría Hemática", CategoryCompleteBloodCount},
		{"should match unaccented spanish blood count marker", "biometria hematica completa", CategoryCompleteBloodCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, err := InferCategory(tt.analysisName)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, category)
		})
	}

	t.Run("should return error when no marker matches", func(t *testing.T) {
		category, err := InferCategory("Urinalysis")
		assert.ErrorIs(t, err, ErrUnknownCategory)
		assert.Equal(t, CategoryUnknown, category)
	})
}
