package sample

import (
	"errors"
	"strings"

	"labflow/internal/pkg/errs"
)

// ErrUnknownCategory is returned when an analysis name matches no known
// result category marker.
var ErrUnknownCategory = errors.New("analysis name matches no known result category")

// Category is the result-schema variant a sample's results must conform to.
// It is fixed at sample creation time and can never be swapped.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryBloodChemistry requires the eight-field chemistry panel.
	CategoryBloodChemistry

	// CategoryCompleteBloodCount requires the red-cell and white-cell panels.
	CategoryCompleteBloodCount
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:            "unknown",
		CategoryBloodChemistry:     "bloodChemistry",
		CategoryCompleteBloodCount: "completeBloodCount",
	}
}

// CategoryFromString parses a persisted category name.
func CategoryFromString(s string) (Category, error) {
	switch s {
	case "bloodChemistry":
		return CategoryBloodChemistry, nil
	case "completeBloodCount":
		return CategoryCompleteBloodCount, nil
	default:
		return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category", ErrUnknownCategory)
	}
}

// Validate checks the Category against the known set.
func (c Category) Validate() error {
	switch c {
	case CategoryBloodChemistry, CategoryCompleteBloodCount:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("category", ErrUnknownCategory)
	}
}

// String returns the category name as persisted.
func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// Markers are matched case-insensitively against the snapshotted analysis
// name. The catalog carries no explicit category field, so this name
// sniffing is a deliberate, narrow heuristic; it is the single place to
// replace once the catalog grows an explicit category.
var categoryMarkers = []struct {
	category Category
	markers  []string
}{
	{CategoryCompleteBloodCount, []string{"complete blood count", "biometría hemática", "biometria hematica"}},
	{CategoryBloodChemistry, []string{"chemistry", "química sanguínea", "quimica sanguinea"}},
}

// InferCategory derives the result category from an analysis name.
// Returns ErrUnknownCategory when no marker matches; callers treat such
// line items as not collectible.
func InferCategory(analysisName string) (Category, error) {
	lower := strings.ToLower(analysisName)
	for _, entry := range categoryMarkers {
		for _, marker := range entry.markers {
			if strings.Contains(lower, marker) {
				return entry.category, nil
			}
		}
	}
	return CategoryUnknown, ErrUnknownCategory
}
