package sample

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSchemaMismatch is the sentinel behind SchemaMismatchError.
	ErrSchemaMismatch = errors.New("result payload does not match the category schema")

	// ErrResultPayloadIsNotConstructed is returned when a ResultPayload was
	// not created through NewResultPayload or RestoreResultPayload.
	ErrResultPayloadIsNotConstructed = errors.New("ResultPayload must be created via NewResultPayload constructor")
)

// SchemaMismatchError reports exactly which required fields are missing and
// which submitted fields do not belong to the category's schema.
type SchemaMismatchError struct {
	Category Category
	Missing  []string
	Extra    []string
}

func (e *SchemaMismatchError) Error() string {
	parts := []string{fmt.Sprintf("%s: category %s", ErrSchemaMismatch, e.Category)}
	if len(e.Missing) > 0 {
		parts = append(parts, "missing fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "extra fields: "+strings.Join(e.Extra, ", "))
	}
	return strings.Join(parts, "; ")
}

func (e *SchemaMismatchError) Unwrap() error {
	return ErrSchemaMismatch
}

// Field sets per category. This registry is the single source of truth for
// result validation; RegisterResults and EditResults both go through it.
var bloodChemistryFields = []string{
	"glucose",
	"glucosePostprandial",
	"uricAcid",
	"urea",
	"creatinine",
	"cholesterol",
	"ldh",
	"gammaGt",
}

var redCellPanelFields = []string{
	"hemoglobin",
	"hematocrit",
	"erythrocytes",
	"meanHbConcentration",
	"meanCorpuscularVolume",
	"meanCorpuscularHb",
	"platelets",
}

var whiteCellPanelFields = []string{
	"leukocyteCount",
	"lymphocytes",
	"monocytes",
	"segmentedNeutrophils",
	"bandForms",
	"totalNeutrophils",
	"eosinophils",
	"basophils",
}

// RequiredFields returns the flat field set a category's payload must carry.
// Complete blood count fields span both panels.
func RequiredFields(category Category) []string {
	switch category {
	case CategoryBloodChemistry:
		fields := make([]string, len(bloodChemistryFields))
		copy(fields, bloodChemistryFields)
		return fields
	case CategoryCompleteBloodCount:
		fields := make([]string, 0, len(redCellPanelFields)+len(whiteCellPanelFields))
		fields = append(fields, redCellPanelFields...)
		fields = append(fields, whiteCellPanelFields...)
		return fields
	default:
		return nil
	}
}

// ValidateFields checks a submitted field map against the category's required
// set. The payload must match exactly: every required field present, nothing
// else. Values carry no implicit range validation; normal-range display is a
// presentation concern outside this engine.
func ValidateFields(category Category, fields map[string]float64) error {
	if err := category.Validate(); err != nil {
		return err
	}

	required := RequiredFields(category)
	requiredSet := make(map[string]struct{}, len(required))
	for _, f := range required {
		requiredSet[f] = struct{}{}
	}

	var missing, extra []string
	for _, f := range required {
		if _, ok := fields[f]; !ok {
			missing = append(missing, f)
		}
	}
	for f := range fields {
		if _, ok := requiredSet[f]; !ok {
			extra = append(extra, f)
		}
	}

	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(missing)
		sort.Strings(extra)
		return &SchemaMismatchError{Category: category, Missing: missing, Extra: extra}
	}

	return nil
}

// BloodChemistryResult is the eight-value chemistry panel.
type BloodChemistryResult struct {
	Glucose             float64 `json:"glucose"`
	GlucosePostprandial float64 `json:"glucosePostprandial"`
	UricAcid            float64 `json:"uricAcid"`
	Urea                float64 `json:"urea"`
	Creatinine          float64 `json:"creatinine"`
	Cholesterol         float64 `json:"cholesterol"`
	LDH                 float64 `json:"ldh"`
	GammaGT             float64 `json:"gammaGt"`
}

// RedCellPanel is the erythrocyte side of a complete blood count.
type RedCellPanel struct {
	Hemoglobin            float64 `json:"hemoglobin"`
	Hematocrit            float64 `json:"hematocrit"`
	Erythrocytes          float64 `json:"erythrocytes"`
	MeanHbConcentration   float64 `json:"meanHbConcentration"`
	MeanCorpuscularVolume float64 `json:"meanCorpuscularVolume"`
	MeanCorpuscularHb     float64 `json:"meanCorpuscularHb"`
	Platelets             float64 `json:"platelets"`
}

// WhiteCellPanel is the leukocyte side of a complete blood count.
type WhiteCellPanel struct {
	LeukocyteCount       float64 `json:"leukocyteCount"`
	Lymphocytes          float64 `json:"lymphocytes"`
	Monocytes            float64 `json:"monocytes"`
	SegmentedNeutrophils float64 `json:"segmentedNeutrophils"`
	BandForms            float64 `json:"bandForms"`
	TotalNeutrophils     float64 `json:"totalNeutrophils"`
	Eosinophils          float64 `json:"eosinophils"`
	Basophils            float64 `json:"basophils"`
}

// CompleteBloodCountResult groups the red-cell and white-cell panels.
type CompleteBloodCountResult struct {
	RedCellPanel   RedCellPanel   `json:"redCellPanel"`
	WhiteCellPanel WhiteCellPanel `json:"whiteCellPanel"`
}

// ResultPayload is a tagged union over the two result shapes. The category
// discriminant decides which variant is populated; exactly one ever is.
type ResultPayload struct {
	category           Category
	bloodChemistry     *BloodChemistryResult
	completeBloodCount *CompleteBloodCountResult

	isConstructed bool
}

// NewResultPayload validates the submitted fields against the category's
// schema and builds the matching typed variant. Nothing is built on a
// schema mismatch, so no partial payload can ever be persisted.
func NewResultPayload(category Category, fields map[string]float64) (ResultPayload, error) {
	if err := ValidateFields(category, fields); err != nil {
		return ResultPayload{}, err
	}

	payload := ResultPayload{
		category:      category,
		isConstructed: true,
	}

	switch category {
	case CategoryBloodChemistry:
		payload.bloodChemistry = &BloodChemistryResult{
			Glucose:             fields["glucose"],
			GlucosePostprandial: fields["glucosePostprandial"],
			UricAcid:            fields["uricAcid"],
			Urea:                fields["urea"],
			Creatinine:          fields["creatinine"],
			Cholesterol:         fields["cholesterol"],
			LDH:                 fields["ldh"],
			GammaGT:             fields["gammaGt"],
		}
	case CategoryCompleteBloodCount:
		payload.completeBloodCount = &CompleteBloodCountResult{
			RedCellPanel: RedCellPanel{
				Hemoglobin:            fields["hemoglobin"],
				Hematocrit:            fields["hematocrit"],
				Erythrocytes:          fields["erythrocytes"],
				MeanHbConcentration:   fields["meanHbConcentration"],
				MeanCorpuscularVolume: fields["meanCorpuscularVolume"],
				MeanCorpuscularHb:     fields["meanCorpuscularHb"],
				Platelets:             fields["platelets"],
			},
			WhiteCellPanel: WhiteCellPanel{
				LeukocyteCount:       fields["leukocyteCount"],
				Lymphocytes:          fields["lymphocytes"],
				Monocytes:            fields["monocytes"],
				SegmentedNeutrophils: fields["segmentedNeutrophils"],
				BandForms:            fields["bandForms"],
				TotalNeutrophils:     fields["totalNeutrophils"],
				Eosinophils:          fields["eosinophils"],
				Basophils:            fields["basophils"],
			},
		}
	}

	return payload, nil
}

// Validate ensures the payload was created through a constructor.
func (p ResultPayload) Validate() error {
	if !p.isConstructed {
		return ErrResultPayloadIsNotConstructed
	}
	return nil
}

// Category returns the discriminant.
func (p ResultPayload) Category() Category {
	return p.category
}

// BloodChemistry returns the chemistry variant, or false when the payload
// carries a complete blood count.
func (p ResultPayload) BloodChemistry() (BloodChemistryResult, bool) {
	if p.bloodChemistry == nil {
		return BloodChemistryResult{}, false
	}
	return *p.bloodChemistry, true
}

// CompleteBloodCount returns the blood count variant, or false when the
// payload carries a chemistry panel.
func (p ResultPayload) CompleteBloodCount() (CompleteBloodCountResult, bool) {
	if p.completeBloodCount == nil {
		return CompleteBloodCountResult{}, false
	}
	return *p.completeBloodCount, true
}

// Fields flattens the payload back into the field map it was built from.
// Snapshots round-trip through this: submitted fields come back unchanged.
func (p ResultPayload) Fields() map[string]float64 {
	fields := make(map[string]float64)
	switch p.category {
	case CategoryBloodChemistry:
		bc := p.bloodChemistry
		fields["glucose"] = bc.Glucose
		fields["glucosePostprandial"] = bc.GlucosePostprandial
		fields["uricAcid"] = bc.UricAcid
		fields["urea"] = bc.Urea
		fields["creatinine"] = bc.Creatinine
		fields["cholesterol"] = bc.Cholesterol
		fields["ldh"] = bc.LDH
		fields["gammaGt"] = bc.GammaGT
	case CategoryCompleteBloodCount:
		red := p.completeBloodCount.RedCellPanel
		fields["hemoglobin"] = red.Hemoglobin
		fields["hematocrit"] = red.Hematocrit
		fields["erythrocytes"] = red.Erythrocytes
		fields["meanHbConcentration"] = red.MeanHbConcentration
		fields["meanCorpuscularVolume"] = red.MeanCorpuscularVolume
		fields["meanCorpuscularHb"] = red.MeanCorpuscularHb
		fields["platelets"] = red.Platelets

		white := p.completeBloodCount.WhiteCellPanel
		fields["leukocyteCount"] = white.LeukocyteCount
		fields["lymphocytes"] = white.Lymphocytes
		fields["monocytes"] = white.Monocytes
		fields["segmentedNeutrophils"] = white.SegmentedNeutrophils
		fields["bandForms"] = white.BandForms
		fields["totalNeutrophils"] = white.TotalNeutrophils
		fields["eosinophils"] = white.Eosinophils
		fields["basophils"] = white.Basophils
	}
	return fields
}

// resultPayloadJSON is the persistence and wire form of the union.
type resultPayloadJSON struct {
	Category           string                    `json:"category"`
	BloodChemistry     *BloodChemistryResult     `json:"bloodChemistry,omitempty"`
	CompleteBloodCount *CompleteBloodCountResult `json:"completeBloodCount,omitempty"`
}

// MarshalJSON serializes the payload with its category discriminant.
func (p ResultPayload) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(resultPayloadJSON{
		Category:           p.category.String(),
		BloodChemistry:     p.bloodChemistry,
		CompleteBloodCount: p.completeBloodCount,
	})
}

// UnmarshalJSON reconstructs the payload, re-validating the variant against
// the category discriminant.
func (p *ResultPayload) UnmarshalJSON(data []byte) error {
	var raw resultPayloadJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	category, err := CategoryFromString(raw.Category)
	if err != nil {
		return err
	}

	switch category {
	case CategoryBloodChemistry:
		if raw.BloodChemistry == nil {
			return &SchemaMismatchError{Category: category, Missing: bloodChemistryFields}
		}
		p.bloodChemistry = raw.BloodChemistry
		p.completeBloodCount = nil
	case CategoryCompleteBloodCount:
		if raw.CompleteBloodCount == nil {
			return &SchemaMismatchError{Category: category, Missing: RequiredFields(category)}
		}
		p.completeBloodCount = raw.CompleteBloodCount
		p.bloodChemistry = nil
	}

	p.category = category
	p.isConstructed = true
	return nil
}
