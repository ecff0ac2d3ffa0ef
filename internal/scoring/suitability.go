package scoring

import "github.com/aquabench/aquabench-cli/internal/water"

// SuitabilityTag marks a water as appropriate for a vulnerable or specific
// consumer group. These facets are independent of the numeric score and use
// their own cutoffs; they are never folded into Score.
type SuitabilityTag string

const (
	SuitInfants   SuitabilityTag = "infants"
	SuitSeniors   SuitabilityTag = "seniors"
	SuitSport     SuitabilityTag = "sport"
	SuitDigestion SuitabilityTag = "digestion"
)

// Suitability derives the consumer-group facets of a record.
func Suitability(rec *water.Record) []SuitabilityTag {
	var tags []SuitabilityTag

	if rec.Sodium != nil && *rec.Sodium <= 20 &&
		rec.PH != nil && *rec.PH >= 6.5 && *rec.PH <= 7.5 &&
		(rec.PFASSum == nil || *rec.PFASSum <= 10) &&
		(rec.Nitrate == nil || *rec.Nitrate <= 2) {
		tags = append(tags, SuitInfants)
	}

	if rec.Sodium != nil && *rec.Sodium <= 50 &&
		rec.Calcium != nil && *rec.Calcium >= 30 &&
		rec.Magnesium != nil && *rec.Magnesium >= 5 {
		tags = append(tags, SuitSeniors)
	}

	if rec.Calcium != nil && *rec.Calcium >= 100 &&
		rec.Magnesium != nil && *rec.Magnesium >= 20 &&
		rec.DryResidue != nil && *rec.DryResidue >= 500 {
		tags = append(tags, SuitSport)
	}

	if rec.Type == water.Sparkling || (rec.Bicarbonate != nil && *rec.Bicarbonate >= 600) {
		tags = append(tags, SuitDigestion)
	}

	return tags
}
