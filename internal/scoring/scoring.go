// Package scoring computes the composite 0-100 quality score of a water
// record from its health, contamination and regulatory fields. Every factor
// contributes only when its input is present, so sparse records still score.
package scoring

import (
	"math"
	"strings"

	"github.com/aquabench/aquabench-cli/internal/water"
)

// Weights is the point table of the scoring engine. The values ship with
// sane defaults but stay configurable: the calibration is a product choice,
// not an invariant.
type Weights struct {
	PHOptimal    int `mapstructure:"ph_optimal" yaml:"ph_optimal"`
	PHAcceptable int `mapstructure:"ph_acceptable" yaml:"ph_acceptable"`

	SodiumExcellent int `mapstructure:"sodium_excellent" yaml:"sodium_excellent"`
	SodiumGood      int `mapstructure:"sodium_good" yaml:"sodium_good"`
	SodiumFair      int `mapstructure:"sodium_fair" yaml:"sodium_fair"`

	MicroplasticsExcellent int `mapstructure:"microplastics_excellent" yaml:"microplastics_excellent"`
	MicroplasticsGood      int `mapstructure:"microplastics_good" yaml:"microplastics_good"`
	MicroplasticsFair      int `mapstructure:"microplastics_fair" yaml:"microplastics_fair"`
	MicroplasticsPoor      int `mapstructure:"microplastics_poor" yaml:"microplastics_poor"`

	ResidueIdeal int `mapstructure:"residue_ideal" yaml:"residue_ideal"`
	ResidueGood  int `mapstructure:"residue_good" yaml:"residue_good"`
	ResidueLow   int `mapstructure:"residue_low" yaml:"residue_low"`
	ResidueHigh  int `mapstructure:"residue_high" yaml:"residue_high"`

	NitrateExcellent int `mapstructure:"nitrate_excellent" yaml:"nitrate_excellent"`
	NitrateGood      int `mapstructure:"nitrate_good" yaml:"nitrate_good"`
	NitrateFair      int `mapstructure:"nitrate_fair" yaml:"nitrate_fair"`

	PFASExcellent int `mapstructure:"pfas_excellent" yaml:"pfas_excellent"`
	PFASGood      int `mapstructure:"pfas_good" yaml:"pfas_good"`
	PFASFair      int `mapstructure:"pfas_fair" yaml:"pfas_fair"`

	PesticideExcellent int `mapstructure:"pesticide_excellent" yaml:"pesticide_excellent"`
	PesticideGood      int `mapstructure:"pesticide_good" yaml:"pesticide_good"`
	PesticideFair      int `mapstructure:"pesticide_fair" yaml:"pesticide_fair"`

	NationalCompliance int `mapstructure:"national_compliance" yaml:"national_compliance"`
	EUCompliance       int `mapstructure:"eu_compliance" yaml:"eu_compliance"`

	UraniumLow      int `mapstructure:"uranium_low" yaml:"uranium_low"`
	UraniumModerate int `mapstructure:"uranium_moderate" yaml:"uranium_moderate"`

	CalciumBonus       int `mapstructure:"calcium_bonus" yaml:"calcium_bonus"`
	MagnesiumBonus     int `mapstructure:"magnesium_bonus" yaml:"magnesium_bonus"`
	CertificationBonus int `mapstructure:"certification_bonus" yaml:"certification_bonus"`

	RestrictionPenalty int `mapstructure:"restriction_penalty" yaml:"restriction_penalty"`
	BisphenolPenalty   int `mapstructure:"bisphenol_penalty" yaml:"bisphenol_penalty"`
	PhthalatePenalty   int `mapstructure:"phthalate_penalty" yaml:"phthalate_penalty"`
	DrugResiduePenalty int `mapstructure:"drug_residue_penalty" yaml:"drug_residue_penalty"`

	// MaxPossible is the normalization divisor; a maximal factor combination
	// saturates near 100 with the default of 200.
	MaxPossible int `mapstructure:"max_possible" yaml:"max_possible"`
}

// DefaultWeights returns the shipped calibration.
func DefaultWeights() Weights {
	return Weights{
		PHOptimal:    20,
		PHAcceptable: 10,

		SodiumExcellent: 20,
		SodiumGood:      15,
		SodiumFair:      10,

		MicroplasticsExcellent: 20,
		MicroplasticsGood:      15,
		MicroplasticsFair:      10,
		MicroplasticsPoor:      5,

		ResidueIdeal: 20,
		ResidueGood:  15,
		ResidueLow:   10,
		ResidueHigh:  5,

		NitrateExcellent: 15,
		NitrateGood:      10,
		NitrateFair:      5,

		PFASExcellent: 20,
		PFASGood:      15,
		PFASFair:      10,

		PesticideExcellent: 15,
		PesticideGood:      10,
		PesticideFair:      5,

		NationalCompliance: 15,
		EUCompliance:       5,

		UraniumLow:      10,
		UraniumModerate: 5,

		CalciumBonus:       10,
		MagnesiumBonus:     10,
		CertificationBonus: 5,

		RestrictionPenalty: 10,
		BisphenolPenalty:   10,
		PhthalatePenalty:   10,
		DrugResiduePenalty: 15,

		MaxPossible: 200,
	}
}

// RawSum returns the unnormalized point total of every contributing factor.
// Absent inputs skip their factor entirely.
func RawSum(rec *water.Record, w Weights) int {
	sum := 0

	if rec.PH != nil {
		switch ph := *rec.PH; {
		case ph >= 6.5 && ph <= 8.5:
			sum += w.PHOptimal
		case ph >= 6.0 && ph <= 9.0:
			sum += w.PHAcceptable
		}
	}

	if rec.Sodium != nil {
		switch na := *rec.Sodium; {
		case na <= 20:
			sum += w.SodiumExcellent
		case na <= 50:
			sum += w.SodiumGood
		case na <= 200:
			sum += w.SodiumFair
		}
	}

	if rec.MicroplasticsPerLiter != nil {
		switch mp := *rec.MicroplasticsPerLiter; {
		case mp <= 1:
			sum += w.MicroplasticsExcellent
		case mp <= 3:
			sum += w.MicroplasticsGood
		case mp <= 5:
			sum += w.MicroplasticsFair
		default:
			sum += w.MicroplasticsPoor
		}
	}

	if rec.DryResidue != nil {
		switch rs := *rec.DryResidue; {
		case rs >= 150 && rs <= 500:
			sum += w.ResidueIdeal
		case rs >= 50 && rs <= 1000:
			sum += w.ResidueGood
		case rs < 50:
			sum += w.ResidueLow
		default:
			sum += w.ResidueHigh
		}
	}

	if rec.Nitrate != nil {
		switch no3 := *rec.Nitrate; {
		case no3 <= 2:
			sum += w.NitrateExcellent
		case no3 <= 10:
			sum += w.NitrateGood
		case no3 <= 25:
			sum += w.NitrateFair
		}
	}

	if rec.PFASSum != nil {
		switch pfas := *rec.PFASSum; {
		case pfas <= 10:
			sum += w.PFASExcellent
		case pfas <= 50:
			sum += w.PFASGood
		case pfas <= 100:
			sum += w.PFASFair
		}
	}

	if rec.RelevantPesticides != nil {
		switch p := *rec.RelevantPesticides; {
		case p <= 0.01:
			sum += w.PesticideExcellent
		case p <= 0.1:
			sum += w.PesticideGood
		case p <= 0.5:
			sum += w.PesticideFair
		}
	}

	if isCompliant(rec.NationalComplianceStatus) {
		sum += w.NationalCompliance
	}

	if rec.Uranium != nil {
		switch u := *rec.Uranium; {
		case u <= 5:
			sum += w.UraniumLow
		case u <= 15:
			sum += w.UraniumModerate
		}
	}

	if rec.Calcium != nil && *rec.Calcium >= 50 && *rec.Calcium <= 150 {
		sum += w.CalciumBonus
	}
	if rec.Magnesium != nil && *rec.Magnesium >= 10 && *rec.Magnesium <= 50 {
		sum += w.MagnesiumBonus
	}
	if strings.Contains(strings.ToLower(rec.Certifications), "iso") {
		sum += w.CertificationBonus
	}
	if isCompliant(rec.EUComplianceStatus) {
		sum += w.EUCompliance
	}

	if restricted(rec.UsageRestrictions) {
		sum -= w.RestrictionPenalty
	}
	if rec.Bisphenols != nil && *rec.Bisphenols > 0.1 {
		sum -= w.BisphenolPenalty
	}
	if rec.Phthalates != nil && *rec.Phthalates > 0.1 {
		sum -= w.PhthalatePenalty
	}
	if rec.DrugResidueStatus != "" && !strings.EqualFold(rec.DrugResidueStatus, "négatif") &&
		!strings.EqualFold(rec.DrugResidueStatus, "negatif") && !strings.EqualFold(rec.DrugResidueStatus, "negative") {
		sum -= w.DrugResiduePenalty
	}

	return sum
}

// Score computes the final 0-100 score. A small continuous perturbation from
// the exact pH, sodium and calcium values breaks ties between records that
// land in the same point buckets; it is bounded to a few points and never
// moves a record across a quality band for realistic inputs.
func Score(rec *water.Record, w Weights) int {
	sum := RawSum(rec, w)

	variation := 0.0
	if rec.PH != nil {
		variation += (*rec.PH - 7) * 0.1
	}
	if rec.Sodium != nil {
		variation -= *rec.Sodium * 0.01
	}
	if rec.Calcium != nil {
		variation += math.Min(*rec.Calcium*0.01, 2)
	}

	maxPossible := w.MaxPossible
	if maxPossible <= 0 {
		maxPossible = 200
	}
	base := math.Min(100, math.Round(float64(sum)/float64(maxPossible)*100))
	final := int(math.Round(base + variation))
	if final < 0 {
		return 0
	}
	if final > 100 {
		return 100
	}
	return final
}

// Band is the qualitative quality label derived from the numeric score.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandPoor      Band = "poor"
)

// BandOf classifies a score into its quality band.
func BandOf(score int) Band {
	switch {
	case score >= 90:
		return BandExcellent
	case score >= 75:
		return BandGood
	case score >= 60:
		return BandFair
	default:
		return BandPoor
	}
}

func isCompliant(status string) bool {
	s := strings.ToLower(status)
	return strings.Contains(s, "conforme") || strings.Contains(s, "compliant")
}

// restricted reports whether a restriction note actually restricts anything;
// "aucune"/"none" style placeholders do not count.
func restricted(note string) bool {
	if note == "" {
		return false
	}
	s := strings.ToLower(note)
	return !strings.Contains(s, "aucune") && !strings.Contains(s, "none")
}
