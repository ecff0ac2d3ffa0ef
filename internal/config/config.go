package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/aquabench/aquabench-cli/internal/scoring"
)

// Global configuration structure.
type Global struct {
	// DatasetPath is the default CSV file commands operate on when --file is
	// not given.
	DatasetPath string `mapstructure:"dataset_path" yaml:"dataset_path"`
	// Delimiter forces the CSV field separator ("," or ";"); empty auto-detects.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`

	// Serve configuration
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr"`

	// Scoring carries the point-table calibration. The weighting is a tunable,
	// not an invariant, so it lives in config rather than code.
	Scoring scoring.Weights `mapstructure:"scoring" yaml:"scoring"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.aquabench/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".aquabench")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("AQUABENCH")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("dataset_path", "")
	v.SetDefault("delimiter", "")
	v.SetDefault("listen_addr", ":8080")
	setWeightDefaults(v, scoring.DefaultWeights())

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".aquabench")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

func setWeightDefaults(v *viper.Viper, w scoring.Weights) {
	v.SetDefault("scoring.ph_optimal", w.PHOptimal)
	v.SetDefault("scoring.ph_acceptable", w.PHAcceptable)
	v.SetDefault("scoring.sodium_excellent", w.SodiumExcellent)
	v.SetDefault("scoring.sodium_good", w.SodiumGood)
	v.SetDefault("scoring.sodium_fair", w.SodiumFair)
	v.SetDefault("scoring.microplastics_excellent", w.MicroplasticsExcellent)
	v.SetDefault("scoring.microplastics_good", w.MicroplasticsGood)
	v.SetDefault("scoring.microplastics_fair", w.MicroplasticsFair)
	v.SetDefault("scoring.microplastics_poor", w.MicroplasticsPoor)
	v.SetDefault("scoring.residue_ideal", w.ResidueIdeal)
	v.SetDefault("scoring.residue_good", w.ResidueGood)
	v.SetDefault("scoring.residue_low", w.ResidueLow)
	v.SetDefault("scoring.residue_high", w.ResidueHigh)
	v.SetDefault("scoring.nitrate_excellent", w.NitrateExcellent)
	v.SetDefault("scoring.nitrate_good", w.NitrateGood)
	v.SetDefault("scoring.nitrate_fair", w.NitrateFair)
	v.SetDefault("scoring.pfas_excellent", w.PFASExcellent)
	v.SetDefault("scoring.pfas_good", w.PFASGood)
	v.SetDefault("scoring.pfas_fair", w.PFASFair)
	v.SetDefault("scoring.pesticide_excellent", w.PesticideExcellent)
	v.SetDefault("scoring.pesticide_good", w.PesticideGood)
	v.SetDefault("scoring.pesticide_fair", w.PesticideFair)
	v.SetDefault("scoring.national_compliance", w.NationalCompliance)
	v.SetDefault("scoring.eu_compliance", w.EUCompliance)
	v.SetDefault("scoring.uranium_low", w.UraniumLow)
	v.SetDefault("scoring.uranium_moderate", w.UraniumModerate)
	v.SetDefault("scoring.calcium_bonus", w.CalciumBonus)
	v.SetDefault("scoring.magnesium_bonus", w.MagnesiumBonus)
	v.SetDefault("scoring.certification_bonus", w.CertificationBonus)
	v.SetDefault("scoring.restriction_penalty", w.RestrictionPenalty)
	v.SetDefault("scoring.bisphenol_penalty", w.BisphenolPenalty)
	v.SetDefault("scoring.phthalate_penalty", w.PhthalatePenalty)
	v.SetDefault("scoring.drug_residue_penalty", w.DrugResiduePenalty)
	v.SetDefault("scoring.max_possible", w.MaxPossible)
}

// ParseDelimiter converts the configured delimiter string to a rune; empty
// means auto-detect.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %q (use ',' or ';')", s)
	}
}
