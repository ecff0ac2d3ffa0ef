package cmd

import (
	"fmt"

	cfgpkg "github.com/aquabench/aquabench-cli/internal/config"
	"github.com/aquabench/aquabench-cli/internal/dataset"
	"github.com/aquabench/aquabench-cli/internal/scoring"
)

// loadDataset resolves the dataset path from flags/config and runs the full
// load-normalize-score pipeline.
func loadDataset() (*dataset.Collection, error) {
	path := dataFile
	if path == "" && cfg != nil {
		path = cfg.DatasetPath
	}
	if path == "" {
		return nil, fmt.Errorf("no dataset: pass --file or set dataset_path in config")
	}

	delim := delimiter
	if delim == "" && cfg != nil {
		delim = cfg.Delimiter
	}
	d, err := cfgpkg.ParseDelimiter(delim)
	if err != nil {
		return nil, err
	}

	return dataset.Load(path, dataset.Options{
		Delimiter: d,
		Weights:   weights(),
	})
}

func weights() scoring.Weights {
	if cfg != nil {
		return cfg.Scoring
	}
	return scoring.DefaultWeights()
}

// fmtOpt renders an optional measurement, "-" when absent.
func fmtOpt(v *float64) string {
	if v == nil {
		return "-"
	}
	if *v == float64(int64(*v)) {
		return fmt.Sprintf("%d", int64(*v))
	}
	return fmt.Sprintf("%.1f", *v)
}
