package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/censusviz/frame"
	"github.com/YuminosukeSato/censusviz/pkg/errors"
	"github.com/YuminosukeSato/censusviz/viz"
)

type resultsFile struct {
	Learners viz.Results `yaml:"learners"`
}

type importancesFile struct {
	Importances []float64 `yaml:"importances"`
}

func loadFrame(path string) (*frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %q", path)
	}
	defer f.Close()

	data, err := frame.ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read dataset %q", path)
	}
	return data, nil
}

func loadResults(path string) (viz.Results, error) {
	var rf resultsFile
	if err := decodeYAML(path, &rf); err != nil {
		return nil, err
	}
	return rf.Learners, nil
}

func loadImportances(path string) ([]float64, error) {
	var imp importancesFile
	if err := decodeYAML(path, &imp); err != nil {
		return nil, err
	}
	if len(imp.Importances) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData, "importances %q", path)
	}
	return imp.Importances, nil
}

func decodeYAML(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return errors.Wrapf(err, "decode %q", path)
	}
	return nil
}
