package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/censusviz/pkg/errors"
	"github.com/YuminosukeSato/censusviz/viz"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func censusCSV(t *testing.T, dir string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("age,capital-gain,capital-loss,hours-per-week,education-num,sex\n")
	for i := 0; i < 120; i++ {
		gain, loss := 0, 0
		if i%9 == 0 {
			gain = 1000 * (i%5 + 1)
		}
		if i%11 == 0 {
			loss = 300 * (i%4 + 1)
		}
		fmt.Fprintf(&b, "%d,%d,%d,%d,%d,%d\n", 20+i%40, gain, loss, 30+i%20, 8+i%6, i%2)
	}
	return writeFile(t, dir, "census.csv", b.String())
}

const resultsYAML = `learners:
  - name: GaussianNB
    records:
      - {train_time: 0.01, acc_train: 0.60, f_train: 0.41, pred_time: 0.01, acc_test: 0.59, f_test: 0.40}
      - {train_time: 0.05, acc_train: 0.61, f_train: 0.42, pred_time: 0.02, acc_test: 0.60, f_test: 0.41}
      - {train_time: 0.30, acc_train: 0.59, f_train: 0.41, pred_time: 0.03, acc_test: 0.59, f_test: 0.42}
  - name: AdaBoostClassifier
    records:
      - {train_time: 0.10, acc_train: 0.90, f_train: 0.81, pred_time: 0.05, acc_test: 0.82, f_test: 0.65}
      - {train_time: 0.90, acc_train: 0.86, f_train: 0.74, pred_time: 0.06, acc_test: 0.85, f_test: 0.70}
      - {train_time: 6.00, acc_train: 0.85, f_train: 0.71, pred_time: 0.09, acc_test: 0.86, f_test: 0.72}
`

func run(t *testing.T, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()
	t.Cleanup(func() {
		errors.SetZerologWarnFunc(nil)
		errors.SetWarningHandler(func(error) {})
	})
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return stdout, stderr, err
}

func TestDistributionInline(t *testing.T) {
	dir := t.TempDir()
	data := censusCSV(t, dir)

	stdout, stderr, err := run(t, "distribution", "--data", data, "--scale", "1")
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(stdout)
	require.NoError(t, err)
	assert.Equal(t, 1056, cfg.Width)
	assert.Contains(t, stderr.String(), "figure shown")
}

func TestEvaluateFileMode(t *testing.T) {
	dir := t.TempDir()
	results := writeFile(t, dir, "results.yaml", resultsYAML)
	out := filepath.Join(dir, "out")

	_, _, err := run(t, "evaluate",
		"--results", results, "--accuracy", "0.2478", "--f1", "0.2917",
		"--display-mode", "file", "--output-dir", out, "--format", "svg")
	require.NoError(t, err)

	svg, err := os.ReadFile(filepath.Join(out, "evaluate.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "AdaBoostClassifier")
}

func TestFeaturesWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	data := censusCSV(t, dir)
	importances := writeFile(t, dir, "importances.yaml", "importances: [0.21, 0.30, 0.12, 0.18, 0.15, 0.04]\n")
	out := filepath.Join(dir, "figures")
	config := writeFile(t, dir, "censusviz.yaml", fmt.Sprintf(
		"display_mode: file\nscale_factor: 1\noutput_dir: %s\nformat: pdf\n", out))

	_, _, err := run(t, "--config", config, "features", "--data", data, "--importances", importances)
	require.NoError(t, err)

	pdf, err := os.ReadFile(filepath.Join(out, "feature_importance.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	data := censusCSV(t, dir)
	out := filepath.Join(dir, "figures")
	config := writeFile(t, dir, "censusviz.yaml", fmt.Sprintf(
		"display_mode: file\nformat: svg\nscale_factor: 1\noutput_dir: %s\n", out))

	_, _, err := run(t, "--config", config, "--format", "png", "distribution", "--data", data, "--transformed")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(out, "distribution_transformed.png"))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 1056, cfg.Width)

	_, err = os.Stat(filepath.Join(out, "distribution_transformed.svg"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadConfigDefaults(t *testing.T) {
	cmd := newRootCmd()
	cfg, err := loadConfig(cmd, &options{})
	require.NoError(t, err)
	assert.Equal(t, viz.DefaultConfig(), cfg)
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	data := censusCSV(t, dir)
	noLoss := writeFile(t, dir, "no_loss.csv", "age,capital-gain\n30,0\n40,100\n")
	extra := strings.SplitN(resultsYAML, "\n", 2)[1]
	extra = strings.NewReplacer("GaussianNB", "SVC", "AdaBoostClassifier", "LogisticRegression").Replace(extra)
	fourLearners := writeFile(t, dir, "four.yaml", resultsYAML+extra)
	short := writeFile(t, dir, "short.yaml", "importances: [0.5, 0.5]\n")
	badField := writeFile(t, dir, "bad.yaml", "learner: []\n")

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, err error)
	}{
		{
			name: "missing column",
			args: []string{"distribution", "--data", noLoss},
			check: func(t *testing.T, err error) {
				var target *errors.MissingColumnError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name: "missing data file",
			args: []string{"distribution", "--data", filepath.Join(dir, "nope.csv")},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, os.ErrNotExist)
			},
		},
		{
			name: "more than three learners",
			args: []string{"evaluate", "--results", fourLearners, "--accuracy", "0.2", "--f1", "0.3"},
			check: func(t *testing.T, err error) {
				var target *errors.TooManySeriesError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, 4, target.Series)
			},
		},
		{
			name: "too few importances",
			args: []string{"features", "--data", data, "--importances", short},
			check: func(t *testing.T, err error) {
				var target *errors.DimensionError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name: "unknown yaml field",
			args: []string{"evaluate", "--results", badField, "--accuracy", "0.2", "--f1", "0.3"},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "decode")
			},
		},
		{
			name: "bad log level",
			args: []string{"distribution", "--data", data, "--log-level", "loud"},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "loud")
			},
		},
		{
			name: "bad format",
			args: []string{"distribution", "--data", data, "--format", "bmp"},
			check: func(t *testing.T, err error) {
				var target *errors.ValidationError
				assert.True(t, errors.As(err, &target))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}
