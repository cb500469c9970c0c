package main

import (
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/censusviz/pkg/log"
)

func newDistributionCmd(opts *options) *cobra.Command {
	var (
		dataPath    string
		transformed bool
	)
	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Histograms of the capital-gain and capital-loss columns",
		Example: `  censusviz distribution --data census.csv
  censusviz distribution --data census_log.csv --transformed --display-mode file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, logger, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}
			data, err := loadFrame(dataPath)
			if err != nil {
				return err
			}
			rows, cols := data.Dims()
			logger.Debug("dataset loaded", log.OperationKey, log.OperationLoad,
				log.SamplesKey, rows, log.FeaturesKey, cols)

			_, err = r.Distribution(cmd.Context(), data, transformed)
			return err
		},
	}
	cmd.Flags().StringVar(&dataPath, "data", "", "CSV file with a header row")
	cmd.Flags().BoolVar(&transformed, "transformed", false, "label the data as log-transformed")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func newEvaluateCmd(opts *options) *cobra.Command {
	var (
		resultsPath string
		accuracy    float64
		f1          float64
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compare up to three learners over three training-set sizes",
		Example: `  censusviz evaluate --results results.yaml --accuracy 0.2478 --f1 0.2917`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, logger, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}
			results, err := loadResults(resultsPath)
			if err != nil {
				return err
			}
			logger.Debug("results loaded", log.OperationKey, log.OperationLoad, log.SeriesKey, len(results))

			_, err = r.Evaluate(cmd.Context(), results, accuracy, f1)
			return err
		},
	}
	cmd.Flags().StringVar(&resultsPath, "results", "", "YAML results table")
	cmd.Flags().Float64Var(&accuracy, "accuracy", 0, "naive predictor accuracy")
	cmd.Flags().Float64Var(&f1, "f1", 0, "naive predictor F-score")
	_ = cmd.MarkFlagRequired("results")
	_ = cmd.MarkFlagRequired("accuracy")
	_ = cmd.MarkFlagRequired("f1")
	return cmd
}

func newFeaturesCmd(opts *options) *cobra.Command {
	var (
		dataPath        string
		importancesPath string
	)
	cmd := &cobra.Command{
		Use:     "features",
		Short:   "The five most predictive features and their cumulative weight",
		Example: `  censusviz features --data features.csv --importances importances.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, logger, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}
			data, err := loadFrame(dataPath)
			if err != nil {
				return err
			}
			importances, err := loadImportances(importancesPath)
			if err != nil {
				return err
			}
			logger.Debug("importances loaded", log.OperationKey, log.OperationLoad, log.FeaturesKey, len(importances))

			_, err = r.FeaturePlot(cmd.Context(), importances, data, nil)
			return err
		},
	}
	cmd.Flags().StringVar(&dataPath, "data", "", "CSV file whose header names the features")
	cmd.Flags().StringVar(&importancesPath, "importances", "", "YAML file with an importances list")
	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("importances")
	return cmd
}
