// Package cmd implements the sentiment command line: the web server and a
// one-shot predictor.
package cmd

import (
	"review-sentiment/config"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree around a fresh viper instance.
func NewRootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	root := &cobra.Command{
		Use:   "sentiment",
		Short: "Movie review sentiment analysis",
		Long: `Classify movie reviews as Positive or Negative with an exported
TF-IDF vectorizer and a trained classifier.

Available subcommands:
  serve   - Start the web page and JSON API
  predict - Classify one review from the command line`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./configs/config.yaml)")
	root.PersistentFlags().String("vectorizer", "", "vectorizer artifact path")
	root.PersistentFlags().String("model", "", "classifier artifact path")
	_ = v.BindPFlag("model.vectorizer_path", root.PersistentFlags().Lookup("vectorizer"))
	_ = v.BindPFlag("model.classifier_path", root.PersistentFlags().Lookup("model"))

	root.AddCommand(newServeCmd(v, &configFile), newPredictCmd(v, &configFile))
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
