package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"review-sentiment/config"
	"review-sentiment/page"
	"review-sentiment/sentiment"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPredictCmd(v *viper.Viper, configFile *string) *cobra.Command {
	var showConfidence bool

	cmd := &cobra.Command{
		Use:   "predict [review]",
		Short: "Classify one review",
		Long: `Classify a review given as arguments, or read from stdin when no
arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, *configFile)
			if err != nil {
				return err
			}

			review := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read review: %w", err)
				}
				review = string(data)
			}

			// Reject empty input before paying for the artifact load.
			if sentiment.IsBlank(review) {
				fmt.Fprintln(cmd.ErrOrStderr(), page.EmptyWarning)
				return sentiment.ErrEmptyReview
			}

			analyzer, err := sentiment.Load(cfg.Model.VectorizerPath, cfg.Model.ClassifierPath)
			if err != nil {
				return fmt.Errorf("load model: %w", err)
			}
			res, err := analyzer.Analyze(cmd.Context(), review)
			if errors.Is(err, sentiment.ErrEmptyReview) {
				fmt.Fprintln(cmd.ErrOrStderr(), page.EmptyWarning)
				return err
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, page.ResultText(res.Label))
			if showConfidence {
				fmt.Fprintf(out, "Confidence: %.2f (class %q)\n", res.Confidence, res.Class)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showConfidence, "confidence", false, "also print the classifier confidence")
	return cmd
}
