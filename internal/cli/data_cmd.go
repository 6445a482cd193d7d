package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/margdarshak/disha/internal/dataset"
	"github.com/margdarshak/disha/internal/domain"
)

func newDataCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Inspect the career dataset",
	}
	cmd.AddCommand(newDataValidateCmd(app))
	return cmd
}

func newDataValidateCmd(app *App) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the dataset and report defects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = app.DataPath
			}

			data, warnings, err := dataset.Load(path)
			if err != nil {
				return err
			}

			for _, w := range warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %v\n", w)
			}

			for _, s := range domain.AllStreams {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %2d careers, %d questions\n",
					s, len(data.StreamCareers(s)), len(data.StreamQuestions(s)))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "general questions: %d\n", len(data.Questions.General))

			if len(warnings) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d defect(s) found\n", len(warnings))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "dataset OK")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "data", "", "Path to the dataset file (defaults to the resolved data path)")

	return cmd
}
