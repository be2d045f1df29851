package cli

import (
	"strings"

	"Salary-Dashboard/internal/app/config"
	"Salary-Dashboard/internal/app/dataset"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootOptions общие флаги всех команд
type RootOptions struct {
	CSV     string
	Verbose bool
}

// NewRootCommand создает корневую команду salaryctl
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "salaryctl",
		Short: "Salary dashboard tooling",
		Long:  "Import the data-area salaries CSV into Postgres and print dashboard summaries in the terminal.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.Verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.CSV, "csv", config.DefaultDatasetURL, "dataset CSV: URL or local path")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewSummaryCommand(opts))

	return cmd
}

// sourceFor выбирает источник по значению --csv
func sourceFor(location string) dataset.Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return dataset.NewURLSource(location)
	}
	return &dataset.FileSource{Path: location}
}
