package cli

import (
	"fmt"
	"io"
	"strconv"

	"Salary-Dashboard/internal/app/analytics"
	"Salary-Dashboard/internal/app/ds"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// NewSummaryCommand метрики и топ должностей в терминале
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print dashboard metrics for a filter selection",
		Long: `Print the dashboard metrics and the top job titles for a filter selection.

A filter flag that is not given selects every value. Given with an empty
value (--ano=) it selects nothing.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := filtersFromFlags(cmd)
			if err != nil {
				return err
			}
			return runSummary(cmd, rootOpts, filters)
		},
	}

	cmd.Flags().StringSlice("ano", nil, "years, e.g. 2023,2024")
	cmd.Flags().StringSlice("senioridade", nil, "seniority levels")
	cmd.Flags().StringSlice("contrato", nil, "contract types")
	cmd.Flags().StringSlice("tamanho-empresa", nil, "company sizes")
	cmd.Flags().StringSlice("remoto", nil, "work arrangements")

	return cmd
}

// filtersFromFlags: флаг без Changed остается nil и выбирает все значения
func filtersFromFlags(cmd *cobra.Command) (ds.Filters, error) {
	var filters ds.Filters
	flags := cmd.Flags()

	stringsFlag := func(name string) []string {
		if !flags.Changed(name) {
			return nil
		}
		values, _ := flags.GetStringSlice(name)
		out := make([]string, 0, len(values))
		for _, v := range values {
			if v != "" {
				out = append(out, v)
			}
		}
		return out
	}

	filters.Seniorities = stringsFlag("senioridade")
	filters.Contracts = stringsFlag("contrato")
	filters.CompanySizes = stringsFlag("tamanho-empresa")
	filters.Remote = stringsFlag("remoto")

	if years := stringsFlag("ano"); years != nil {
		filters.Years = make([]int, 0, len(years))
		for _, y := range years {
			year, err := strconv.Atoi(y)
			if err != nil {
				return ds.Filters{}, fmt.Errorf("invalid --ano value %q", y)
			}
			filters.Years = append(filters.Years, year)
		}
	}

	return filters, nil
}

func runSummary(cmd *cobra.Command, rootOpts *RootOptions, filters ds.Filters) error {
	records, _, err := sourceFor(rootOpts.CSV).Load(cmd.Context())
	if err != nil {
		return err
	}

	d := analytics.Build(analytics.Apply(records, filters))
	return printSummary(cmd.OutOrStdout(), d)
}

func printSummary(w io.Writer, d ds.Dashboard) error {
	metrics, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Salário médio", "Salário máximo", "Total de registros", "Cargo mais frequente"},
		{colorizeUSD(d.Metrics.MeanUSD, d.Display.MeanUSD), colorizeUSD(d.Metrics.MaxUSD, d.Display.MaxUSD), d.Display.Total, d.Display.TopTitle},
	}).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, pterm.Bold.Sprint("Métricas gerais (Salário anual em USD)"))
	fmt.Fprintln(w, metrics)

	if d.Empty {
		fmt.Fprintln(w, pterm.Yellow(d.Warnings.TopTitles))
		return nil
	}

	// Для терминала выводим по убыванию
	rows := pterm.TableData{{"#", "Cargo", "Média salarial (USD)"}}
	for i := len(d.TopTitles) - 1; i >= 0; i-- {
		t := d.TopTitles[i]
		rows = append(rows, []string{
			strconv.Itoa(len(d.TopTitles) - i),
			t.Title,
			colorizeUSD(t.MeanUSD, analytics.FormatUSD(t.MeanUSD)),
		})
	}
	top, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, pterm.Bold.Sprintf("Top %d cargos por salário médio", len(d.TopTitles)))
	fmt.Fprintln(w, top)
	return nil
}

// colorizeUSD раскрашивает сумму по диапазону
func colorizeUSD(value float64, formatted string) string {
	switch {
	case value >= 200000:
		return pterm.Green(formatted)
	case value >= 100000:
		return pterm.LightGreen(formatted)
	case value >= 50000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
