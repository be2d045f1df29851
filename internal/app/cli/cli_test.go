package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"Salary-Dashboard/internal/app/dataset"
	"Salary-Dashboard/internal/app/ds"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `ano,senioridade,contrato,tamanho_empresa,cargo,usd,remoto,residencia_iso3
2023,senior,integral,grande,Data Scientist,150000,remoto,USA
2023,pleno,integral,media,Data Engineer,100000,presencial,BRA
2024,junior,freelancer,pequena,Data Analyst,50000,hibrido,BRA
`

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "salarios.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"import", "summary"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestFlags(t *testing.T) {
	cmd := NewRootCommand()

	csvFlag := cmd.PersistentFlags().Lookup("csv")
	require.NotNil(t, csvFlag)
	assert.Contains(t, csvFlag.DefValue, "https://")

	importCmd, _, err := cmd.Find([]string{"import"})
	require.NoError(t, err)
	batch := importCmd.Flags().Lookup("batch-size")
	require.NotNil(t, batch)
	assert.Equal(t, "b", batch.Shorthand)
	assert.Equal(t, "1000", batch.DefValue)

	summaryCmd, _, err := cmd.Find([]string{"summary"})
	require.NoError(t, err)
	for _, name := range []string{"ano", "senioridade", "contrato", "tamanho-empresa", "remoto"} {
		assert.NotNil(t, summaryCmd.Flags().Lookup(name), name)
	}
}

func TestFiltersFromFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want ds.Filters
		err  bool
	}{
		{name: "nothing given", args: nil, want: ds.Filters{}},
		{
			name: "lists",
			args: []string{"--ano", "2023,2024", "--senioridade", "senior", "--senioridade", "pleno"},
			want: ds.Filters{Years: []int{2023, 2024}, Seniorities: []string{"senior", "pleno"}},
		},
		{name: "empty selection", args: []string{"--contrato="}, want: ds.Filters{Contracts: []string{}}},
		{name: "bad year", args: []string{"--ano", "x"}, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewSummaryCommand(&RootOptions{})
			require.NoError(t, cmd.ParseFlags(tt.args))

			got, err := filtersFromFlags(cmd)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummary(t *testing.T) {
	path := writeCSV(t)

	out, err := execute(t, "summary", "--csv", path, "--ano", "2023")
	require.NoError(t, err)
	assert.Contains(t, out, "$125,000")
	assert.Contains(t, out, "$150,000")
	assert.Contains(t, out, "Data Engineer")
	assert.NotContains(t, out, "Data Analyst")
}

func TestSummaryEmptySelection(t *testing.T) {
	path := writeCSV(t)

	out, err := execute(t, "summary", "--csv", path, "--remoto=")
	require.NoError(t, err)
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "$0")
}

func TestSummaryMissingFile(t *testing.T) {
	_, err := execute(t, "summary", "--csv", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestBatches(t *testing.T) {
	records := make([]ds.Salary, 5)

	got := batches(records, 2)
	require.Len(t, got, 3)
	assert.Len(t, got[0], 2)
	assert.Len(t, got[2], 1)

	assert.Empty(t, batches(nil, 2))
	assert.Len(t, batches(records, 10), 1)
}

func TestSourceFor(t *testing.T) {
	_, isURL := sourceFor("https://example.com/data.csv").(*dataset.URLSource)
	assert.True(t, isURL)

	file, isFile := sourceFor("data.csv").(*dataset.FileSource)
	require.True(t, isFile)
	assert.Equal(t, "data.csv", file.Path)
}
