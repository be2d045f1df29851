package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"Salary-Dashboard/internal/app/ds"
)

// Колонки CSV, которые использует дашборд
const (
	ColumnYear          = "ano"
	ColumnSeniority     = "senioridade"
	ColumnContract      = "contrato"
	ColumnCompanySize   = "tamanho_empresa"
	ColumnTitle         = "cargo"
	ColumnUSD           = "usd"
	ColumnRemote        = "remoto"
	ColumnResidenceISO3 = "residencia_iso3"
)

var Columns = []string{
	ColumnYear,
	ColumnSeniority,
	ColumnContract,
	ColumnCompanySize,
	ColumnTitle,
	ColumnUSD,
	ColumnRemote,
	ColumnResidenceISO3,
}

var ErrMissingColumn = errors.New("missing required column")

// Parse читает CSV с заголовком в записи.
// Лишние колонки игнорируются, строки с нечитаемыми ano/usd пропускаются.
func Parse(r io.Reader) ([]ds.Salary, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var (
		records []ds.Salary
		skipped int
	)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				continue
			}
			return nil, 0, fmt.Errorf("failed to read CSV row: %w", err)
		}

		rec, ok := parseRow(row, index)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

func parseRow(row []string, index map[string]int) (ds.Salary, bool) {
	field := func(col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	year, ok := parseYear(field(ColumnYear))
	if !ok {
		return ds.Salary{}, false
	}
	usd, err := strconv.ParseFloat(field(ColumnUSD), 64)
	if err != nil || math.IsNaN(usd) || math.IsInf(usd, 0) {
		return ds.Salary{}, false
	}

	return ds.Salary{
		Year:          year,
		Seniority:     field(ColumnSeniority),
		Contract:      field(ColumnContract),
		CompanySize:   field(ColumnCompanySize),
		Title:         field(ColumnTitle),
		USD:           usd,
		Remote:        field(ColumnRemote),
		ResidenceISO3: field(ColumnResidenceISO3),
	}, true
}

// parseYear принимает и "2024", и "2024.0"
func parseYear(s string) (int, bool) {
	if y, err := strconv.Atoi(s); err == nil {
		return y, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// Write пишет записи в CSV с тем же набором колонок
func Write(w io.Writer, records []ds.Salary) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Year),
			r.Seniority,
			r.Contract,
			r.CompanySize,
			r.Title,
			strconv.FormatFloat(r.USD, 'f', -1, 64),
			r.Remote,
			r.ResidenceISO3,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
