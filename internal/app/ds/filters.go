package ds

import (
	"sort"
	"strconv"
	"strings"
)

// Filters выбранные значения мультиселектов.
// nil означает "параметр не передан" и выбирает все значения,
// пустой не-nil срез не выбирает ничего.
type Filters struct {
	Years        []int    `json:"ano"`
	Seniorities  []string `json:"senioridade"`
	Contracts    []string `json:"contrato"`
	CompanySizes []string `json:"tamanho_empresa"`
	Remote       []string `json:"remoto"`
}

// FilterOptions отсортированные уникальные значения каждого фильтра
type FilterOptions struct {
	Years        []int    `json:"ano"`
	Seniorities  []string `json:"senioridade"`
	Contracts    []string `json:"contrato"`
	CompanySizes []string `json:"tamanho_empresa"`
	Remote       []string `json:"remoto"`
}

// Key канонический ключ выборки для кэша
func (f Filters) Key() string {
	years := "*"
	if f.Years != nil {
		sorted := append([]int(nil), f.Years...)
		sort.Ints(sorted)
		parts := make([]string, len(sorted))
		for i, y := range sorted {
			parts[i] = strconv.Itoa(y)
		}
		years = strings.Join(parts, ",")
	}

	return strings.Join([]string{
		"ano=" + years,
		"senioridade=" + stringsKey(f.Seniorities),
		"contrato=" + stringsKey(f.Contracts),
		"tamanho_empresa=" + stringsKey(f.CompanySizes),
		"remoto=" + stringsKey(f.Remote),
	}, ";")
}

func stringsKey(values []string) string {
	if values == nil {
		return "*"
	}
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
