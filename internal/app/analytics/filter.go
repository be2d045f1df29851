package analytics

import (
	"sort"

	"Salary-Dashboard/internal/app/ds"
)

// ==================== ФИЛЬТРАЦИЯ ====================

// Apply возвращает записи, проходящие все фильтры.
// Внутри фильтра значения объединяются по ИЛИ, между фильтрами по И.
// Порядок записей сохраняется.
func Apply(records []ds.Salary, filters ds.Filters) []ds.Salary {
	m := newMatcher(filters)

	out := make([]ds.Salary, 0, len(records))
	for _, r := range records {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

type stringSet map[string]struct{}

// newStringSet возвращает nil для nil, чтобы nil значил "все значения"
func newStringSet(values []string) stringSet {
	if values == nil {
		return nil
	}
	set := make(stringSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (s stringSet) allows(v string) bool {
	if s == nil {
		return true
	}
	_, ok := s[v]
	return ok
}

type intSet map[int]struct{}

func newIntSet(values []int) intSet {
	if values == nil {
		return nil
	}
	set := make(intSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (s intSet) allows(v int) bool {
	if s == nil {
		return true
	}
	_, ok := s[v]
	return ok
}

type matcher struct {
	years        intSet
	seniorities  stringSet
	contracts    stringSet
	companySizes stringSet
	remote       stringSet
}

func newMatcher(f ds.Filters) matcher {
	return matcher{
		years:        newIntSet(f.Years),
		seniorities:  newStringSet(f.Seniorities),
		contracts:    newStringSet(f.Contracts),
		companySizes: newStringSet(f.CompanySizes),
		remote:       newStringSet(f.Remote),
	}
}

func (m matcher) match(r ds.Salary) bool {
	return m.years.allows(r.Year) &&
		m.seniorities.allows(r.Seniority) &&
		m.contracts.allows(r.Contract) &&
		m.companySizes.allows(r.CompanySize) &&
		m.remote.allows(r.Remote)
}

// ==================== ВАРИАНТЫ ФИЛЬТРОВ ====================

// Options уникальные отсортированные значения каждого фильтра
func Options(records []ds.Salary) ds.FilterOptions {
	years := map[int]struct{}{}
	seniorities := map[string]struct{}{}
	contracts := map[string]struct{}{}
	sizes := map[string]struct{}{}
	remote := map[string]struct{}{}

	for _, r := range records {
		years[r.Year] = struct{}{}
		seniorities[r.Seniority] = struct{}{}
		contracts[r.Contract] = struct{}{}
		sizes[r.CompanySize] = struct{}{}
		remote[r.Remote] = struct{}{}
	}

	opts := ds.FilterOptions{
		Years:        make([]int, 0, len(years)),
		Seniorities:  sortedKeys(seniorities),
		Contracts:    sortedKeys(contracts),
		CompanySizes: sortedKeys(sizes),
		Remote:       sortedKeys(remote),
	}
	for y := range years {
		opts.Years = append(opts.Years, y)
	}
	sort.Ints(opts.Years)

	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
