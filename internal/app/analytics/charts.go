package analytics

import (
	"sort"

	"Salary-Dashboard/internal/app/ds"
)

const (
	TopTitlesLimit     = 10
	HistogramBins      = 30
	DataScientistTitle = "Data Scientist"
)

type meanAcc struct {
	sum   float64
	count int
}

// TopTitles средняя зарплата по должностям: n самых высоких,
// по возрастанию средней (горизонтальный бар рисует снизу вверх).
func TopTitles(view []ds.Salary, n int) []ds.TitleMean {
	acc := make(map[string]*meanAcc)
	for _, r := range view {
		if r.Title == "" {
			continue
		}
		a, ok := acc[r.Title]
		if !ok {
			a = &meanAcc{}
			acc[r.Title] = a
		}
		a.sum += r.USD
		a.count++
	}

	means := make([]ds.TitleMean, 0, len(acc))
	for title, a := range acc {
		means = append(means, ds.TitleMean{
			Title:   title,
			MeanUSD: a.sum / float64(a.count),
			Count:   a.count,
		})
	}

	sort.Slice(means, func(i, j int) bool {
		if means[i].MeanUSD != means[j].MeanUSD {
			return means[i].MeanUSD > means[j].MeanUSD
		}
		return means[i].Title < means[j].Title
	})
	if n > 0 && len(means) > n {
		means = means[:n]
	}

	// для графика по возрастанию, равные средние в лексическом порядке
	sort.Slice(means, func(i, j int) bool {
		if means[i].MeanUSD != means[j].MeanUSD {
			return means[i].MeanUSD < means[j].MeanUSD
		}
		return means[i].Title < means[j].Title
	})
	return means
}

// Histogram делит диапазон [min, max] на bins равных корзин.
// Последняя корзина закрыта справа. Если все значения равны, корзина одна.
func Histogram(view []ds.Salary, bins int) []ds.HistogramBin {
	if len(view) == 0 || bins <= 0 {
		return []ds.HistogramBin{}
	}

	lo, hi := view[0].USD, view[0].USD
	for _, r := range view[1:] {
		if r.USD < lo {
			lo = r.USD
		}
		if r.USD > hi {
			hi = r.USD
		}
	}

	if lo == hi {
		return []ds.HistogramBin{{Lower: lo, Upper: hi, Count: len(view)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]ds.HistogramBin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[bins-1].Upper = hi

	for _, r := range view {
		idx := int((r.USD - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// RemoteShare количество записей по формату работы, по убыванию
func RemoteShare(view []ds.Salary) []ds.RemoteShare {
	counts := make(map[string]int)
	for _, r := range view {
		counts[r.Remote]++
	}

	shares := make([]ds.RemoteShare, 0, len(counts))
	for kind, n := range counts {
		shares = append(shares, ds.RemoteShare{
			Kind:    kind,
			Count:   n,
			Percent: float64(n) * 100 / float64(len(view)),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Kind < shares[j].Kind
	})
	return shares
}

// CountryMeans средняя зарплата по стране для одной должности, по коду ISO3
func CountryMeans(view []ds.Salary, title string) []ds.CountryMean {
	acc := make(map[string]*meanAcc)
	for _, r := range view {
		if r.Title != title {
			continue
		}
		a, ok := acc[r.ResidenceISO3]
		if !ok {
			a = &meanAcc{}
			acc[r.ResidenceISO3] = a
		}
		a.sum += r.USD
		a.count++
	}

	means := make([]ds.CountryMean, 0, len(acc))
	for iso3, a := range acc {
		means = append(means, ds.CountryMean{
			ISO3:    iso3,
			MeanUSD: a.sum / float64(a.count),
			Count:   a.count,
		})
	}

	sort.Slice(means, func(i, j int) bool {
		return means[i].ISO3 < means[j].ISO3
	})
	return means
}
