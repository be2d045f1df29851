package analytics

import (
	"Salary-Dashboard/internal/app/ds"
)

// Тексты для пустой выборки
const (
	WarnTopTitles    = "Nenhum dado para exibir no gráfico de cargos."
	WarnHistogram    = "Nenhum dado para exibir no gráfico de distribuição."
	WarnRemoteShare  = "Nenhum dado para exibir no gráfico dos tipos de trabalho."
	WarnCountryMeans = "Nenhum dado para exibir no gráfico de países."
)

// Build пересчитывает весь дашборд по уже отфильтрованной выборке
func Build(view []ds.Salary) ds.Dashboard {
	metrics := Summarize(view)

	d := ds.Dashboard{
		Empty:        len(view) == 0,
		Metrics:      metrics,
		Display:      Display(metrics),
		TopTitles:    []ds.TitleMean{},
		Histogram:    []ds.HistogramBin{},
		RemoteShare:  []ds.RemoteShare{},
		CountryMeans: []ds.CountryMean{},
	}

	if d.Empty {
		d.Warnings = ds.Warnings{
			TopTitles:    WarnTopTitles,
			Histogram:    WarnHistogram,
			RemoteShare:  WarnRemoteShare,
			CountryMeans: WarnCountryMeans,
		}
		return d
	}

	d.TopTitles = TopTitles(view, TopTitlesLimit)
	d.Histogram = Histogram(view, HistogramBins)
	d.RemoteShare = RemoteShare(view)
	d.CountryMeans = CountryMeans(view, DataScientistTitle)

	return d
}
