package analytics

import (
	"fmt"
	"math"

	"Salary-Dashboard/internal/app/ds"

	"github.com/dustin/go-humanize"
)

const NoTitle = "N/A"

// Summarize считает KPI выборки. Пустая выборка дает 0, 0, 0, "N/A".
func Summarize(view []ds.Salary) ds.Metrics {
	if len(view) == 0 {
		return ds.Metrics{TopTitle: NoTitle}
	}

	var sum float64
	maxUSD := math.Inf(-1)
	for _, r := range view {
		sum += r.USD
		if r.USD > maxUSD {
			maxUSD = r.USD
		}
	}

	return ds.Metrics{
		MeanUSD:  sum / float64(len(view)),
		MaxUSD:   maxUSD,
		Total:    len(view),
		TopTitle: ModeTitle(view),
	}
}

// ModeTitle самая частая непустая должность, при равенстве лексикографически меньшая
func ModeTitle(view []ds.Salary) string {
	if len(view) == 0 {
		return NoTitle
	}

	// пустая должность не участвует в моде
	counts := make(map[string]int)
	for _, r := range view {
		if r.Title != "" {
			counts[r.Title]++
		}
	}

	best, bestCount := NoTitle, 0
	for title, n := range counts {
		if n > bestCount || (n == bestCount && title < best) {
			best, bestCount = title, n
		}
	}
	return best
}

// FormatUSD "$172,000"; округление к четному как у format(x, ",.0f")
func FormatUSD(v float64) string {
	return fmt.Sprintf("$%s", humanize.Comma(int64(math.RoundToEven(v))))
}

func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// Display готовит KPI к показу
func Display(m ds.Metrics) ds.DisplayMetrics {
	return ds.DisplayMetrics{
		MeanUSD:  FormatUSD(m.MeanUSD),
		MaxUSD:   FormatUSD(m.MaxUSD),
		Total:    FormatCount(m.Total),
		TopTitle: m.TopTitle,
	}
}
