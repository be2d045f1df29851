package handler

import (
	"Salary-Dashboard/internal/app/ds"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// queryValues собирает значения параметра (повторы и через запятую).
// Отсутствующий параметр дает nil, "?ano=" дает пустой не-nil срез.
func queryValues(ctx *gin.Context, name string) []string {
	raw, ok := ctx.GetQueryArray(name)
	if !ok {
		return nil
	}

	values := make([]string, 0, len(raw))
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}

func parseFilters(ctx *gin.Context) (ds.Filters, error) {
	filters := ds.Filters{
		Seniorities:  queryValues(ctx, "senioridade"),
		Contracts:    queryValues(ctx, "contrato"),
		CompanySizes: queryValues(ctx, "tamanho_empresa"),
		Remote:       queryValues(ctx, "remoto"),
	}

	if years := queryValues(ctx, "ano"); years != nil {
		filters.Years = make([]int, 0, len(years))
		for _, y := range years {
			year, err := strconv.Atoi(y)
			if err != nil {
				return ds.Filters{}, fmt.Errorf("invalid ano parameter: %q", y)
			}
			filters.Years = append(filters.Years, year)
		}
	}

	return filters, nil
}
