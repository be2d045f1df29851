package ds

// Metrics основные показатели (годовая зарплата в USD)
type Metrics struct {
	MeanUSD  float64 `json:"salario_medio"`
	MaxUSD   float64 `json:"salario_maximo"`
	Total    int     `json:"total_registros"`
	TopTitle string  `json:"cargo_mais_frequente"`
}

// DisplayMetrics показатели в том виде, в каком их видит пользователь
type DisplayMetrics struct {
	MeanUSD  string `json:"salario_medio"`
	MaxUSD   string `json:"salario_maximo"`
	Total    string `json:"total_registros"`
	TopTitle string `json:"cargo_mais_frequente"`
}

// TitleMean средняя зарплата по должности
type TitleMean struct {
	Title   string  `json:"cargo"`
	MeanUSD float64 `json:"usd"`
	Count   int     `json:"count"`
}

// HistogramBin корзина гистограммы [Lower, Upper)
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// RemoteShare доля формата работы
type RemoteShare struct {
	Kind    string  `json:"tipo_trabalho"`
	Count   int     `json:"quantidade"`
	Percent float64 `json:"percentual"`
}

// CountryMean средняя зарплата по стране проживания
type CountryMean struct {
	ISO3    string  `json:"residencia_iso3"`
	MeanUSD float64 `json:"usd"`
	Count   int     `json:"count"`
}

// Warnings тексты-заглушки для пустой выборки
type Warnings struct {
	TopTitles    string `json:"cargos,omitempty"`
	Histogram    string `json:"distribuicao,omitempty"`
	RemoteShare  string `json:"remoto,omitempty"`
	CountryMeans string `json:"paises,omitempty"`
}

// Dashboard все производные данные для одной выборки
type Dashboard struct {
	Version      string         `json:"version"`
	Empty        bool           `json:"empty"`
	Metrics      Metrics        `json:"metrics"`
	Display      DisplayMetrics `json:"display"`
	TopTitles    []TitleMean    `json:"top_cargos"`
	Histogram    []HistogramBin `json:"histograma"`
	RemoteShare  []RemoteShare  `json:"remoto"`
	CountryMeans []CountryMean  `json:"paises"`
	Warnings     Warnings       `json:"warnings"`
}
