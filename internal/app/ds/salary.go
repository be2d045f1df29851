// internal/app/ds/salary.go
package ds

import (
	"time"

	"gorm.io/gorm"
)

// Salary одна запись датасета зарплат в IT
type Salary struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	Year          int     `gorm:"column:ano;not null;index:idx_salaries_ano" json:"ano"`
	Seniority     string  `gorm:"column:senioridade;type:varchar(32);not null" json:"senioridade"`
	Contract      string  `gorm:"column:contrato;type:varchar(32);not null" json:"contrato"`
	CompanySize   string  `gorm:"column:tamanho_empresa;type:varchar(16);not null" json:"tamanho_empresa"`
	Title         string  `gorm:"column:cargo;type:varchar(255);not null;index:idx_salaries_cargo" json:"cargo"`
	USD           float64 `gorm:"column:usd;not null" json:"usd"`
	Remote        string  `gorm:"column:remoto;type:varchar(32)" json:"remoto"`
	ResidenceISO3 string  `gorm:"column:residencia_iso3;type:varchar(3)" json:"residencia_iso3"`
}

func (Salary) TableName() string {
	return "salaries"
}

// Dataset неизменяемый снимок загруженных данных
type Dataset struct {
	Records  []Salary
	Options  FilterOptions
	Source   string
	Version  string
	LoadedAt time.Time
	Skipped  int
}

// DatasetInfo описание снимка для API
type DatasetInfo struct {
	Source   string    `json:"source"`
	Version  string    `json:"version"`
	Rows     int       `json:"rows"`
	Skipped  int       `json:"skipped"`
	LoadedAt time.Time `json:"loaded_at"`
}

func (d *Dataset) Info() DatasetInfo {
	return DatasetInfo{
		Source:   d.Source,
		Version:  d.Version,
		Rows:     len(d.Records),
		Skipped:  d.Skipped,
		LoadedAt: d.LoadedAt,
	}
}

// CreateSalaryIndexes создает составные индексы под фильтры дашборда
func CreateSalaryIndexes(db *gorm.DB) error {
	indexes := []string{
		// Все четыре фильтра боковой панели
		`CREATE INDEX IF NOT EXISTS idx_salaries_filters
		 ON salaries (ano, senioridade, contrato, tamanho_empresa)`,

		// Карта по странам для Data Scientist
		`CREATE INDEX IF NOT EXISTS idx_salaries_cargo_country
		 ON salaries (cargo, residencia_iso3)`,
	}

	for _, sql := range indexes {
		if err := db.Exec(sql).Error; err != nil {
			return err
		}
	}

	// Обновляем статистику
	return db.Exec("ANALYZE salaries").Error
}
