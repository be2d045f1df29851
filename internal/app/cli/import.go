package cli

import (
	"fmt"
	"time"

	"Salary-Dashboard/internal/app/ds"
	"Salary-Dashboard/internal/app/dsn"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultBatchSize = 1000

type importOptions struct {
	BatchSize int
	Keep      bool
}

// NewImportCommand загрузка CSV в таблицу salaries
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the dataset CSV into Postgres",
		Long: `Load the dataset CSV into the Postgres table "salaries".

The table is dropped and recreated unless --keep is set. Connection settings
come from DB_HOST, DB_PORT, DB_USER, DB_PASS and DB_NAME.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.BatchSize, "batch-size", "b", defaultBatchSize, "rows per INSERT")
	cmd.Flags().BoolVar(&opts.Keep, "keep", false, "append to the existing table instead of recreating it")

	return cmd
}

func runImport(cmd *cobra.Command, rootOpts *RootOptions, opts *importOptions) error {
	if opts.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", opts.BatchSize)
	}

	out := cmd.OutOrStdout()
	startTime := time.Now()

	// 1. Загружаем датасет
	source := sourceFor(rootOpts.CSV)
	fmt.Fprintf(out, "1. Loading %s...\n", source)
	records, skipped, err := source.Load(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "   ✓ %d rows parsed, %d skipped\n", len(records), skipped)

	// 2. Подключение к базе данных
	fmt.Fprintln(out, "2. Connecting to database...")
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// 3. Пересоздаем таблицу
	fmt.Fprintln(out, "3. Preparing table salaries...")
	if !opts.Keep {
		if err := db.Migrator().DropTable(&ds.Salary{}); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	if err := db.AutoMigrate(&ds.Salary{}); err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	// 4. Вставляем пачками
	fmt.Fprintf(out, "4. Inserting in batches of %d...\n", opts.BatchSize)
	bar := pb.New(len(records))
	bar.SetWriter(cmd.ErrOrStderr())
	bar.Start()
	for _, batch := range batches(records, opts.BatchSize) {
		if err := db.Create(&batch).Error; err != nil {
			bar.Finish()
			return fmt.Errorf("failed to insert batch: %w", err)
		}
		bar.Add(len(batch))
	}
	bar.Finish()

	// 5. Индексы и статистика
	fmt.Fprintln(out, "5. Creating indexes...")
	if err := ds.CreateSalaryIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	var total int64
	if err := db.Model(&ds.Salary{}).Count(&total).Error; err != nil {
		return err
	}

	fmt.Fprintln(out, "\n=== Import Completed ===")
	fmt.Fprintf(out, "Rows in table: %d\n", total)
	fmt.Fprintf(out, "Total time: %v\n", time.Since(startTime).Round(time.Millisecond))
	return nil
}

// batches режет записи на куски по size, последний может быть короче
func batches(records []ds.Salary, size int) [][]ds.Salary {
	var out [][]ds.Salary
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		out = append(out, records[start:end])
	}
	return out
}
