// Package seed implements the `seed` CLI command: load knowledge-base
// entries from a CSV file into the configured store.
package seed

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"helpdesk/internal/application/gateway"
	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/logger"
)

var (
	env  string
	path string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the knowledge base from CSV",
		Long:  `Read question/answer rows from a CSV file and store them as knowledge base entries. Expected columns: question, answer, category.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&path, "file", "f", "", "CSV file to load (default: knowledge.seed_path from config)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	if db == nil {
		return fmt.Errorf("no database configured (driver %q), nothing to seed", cfg.Database.Driver)
	}

	if path == "" {
		path = cfg.Knowledge.SeedPath
	}

	entries, err := loadEntries(path)
	if err != nil {
		return err
	}

	gw := gateway.New(
		repository.NewTicketRepository(db),
		repository.NewUserRepository(db),
		repository.NewKnowledgeRepository(db),
		logger.NewLogger(),
	)

	seeded := 0
	for _, entry := range entries {
		res := gw.CreateKnowledgeEntry(cmd.Context(), entry)
		if res.IsDegraded() {
			return fmt.Errorf("failed to seed entry %q: %s", entry.Question(), res.Reason())
		}
		seeded++
	}

	logger.Info("knowledge base seeded", "file", path, "entries", seeded)
	return nil
}

// loadEntries parses the CSV file. The first row is treated as a header
// when it names the expected columns; the category column is optional.
func loadEntries(path string) ([]*knowledge.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	var entries []*knowledge.Entry
	for i, record := range records {
		if i == 0 && len(record) > 0 && record[0] == "question" {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("row %d: expected at least question and answer columns", i+1)
		}

		category := ""
		if len(record) > 2 {
			category = record[2]
		}
		entries = append(entries, knowledge.NewEntry(record[0], record[1], category))
	}

	return entries, nil
}
