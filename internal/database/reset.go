package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Reset destructively clears every user table in the public schema. The
// table list comes from pg_tables so new entities never need to be added
// here by hand. TRUNCATE ... CASCADE sidesteps foreign-key ordering.
func (db *DB) Reset(ctx context.Context) error {
	slog.Info("Clearing existing data...")

	rows, err := db.QueryContext(ctx, `SELECT tablename FROM pg_tables WHERE schemaname = 'public'`)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan table name: %w", err)
		}
		if name == "schema_migrations" {
			continue
		}
		tables = append(tables, fmt.Sprintf("%q", name))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate tables: %w", err)
	}

	if len(tables) == 0 {
		slog.Info("No tables to clear")
		return nil
	}

	stmt := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(tables, ", "))
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	slog.Info("Cleared existing data", "tables", len(tables))
	return nil
}
