// Package schema creates the tables used by the Postgres repositories.
package schema

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
)

//go:embed schema.sql
var ddl string

// Migrate applies the schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *dbpg.DB) error {
	if _, err := db.Master.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}
