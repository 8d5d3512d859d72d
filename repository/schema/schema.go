// Package schema holds the embedded DDL for the allocation tables.
package schema

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var ddl string

const timestampToken = "__TIMESTAMP__"

var timestampTypes = map[string]string{
	"mysql":  "DATETIME(6)",
	"pgx":    "TIMESTAMPTZ",
	"sqlite": "TIMESTAMP",
}

// DDL returns the schema rendered for the given database/sql driver name.
func DDL(driver string) (string, error) {
	ts, ok := timestampTypes[driver]
	if !ok {
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
	return strings.ReplaceAll(ddl, timestampToken, ts), nil
}

// SplitStatements splits a semicolon-terminated script into executable statements,
// dropping blank lines and "--" comment lines.
func SplitStatements(script string) []string {
	scanner := bufio.NewScanner(strings.NewReader(script))
	var stmts []string
	var current strings.Builder
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(line, ";") {
			stmts = append(stmts, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}

// Apply creates any missing tables. Statements are idempotent.
func Apply(ctx context.Context, db *sqlx.DB) error {
	script, err := DDL(db.DriverName())
	if err != nil {
		return err
	}
	for _, stmt := range SplitStatements(script) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute ddl: %w", err)
		}
	}
	return nil
}
