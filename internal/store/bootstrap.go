package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var resourceTables = []string{"category", "task"}

// Bootstrap creates the resource tables if they do not exist yet.
func (s *Store) Bootstrap(ctx context.Context) error {
	for _, stmt := range splitStatements(s.Dialect.Schema()) {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	for _, table := range resourceTables {
		ok, err := s.Dialect.HasTable(ctx, s.DB, table)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("bootstrap schema: table %s missing after bootstrap", table)
		}
	}

	logrus.WithField("dialect", s.Dialect.Name()).Debug("schema ready")
	return nil
}

func splitStatements(ddl string) []string {
	var stmts []string
	for _, part := range strings.Split(ddl, ";") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			stmts = append(stmts, trimmed)
		}
	}
	return stmts
}
