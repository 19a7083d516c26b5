package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

var _ repository.HealthChecker = (*HealthChecker)(nil)

// HealthChecker informa nombre de base y tablas públicas para /api/db-test.
type HealthChecker struct {
	db Querier
}

// NewHealthChecker construye la sonda.
func NewHealthChecker(db Querier) *HealthChecker {
	return &HealthChecker{db: db}
}

func (p *HealthChecker) Status(ctx context.Context) (repository.StoreStatus, error) {
	var st repository.StoreStatus
	if err := p.db.QueryRow(ctx, `SELECT current_database()`).Scan(&st.Database); err != nil {
		return st, fmt.Errorf("current database: %w", err)
	}
	rows, err := p.db.Query(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' ORDER BY table_name`)
	if err != nil {
		return st, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()
	st.Tables = []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return st, fmt.Errorf("scan table: %w", err)
		}
		st.Tables = append(st.Tables, name)
	}
	if err := rows.Err(); err != nil {
		return st, err
	}
	st.Connected = true
	return st, nil
}
