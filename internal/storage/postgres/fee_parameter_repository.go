package postgres

import (
	"aero-lite/internal/storage"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Querier часть pgxpool.Pool, нужная репозиторию
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type FeeParameterRepository interface {
	ListParameters(ctx context.Context) (map[string]float64, error)
}

type PgFeeParameterRepository struct {
	db Querier
}

func NewFeeParameterRepository(db Querier) FeeParameterRepository {
	return &PgFeeParameterRepository{db: db}
}

// ListParameters загружает все переопределения тарифов, ключ -> значение
func (r *PgFeeParameterRepository) ListParameters(ctx context.Context) (map[string]float64, error) {
	const op = "storage.ListParameters"

	rows, err := r.db.Query(ctx, storage.ListFeeParametersQuery)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	params := make(map[string]float64)
	for rows.Next() {
		var (
			key   string
			value decimal.Decimal
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		params[key] = value.InexactFloat64()
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return params, nil
}
