package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mstampfer/coin-crab/internal/domain"
)

// PriceRepo archives quote samples from each fetch cycle.
type PriceRepo struct {
	db *pgxpool.Pool
}

func NewPriceRepository(db *pgxpool.Pool) *PriceRepo {
	return &PriceRepo{db: db}
}

// SavePrices inserts one cycle's samples in a single batch.
func (r *PriceRepo) SavePrices(ctx context.Context, prices []domain.Price) error {
	if len(prices) == 0 {
		return nil
	}

	query := `
            INSERT INTO prices (symbol, value, ts)
            VALUES ($1, $2, $3)
            `

	batch := &pgx.Batch{}
	for _, p := range prices {
		batch.Queue(query, p.Symbol, p.Value, p.Timestamp)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	for range prices {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// History returns archived samples for a symbol since the given time,
// oldest first.
func (r *PriceRepo) History(ctx context.Context, symbol string, since time.Time) ([]domain.Price, error) {
	query := `
        SELECT symbol, value, ts
        FROM prices
        WHERE UPPER(symbol) = UPPER($1) AND ts >= $2
        ORDER BY ts
    `
	rows, err := r.db.Query(ctx, query, symbol, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []domain.Price
	for rows.Next() {
		var p domain.Price
		if err := rows.Scan(&p.Symbol, &p.Value, &p.Timestamp); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}
