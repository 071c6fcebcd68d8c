package repository

import (
	"context"
	"fmt"

	"oss-kar/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// optionRepository implements the OptionRepository interface using PostgreSQL.
type optionRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOptionRepository creates a new PostgreSQL-backed option repository.
func NewOptionRepository(pool *pgxpool.Pool, logger zerolog.Logger) OptionRepository {
	return &optionRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "option").Logger(),
	}
}

// ListAll retrieves every option ordered by category, then ascending price.
func (r *optionRepository) ListAll(ctx context.Context) ([]model.Option, error) {
	query := `
		SELECT id, category, name, price
		FROM car_options
		ORDER BY category, price, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query options")
		return nil, fmt.Errorf("failed to query options: %w", err)
	}

	return r.collect(rows)
}

// GetByIDs retrieves the options matching ids.
func (r *optionRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Option, error) {
	if len(ids) == 0 {
		return []model.Option{}, nil
	}

	query := `
		SELECT id, category, name, price
		FROM car_options
		WHERE id = ANY($1)
		ORDER BY category, price, id
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query options by IDs")
		return nil, fmt.Errorf("failed to query options by IDs: %w", err)
	}

	options, err := r.collect(rows)
	if err != nil {
		return nil, err
	}

	if len(options) != len(ids) {
		r.logger.Debug().
			Int("requested", len(ids)).
			Int("found", len(options)).
			Msg("some option IDs are not in the catalog")
	}

	return options, nil
}

// Upsert inserts options or overwrites existing rows with the same id.
func (r *optionRepository) Upsert(ctx context.Context, options []model.Option) error {
	if len(options) == 0 {
		return nil
	}

	query := `
		INSERT INTO car_options (id, category, name, price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET category = EXCLUDED.category, name = EXCLUDED.name, price = EXCLUDED.price
	`

	batch := &pgx.Batch{}
	for _, o := range options {
		batch.Queue(query, o.ID, string(o.Category), o.Name, o.Price)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(options); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Int64("option_id", options[i].ID).
				Msg("failed to upsert option")
			return fmt.Errorf("failed to upsert option %d: %w", options[i].ID, err)
		}
	}

	r.logger.Debug().Int("count", len(options)).Msg("options upserted successfully")

	return nil
}

func (r *optionRepository) collect(rows pgx.Rows) ([]model.Option, error) {
	defer rows.Close()

	options := []model.Option{}
	for rows.Next() {
		var o model.Option
		var category string
		if err := rows.Scan(&o.ID, &category, &o.Name, &o.Price); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan option row")
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		o.Category = model.Category(category)
		options = append(options, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating option rows")
		return nil, fmt.Errorf("error iterating options: %w", err)
	}

	return options, nil
}
