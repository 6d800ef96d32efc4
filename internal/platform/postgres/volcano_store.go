package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rfenton/volcano-api/internal/domain"
	"github.com/rfenton/volcano-api/internal/platform/logger"
	"github.com/rfenton/volcano-api/internal/store"
)

// populationColumns maps a radius band to the population column backing it.
// Filtering goes through this map only, never through string interpolation
// of caller input.
var populationColumns = map[string]string{
	"5km":   "population_5km",
	"10km":  "population_10km",
	"30km":  "population_30km",
	"100km": "population_100km",
}

// VolcanoStore implements the store.VolcanoStore interface using a
// PostgreSQL database as the storage backend. The ratings collection is a
// jsonb column appended to in a single statement, so concurrent review
// submissions cannot lose updates.
type VolcanoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewVolcanoStore creates a new PostgreSQL implementation of the
// VolcanoStore interface.
func NewVolcanoStore(db store.DBTX, logger *slog.Logger) *VolcanoStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &VolcanoStore{
		db:     db,
		logger: logger.With(slog.String("component", "volcano_store")),
	}
}

// Ensure VolcanoStore implements store.VolcanoStore interface
var _ store.VolcanoStore = (*VolcanoStore)(nil)

// ListCountries implements store.VolcanoStore.ListCountries.
func (s *VolcanoStore) ListCountries(ctx context.Context) ([]string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT DISTINCT country
		FROM volcanoes
		ORDER BY country ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list countries", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var countries []string
	for rows.Next() {
		var country string
		if err := rows.Scan(&country); err != nil {
			return nil, MapError(err)
		}
		countries = append(countries, country)
	}
	return countries, rows.Err()
}

// List implements store.VolcanoStore.List. Only the summary fields of the
// returned volcanoes are populated.
func (s *VolcanoStore) List(
	ctx context.Context,
	country, populatedWithin string,
) ([]domain.Volcano, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, country, region, subregion
		FROM volcanoes
		WHERE country = $1
	`
	if populatedWithin != "" {
		column, ok := populationColumns[populatedWithin]
		if !ok {
			return nil, fmt.Errorf("unknown population band %q", populatedWithin)
		}
		query += fmt.Sprintf(" AND %s > 0", column)
	}
	query += " ORDER BY id ASC"

	rows, err := s.db.QueryContext(ctx, query, country)
	if err != nil {
		log.Error("failed to list volcanoes",
			slog.String("error", err.Error()),
			slog.String("country", country))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var volcanoes []domain.Volcano
	for rows.Next() {
		var v domain.Volcano
		if err := rows.Scan(&v.ID, &v.Name, &v.Country, &v.Region, &v.Subregion); err != nil {
			return nil, MapError(err)
		}
		volcanoes = append(volcanoes, v)
	}
	return volcanoes, rows.Err()
}

// GetByID implements store.VolcanoStore.GetByID.
// Returns store.ErrVolcanoNotFound if no such volcano exists.
func (s *VolcanoStore) GetByID(ctx context.Context, id int) (*domain.Volcano, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, country, region, subregion, last_eruption,
		       summit, elevation, latitude, longitude,
		       population_5km, population_10km, population_30km, population_100km,
		       ratings
		FROM volcanoes
		WHERE id = $1
	`

	var v domain.Volcano
	var ratings []byte
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID,
		&v.Name,
		&v.Country,
		&v.Region,
		&v.Subregion,
		&v.LastEruption,
		&v.Summit,
		&v.Elevation,
		&v.Latitude,
		&v.Longitude,
		&v.Population5km,
		&v.Population10km,
		&v.Population30km,
		&v.Population100km,
		&ratings,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("volcano not found", slog.Int("volcano_id", id))
			return nil, store.ErrVolcanoNotFound
		}
		log.Error("failed to get volcano by ID",
			slog.String("error", err.Error()),
			slog.Int("volcano_id", id))
		return nil, MapError(err)
	}

	if ratings != nil {
		if err := json.Unmarshal(ratings, &v.Ratings); err != nil {
			return nil, fmt.Errorf("failed to decode ratings for volcano %d: %w", id, err)
		}
	}
	return &v, nil
}

// GetRatings implements store.VolcanoStore.GetRatings.
// Returns store.ErrVolcanoNotFound if no such volcano exists.
func (s *VolcanoStore) GetRatings(ctx context.Context, id int) ([]domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ratings
		FROM volcanoes
		WHERE id = $1
	`

	var raw []byte
	err := s.db.QueryRowContext(ctx, query, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("volcano not found", slog.Int("volcano_id", id))
			return nil, store.ErrVolcanoNotFound
		}
		log.Error("failed to get ratings",
			slog.String("error", err.Error()),
			slog.Int("volcano_id", id))
		return nil, MapError(err)
	}

	if raw == nil {
		return nil, nil
	}

	var reviews []domain.Review
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode ratings for volcano %d: %w", id, err)
	}
	return reviews, nil
}

// AppendRating implements store.VolcanoStore.AppendRating. The review is
// appended to the jsonb collection in one UPDATE, treating a null column as
// an empty collection, and the updated collection is returned.
// Returns store.ErrVolcanoNotFound if no such volcano exists.
func (s *VolcanoStore) AppendRating(
	ctx context.Context,
	id int,
	review domain.Review,
) ([]domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	encoded, err := json.Marshal(review)
	if err != nil {
		return nil, fmt.Errorf("failed to encode review: %w", err)
	}

	query := `
		UPDATE volcanoes
		SET ratings = coalesce(ratings, '[]'::jsonb) || jsonb_build_array($2::jsonb)
		WHERE id = $1
		RETURNING ratings
	`

	var raw []byte
	err = s.db.QueryRowContext(ctx, query, id, encoded).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("volcano not found during rating append",
				slog.Int("volcano_id", id))
			return nil, store.ErrVolcanoNotFound
		}
		log.Error("failed to append rating",
			slog.String("error", err.Error()),
			slog.Int("volcano_id", id))
		return nil, MapError(err)
	}

	var reviews []domain.Review
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode ratings for volcano %d: %w", id, err)
	}

	log.Info("rating appended",
		slog.Int("volcano_id", id),
		slog.String("author", review.Email),
		slog.Int("review_count", len(reviews)))
	return reviews, nil
}
