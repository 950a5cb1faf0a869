package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/amadeus/internal/model"
	"github.com/neexbeast/amadeus/internal/normalize"
	"github.com/neexbeast/amadeus/internal/repository"
)

const regionColumns = `id, name, nb_habitants, language, country, latitude, longitude, created_at, updated_at`

// RegionRepository provides database access for region records.
type RegionRepository struct {
	q       Querier
	timeout time.Duration
}

// NewRegionRepository constructs a RegionRepository backed by the given pool.
func NewRegionRepository(pool *pgxpool.Pool, timeout time.Duration) *RegionRepository {
	return &RegionRepository{q: pool, timeout: timeout}
}

// NewRegionRepositoryWithQuerier constructs a RegionRepository with a custom Querier (for tests).
func NewRegionRepositoryWithQuerier(q Querier, timeout time.Duration) *RegionRepository {
	return &RegionRepository{q: q, timeout: timeout}
}

// FetchByID retrieves a region by id. Returns nil, nil when the id is unknown.
func (r *RegionRepository) FetchByID(ctx context.Context, id int64) (*model.Region, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	q := `SELECT ` + regionColumns + ` FROM regions WHERE id = $1`

	region, err := scanRegion(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying region %d: %w", id, err)
	}
	return region, nil
}

// FetchAll returns every region ordered by name.
func (r *RegionRepository) FetchAll(ctx context.Context) ([]model.Region, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	q := `SELECT ` + regionColumns + ` FROM regions ORDER BY name`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying regions: %w", err)
	}
	defer rows.Close()

	results := []model.Region{}
	for rows.Next() {
		region, err := scanRegion(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning region row: %w", err)
		}
		results = append(results, *region)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating region rows: %w", err)
	}

	return results, nil
}

// FetchByName returns the first region, by name, whose name contains the query or is
// contained in it, ignoring case. Returns nil, nil when nothing matches.
func (r *RegionRepository) FetchByName(ctx context.Context, name string) (*model.Region, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	q := `SELECT ` + regionColumns + ` FROM regions
		WHERE strpos(lower(name), lower($1)) > 0
		   OR strpos(lower($1), lower(name)) > 0
		ORDER BY name
		LIMIT 1`

	region, err := scanRegion(r.q.QueryRow(ctx, q, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying region by name %q: %w", name, err)
	}
	return region, nil
}

// Create inserts a region with defaults applied and returns the stored row.
func (r *RegionRepository) Create(ctx context.Context, patch model.RegionPatch) (*model.Region, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	in := normalize.NewRegion(patch)

	q := `INSERT INTO regions (name, nb_habitants, language, country, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + regionColumns

	region, err := scanRegion(r.q.QueryRow(ctx, q, in.Name, in.Population, in.Language, in.Country, in.Latitude, in.Longitude))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("inserting region %q: %w", in.Name, repository.ErrDuplicateName)
		}
		return nil, fmt.Errorf("inserting region %q: %w", in.Name, err)
	}
	return region, nil
}

// Update overwrites the non-nil fields of patch. Returns nil, nil when the id is unknown.
func (r *RegionRepository) Update(ctx context.Context, id int64, patch model.RegionPatch) (*model.Region, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	q := `UPDATE regions
		SET name         = COALESCE($2, name),
		    nb_habitants = COALESCE($3, nb_habitants),
		    language     = COALESCE($4, language),
		    country      = COALESCE($5, country),
		    latitude     = COALESCE($6, latitude),
		    longitude    = COALESCE($7, longitude),
		    updated_at   = NOW()
		WHERE id = $1
		RETURNING ` + regionColumns

	region, err := scanRegion(r.q.QueryRow(ctx, q, id, patch.Name, patch.Population, patch.Language, patch.Country, patch.Latitude, patch.Longitude))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, nil
		case isUniqueViolation(err):
			return nil, fmt.Errorf("updating region %d: %w", id, repository.ErrDuplicateName)
		}
		return nil, fmt.Errorf("updating region %d: %w", id, err)
	}
	return region, nil
}

// Delete removes a region and reports whether a row was deleted.
func (r *RegionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.q.Exec(ctx, `DELETE FROM regions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deleting region %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanRegion(row rowScanner) (*model.Region, error) {
	var (
		region               model.Region
		lat, lon             pgtype.Numeric
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(
		&region.ID,
		&region.Name,
		&region.Population,
		&region.Language,
		&region.Country,
		&lat,
		&lon,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	region.Latitude = normalize.NumericPtr(lat)
	region.Longitude = normalize.NumericPtr(lon)
	region.CreatedAt = &createdAt
	region.UpdatedAt = &updatedAt
	return &region, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
