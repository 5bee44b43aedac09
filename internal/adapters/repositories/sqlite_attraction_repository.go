package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"park-itinerary-service/internal/domain"
)

// SQLite-backed implementation of the AttractionRepository port.
type SqliteAttractionRepository struct{ DB *sql.DB }

func NewSqliteAttractionRepository(db *sql.DB) *SqliteAttractionRepository {
	return &SqliteAttractionRepository{DB: db}
}

// Return all attractions stored in the database.
func (s *SqliteAttractionRepository) ListAttractions(ctx context.Context) ([]*domain.Attraction, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite attraction repository: DB is nil")
	}

	query := `
	SELECT
		attraction_id,
		name,
		zone,
		duration_min,
		tier
	FROM attractions
	ORDER BY attraction_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list attractions: query attractions table: %w", err)
	}
	defer rows.Close()

	attractions := make([]*domain.Attraction, 0, 64)
	for rows.Next() {
		a, err := scanAttraction(rows)
		if err != nil {
			return nil, fmt.Errorf("list attractions: %w", err)
		}
		attractions = append(attractions, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attractions: row iteration: %w", err)
	}

	return attractions, nil
}

// Return the attractions for the given ids, keyed by id.
func (s *SqliteAttractionRepository) GetAttractions(ctx context.Context, ids []string) (map[string]*domain.Attraction, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite attraction repository: DB is nil")
	}

	if len(ids) == 0 {
		return map[string]*domain.Attraction{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(ids))
	ph := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
		ph = append(ph, "?")
	}

	if len(uniq) == 0 {
		return map[string]*domain.Attraction{}, nil
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
		attraction_id,
		name,
		zone,
		duration_min,
		tier
	FROM attractions
	WHERE attraction_id IN (%s);
	`, strings.Join(ph, ","))

	args := make([]any, 0, len(uniq))
	for _, id := range uniq {
		args = append(args, id)
	}

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get attractions: query attractions table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*domain.Attraction, len(uniq))
	for rows.Next() {
		a, err := scanAttraction(rows)
		if err != nil {
			return nil, fmt.Errorf("get attractions: %w", err)
		}
		out[a.ID] = a
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get attractions: row iteration: %w", err)
	}

	return out, nil
}

func scanAttraction(rows *sql.Rows) (*domain.Attraction, error) {
	var id, name, zone, tier string
	var duration int
	if err := rows.Scan(&id, &name, &zone, &duration, &tier); err != nil {
		return nil, fmt.Errorf("scan row: %w", err)
	}

	return &domain.Attraction{
		ID:          id,
		Name:        name,
		Zone:        zone,
		DurationMin: duration,
		Tier:        domain.ParseTier(tier),
	}, nil
}
