package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/padraicbc/umaplan/catalog"
	"github.com/padraicbc/umaplan/models"
	"github.com/padraicbc/umaplan/schedule"
)

const batchSize = 500

// Store serves the catalog from PostgreSQL.
type Store struct {
	db *bun.DB
}

// NewStore wraps an open connection.
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

var _ catalog.Source = (*Store)(nil)

// Races returns every race in the order it was saved. The scheduler breaks
// score ties by this order.
func (s *Store) Races(ctx context.Context) ([]schedule.Race, error) {
	var rows []models.Race
	err := s.db.NewSelect().
		Model(&rows).
		OrderExpr("rc.position ASC, rc.race_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select races: %w", err)
	}
	out := make([]schedule.Race, len(rows))
	for i := range rows {
		out[i] = rows[i].ToSchedule()
	}
	return out, nil
}

// Characters returns every character with its objectives.
func (s *Store) Characters(ctx context.Context) ([]schedule.Character, error) {
	var rows []models.Character
	err := s.db.NewSelect().
		Model(&rows).
		Relation("Objectives", orderObjectives).
		OrderExpr("ch.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select characters: %w", err)
	}
	out := make([]schedule.Character, len(rows))
	for i := range rows {
		out[i] = rows[i].ToSchedule()
	}
	return out, nil
}

// Character looks a character up by ID, then by exact name.
func (s *Store) Character(ctx context.Context, key string) (*schedule.Character, error) {
	row := new(models.Character)
	err := s.db.NewSelect().
		Model(row).
		Relation("Objectives", orderObjectives).
		Where("ch.character_id = ? OR ch.name = ?", key, key).
		OrderExpr("ch.character_id = ? DESC", key).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("character %q: %w", key, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("select character: %w", err)
	}
	ch := row.ToSchedule()
	return &ch, nil
}

func orderObjectives(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Order("position ASC")
}

// SaveCatalog upserts every race and character of cat in one transaction.
// A character's objectives are replaced as a whole.
func (s *Store) SaveCatalog(ctx context.Context, cat *catalog.Catalog) (races, chars int, err error) {
	rrows := raceRows(cat.Races)
	crows, orows := characterRows(cat.Characters)
	ids := make([]string, len(crows))
	for i := range crows {
		ids[i] = crows[i].CharacterID
	}

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		n, err := upsert(ctx, tx, rrows, "race_id",
			"position", "name", "year", "month", "week", "distance", "meters", "surface", "fans", "grade", "image", "notes")
		if err != nil {
			return fmt.Errorf("races: %w", err)
		}
		races = n

		n, err = upsert(ctx, tx, crows, "character_id",
			"name", "preferred_distance", "aptitudes", "released", "base_stats")
		if err != nil {
			return fmt.Errorf("characters: %w", err)
		}
		chars = n

		if len(ids) > 0 {
			if _, err := tx.NewDelete().
				Model((*models.Objective)(nil)).
				Where("character_id IN (?)", bun.In(ids)).
				Exec(ctx); err != nil {
				return fmt.Errorf("clear objectives: %w", err)
			}
		}
		if _, err := upsert(ctx, tx, orows, ""); err != nil {
			return fmt.Errorf("objectives: %w", err)
		}
		return nil
	})
	return races, chars, err
}

// raceRows converts races to rows numbered by catalog position. A repeated
// ID keeps its first occurrence.
func raceRows(races []schedule.Race) []models.Race {
	seen := make(map[string]bool, len(races))
	rows := make([]models.Race, 0, len(races))
	for _, r := range races {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		row := models.RaceFromSchedule(r)
		row.Position = len(rows)
		rows = append(rows, row)
	}
	return rows
}

// characterRows splits characters into rows and objective rows. A repeated
// ID keeps its first occurrence.
func characterRows(chars []schedule.Character) ([]models.Character, []models.Objective) {
	seen := make(map[string]bool, len(chars))
	rows := make([]models.Character, 0, len(chars))
	var objs []models.Objective
	for _, c := range chars {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		row, o := models.CharacterFromSchedule(c)
		rows = append(rows, row)
		objs = append(objs, o...)
	}
	return rows, objs
}

// upsert inserts rows in batches. With a conflict column the listed columns
// are overwritten on conflict.
func upsert[T any](ctx context.Context, tx bun.Tx, rows []T, conflict string, columns ...string) (int, error) {
	total := 0
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		batch := rows[start:end]
		q := tx.NewInsert().Model(&batch)
		if conflict != "" {
			q = q.On(fmt.Sprintf("CONFLICT (%s) DO UPDATE", conflict))
			for _, c := range columns {
				q = q.Set(fmt.Sprintf("%s = EXCLUDED.%s", c, c))
			}
		}
		if _, err := q.Exec(ctx); err != nil {
			return total, err
		}
		total += len(batch)
	}
	return total, nil
}
