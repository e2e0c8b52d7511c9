package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/distropop"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ distropop.CandidateService = (*CandidateService)(nil)

// Keys of the catalog_meta table.
const (
	metaChecksum = "checksum"
	metaSyncedAt = "synced_at"
)

// CandidateService implements distropop.CandidateService using SQLite.
type CandidateService struct {
	db *DB
}

// NewCandidateService creates a new CandidateService.
func NewCandidateService(db *DB) *CandidateService {
	return &CandidateService{db: db}
}

// FindCandidates retrieves candidates matching the filter in catalog order.
func (s *CandidateService) FindCandidates(ctx context.Context, filter distropop.CandidateFilter) ([]*distropop.Candidate, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT display_name, lookup_key FROM candidates WHERE 1=1")

	if filter.NameContains != nil {
		// SQLite's lower() folds ASCII only, so both sides are folded in Go.
		query.WriteString(" AND instr(search_name, ?) > 0")
		args = append(args, searchName(*filter.NameContains))
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []*distropop.Candidate
	for rows.Next() {
		var c distropop.Candidate
		if err := rows.Scan(&c.DisplayName, &c.LookupKey); err != nil {
			return nil, err
		}
		candidates = append(candidates, &c)
	}

	return candidates, rows.Err()
}

// FindCandidateByKey retrieves a candidate by its lookup key.
func (s *CandidateService) FindCandidateByKey(ctx context.Context, key string) (*distropop.Candidate, error) {
	var c distropop.Candidate

	err := s.db.QueryRowContext(ctx, `
		SELECT display_name, lookup_key
		FROM candidates
		WHERE lookup_key = ?
	`, key).Scan(&c.DisplayName, &c.LookupKey)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, distropop.Errorf(distropop.ENOTFOUND, "distribution %q not found", key)
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ReplaceCandidates replaces the catalog and its checksum in one transaction.
func (s *CandidateService) ReplaceCandidates(ctx context.Context, candidates []distropop.Candidate, checksum string) error {
	for i := range candidates {
		if err := candidates[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM candidates"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO candidates (id, display_name, search_name, lookup_key, position)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, c := range candidates {
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), c.DisplayName, searchName(c.DisplayName), c.LookupKey, i); err != nil {
			return fmt.Errorf("insert %q: %w", c.LookupKey, err)
		}
	}

	if err := upsertMeta(ctx, tx, metaChecksum, checksum); err != nil {
		return err
	}
	if err := upsertMeta(ctx, tx, metaSyncedAt, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	return tx.Commit()
}

// CatalogChecksum returns the checksum stored by the last ReplaceCandidates.
func (s *CandidateService) CatalogChecksum(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM catalog_meta WHERE key = ?", metaChecksum).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// searchName folds s for case-insensitive matching.
func searchName(s string) string {
	return strings.ToLower(s)
}

func upsertMeta(ctx context.Context, tx *sql.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO catalog_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
