// Package history persists completed triage checks. Persistence is an
// external collaborator of the engine: writes happen off the request path
// and the engine runs fine with no database configured.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CheckRecord is one stored triage check.
type CheckRecord struct {
	ID        uuid.UUID       `json:"id"`
	ClientKey string          `json:"client_key"`
	Input     json.RawMessage `json:"input"`
	Tier      string          `json:"tier"`
	RuleOnly  bool            `json:"rule_only"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	SaveCheck(ctx context.Context, rec *CheckRecord) error
	RecentChecks(ctx context.Context, clientKey string, limit int) ([]CheckRecord, error)
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) SaveCheck(ctx context.Context, rec *CheckRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO triage_checks (id, client_key, input, tier, rule_only, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.ClientKey, rec.Input, rec.Tier, rec.RuleOnly, rec.CreatedAt)
	return err
}

func (r *postgresRepo) RecentChecks(ctx context.Context, clientKey string, limit int) ([]CheckRecord, error) {
	query := `
		SELECT id, client_key, input, tier, rule_only, created_at
		FROM triage_checks
		WHERE client_key = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, clientKey, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CheckRecord
	for rows.Next() {
		var rec CheckRecord
		if err := rows.Scan(&rec.ID, &rec.ClientKey, &rec.Input, &rec.Tier, &rec.RuleOnly, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan triage check: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
