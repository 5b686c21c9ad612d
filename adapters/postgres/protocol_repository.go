// Package postgres serves the same protocol records as fsstore out of a
// protocols table. The record schema is the durable contract: each row
// stores the full JSON document bit-for-field in a jsonb column, keyed
// by slug, so the two backends are interchangeable behind the port.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sachben91/agent-protocol-risk/domain/core"
	"github.com/sachben91/agent-protocol-risk/domain/protocol"
	"github.com/sachben91/agent-protocol-risk/ports"
)

// protocolRepository implements ports.ProtocolReaderPort
type protocolRepository struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

// NewProtocolRepository creates a new read-only protocol repository
func NewProtocolRepository(db *sqlx.DB) ports.ProtocolReaderPort {
	return &protocolRepository{
		db:     db,
		logger: log.With().Str("component", "postgres").Logger(),
	}
}

type protocolRow struct {
	Slug   string `db:"slug"`
	Record []byte `db:"record"`
}

// LoadAll retrieves every valid record. Row order is by slug only; the
// canonical severity ordering is applied after validation, matching
// the fsstore policy of skipping and reporting malformed rows.
func (r *protocolRepository) LoadAll(ctx context.Context) ([]protocol.Protocol, error) {
	query := `SELECT slug, record FROM protocols ORDER BY slug`

	var rows []protocolRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query protocols: %w", err)
	}

	records := make([]protocol.Protocol, 0, len(rows))
	for _, row := range rows {
		p, err := decodeRow(row)
		if err != nil {
			r.logger.Warn().Err(err).Str("slug", row.Slug).Msg("skipping invalid protocol row")
			continue
		}
		records = append(records, *p)
	}

	protocol.SortCanonical(records)
	return records, nil
}

// LoadBySlug retrieves one record by its exact slug.
func (r *protocolRepository) LoadBySlug(ctx context.Context, slug core.Slug) (*protocol.Protocol, error) {
	query := `SELECT slug, record FROM protocols WHERE slug = $1`

	var row protocolRow
	if err := r.db.GetContext(ctx, &row, query, slug.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.NewNotFoundError(slug)
		}
		return nil, fmt.Errorf("failed to query protocol %s: %w", slug, err)
	}
	return decodeRow(row)
}

func decodeRow(row protocolRow) (*protocol.Protocol, error) {
	var p protocol.Protocol
	if err := json.Unmarshal(row.Record, &p); err != nil {
		return nil, core.NewSchemaError(row.Slug, "", "record is not valid JSON: %v", err)
	}
	if p.Slug.String() != row.Slug {
		return nil, core.NewSchemaError(row.Slug, "slug", "slug %q does not match row key %q", p.Slug, row.Slug)
	}
	if err := protocol.Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
