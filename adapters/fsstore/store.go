// Package fsstore reads hand-curated protocol records from a directory
// of JSON files, one file per protocol, addressed by slug. The store is
// read-only; records are parsed and validated at load time so the view
// layer only ever sees fully-valid records.
package fsstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sachben91/agent-protocol-risk/domain/core"
	"github.com/sachben91/agent-protocol-risk/domain/protocol"
	"github.com/sachben91/agent-protocol-risk/domain/scoring"
	"github.com/sachben91/agent-protocol-risk/ports"
)

// Store implements ports.ProtocolReaderPort over an fs.FS.
type Store struct {
	fsys   fs.FS
	logger zerolog.Logger
}

var _ ports.ProtocolReaderPort = (*Store)(nil)

// New creates a store over an arbitrary filesystem, typically an
// embed.FS subtree in production and fstest.MapFS in tests.
func New(fsys fs.FS) *Store {
	return &Store{fsys: fsys, logger: log.With().Str("component", "fsstore").Logger()}
}

// NewFromDir creates a store over a directory on disk.
func NewFromDir(dir string) *Store {
	return New(os.DirFS(dir))
}

// LoadAll reads every *.json record in the store. Policy for a
// malformed record among many: skip and report. The bad record is
// logged with its slug and offending field and excluded from the
// result; the rest of the batch survives. A batch is only an error
// when the directory itself cannot be read.
func (s *Store) LoadAll(ctx context.Context) ([]protocol.Protocol, error) {
	names, err := fs.Glob(s.fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list protocol records: %w", err)
	}

	records := make([]protocol.Protocol, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := s.readRecord(name)
		if err != nil {
			s.logger.Warn().Err(err).Str("file", name).Msg("skipping invalid protocol record")
			continue
		}
		records = append(records, *p)
	}

	protocol.SortCanonical(records)
	return records, nil
}

// LoadBySlug resolves one record by its exact, case-sensitive slug.
func (s *Store) LoadBySlug(ctx context.Context, slug core.Slug) (*protocol.Protocol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.readRecord(slug.String() + ".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.NewNotFoundError(slug)
		}
		return nil, err
	}
	return p, nil
}

func (s *Store) readRecord(name string) (*protocol.Protocol, error) {
	raw, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, err
	}

	key := strings.TrimSuffix(name, ".json")
	var p protocol.Protocol
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, core.NewSchemaError(key, "", "record is not valid JSON: %v", err)
	}
	if p.Slug.String() != key {
		return nil, core.NewSchemaError(key, "slug", "slug %q does not match record key %q", p.Slug, key)
	}
	if err := protocol.Validate(&p); err != nil {
		return nil, err
	}
	s.adviseDivergence(&p)
	return &p, nil
}

// adviseDivergence logs when the editorial overall rating sits far from
// the computed Kafka average. Advisory only: overallRisk is a human
// judgment and is never validated against the dimension scores.
func (s *Store) adviseDivergence(p *protocol.Protocol) {
	bucket := scoring.BucketAverage(scoring.AverageSeverity(p.KafkaIndex.Dimensions()))
	gap := protocol.SeverityOrder[bucket] - protocol.SeverityOrder[p.OverallRisk]
	if gap < 0 {
		gap = -gap
	}
	if gap >= 2 {
		s.logger.Debug().
			Str("slug", p.Slug.String()).
			Str("overallRisk", string(p.OverallRisk)).
			Str("kafkaAverage", string(bucket)).
			Msg("editorial rating diverges from computed dimension average")
	}
}
