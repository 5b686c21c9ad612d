package ports

import (
	"context"

	"github.com/sachben91/agent-protocol-risk/domain/core"
	"github.com/sachben91/agent-protocol-risk/domain/protocol"
)

// ProtocolReaderPort is the read surface the presentation layer is
// allowed to call into. Implementations own the parsed record set for
// the duration of a load; callers receive values they may derive from
// but must never mutate.
type ProtocolReaderPort interface {
	// LoadAll returns every valid record, pre-sorted by overall risk
	// severity (critical first) with slug as the deterministic
	// tie-break.
	LoadAll(ctx context.Context) ([]protocol.Protocol, error)

	// LoadBySlug is an exact, case-sensitive lookup. A miss is
	// reported with core.ErrNotFound, not treated as a failure.
	LoadBySlug(ctx context.Context, slug core.Slug) (*protocol.Protocol, error)
}

// EssayReaderPort serves the static editorial essays by slug.
type EssayReaderPort interface {
	// Essay returns the raw markdown of one essay, or core.ErrNotFound.
	Essay(ctx context.Context, slug string) ([]byte, error)
}
