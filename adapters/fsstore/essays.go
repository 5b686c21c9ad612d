package fsstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sachben91/agent-protocol-risk/domain/core"
	"github.com/sachben91/agent-protocol-risk/ports"
)

// EssayStore serves the editorial essays as raw markdown by slug.
type EssayStore struct {
	fsys fs.FS
}

var _ ports.EssayReaderPort = (*EssayStore)(nil)

// NewEssayStore creates an essay store over an arbitrary filesystem.
func NewEssayStore(fsys fs.FS) *EssayStore {
	return &EssayStore{fsys: fsys}
}

// NewEssayStoreFromDir creates an essay store over a directory on disk.
func NewEssayStoreFromDir(dir string) *EssayStore {
	return NewEssayStore(os.DirFS(dir))
}

// Essay returns the markdown body of one essay.
func (s *EssayStore) Essay(_ context.Context, slug string) ([]byte, error) {
	raw, err := fs.ReadFile(s.fsys, slug+".md")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: essay %s", core.ErrNotFound, slug)
		}
		return nil, err
	}
	return raw, nil
}
