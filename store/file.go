package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// File is a Store that keeps each key in its own "<key>.json" file of a folder.
//
// The files stay human-readable and git-friendly. A write goes to a temporary
// file in the same folder that is then renamed over the previous one.
type File struct {
	dir string
	log zerolog.Logger
}

// OpenFile opens the folder 'dir' as a store, creating it if needed.
func OpenFile(dir string, log zerolog.Logger) (*File, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store: folder is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: cannot create folder %q: %w", dir, err)
	}
	return &File{dir: dir, log: log.With().Str("store", "file").Logger()}, nil
}

func (s *File) filename(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *File) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(s.filename(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("file store: cannot read %q: %w", key, err)
	}
	return string(data), true, nil
}

func (s *File) Set(ctx context.Context, key, value string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("file store: cannot create temporary file for %q: %w", key, err)
	}
	// On any failure the temporary file is removed and the previous value stays.
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(value); err != nil {
		return fmt.Errorf("file store: cannot write %q: %w", key, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("file store: cannot sync %q: %w", key, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("file store: cannot close %q: %w", key, err)
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), s.filename(key)); err != nil {
		return fmt.Errorf("file store: cannot replace %q: %w", key, err)
	}
	s.log.Debug().Str("key", key).Int("bytes", len(value)).Msg("value written")
	return nil
}

func (s *File) Close() error { return nil }
