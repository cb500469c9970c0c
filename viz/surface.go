package viz

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/YuminosukeSato/censusviz/pkg/errors"
)

// Surface is where a rendered figure is shown.
type Surface interface {
	// Show presents fig under name and returns a description of where it went.
	Show(ctx context.Context, name string, fig *Figure) (string, error)
}

// FileSurface writes each figure to Dir/<name>.<Format>.
type FileSurface struct {
	Dir    string
	Format string
	Scale  float64
}

// Show implements Surface.
func (s *FileSurface) Show(ctx context.Context, name string, fig *Figure) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create output directory %q", s.Dir)
	}
	path := filepath.Join(s.Dir, name+"."+s.Format)
	if err := fig.Save(path, s.Scale); err != nil {
		return "", err
	}
	return path, nil
}

// WriterSurface writes each encoded figure to W, one after another.
type WriterSurface struct {
	W      io.Writer
	Format string
	Scale  float64
}

// Show implements Surface.
func (s *WriterSurface) Show(ctx context.Context, name string, fig *Figure) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	n, err := fig.WriteTo(s.W, s.Format, s.Scale)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("inline:%s (%d bytes %s)", name, n, s.Format), nil
}
