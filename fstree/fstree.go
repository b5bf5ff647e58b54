package fstree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/viant/treely"
)

type (
	// Entry is one filesystem node.
	Entry struct {
		Path  string
		Name  string
		Dir   bool
		Size  int64
		Depth int
	}

	// Builder expands directories into their entries.
	Builder struct {
		fs       afero.Fs
		ignore   []string
		maxDepth int
		dirsOnly bool
		hidden   bool
		err      error
	}

	// Option customizes a Builder.
	Option func(b *Builder)
)

// WithIgnore excludes entries whose base name matches any of the
// patterns (filepath.Match syntax). A malformed pattern fails the build
// instead of silently matching nothing.
func WithIgnore(patterns ...string) Option {
	return func(b *Builder) {
		for _, pattern := range patterns {
			// filepath.Match scans the whole pattern even when the name
			// is exhausted, so an empty name is enough to validate it
			if _, err := filepath.Match(pattern, ""); err != nil && b.err == nil {
				b.err = fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
			}
		}
		b.ignore = append(b.ignore, patterns...)
	}
}

// WithMaxDepth caps expansion; directories at the limit stay leaves.
func WithMaxDepth(maxDepth int) Option {
	return func(b *Builder) {
		b.maxDepth = maxDepth
	}
}

// WithDirsOnly drops files, keeping directories only.
func WithDirsOnly() Option {
	return func(b *Builder) {
		b.dirsOnly = true
	}
}

// WithHidden includes dot entries, excluded by default.
func WithHidden() Option {
	return func(b *Builder) {
		b.hidden = true
	}
}

// New creates a builder over fs.
func New(fs afero.Fs, opts ...Option) *Builder {
	ret := &Builder{fs: fs}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Expand returns the effectful expansion over entries.
func (b *Builder) Expand() treely.ExpandFunc[Entry] {
	return b.expand
}

// Build stats root and materializes its tree; the first filesystem
// failure aborts the whole build and surfaces unchanged.
func (b *Builder) Build(ctx context.Context, root string) (*treely.Node[Entry], error) {
	if b.err != nil {
		return nil, b.err
	}
	info, err := b.fs.Stat(root)
	if err != nil {
		return nil, err
	}
	entry := Entry{
		Path: filepath.Clean(root),
		Name: filepath.Clean(root),
		Dir:  info.IsDir(),
		Size: info.Size(),
	}
	return treely.BuildTreeContext(ctx, entry, b.expand)
}

func (b *Builder) expand(ctx context.Context, entry Entry) ([]Entry, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !entry.Dir {
		return nil, nil
	}
	if b.maxDepth > 0 && entry.Depth >= b.maxDepth {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos, err := afero.ReadDir(b.fs, entry.Path)
	if err != nil {
		return nil, err
	}
	included := lo.Filter(infos, func(info os.FileInfo, index int) bool {
		return b.include(info)
	})
	return lo.Map(included, func(info os.FileInfo, index int) Entry {
		return Entry{
			Path:  filepath.Join(entry.Path, info.Name()),
			Name:  info.Name(),
			Dir:   info.IsDir(),
			Size:  info.Size(),
			Depth: entry.Depth + 1,
		}
	}), nil
}

func (b *Builder) include(info os.FileInfo) bool {
	name := info.Name()
	if !b.hidden && strings.HasPrefix(name, ".") {
		return false
	}
	if b.dirsOnly && !info.IsDir() {
		return false
	}
	for _, pattern := range b.ignore {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return false
		}
	}
	return true
}
