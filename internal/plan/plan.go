package plan

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"asciirename/internal/logging"
	"asciirename/internal/pathutil"
)

// Op is a single scheduled rename target. Depth is the position of the
// trailing component within its originating path, counted from the leaf:
// the deepest component of a path carries the highest depth.
type Op struct {
	Source string
	Depth  int
}

// Lister enumerates the immediate children of a directory. It exists so the
// builder can be exercised without touching the real filesystem.
type Lister interface {
	List(dir string) ([]string, error)
}

// OSLister lists directory children via os.ReadDir.
type OSLister struct{}

func (OSLister) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	children := make([]string, 0, len(entries))
	for _, entry := range entries {
		children = append(children, pathutil.Join(dir, entry.Name()))
	}
	return children, nil
}

// Builder gathers rename operations from path arguments.
type Builder struct {
	recursive bool
	lister    Lister
	logger    *slog.Logger
	ops       []Op
}

// NewBuilder constructs a builder. A nil lister falls back to OSLister and a
// nil logger discards output.
func NewBuilder(recursive bool, lister Lister, logger *slog.Logger) *Builder {
	if lister == nil {
		lister = OSLister{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Builder{recursive: recursive, lister: lister, logger: logger}
}

type pendingPath struct {
	path    string
	scanned bool
}

// Add decomposes one path argument into rename operations, expanding
// directories when recursion is enabled. The argument must exist; a missing
// path is reported as an error and contributes nothing.
func (b *Builder) Add(path string) error {
	path = pathutil.TrimTrailingSeparators(path)
	if _, err := os.Lstat(path); err != nil {
		return fmt.Errorf("%q doesn't exist", path)
	}

	queue := []pendingPath{{path: path}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		item.path = pathutil.TrimTrailingSeparators(item.path)

		info, err := os.Lstat(item.path)
		if err != nil {
			// Disappeared between listing and stat; skip it.
			b.logger.Debug("path vanished during collection", logging.String(logging.FieldPath, item.path))
			continue
		}

		if info.IsDir() && b.recursive && !item.scanned {
			children, err := b.lister.List(item.path)
			if err != nil {
				b.logger.Warn("cannot list directory",
					logging.String(logging.FieldPath, item.path),
					logging.Error(err))
			}
			next := make([]pendingPath, 0, len(children)+1+len(queue))
			for _, child := range children {
				next = append(next, pendingPath{path: child})
			}
			next = append(next, pendingPath{path: item.path, scanned: true})
			queue = append(next, queue...)
			continue
		}

		components := pathutil.RenameableComponents(item.path)
		for i, component := range components {
			b.ops = append(b.ops, Op{Source: component, Depth: len(components) - i})
		}
	}
	return nil
}

// Ops returns the collected operations sorted deepest first and deduplicated
// by source path. The sort is stable so operations of equal depth keep their
// insertion order; duplicates keep the first (deepest-priority) occurrence.
func (b *Builder) Ops() []Op {
	ops := append([]Op(nil), b.ops...)
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].Depth > ops[j].Depth
	})

	seen := make(map[string]struct{}, len(ops))
	deduped := ops[:0]
	for _, op := range ops {
		if _, dup := seen[op.Source]; dup {
			continue
		}
		seen[op.Source] = struct{}{}
		deduped = append(deduped, op)
	}
	return deduped
}
