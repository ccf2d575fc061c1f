package jmdict

import (
	"context"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/jmdict-prepare/internal/domain"
	"github.com/heartmarshall/jmdict-prepare/internal/xmltree"
)

// Dictionary builds every entry under the document root, in document order.
// The root may only contain <entry> elements. The first failure aborts the
// build and is returned as a *domain.EntryError carrying the zero-based
// position of the offending child; no partial result is returned.
//
// With more than one worker the entries are built concurrently, but the
// result and the reported failure are the same as for a sequential build.
func (b *Builder) Dictionary(ctx context.Context, root *xmltree.Node) ([]domain.Entry, error) {
	if b.workers > 1 && len(root.Children) > 1 {
		return b.dictionaryParallel(ctx, root)
	}

	entries := make([]domain.Entry, len(root.Children))
	for i := range root.Children {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := b.entryAt(root, i)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}

func (b *Builder) dictionaryParallel(ctx context.Context, root *xmltree.Node) ([]domain.Entry, error) {
	n := len(root.Children)
	entries := make([]domain.Entry, n)
	errs := make([]error, n)

	// lowestFailed only ever holds indices that failed, so any index above it
	// cannot be the first failure and need not be built.
	var lowestFailed atomic.Int64
	lowestFailed.Store(math.MaxInt64)

	var g errgroup.Group
	g.SetLimit(b.workers)

	for i := range n {
		if ctx.Err() != nil || int64(i) > lowestFailed.Load() {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if int64(i) > lowestFailed.Load() {
				return nil
			}
			entry, err := b.entryAt(root, i)
			if err != nil {
				errs[i] = err
				lowerTo(&lowestFailed, int64(i))
				return nil
			}
			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// entryAt builds the i-th child of root, wrapping any failure with its position.
func (b *Builder) entryAt(root *xmltree.Node, i int) (domain.Entry, error) {
	child := root.Children[i]
	if child.Tag != tagEntry {
		return domain.Entry{}, &domain.EntryError{
			Index: i,
			Err:   &domain.TagError{Parent: root.Tag, Tag: child.Tag},
		}
	}

	entry, err := b.Entry(child)
	if err != nil {
		return domain.Entry{}, &domain.EntryError{Index: i, Seq: entrySeq(child), Err: err}
	}
	return entry, nil
}

// entrySeq returns the ent_seq text of an entry for diagnostics, or "".
func entrySeq(n *xmltree.Node) string {
	seq := n.Child(tagSeq)
	if seq == nil || seq.Text == nil || len(seq.Children) > 0 {
		return ""
	}
	return *seq.Text
}

func lowerTo(v *atomic.Int64, i int64) {
	for {
		cur := v.Load()
		if i >= cur || v.CompareAndSwap(cur, i) {
			return
		}
	}
}
