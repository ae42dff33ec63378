package imageres

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-formdoc/pkg/formdoc"
)

const defaultPrefetchConcurrency = 4

// Prefetch warms the cache for every media item in the document with a
// bounded-concurrency fan-out, so the sequential build that follows reads
// everything from cache. Individual resolution failures are absorbed as
// usual; the only error returned is context cancellation.
func (r *Resolver) Prefetch(ctx context.Context, doc formdoc.FormDocument, concurrency int) error {
	if concurrency <= 0 {
		concurrency = defaultPrefetchConcurrency
	}

	type ref struct {
		source   string
		category string
	}

	seen := make(map[string]struct{})
	var refs []ref
	for _, section := range doc.Sections {
		if !section.Show {
			continue
		}
		for _, column := range section.Columns {
			for _, item := range column.Items {
				if !item.Type.IsMedia() {
					continue
				}
				source := strings.TrimSpace(stringSource(item))
				key := cacheKey(string(item.Type), source)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				refs = append(refs, ref{source: source, category: string(item.Type)})
			}
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for _, target := range refs {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			r.Resolve(groupCtx, target.source, target.category)
			return nil
		})
	}
	return group.Wait()
}

func stringSource(item formdoc.Item) string {
	if value, ok := item.Value.(string); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return item.SampleMediaSource
}
