package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Hitesh-malik/e-commer-with-ai/internal/adapter/backend"
	"github.com/Hitesh-malik/e-commer-with-ai/internal/logging"
)

const imageFetchParallelism = 8

// ImagePrefetcher resolves product images for a page of products in one
// batch. Every fetch is independent: one missing or failing image never
// fails or delays the others, the result map simply lacks that id.
// Concurrent requests for the same product share a single upstream call.
type ImagePrefetcher struct {
	backend Backend
	sf      singleflight.Group
}

func NewImagePrefetcher(b Backend) *ImagePrefetcher {
	return &ImagePrefetcher{backend: b}
}

// FetchAll fetches the images for the given product ids and returns the
// ones that resolved. Duplicate ids are fetched once. When ctx ends
// before a fetch completes its result is discarded, never published.
func (f *ImagePrefetcher) FetchAll(ctx context.Context, ids []int64) map[int64]backend.Image {
	var (
		mu  sync.Mutex
		out = make(map[int64]backend.Image, len(ids))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(imageFetchParallelism)

	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		g.Go(func() error {
			img, err := f.fetchOne(gctx, id)
			if err != nil {
				if !errors.Is(err, backend.ErrNotFound) && gctx.Err() == nil {
					logging.FromCtx(ctx).Warn("image fetch failed", "product_id", id, "err", err)
				}
				return nil // isolate the failure, keep the batch going
			}
			if gctx.Err() != nil {
				// The owning request is gone; do not publish the result.
				return nil
			}
			mu.Lock()
			out[id] = img
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
	return out
}

// FetchOne resolves a single product image, still sharing in-flight
// upstream calls with concurrent batch fetches.
func (f *ImagePrefetcher) FetchOne(ctx context.Context, id int64) (backend.Image, error) {
	return f.fetchOne(ctx, id)
}

func (f *ImagePrefetcher) fetchOne(ctx context.Context, id int64) (backend.Image, error) {
	v, err, _ := f.sf.Do("product-image:"+strconv.FormatInt(id, 10), func() (any, error) {
		return f.backend.ProductImage(ctx, id)
	})
	if err != nil {
		return backend.Image{}, err
	}
	return v.(backend.Image), nil
}
