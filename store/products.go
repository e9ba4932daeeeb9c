package store

import (
	"sync"

	"github.com/lena-laurent/blanks-inventory-api/models"
	"github.com/lena-laurent/blanks-inventory-api/services"
)

// ProductFeed is the paging session over the external product catalog. It is
// never persisted; a fresh session starts empty and loads pages on demand.
//
// Fetches run in the background and are tagged with a monotonically
// increasing sequence number. Only the completion carrying the latest issued
// sequence is applied, so a refresh fired while an earlier load is still in
// flight cannot be overwritten by the stale result.
type ProductFeed struct {
	mu       sync.Mutex
	catalog  services.CatalogInterface
	pageSize int

	products  []models.ConvertedProduct
	offset    int
	hasMore   bool
	loading   bool
	lastError string
	seq       int
}

// FeedSnapshot is a point-in-time view of the feed for rendering
type FeedSnapshot struct {
	Products []models.ConvertedProduct `json:"products"`
	Loading  bool                      `json:"loading"`
	Error    string                    `json:"error,omitempty"`
	HasMore  bool                      `json:"hasMore"`
}

// NewProductFeed creates an empty feed backed by the given catalog service
func NewProductFeed(catalog services.CatalogInterface, pageSize int) *ProductFeed {
	return &ProductFeed{
		catalog:  catalog,
		pageSize: pageSize,
		products: []models.ConvertedProduct{},
		hasMore:  true,
	}
}

// Snapshot returns the current feed state
func (f *ProductFeed) Snapshot() FeedSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	products := make([]models.ConvertedProduct, len(f.products))
	copy(products, f.products)
	return FeedSnapshot{
		Products: products,
		Loading:  f.loading,
		Error:    f.lastError,
		HasMore:  f.hasMore,
	}
}

// Refresh resets the session and loads the first page in the background.
// The returned channel closes when the fetch completes; callers that do not
// care simply ignore it.
func (f *ProductFeed) Refresh() <-chan struct{} {
	return f.load(true)
}

// LoadMore loads the next page in the background. It is a no-op while a load
// is in flight or when the catalog has no more pages.
func (f *ProductFeed) LoadMore() <-chan struct{} {
	f.mu.Lock()
	if f.loading || !f.hasMore {
		f.mu.Unlock()
		done := make(chan struct{})
		close(done)
		return done
	}
	f.mu.Unlock()
	return f.load(false)
}

// load issues a background fetch tagged with a fresh sequence number
func (f *ProductFeed) load(reset bool) <-chan struct{} {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	f.loading = true
	f.lastError = ""
	offset := f.offset
	if reset {
		offset = 0
	}
	f.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		products, err := f.catalog.FetchProducts(f.pageSize, offset)

		f.mu.Lock()
		defer f.mu.Unlock()
		if seq != f.seq {
			// A newer request was issued while this one was in flight;
			// the latest request wins and this completion is discarded.
			return
		}
		f.loading = false
		if err != nil {
			f.lastError = err.Error()
			return
		}
		if reset {
			f.products = products
			f.offset = f.pageSize
		} else {
			f.products = append(f.products, products...)
			f.offset += f.pageSize
		}
		f.hasMore = len(products) == f.pageSize
	}()
	return done
}
