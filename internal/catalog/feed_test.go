package catalog

import (
	"testing"

	"github.com/lynnadornets/adornets-backend/pkg/enums"
)

func TestDefaultFeedLoads(t *testing.T) {
	feed, err := DefaultFeed()
	if err != nil {
		t.Fatalf("default feed: %v", err)
	}
	if len(feed.All()) == 0 {
		t.Fatalf("expected products in the default feed")
	}
}

func TestFeedByID(t *testing.T) {
	feed := mustFeed(t)

	product, ok := feed.ByID("1")
	if !ok {
		t.Fatalf("expected product 1")
	}
	if product.Category != enums.CategoryNecklaces {
		t.Fatalf("unexpected category %q", product.Category)
	}

	if _, ok := feed.ByID("no-such-id"); ok {
		t.Fatalf("unknown id should not resolve")
	}
}

func TestFeedQueriesPreserveFeedOrder(t *testing.T) {
	feed := mustFeed(t)

	sunglasses := feed.ByCategory(enums.CategorySunglasses)
	if len(sunglasses) != 3 {
		t.Fatalf("expected 3 sunglasses, got %d", len(sunglasses))
	}
	for i := 1; i < len(sunglasses); i++ {
		if sunglasses[i-1].ID >= sunglasses[i].ID {
			t.Fatalf("category query reordered products: %s before %s", sunglasses[i-1].ID, sunglasses[i].ID)
		}
	}

	featured := feed.Featured()
	if len(featured) == 0 {
		t.Fatalf("expected featured products")
	}
	for _, p := range featured {
		if !p.Featured {
			t.Fatalf("product %s is not featured", p.ID)
		}
	}
}

func TestNewFeedRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name    string
		dataset string
	}{
		{"empty dataset", `[]`},
		{"non-positive price", `[{"id":"x","name":"X","price":0,"category":"rings","images":["a.jpg"],"in_stock":true}]`},
		{"original price below price", `[{"id":"x","name":"X","price":100,"original_price":50,"category":"rings","images":["a.jpg"],"in_stock":true}]`},
		{"unknown category", `[{"id":"x","name":"X","price":100,"category":"shoes","images":["a.jpg"],"in_stock":true}]`},
		{"no images", `[{"id":"x","name":"X","price":100,"category":"rings","images":[],"in_stock":true}]`},
		{"duplicate id", `[{"id":"x","name":"X","price":100,"category":"rings","images":["a.jpg"],"in_stock":true},{"id":"x","name":"Y","price":200,"category":"rings","images":["b.jpg"],"in_stock":true}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFeed([]byte(tt.dataset)); err == nil {
				t.Fatalf("expected %s to be rejected", tt.name)
			}
		})
	}
}

func mustFeed(t *testing.T) *Feed {
	t.Helper()
	feed, err := DefaultFeed()
	if err != nil {
		t.Fatalf("load feed: %v", err)
	}
	return feed
}
