package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/lynnadornets/adornets-backend/internal/catalog"
	"github.com/lynnadornets/adornets-backend/pkg/enums"
)

func testFeed(t *testing.T) *catalog.Feed {
	t.Helper()
	feed, err := catalog.DefaultFeed()
	if err != nil {
		t.Fatalf("load feed: %v", err)
	}
	return feed
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestCatalogListAll(t *testing.T) {
	feed := testFeed(t)
	handler := CatalogList(feed, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []catalog.Product `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != len(feed.All()) {
		t.Fatalf("expected %d products got %d", len(feed.All()), len(envelope.Data))
	}
}

func TestCatalogListByCategory(t *testing.T) {
	feed := testFeed(t)
	handler := CatalogList(feed, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?category=rings", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []catalog.Product `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, product := range envelope.Data {
		if product.Category != enums.CategoryRings {
			t.Fatalf("expected only rings, got %s", product.Category)
		}
	}
}

func TestCatalogListInvalidCategory(t *testing.T) {
	handler := CatalogList(testFeed(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?category=watches", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCatalogListFeatured(t *testing.T) {
	feed := testFeed(t)
	handler := CatalogList(feed, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?featured=true", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []catalog.Product `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) == 0 {
		t.Fatal("expected featured products")
	}
	for _, product := range envelope.Data {
		if !product.Featured {
			t.Fatalf("product %s is not featured", product.ID)
		}
	}
}

func TestCatalogDetail(t *testing.T) {
	feed := testFeed(t)
	want := feed.All()[0]
	handler := CatalogDetail(feed, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/"+want.ID, nil)
	req = withURLParam(req, "productId", want.ID)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data catalog.Product `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != want.ID {
		t.Fatalf("expected product %s got %s", want.ID, envelope.Data.ID)
	}
}

func TestCatalogDetailNotFound(t *testing.T) {
	handler := CatalogDetail(testFeed(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/nope", nil)
	req = withURLParam(req, "productId", "nope")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
