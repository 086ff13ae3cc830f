package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lynnadornets/adornets-backend/api/middleware"
	"github.com/lynnadornets/adornets-backend/internal/cart"
)

func newTestSessions(t *testing.T) *cart.Sessions {
	t.Helper()
	sessions := cart.NewSessions(time.Hour, time.Hour)
	t.Cleanup(sessions.Close)
	return sessions
}

func sessionRequest(method, target, body, sessionID string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(middleware.WithSessionID(req.Context(), sessionID))
}

func decodeCartView(t *testing.T, resp *httptest.ResponseRecorder) cartView {
	t.Helper()
	var envelope struct {
		Data cartView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestCartAddItem(t *testing.T) {
	sessions := newTestSessions(t)
	feed := testFeed(t)
	product := feed.All()[0]
	sessionID := uuid.NewString()
	handler := CartAddItem(sessions, feed, nil, nil)

	req := sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":"`+product.ID+`","quantity":2}`, sessionID)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	view := decodeCartView(t, resp)
	if view.TotalItems != 2 {
		t.Fatalf("expected 2 items got %d", view.TotalItems)
	}
	if view.TotalPrice != product.Price*2 {
		t.Fatalf("expected total %d got %d", product.Price*2, view.TotalPrice)
	}
}

func TestCartAddItemDefaultsQuantity(t *testing.T) {
	sessions := newTestSessions(t)
	feed := testFeed(t)
	product := feed.All()[0]
	sessionID := uuid.NewString()
	handler := CartAddItem(sessions, feed, nil, nil)

	req := sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":"`+product.ID+`"}`, sessionID)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if view := decodeCartView(t, resp); view.TotalItems != 1 {
		t.Fatalf("expected quantity to default to 1, got %d", view.TotalItems)
	}
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	sessions := newTestSessions(t)
	handler := CartAddItem(sessions, testFeed(t), nil, nil)

	req := sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":"nope"}`, uuid.NewString())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCartAddItemRejectsNegativeQuantity(t *testing.T) {
	sessions := newTestSessions(t)
	feed := testFeed(t)
	handler := CartAddItem(sessions, feed, nil, nil)

	req := sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":"`+feed.All()[0].ID+`","quantity":-1}`, uuid.NewString())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	sessions := newTestSessions(t)
	feed := testFeed(t)
	product := feed.All()[0]
	sessionID := uuid.NewString()
	sessions.Get(sessionID).AddItem(product, 3)
	handler := CartSetQuantity(sessions, nil, nil)

	req := sessionRequest(http.MethodPatch, "/api/v1/cart/items/"+product.ID, `{"quantity":0}`, sessionID)
	req = withURLParam(req, "productId", product.ID)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if view := decodeCartView(t, resp); len(view.Lines) != 0 {
		t.Fatalf("expected empty cart got %d lines", len(view.Lines))
	}
}

func TestCartSetQuantityRequiresField(t *testing.T) {
	sessions := newTestSessions(t)
	handler := CartSetQuantity(sessions, nil, nil)

	req := sessionRequest(http.MethodPatch, "/api/v1/cart/items/x", `{}`, uuid.NewString())
	req = withURLParam(req, "productId", "x")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartRemoveItem(t *testing.T) {
	sessions := newTestSessions(t)
	feed := testFeed(t)
	product := feed.All()[0]
	sessionID := uuid.NewString()
	sessions.Get(sessionID).AddItem(product, 1)
	handler := CartRemoveItem(sessions, nil, nil)

	req := sessionRequest(http.MethodDelete, "/api/v1/cart/items/"+product.ID, "", sessionID)
	req = withURLParam(req, "productId", product.ID)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if view := decodeCartView(t, resp); len(view.Lines) != 0 {
		t.Fatalf("expected empty cart got %d lines", len(view.Lines))
	}
}

func TestCartClear(t *testing.T) {
	sessions := newTestSessions(t)
	feed := testFeed(t)
	sessionID := uuid.NewString()
	c := sessions.Get(sessionID)
	c.AddItem(feed.All()[0], 2)
	c.AddItem(feed.All()[1], 1)
	handler := CartClear(sessions, nil, nil)

	req := sessionRequest(http.MethodDelete, "/api/v1/cart", "", sessionID)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if view := decodeCartView(t, resp); view.TotalItems != 0 {
		t.Fatalf("expected empty cart got %d items", view.TotalItems)
	}
}

func TestCartFetchMissingSessionContext(t *testing.T) {
	sessions := newTestSessions(t)
	handler := CartFetch(sessions, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
