package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/algonquin-pet-store/product-service/internal/models"
	"github.com/algonquin-pet-store/product-service/internal/repository"
	"github.com/algonquin-pet-store/product-service/internal/service"
	"github.com/algonquin-pet-store/product-service/pkg/logger"
)

const expectedProductsBody = `[{"id":1,"name":"Dog Food","price":19.99},{"id":2,"name":"Cat Food","price":34.99},{"id":3,"name":"Bird Seeds","price":10.99}]`

type stubLister struct {
	products []models.Product
	err      error
}

func (s *stubLister) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products, s.err
}

func newTestHandler() *ProductHandler {
	repo := repository.NewStaticProductRepository()
	svc := service.NewProductService(repo)
	return NewProductHandler(svc, logger.NewWithWriter(io.Discard, "error"))
}

func TestListProducts(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()

	handler.ListProducts(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	if body := w.Body.String(); body != expectedProductsBody {
		t.Errorf("body = %s, want %s", body, expectedProductsBody)
	}
}

func TestListProducts_Decoded(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()

	handler.ListProducts(w, req)

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	testCases := []struct {
		id    int64
		name  string
		price float64
	}{
		{1, "Dog Food", 19.99},
		{2, "Cat Food", 34.99},
		{3, "Bird Seeds", 10.99},
	}

	if len(products) != len(testCases) {
		t.Fatalf("expected %d products, got %d", len(testCases), len(products))
	}

	for i, tc := range testCases {
		if products[i].ID != tc.id {
			t.Errorf("products[%d].ID = %d, want %d", i, products[i].ID, tc.id)
		}
		if products[i].Name != tc.name {
			t.Errorf("products[%d].Name = %s, want %s", i, products[i].Name, tc.name)
		}
		if products[i].Price != tc.price {
			t.Errorf("products[%d].Price = %f, want %f", i, products[i].Price, tc.price)
		}
	}
}

func TestListProducts_Idempotent(t *testing.T) {
	handler := newTestHandler()

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		w := httptest.NewRecorder()

		handler.ListProducts(w, req)

		if body := w.Body.String(); body != expectedProductsBody {
			t.Fatalf("call %d: body = %s, want %s", i, body, expectedProductsBody)
		}
	}
}

func TestListProducts_ServiceError(t *testing.T) {
	handler := NewProductHandler(&stubLister{err: errors.New("unavailable")}, logger.NewWithWriter(io.Discard, "error"))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()

	handler.ListProducts(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if response["error"] != "Internal server error" {
		t.Errorf("expected error message 'Internal server error', got %s", response["error"])
	}
}

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler(logger.NewWithWriter(io.Discard, "error"))
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	handler.now = func() time.Time { return fixed }

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Status != "healthy" {
		t.Errorf("status = %s, want healthy", response.Status)
	}
	if !response.Timestamp.Equal(fixed) {
		t.Errorf("timestamp = %v, want %v", response.Timestamp, fixed)
	}
	if response.Version != Version {
		t.Errorf("version = %s, want %s", response.Version, Version)
	}
}
