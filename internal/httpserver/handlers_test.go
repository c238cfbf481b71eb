package httpserver

import (
	"net/http"
	"testing"

	"museumsouk/internal/domain"
)

func TestListMuseums(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/museums", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var museums []domain.Museum
	decodeBody(t, rec, &museums)
	if len(museums) != 6 {
		t.Fatalf("expected 6 seeded museums, got %d", len(museums))
	}
	if museums[0].Name != "Louvre Museum" {
		t.Fatalf("expected insertion order, got %q first", museums[0].Name)
	}
}

func TestGetMuseum(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/museums/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var museum domain.Museum
	decodeBody(t, rec, &museum)
	if museum.ID != 1 || museum.Name != "Louvre Museum" {
		t.Fatalf("unexpected museum %#v", museum)
	}
}

func TestGetMuseumNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/museums/999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestGetMuseumBadID(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/museums/louvre", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestListCategories(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var categories []domain.Category
	decodeBody(t, rec, &categories)
	if len(categories) != 12 {
		t.Fatalf("expected 12 seeded categories, got %d", len(categories))
	}
}

func TestGetCategoryBySlug(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/categories/t-shirts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var category domain.Category
	decodeBody(t, rec, &category)
	if category.ID != 3 {
		t.Fatalf("expected category id 3, got %d", category.ID)
	}
	if category.ParentID == nil || *category.ParentID != 2 {
		t.Fatalf("expected parent id 2, got %v", category.ParentID)
	}
}

func TestGetCategoryByID(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/categories/3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var category domain.Category
	decodeBody(t, rec, &category)
	if category.Slug != "t-shirts" {
		t.Fatalf("expected t-shirts, got %q", category.Slug)
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	router := newTestRouter(t)

	for _, key := range []string{"hats", "999"} {
		rec := doRequest(t, router, http.MethodGet, "/api/categories/"+key, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("key %q: expected status 404, got %d", key, rec.Code)
		}
	}
}
