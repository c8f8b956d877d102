package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"parley/internal/domain/models"
	"parley/internal/domain/services"
)

func TestListVersionsNotFound(t *testing.T) {
	svc := &mockArtifactService{
		ListDocumentVersionsFunc: func(ctx context.Context, id string) ([]models.Document, error) {
			return nil, nil
		},
	}
	h := NewDocumentHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/document?id=gone", nil)
	rec := httptest.NewRecorder()

	h.ListVersions(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSaveVersion(t *testing.T) {
	var gotReq *services.SaveDocumentRequest
	svc := &mockArtifactService{
		SaveDocumentFunc: func(ctx context.Context, req *services.SaveDocumentRequest) (*models.Document, error) {
			gotReq = req
			return &models.Document{
				ID:        req.ID,
				Title:     req.Title,
				Kind:      models.DocumentKindCode,
				UserID:    req.UserID,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	h := NewDocumentHandler(svc, testLogger())

	body := `{"title":"fib.py","content":"print(1)","kind":"code"}`
	req := httptest.NewRequest(http.MethodPost, "/api/document?id=doc-1", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SaveVersion(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	if gotReq == nil || gotReq.ID != "doc-1" || gotReq.Kind != models.DocumentKindCode {
		t.Errorf("service request = %+v", gotReq)
	}
}

func TestDeleteVersionsAfter(t *testing.T) {
	cutoff := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var gotTs time.Time
	svc := &mockArtifactService{
		DeleteVersionsAfterFunc: func(ctx context.Context, id string, ts time.Time) ([]models.Document, error) {
			gotTs = ts
			return []models.Document{{ID: id, CreatedAt: cutoff.Add(time.Hour)}}, nil
		},
	}
	h := NewDocumentHandler(svc, testLogger())

	url := "/api/document?id=doc-1&timestamp=" + cutoff.Format(time.RFC3339Nano)
	req := httptest.NewRequest(http.MethodDelete, url, nil)
	rec := httptest.NewRecorder()

	h.DeleteVersionsAfter(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if !gotTs.Equal(cutoff) {
		t.Errorf("timestamp = %v, want %v", gotTs, cutoff)
	}
}

func TestDeleteVersionsAfterRejectsBadTimestamp(t *testing.T) {
	h := NewDocumentHandler(&mockArtifactService{}, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/document?id=doc-1&timestamp=yesterday", nil)
	rec := httptest.NewRecorder()

	h.DeleteVersionsAfter(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListSuggestionsRequiresDocumentID(t *testing.T) {
	h := NewSuggestionHandler(&mockArtifactService{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/suggestions", nil)
	rec := httptest.NewRecorder()

	h.ListSuggestions(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
