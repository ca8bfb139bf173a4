package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/orderboard/orderboard/internal/core/ports"
)

type stubReportService struct {
	generateFn func(ctx context.Context) (*ports.ReportResult, error)
}

func (s *stubReportService) Generate(ctx context.Context) (*ports.ReportResult, error) {
	return s.generateFn(ctx)
}

func TestReportHandler_Download_Success(t *testing.T) {
	e := echo.New()
	handler := NewReportHandler(&stubReportService{
		generateFn: func(context.Context) (*ports.ReportResult, error) {
			return &ports.ReportResult{
				Filename:    "orders-2026-03-14.pdf",
				ContentType: "application/pdf",
				Data:        []byte("%PDF-1.4 fake"),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/report", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Download(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != "application/pdf" {
		t.Errorf("unexpected content type: %q", got)
	}
	want := `attachment; filename="orders-2026-03-14.pdf"`
	if got := rec.Header().Get(echo.HeaderContentDisposition); got != want {
		t.Errorf("unexpected content disposition: %q", got)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected a non-empty body")
	}
}

func TestReportHandler_Download_GenerateError(t *testing.T) {
	e := echo.New()
	handler := NewReportHandler(&stubReportService{
		generateFn: func(context.Context) (*ports.ReportResult, error) {
			return nil, errors.New("renderer failed")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/report", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Download(c); err == nil {
		t.Fatal("expected error to propagate to the error handler")
	}
}
