package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sanLimbu/taskphotos/internal"
)

//go:generate counterfeiter -o resttesting/report_service.gen.go . ReportService

// ReportService ...
type ReportService interface {
	Monthly(ctx context.Context) (internal.MonthlyReport, error)
}

// ReportHandler ...
type ReportHandler struct {
	svc ReportService
}

// NewReportHandler ...
func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// Register connects the handlers to the router.
func (h *ReportHandler) Register(r chi.Router) {
	r.Get("/reports/monthly", h.monthly)
}

// MonthlyReportResponse defines the completion statistics of the current month.
type MonthlyReportResponse struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Total    int       `json:"total"`
	Finished int       `json:"finished"`
	Rate     int       `json:"rate"`
}

func (h *ReportHandler) monthly(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Monthly(r.Context())
	if err != nil {
		renderErrorResponse(r.Context(), w, r, "Failed to load report", err)
		return
	}

	renderResponse(w, r, &MonthlyReportResponse{
		Start:    res.Start,
		End:      res.End,
		Total:    res.Total,
		Finished: res.Finished,
		Rate:     res.Rate,
	}, http.StatusOK)
}
