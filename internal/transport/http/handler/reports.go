package handler

import (
	"net/http"

	"github.com/game-admin-api/internal/application/report"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *ReportHandler) Reports(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Reports(r.Context())
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *ReportHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt64(r, "limit", defaultAuditLimit)
	if err != nil || limit <= 0 {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	out, err := h.svc.AuditLog(r.Context(), int(limit))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeList(w, out)
}
