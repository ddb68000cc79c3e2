package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/arunpathak904/univaegis-assignment/constants"
	"github.com/arunpathak904/univaegis-assignment/internal/common"
	"github.com/arunpathak904/univaegis-assignment/internal/eligibility"
	"github.com/arunpathak904/univaegis-assignment/internal/entity"
	"github.com/arunpathak904/univaegis-assignment/internal/extract"
	"github.com/arunpathak904/univaegis-assignment/internal/schema"
)

type eligibilityRequest struct {
	DocumentID uint               `json:"document_id"`
	Scores     eligibility.Scores `json:"ielts_scores"`
}

// handleEligibilityCheck evaluates the study-visa rules against a
// document's extracted data plus caller-supplied IELTS scores, and
// persists the outcome.
func (s *Server) handleEligibilityCheck(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if err := schema.Validate(schema.EligibilityRequestSchema(), body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req eligibilityRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	doc, err := s.docs.GetByID(r.Context(), req.DocumentID)
	if errors.Is(err, common.ErrNotFound) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load document")
		return
	}

	if len(doc.Extracted) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success":  false,
			"eligible": false,
			"reasons":  []string{"No extracted data available for this document."},
		})
		return
	}
	if doc.DocType != string(constants.DocTypeAcademic) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success":  false,
			"eligible": false,
			"reasons":  []string{"Eligibility rules are defined only for academic documents."},
		})
		return
	}

	decision := eligibility.Evaluate(extract.Fields(doc.Extracted), req.Scores)

	check := &entity.EligibilityCheck{
		DocumentID:  doc.ID,
		IELTSScores: entity.JSONMap(req.Scores.Map()),
		IsEligible:  decision.Eligible,
		Reasons:     entity.StringList(decision.Reasons),
	}
	if err := s.checks.Create(r.Context(), check); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save eligibility check")
		return
	}

	s.logger.Info("eligibility evaluated",
		"document_id", doc.ID, "check_id", check.ID,
		"eligible", decision.Eligible, "reasons", len(decision.Reasons))

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"eligible":     decision.Eligible,
		"reasons":      decision.Reasons,
		"document_id":  doc.ID,
		"ielts_scores": check.IELTSScores,
		"check":        check,
	})
}

// handleListChecks returns check history, optionally scoped to one
// document via ?document_id=N.
func (s *Server) handleListChecks(w http.ResponseWriter, r *http.Request) {
	documentID, ok, err := documentIDQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "document_id must be a positive integer")
		return
	}
	var filter *uint
	if ok {
		filter = &documentID
	}

	checks, err := s.checks.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list eligibility checks")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(checks),
		"checks":  checks,
	})
}

func (s *Server) handleExportChecks(w http.ResponseWriter, r *http.Request) {
	documentID, ok, err := documentIDQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "document_id must be a positive integer")
		return
	}
	var filter *uint
	if ok {
		filter = &documentID
	}

	data, err := s.exporter.ExportChecksXLSX(r.Context(), filter)
	if err != nil {
		s.logger.Error("export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to export eligibility checks")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="eligibility_checks.xlsx"`)
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// documentIDQuery parses the optional document_id query parameter. The
// middle return reports whether the parameter was present.
func documentIDQuery(r *http.Request) (uint, bool, error) {
	raw := r.URL.Query().Get("document_id")
	if raw == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false, fmt.Errorf("invalid document_id %q", raw)
	}
	return uint(id), true, nil
}
