package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/arunpathak904/univaegis-assignment/constants"
	"github.com/arunpathak904/univaegis-assignment/internal/common"
	"github.com/arunpathak904/univaegis-assignment/internal/entity"
	"github.com/arunpathak904/univaegis-assignment/internal/extract"
	"github.com/arunpathak904/univaegis-assignment/internal/schema"
)

// handleUploadDocument accepts a multipart upload (file + doc_type),
// stores the bytes, and runs the full OCR/extraction pipeline before
// answering.
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	docType, ok := constants.ParseDocType(r.FormValue("doc_type"))
	if !ok {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("doc_type must be one of: %s", strings.Join(constants.DocTypeStrings(), ", ")))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer func() { _ = file.Close() }()

	ext := filepath.Ext(header.Filename)
	if !constants.AllowedExt(ext) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("unsupported file extension %q; allowed: pdf, jpg, jpeg, png", constants.NormalizeExt(ext)))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("failed to read upload", "error", err)
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "uploaded file is empty")
		return
	}

	stored, err := s.store.Save(header.Filename, data)
	if err != nil {
		s.logger.Error("failed to store upload", "filename", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store uploaded file")
		return
	}

	doc := &entity.Document{
		DocType:          string(docType),
		OriginalFilename: header.Filename,
		StoredPath:       stored.Path,
		ContentSHA256:    stored.SHA256Hex,
		Status:           string(constants.DocStatusUploaded),
	}
	if err := s.docs.Create(r.Context(), doc); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save document")
		return
	}

	s.logger.Info("document uploaded",
		"document_id", doc.ID, "doc_type", doc.DocType,
		"filename", header.Filename, "bytes", stored.Size)

	out, err := s.processor.Process(r.Context(), doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to process document")
		return
	}

	// Re-read so the response carries the persisted state.
	updated, err := s.docs.GetByID(r.Context(), doc.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load document")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":    true,
		"document":   updated,
		"extracted":  out.Fields,
		"confidence": out.Confidence,
	})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	doc, err := s.docs.GetByID(r.Context(), id)
	if errors.Is(err, common.ErrNotFound) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load document")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "document": doc})
}

// handleUpdateExtracted applies reviewer corrections: a partial
// payload restricted to the known field names, shallow-merged into the
// stored extracted data key by key.
func (s *Server) handleUpdateExtracted(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if err := schema.Validate(schema.CorrectionSchema(), body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var patch map[string]any
	if err := json.Unmarshal(body, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	doc, err := s.docs.GetByID(r.Context(), id)
	if errors.Is(err, common.ErrNotFound) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load document")
		return
	}

	merged := extract.Merge(extract.Fields(doc.Extracted), extract.Fields(patch))
	if err := s.docs.UpdateExtracted(r.Context(), id, entity.JSONMap(merged)); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update extracted data")
		return
	}
	doc.Extracted = entity.JSONMap(merged)

	s.logger.Info("extracted data corrected", "document_id", id, "fields", len(patch))
	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"document":       doc,
		"updated_fields": patch,
	})
}
