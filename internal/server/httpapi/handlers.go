package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

func (s *Server) writeDocument(w http.ResponseWriter, doc *archive.Document) {
	w.Header().Set(headerSource, s.store.Name())
	w.Header().Set(headerUpdatedAt, doc.UpdatedAt)
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "storage": s.store.Name()})
}

func (s *Server) handleGetArchive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error(ctx, "archive read failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgLoadFailed)
		return
	}

	s.writeDocument(w, doc)
}

func (s *Server) handlePostArchive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body := r.Body
	if s.maxBody > 0 {
		body = http.MaxBytesReader(w, r.Body, s.maxBody)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.logger.Warn(ctx, "archive body too large", "limit", tooLarge.Limit)
		} else {
			s.logger.Error(ctx, "archive body read failed", "error", err)
		}
		writeMessage(w, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	doc, report, err := s.codec.Deserialize(data)
	if err != nil {
		s.logger.Warn(ctx, "archive body rejected", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgSaveFailed)
		return
	}
	if !report.Clean() {
		s.logger.Debug(ctx, "archive body coerced", "coercions", len(report.Coercions))
	}

	if err := s.store.Save(ctx, doc); err != nil {
		s.logger.Error(ctx, "archive write failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	s.writeDocument(w, doc)
}

func (s *Server) handleGetShared(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error(ctx, "archive read failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgLoadFailed)
		return
	}

	shared, ok := doc.FindByShareID(r.PathValue("shareId"))
	if !ok {
		writeMessage(w, http.StatusNotFound, msgShareAbsent)
		return
	}

	writeJSON(w, http.StatusOK, shared)
}
