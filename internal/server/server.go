// Package server exposes the conversion pipeline over HTTP for the web
// frontend: upload a workbook, list its sheets, convert selected sheets.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc"
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/output"
	"github.com/google/uuid"
)

// Config configures a Handler.
type Config struct {
	// Options are applied to every conversion.
	Options svcdoc.Options
	// MaxUploadBytes bounds the request body size.
	MaxUploadBytes int64
	// AllowedOrigin is sent as Access-Control-Allow-Origin.
	AllowedOrigin string
	Logger        *slog.Logger
}

// Handler serves the conversion API.
type Handler struct {
	cfg Config
	log *slog.Logger
	mux *http.ServeMux
}

// NewHandler builds the HTTP handler with its routes.
func NewHandler(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 32 << 20
	}
	h := &Handler{cfg: cfg, log: cfg.Logger, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /healthz", h.health)
	h.mux.HandleFunc("POST /api/sheets", h.listSheets)
	h.mux.HandleFunc("POST /api/convert", h.convert)
	return h
}

// ServeHTTP tags the request with an id, applies CORS and dispatches it.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)
	w.Header().Set("Access-Control-Allow-Origin", h.cfg.AllowedOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	log := h.log.With("request_id", requestID, "method", r.Method, "path", r.URL.Path)
	r = r.WithContext(withLogger(r.Context(), log))
	log.Debug("request received")
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type sheetsResponse struct {
	Sheets []output.SheetInfo `json:"sheets"`
}

func (h *Handler) listSheets(w http.ResponseWriter, r *http.Request) {
	wb, err := h.readWorkbook(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sheetsResponse{Sheets: output.DescribeSheets(wb)})
}

func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	wb, err := h.readWorkbook(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	opts := h.cfg.Options
	opts.Logger = loggerFrom(r.Context())
	conv, err := svcdoc.Convert(r.Context(), wb, r.MultipartForm.Value["sheet"], opts)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, conv)
	case "zip":
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.ArchiveName))
		if err := output.WriteArchive(w, conv.Documents); err != nil {
			loggerFrom(r.Context()).Error("failed to write archive", slog.Any("error", err))
		}
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid format: %q (must be json or zip)", r.URL.Query().Get("format")))
	}
}

// readWorkbook loads the workbook sent in the "file" multipart field.
func (h *Handler) readWorkbook(w http.ResponseWriter, r *http.Request) (*models.Workbook, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		return nil, &requestError{err: fmt.Errorf("invalid multipart form: %w", err)}
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, &requestError{err: fmt.Errorf("missing file: %w", err)}
	}
	defer file.Close()

	return svcdoc.Load(header.Filename, file)
}

// requestError marks malformed requests.
type requestError struct {
	err error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

// fail maps pipeline errors to HTTP status codes.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var (
		reqErr  *requestError
		loadErr *svcdoc.LoadError
		selErr  *svcdoc.SelectionError
	)
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &reqErr), errors.As(err, &loadErr):
		status = http.StatusBadRequest
	case errors.As(err, &selErr):
		status = http.StatusUnprocessableEntity
	}

	log := loggerFrom(r.Context())
	if status == http.StatusInternalServerError {
		log.Error("request failed", slog.Any("error", err))
	} else {
		log.Info("request rejected", slog.Int("status", status), slog.Any("error", err))
	}
	writeError(w, status, err)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

type loggerKey struct{}

func withLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

func loggerFrom(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}
