package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ameya/pathserve/internal/domain"
	"github.com/ameya/pathserve/internal/service"
)

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger         *slog.Logger
	service        *service.PathService
	metrics        *Metrics
	maxUploadBytes int64
}

// NewAPIHandlers constructs an APIHandlers instance. Metrics may be nil when
// disabled.
func NewAPIHandlers(logger *slog.Logger, svc *service.PathService, metrics *Metrics, maxUploadBytes int64) *APIHandlers {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 8 << 20
	}
	return &APIHandlers{
		logger:         logger,
		service:        svc,
		metrics:        metrics,
		maxUploadBytes: maxUploadBytes,
	}
}

// handleUploadGraph accepts a multipart upload (field "file") containing a
// JSON graph description. Only .json-named files are accepted; the extension
// check happens at the transport layer, before normalization runs.
func (h *APIHandlers) handleUploadGraph(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.metrics.observeUpload("rejected")
		writeError(w, http.StatusBadRequest, "file form field is required")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".json") {
		h.metrics.observeUpload("rejected")
		writeError(w, http.StatusBadRequest, "invalid file type")
		return
	}

	payload, err := io.ReadAll(file)
	if err != nil {
		h.metrics.observeUpload("rejected")
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	g, err := h.service.UploadGraph(r.Context(), header.Filename, payload)
	if err != nil {
		h.metrics.observeUpload("rejected")
		if errors.Is(err, domain.ErrInvalidFormat) {
			h.logger.Warn("graph upload rejected", "filename", header.Filename, "error", err)
			writeError(w, http.StatusBadRequest, "invalid graph format")
			return
		}
		h.logger.Error("graph upload failed", "filename", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store graph")
		return
	}

	h.metrics.observeUpload("accepted")
	respondJSON(w, http.StatusCreated, uploadResponse{
		Success: header.Filename,
		Nodes:   g.NodeCount(),
		Edges:   g.EdgeCount(),
	})
}

// handleShortestPath answers shortest-path queries against the active graph.
// Boundary guards (missing graph, unknown node IDs) yield distinct errors; an
// unreachable pair is a normal result with null path and distance.
func (h *APIHandlers) handleShortestPath(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	start := query.Get("start")
	end := query.Get("end")
	if start == "" || end == "" {
		writeError(w, http.StatusBadRequest, "start and end query parameters are required")
		return
	}

	began := time.Now()
	result, err := h.service.ShortestPath(r.Context(), start, end)
	elapsed := time.Since(began).Seconds()

	switch {
	case errors.Is(err, domain.ErrNoActiveGraph):
		h.metrics.observeSolve("error", elapsed)
		writeError(w, http.StatusConflict, "no active graph")
		return
	case errors.Is(err, domain.ErrUnknownNode):
		h.metrics.observeSolve("error", elapsed)
		writeError(w, http.StatusNotFound, "invalid start or end node id")
		return
	case err != nil:
		h.metrics.observeSolve("error", elapsed)
		h.logger.Error("shortest path query failed", "error", err, "start", start, "end", end)
		writeError(w, http.StatusInternalServerError, "failed to compute shortest path")
		return
	}

	resp := shortestPathResponse{}
	if result.Found {
		h.metrics.observeSolve("found", elapsed)
		resp.ShortestPath = &result.Path
		resp.TotalDistance = &result.TotalDistance
	} else {
		h.metrics.observeSolve("unreachable", elapsed)
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) handleWelcome(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Shortest Path Solver!",
	})
}

// --- Request & Response DTOs ---

type uploadResponse struct {
	Success string `json:"success"`
	Nodes   int    `json:"nodes"`
	Edges   int    `json:"edges"`
}

type shortestPathResponse struct {
	ShortestPath  *[]string `json:"shortest_path"`
	TotalDistance *float64  `json:"total_distance"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{
		"error": msg,
	})
}
