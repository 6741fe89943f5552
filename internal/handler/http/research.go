package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/service"
	"github.com/MKhiriev/trademark-relay/internal/utils"
	"github.com/MKhiriev/trademark-relay/internal/validators"
	"github.com/MKhiriev/trademark-relay/models"
)

const maxRequestBodySize = 1 << 20

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	body, err := h.services.ResearchService.Search(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteRawJSON(w, body, http.StatusOK)
}

func (h *Handler) fileDetails(w http.ResponseWriter, r *http.Request) {
	var req models.FileDetailRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	body, err := h.services.ResearchService.FileDetails(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteRawJSON(w, body, http.StatusOK)
}

// decodeBody reads a JSON object into dst. An empty body decodes as {} and
// is left to validation to reject.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return &service.StageError{
		Stage: service.StageValidating,
		Err:   &validators.ValidationError{Field: "body", Err: validators.ErrMalformedRequest, Detail: err.Error()},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("stage", string(service.FailedStage(err))).
		Int("status", status).
		Msg("relay request failed")

	utils.WriteJSON(w, models.ErrorResponse{Error: errorMessage(err)}, status)
}
