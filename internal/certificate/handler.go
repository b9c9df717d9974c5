package certificate

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/testiq/backend/internal/assessment"
	"github.com/testiq/backend/internal/models"
)

// ResultStore is the slice of the result store the certificate needs.
type ResultStore interface {
	GetResult(testID string) (*models.TestResult, error)
}

type Handler struct {
	results ResultStore
}

func NewHandler(results ResultStore) *Handler {
	return &Handler{results: results}
}

// Download looks up the result for a session and streams the certificate
// PDF with an attachment filename derived from the recipient's name.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	var req models.CertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.TestID == "" || req.Name == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "test_id and name are required"})
		return
	}

	result, err := h.results.GetResult(req.TestID)
	if err != nil {
		if errors.Is(err, assessment.ErrResultNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Test result not found"})
			return
		}
		log.Printf("[handler] Download error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load test result"})
		return
	}

	pdf, err := Render(result, req.Name)
	if err != nil {
		log.Printf("[handler] Render error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to render certificate"})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", Filename(req.Name)))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
