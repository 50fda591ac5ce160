package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/antigravity-ai/guidance/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_completer.go -package=http Completer

// Completer defines the interface for answer generation
type Completer interface {
	GenerateAnswer(ctx context.Context, userText string, hasImage bool) (string, error)
}

const (
	// ConfidenceNote accompanies every answer produced by the model
	ConfidenceNote = "This response is for educational guidance only, not official counselling."
	// InterruptedNote replaces ConfidenceNote when the model could not be reached
	InterruptedNote = "Service interrupted."

	apologyFormat = "I'm sorry, I'm having trouble connecting to my AI core right now. (Error: %s)"

	// errorSnippetLen is the number of characters of the provider error shown to users
	errorSnippetLen = 100

	maxQueryBytes = 1 << 20
)

var errQueryTooLarge = errors.New("query is too large")

type Handler struct {
	completer Completer
}

// NewHandlers initializes handlers with dependencies
func NewHandlers(completer Completer) *Handler {
	return &Handler{
		completer: completer,
	}
}

// GuidanceHandler answers a form-encoded query with an optional image.
// Provider failures are reported inside the envelope with status 200.
func (h *Handler) GuidanceHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	query, hasImage, err := parseGuidanceForm(r)
	if err != nil {
		errorResponse(w, http.StatusUnprocessableEntity, "Invalid form data", err)
		return
	}

	if query == "" {
		errorResponse(w, http.StatusUnprocessableEntity, "Query is required", nil)
		return
	}

	ctx := r.Context()

	answer, err := h.completer.GenerateAnswer(ctx, query, hasImage)
	if err != nil {
		slog.Error("Error generating answer",
			"error", err,
			"request_id", middleware.GetReqID(ctx),
			"query_length", len(query),
			"has_image", hasImage,
		)
	}

	writeJSON(w, http.StatusOK, NewGuidanceResponse(answer, err))
}

// NewGuidanceResponse maps the outcome of a completion to the response envelope
func NewGuidanceResponse(answer string, err error) types.GuidanceResponse {
	if err != nil {
		return types.GuidanceResponse{
			Answer:         fmt.Sprintf(apologyFormat, truncate(err.Error(), errorSnippetLen)),
			ConfidenceNote: InterruptedNote,
		}
	}

	return types.GuidanceResponse{
		Answer:         answer,
		ConfidenceNote: ConfidenceNote,
	}
}

// HealthHandler reports that the server is up
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseGuidanceForm extracts the query text and whether an image file was attached.
// Image parts are skipped without being read.
func parseGuidanceForm(r *http.Request) (string, bool, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return "", false, fmt.Errorf("invalid content type: %w", err)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return "", false, fmt.Errorf("failed to parse form: %w", err)
		}
		return r.PostForm.Get("query"), false, nil

	case "multipart/form-data":
		return parseMultipart(r)

	default:
		return "", false, fmt.Errorf("unsupported content type %q", mediaType)
	}
}

func parseMultipart(r *http.Request) (string, bool, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return "", false, fmt.Errorf("failed to read multipart form: %w", err)
	}

	var (
		query    string
		hasQuery bool
		hasImage bool
	)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", false, fmt.Errorf("failed to read multipart form: %w", err)
		}

		switch part.FormName() {
		case "query":
			if hasQuery {
				break
			}
			data, err := io.ReadAll(io.LimitReader(part, maxQueryBytes+1))
			if err != nil {
				part.Close()
				return "", false, fmt.Errorf("failed to read query: %w", err)
			}
			if len(data) > maxQueryBytes {
				part.Close()
				return "", false, errQueryTooLarge
			}
			query, hasQuery = string(data), true

		case "image":
			// Only presence matters; the remaining bytes are discarded by NextPart
			if part.FileName() != "" {
				hasImage = true
			}
		}
		part.Close()
	}

	return query, hasImage, nil
}

// truncate returns at most n characters of s
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err, "status", status)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
	}

	writeJSON(w, status, types.ErrorResponse{
		Error:   http.StatusText(status),
		Message: errorMsg,
	})
}
