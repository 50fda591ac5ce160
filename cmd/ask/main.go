package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/antigravity-ai/guidance/internal/types"
)

// defaultImageQuery is sent when only an image is given, as the web client does
const defaultImageQuery = "Analyze this image"

func main() {
	serverURL := flag.String("server", "http://localhost:8000", "Guidance server base URL")
	query := flag.String("query", "", "Question to ask")
	image := flag.String("image", "", "Optional image file to attach")
	flag.Parse()

	if *query == "" && *image == "" {
		slog.Error("Usage: ask -query <text> [-image <file>] [-server <url>]")
		os.Exit(1)
	}
	if *query == "" {
		*query = defaultImageQuery
	}

	body, contentType, err := buildForm(*query, *image)
	if err != nil {
		slog.Error("Failed to build request", "error", err)
		os.Exit(1)
	}

	url := fmt.Sprintf("%s/ai-guidance", strings.TrimRight(*serverURL, "/"))
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		slog.Error("Failed to create request", "error", err)
		os.Exit(1)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Request-Id", requestID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		slog.Error("Failed to reach server", "url", url, "error", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		slog.Error("Request rejected", "status", resp.StatusCode, "body", strings.TrimSpace(string(msg)), "request_id", requestID)
		os.Exit(1)
	}

	var guidance types.GuidanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&guidance); err != nil {
		slog.Error("Failed to decode response", "error", err, "request_id", requestID)
		os.Exit(1)
	}

	fmt.Println(guidance.Answer)
	fmt.Println()
	fmt.Println(guidance.ConfidenceNote)
}

// buildForm encodes the query and optional image as multipart/form-data
func buildForm(query, imagePath string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("query", query); err != nil {
		return nil, "", fmt.Errorf("failed to write query: %w", err)
	}

	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open image: %w", err)
		}
		defer f.Close()

		fw, err := mw.CreateFormFile("image", filepath.Base(imagePath))
		if err != nil {
			return nil, "", fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := io.Copy(fw, f); err != nil {
			return nil, "", fmt.Errorf("failed to copy image: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish form: %w", err)
	}

	return &buf, mw.FormDataContentType(), nil
}
