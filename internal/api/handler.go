// Package api exposes the extraction pipeline over HTTP.
package api

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rupeetrail/stmt-ledger/internal/extractor"
	"github.com/rupeetrail/stmt-ledger/internal/models"
	"github.com/rupeetrail/stmt-ledger/internal/parser"
	"github.com/rupeetrail/stmt-ledger/internal/processor"
)

// ExtractResponse is the JSON response from the /api/extract endpoint.
type ExtractResponse struct {
	Success      bool                            `json:"success"`
	Error        string                          `json:"error,omitempty"`
	Bank         models.BankCode                 `json:"bank,omitempty"`
	BankName     string                          `json:"bankName,omitempty"`
	Transactions []models.CategorizedTransaction `json:"transactions"`
	Summary      *models.Summary                 `json:"summary,omitempty"`
	Count        int                             `json:"count"`
}

// extractRequest is the JSON request body for text submissions.
type extractRequest struct {
	Text string `json:"text"`
}

var defaultProcessor = processor.New()

// Register sets up the API routes on the given app.
func Register(app *fiber.App) {
	app.Get("/api/health", HandleHealth)
	app.Post("/api/extract", HandleExtract)
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": "fiber",
	})
}

// HandleExtract runs the pipeline over statement text supplied either as a
// "text" field (JSON or form) or as an uploaded PDF under the "file" field.
func HandleExtract(c *fiber.Ctx) error {
	text, err := statementText(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(text) == "" {
		return writeError(c, fiber.StatusBadRequest, "no statement text: provide a 'text' field or upload a PDF as 'file'")
	}

	ex, err := defaultProcessor.ExtractTransactions(text)
	if err != nil {
		var unsupported *parser.UnsupportedBankError
		if errors.As(err, &unsupported) {
			return writeError(c, fiber.StatusUnprocessableEntity, unsupported.Error())
		}
		return writeError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("extraction failed: %v", err))
	}

	txns := ex.Transactions
	if txns == nil {
		txns = []models.CategorizedTransaction{}
	}

	return c.JSON(ExtractResponse{
		Success:      true,
		Bank:         ex.Bank,
		BankName:     ex.BankName,
		Transactions: txns,
		Summary:      &ex.Summary,
		Count:        len(txns),
	})
}

// statementText resolves the input text from the request: inline text wins,
// then a PDF upload run through the extractor.
func statementText(c *fiber.Ctx) (string, error) {
	if strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		var req extractRequest
		if err := c.BodyParser(&req); err != nil {
			return "", fmt.Errorf("invalid JSON body: %w", err)
		}
		return req.Text, nil
	}

	if text := c.FormValue("text"); text != "" {
		return text, nil
	}

	header, err := c.FormFile("file")
	if err != nil {
		return "", nil
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return "", fmt.Errorf("only PDF uploads are supported, got %q", header.Filename)
	}

	upload, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}
	defer upload.Close()

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, upload); err != nil {
		return "", fmt.Errorf("saving upload: %w", err)
	}
	tmp.Close()

	pages, err := extractor.ExtractText(tmp.Name())
	if err != nil {
		return "", fmt.Errorf("PDF extraction failed: %w", err)
	}
	return strings.Join(pages, "\n"), nil
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ExtractResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.CategorizedTransaction{},
	})
}
