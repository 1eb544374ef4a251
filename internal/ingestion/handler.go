package ingestion

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/storepulse/storepulse/internal/api/v1"
	httperr "github.com/storepulse/storepulse/internal/core/errors"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgPayloadTooBig  = "Request body exceeds maximum allowed size"
	msgPersistFailed  = "Failed to persist records"
)

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// IngestHandler handles POST /v1/records.
func (s *Service) IngestHandler(c *gin.Context) {
	batch, payloadSize, ierr := s.parseBatch(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	inserted, err := s.Ingest(c.Request.Context(), batch)
	if err != nil {
		if errors.Is(err, ErrInvalidBatch) {
			slog.Warn("[Ingestion] Batch rejected", "error", err, "records", len(batch.Records))
			writeError(c, &ingestionError{
				statusCode: http.StatusBadRequest,
				errorType:  httperr.HttpInvalidBatchError,
				message:    err.Error(),
			})
			return
		}

		slog.Error("[Ingestion] Failed to persist batch", "error", err, "records", len(batch.Records))
		writeError(c, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		})
		return
	}

	slog.Info("[Ingestion] Batch stored",
		"source_url", batch.SourceURL,
		"records", len(batch.Records),
		"inserted", inserted,
		"payload_size", payloadSize)

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "inserted": inserted})
}

// parseBatch reads the size-capped request body and binds it into a RecordBatch.
func (s *Service) parseBatch(c *gin.Context) (*v1.RecordBatch, int, *ingestionError) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("[Ingestion] Failed to read request body", "error", err)
		return nil, 0, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("[Ingestion] Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpPayloadTooLarge,
			message:    msgPayloadTooBig,
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var batch v1.RecordBatch
	if err := c.ShouldBindJSON(&batch); err != nil {
		slog.Warn("[Ingestion] Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}

	return &batch, len(bodyBytes), nil
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
