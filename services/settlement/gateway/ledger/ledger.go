package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/internal/pkg/retry"
	"github.com/fuelops/uppf-engine/services/settlement"
)

type ledgerGW struct {
	baseURL    string
	httpClient *http.Client
	retrier    *retry.Retrier
	attempts   int
}

// NewLedgerGW creates an HTTP gateway to the external accounting service.
// Calls are bounded by the configured timeout and retried with backoff;
// the ledger deduplicates on the instructions' idempotency keys, so a retry
// after a partial failure is safe.
func NewLedgerGW(baseURL string, retryCfg models.RetryConfig) settlement.LedgerGW {
	return &ledgerGW{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(retryCfg.TimeoutSeconds) * time.Second,
		},
		retrier: retry.New(retry.Config{
			MaxRetries: retryCfg.MaxRetries,
			BaseDelay:  time.Duration(retryCfg.BaseDelayMs) * time.Millisecond,
			MaxDelay:   time.Duration(retryCfg.MaxDelayMs) * time.Millisecond,
			Multiplier: 2.0,
			Jitter:     true,
		}),
		attempts: retryCfg.MaxRetries + 1,
	}
}

// PostInstructions posts the batch, wrapping retry exhaustion in an
// ExternalFailureError for the caller to escalate
func (g *ledgerGW) PostInstructions(ctx context.Context, instructions []models.PostingInstruction) error {
	body, err := json.Marshal(instructions)
	if err != nil {
		return fmt.Errorf("failed to marshal posting instructions: %w", err)
	}

	err = g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.post(ctx, body)
	})
	if err != nil {
		return &apperrors.ExternalFailureError{
			Target:   "ledger",
			Attempts: g.attempts,
			Err:      err,
		}
	}
	return nil
}

func (g *ledgerGW) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/instructions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build ledger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ledger request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("ledger returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
