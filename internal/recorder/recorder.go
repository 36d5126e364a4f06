package recorder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fredrick-nadar/MumbaiHacks25-sub002/internal/logger"
	"github.com/fredrick-nadar/MumbaiHacks25-sub002/internal/pipeline"
)

// Record is the JSON payload the transactions backend expects for one
// resolved transaction.
type Record struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// Result is the outcome of submitting one transaction. RecordID is a
// client-side id used to correlate log lines with API calls; the backend
// assigns its own ids.
type Result struct {
	RecordID string
	Err      error
}

// Service submits resolved transactions to a persistence backend.
type Service interface {
	RecordTransactions(ctx context.Context, txs []pipeline.Transaction) ([]Result, int)
}

// Client posts transaction records to the TaxWise transactions API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	now     func() time.Time
}

// NewClient builds a Client for the given API base URL. token may be
// empty; timeout bounds each individual submission.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// RecordTransactions submits each transaction independently and returns
// one Result per input plus the success count. A failed submission is
// logged and recorded but never stops the remaining items: the batch is
// at-least-effort, not atomic.
func (c *Client) RecordTransactions(ctx context.Context, txs []pipeline.Transaction) ([]Result, int) {
	log := logger.FromContext(ctx)

	results := make([]Result, 0, len(txs))
	succeeded := 0

	for i, tx := range txs {
		recordID := uuid.NewString()
		recordLog := logger.WithFields(log, map[string]interface{}{
			"record_id": recordID,
			"index":     i,
		})

		err := c.post(ctx, tx)
		if err != nil {
			recordLog.Error().Err(err).Msg("Failed to record transaction")
		} else {
			succeeded++
			recordLog.Info().
				Str("amount", tx.Amount.String()).
				Str("category", string(tx.Category)).
				Msg("Transaction recorded")
		}
		results = append(results, Result{RecordID: recordID, Err: err})
	}

	return results, succeeded
}

func (c *Client) post(ctx context.Context, tx pipeline.Transaction) error {
	record := Record{
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Category:    string(tx.Category),
		Description: tx.Description,
		Date:        c.now().UTC(),
	}

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("post: marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("post: API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	return nil
}
