// Package lunchmoney implements budget.TransactionSource against the
// Lunch Money REST API.
package lunchmoney

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"confronto/internal/core"
)

var (
	// ErrUnauthorized is returned when the API rejects the bearer token.
	ErrUnauthorized = errors.New("budgeting API rejected the credential")
	// ErrMissingToken is returned when no token was configured at all.
	ErrMissingToken = errors.New("missing API token")
)

const defaultPageSize = 500

type Client struct {
	baseURL    string
	token      string
	pageSize   int
	httpClient *http.Client
}

func NewClient(baseURL, token string, pageSize int) *Client {
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return &Client{
		baseURL:  baseURL,
		token:    token,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type transactionsPage struct {
	Transactions []core.Transaction `json:"transactions"`
}

// ListTransactions implements budget.TransactionSource. It pages through
// the year with a fixed page size until a short page comes back.
func (c *Client) ListTransactions(ctx context.Context, year int) ([]core.Transaction, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}

	start := fmt.Sprintf("%04d-01-01", year)
	end := fmt.Sprintf("%04d-12-31", year)

	var all []core.Transaction
	offset := 0
	pages := 0
	for {
		page, err := c.fetchPage(ctx, start, end, offset)
		if err != nil {
			return nil, fmt.Errorf("fetch transactions page (year=%d, offset=%d): %w", year, offset, err)
		}
		all = append(all, page...)
		pages++
		if len(page) < c.pageSize {
			break
		}
		offset += c.pageSize
	}

	slog.InfoContext(ctx, "Fetched transactions",
		"year", year,
		"pages", pages,
		"transactions", len(all))

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, start, end string, offset int) ([]core.Transaction, error) {
	q := url.Values{}
	q.Set("start_date", start)
	q.Set("end_date", end)
	q.Set("limit", strconv.Itoa(c.pageSize))
	q.Set("offset", strconv.Itoa(offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/transactions?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var page transactionsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return page.Transactions, nil
}
