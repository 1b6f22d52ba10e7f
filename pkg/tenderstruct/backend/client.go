// Package backend registers compiled tender documents with the main
// system over HTTP. The server assigns database identifiers for the
// tender and each of its lots; derived artifacts are named after
// those identifiers.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
)

const importPath = "/import-tender"

// RegisterResult carries the identifiers assigned by the server. When
// Temporary is set the server was unreachable and the IDs are local
// placeholders to be reconciled later.
type RegisterResult struct {
	TenderID  string            `json:"tender_id"`
	LotIDs    map[string]string `json:"lot_ids"`
	Temporary bool              `json:"-"`
}

// Client talks to the tender import endpoint.
type Client struct {
	endpoint string
	apiKey   string
	fallback bool
	httpc    *http.Client
}

// New builds a client. endpoint may be the API base ("/api/v1") or
// the full import path; the import path is appended when missing.
// With fallback enabled, registration survives an unreachable server
// by returning temporary IDs.
func New(endpoint, apiKey string, fallback bool) *Client {
	base := strings.TrimRight(endpoint, "/")
	if !strings.HasSuffix(base, importPath) {
		base += importPath
	}
	return &Client{
		endpoint: base,
		apiKey:   apiKey,
		fallback: fallback,
		httpc:    &http.Client{Timeout: 60 * time.Second},
	}
}

// RegisterTender posts the document and returns the assigned IDs. A
// transport failure with fallback enabled yields temporary IDs; any
// non-2xx response is an error regardless of fallback, since the
// server did answer.
func (c *Client) RegisterTender(ctx context.Context, doc *models.Document) (*RegisterResult, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if c.fallback {
			return c.temporaryResult(doc), nil
		}
		return nil, fmt.Errorf("register tender: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("register tender: server returned %s: %s",
			resp.Status, strings.TrimSpace(string(msg)))
	}

	var result RegisterResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode register response: %w", err)
	}
	if result.TenderID == "" {
		return nil, fmt.Errorf("register tender: response carries no tender ID")
	}
	return &result, nil
}

// temporaryResult assigns "temp_" placeholders for the tender and each
// lot, in lot key order.
func (c *Client) temporaryResult(doc *models.Document) *RegisterResult {
	now := time.Now().UnixNano()
	result := &RegisterResult{
		TenderID:  fmt.Sprintf("temp_%d", now),
		LotIDs:    make(map[string]string, len(doc.Lots)),
		Temporary: true,
	}

	lotKeys := make([]string, 0, len(doc.Lots))
	for k := range doc.Lots {
		lotKeys = append(lotKeys, k)
	}
	sort.Strings(lotKeys)
	for i, k := range lotKeys {
		result.LotIDs[k] = fmt.Sprintf("temp_%d_%d", now, i+1)
	}
	return result
}
