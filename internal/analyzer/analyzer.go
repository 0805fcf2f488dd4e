// Package analyzer implements document analysis against the hosted Form
// Recognizer API: submit the file, then poll the returned operation until the
// analysis completes.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yongxin12/Macrohard/internal/config"
	"github.com/yongxin12/Macrohard/internal/domain"
)

const (
	analyzePath = "/formrecognizer/documentModels/prebuilt-document:analyze"
	apiVersion  = "2023-07-31"

	statusSucceeded = "succeeded"
	statusFailed    = "failed"
)

// Client implements port.DocumentAnalyzer against a hosted analysis API.
type Client struct {
	endpoint     string
	key          string
	pollInterval time.Duration
	maxPolls     int
	httpClient   *http.Client
}

// NewClient creates an analyzer client from config.
func NewClient(cfg *config.AnalyzerConfig) *Client {
	return newClient(cfg, cfg.Endpoint)
}

// NewClientWithEndpoint creates a client pointing at a custom endpoint (for testing).
func NewClientWithEndpoint(cfg *config.AnalyzerConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.AnalyzerConfig, endpoint string) *Client {
	interval := time.Duration(cfg.PollIntervalSecs) * time.Second
	if interval == 0 {
		interval = time.Second
	}
	maxPolls := cfg.MaxPolls
	if maxPolls == 0 {
		maxPolls = 50
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		endpoint:     strings.TrimRight(endpoint, "/"),
		key:          cfg.Key,
		pollInterval: interval,
		maxPolls:     maxPolls,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// Analyze submits the content and polls until the analysis completes.
func (c *Client) Analyze(ctx context.Context, content []byte, contentType string) (*domain.AnalyzeResult, error) {
	opURL, err := c.submit(ctx, content, contentType)
	if err != nil {
		return nil, err
	}
	return c.poll(ctx, opURL)
}

func (c *Client) submit(ctx context.Context, content []byte, contentType string) (string, error) {
	url := fmt.Sprintf("%s%s?api-version=%s", c.endpoint, analyzePath, apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("creating analyze request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling analysis API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("analysis API error (status %d): %s", resp.StatusCode, string(body))
	}

	opURL := resp.Header.Get("Operation-Location")
	if opURL == "" {
		return "", fmt.Errorf("analysis API returned no Operation-Location header")
	}
	return opURL, nil
}

func (c *Client) poll(ctx context.Context, opURL string) (*domain.AnalyzeResult, error) {
	for i := 0; i < c.maxPolls; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		status, result, err := c.fetchOperation(ctx, opURL)
		if err != nil {
			return nil, err
		}
		switch status {
		case statusSucceeded:
			return result, nil
		case statusFailed:
			return nil, fmt.Errorf("document analysis failed")
		}
	}
	return nil, fmt.Errorf("document analysis did not complete after %d polls", c.maxPolls)
}

func (c *Client) fetchOperation(ctx context.Context, opURL string) (string, *domain.AnalyzeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opURL, nil)
	if err != nil {
		return "", nil, fmt.Errorf("creating poll request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("polling analysis operation: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("reading poll response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("analysis poll error (status %d): %s", resp.StatusCode, string(body))
	}

	var op operationResponse
	if err := json.Unmarshal(body, &op); err != nil {
		return "", nil, fmt.Errorf("parsing poll response: %w", err)
	}
	if op.Status != statusSucceeded {
		return op.Status, nil, nil
	}
	return op.Status, convertResult(&op.AnalyzeResult), nil
}

// Wire types mirroring the analysis operation payload.
type operationResponse struct {
	Status        string           `json:"status"`
	AnalyzeResult rawAnalyzeResult `json:"analyzeResult"`
}

type rawAnalyzeResult struct {
	Pages         []rawPage   `json:"pages"`
	KeyValuePairs []rawKVPair `json:"keyValuePairs"`
	Tables        []rawTable  `json:"tables"`
}

type rawPage struct {
	PageNumber int `json:"pageNumber"`
	Lines      []struct {
		Content string `json:"content"`
	} `json:"lines"`
}

type rawKVPair struct {
	Key struct {
		Content string `json:"content"`
	} `json:"key"`
	Value struct {
		Content string `json:"content"`
	} `json:"value"`
	Confidence float64 `json:"confidence"`
}

type rawTable struct {
	RowCount    int `json:"rowCount"`
	ColumnCount int `json:"columnCount"`
	Cells       []struct {
		RowIndex    int    `json:"rowIndex"`
		ColumnIndex int    `json:"columnIndex"`
		Content     string `json:"content"`
	} `json:"cells"`
}

func convertResult(raw *rawAnalyzeResult) *domain.AnalyzeResult {
	result := &domain.AnalyzeResult{}
	for _, p := range raw.Pages {
		page := domain.AnalyzedPage{PageNumber: p.PageNumber}
		for _, l := range p.Lines {
			page.Lines = append(page.Lines, l.Content)
		}
		result.Pages = append(result.Pages, page)
	}
	for _, kv := range raw.KeyValuePairs {
		if kv.Value.Content == "" {
			continue
		}
		result.KeyValuePairs = append(result.KeyValuePairs, domain.KeyValuePair{
			Key:        kv.Key.Content,
			Value:      kv.Value.Content,
			Confidence: kv.Confidence,
		})
	}
	for _, t := range raw.Tables {
		table := domain.AnalyzedTable{RowCount: t.RowCount, ColumnCount: t.ColumnCount}
		for _, cell := range t.Cells {
			table.Cells = append(table.Cells, domain.TableCell{
				RowIndex:    cell.RowIndex,
				ColumnIndex: cell.ColumnIndex,
				Content:     cell.Content,
			})
		}
		result.Tables = append(result.Tables, table)
	}
	return result
}
