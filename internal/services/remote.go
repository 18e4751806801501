package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"resume-parser/internal/models"
)

// RemoteParserClient calls the network extraction service. The contract is
// deliberately thin: send {content, fileType}, receive a partial record or
// an error message.
type RemoteParserClient interface {
	Parse(ctx context.Context, content, fileType string) (*models.ResumeRecord, error)
}

type remoteParserClient struct {
	baseURL    string
	httpClient *http.Client
	chunker    TextChunker
}

func NewRemoteParserClient(baseURL string, timeout time.Duration) RemoteParserClient {
	return &remoteParserClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		chunker: NewTextChunker(),
	}
}

type remoteParseRequest struct {
	Content  string `json:"content"`
	FileType string `json:"fileType"`
}

type remoteParseResponse struct {
	Resume *models.ResumeRecord `json:"resume"`
	Error  string               `json:"error"`
}

// maxRemotePayloadChars caps the content field of a remote request.
const maxRemotePayloadChars = 100000

func (c *remoteParserClient) Parse(ctx context.Context, content, fileType string) (*models.ResumeRecord, error) {
	content = c.chunker.TruncateAtBoundary(content, maxRemotePayloadChars)

	body, err := json.Marshal(remoteParseRequest{Content: content, FileType: fileType})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote parser request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("failed to read remote response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote parser returned %d: %s", resp.StatusCode, string(data))
	}

	var parsed remoteParseResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode remote response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("remote parser error: %s", parsed.Error)
	}
	if parsed.Resume != nil {
		return parsed.Resume, nil
	}

	// Some deployments return the record at the top level.
	var record models.ResumeRecord
	if err := json.Unmarshal(data, &record); err == nil && !record.IsEmpty() {
		return &record, nil
	}
	return nil, fmt.Errorf("remote parser returned no resume")
}
