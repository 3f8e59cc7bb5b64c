package sheets

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client downloads unit workbooks from their shared direct-download links.
type Client struct {
	HTTPClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch downloads the workbook at url and returns its raw bytes.
func (c *Client) Fetch(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("no workbook URL configured")
	}

	resp, err := c.HTTPClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download workbook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("workbook download returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook body: %w", err)
	}

	return body, nil
}
