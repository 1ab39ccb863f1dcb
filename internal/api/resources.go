package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/blackwell-systems/hubctl/internal/catalog"
)

// ListResources fetches the catalog, optionally scoped to one uploader.
func (c *Client) ListResources(ctx context.Context, uploadedBy string) ([]catalog.Resource, error) {
	u := c.url("api", "resources", "list")
	if uploadedBy != "" {
		u += "?uploaded_by=" + url.QueryEscape(uploadedBy)
	}
	var out []catalog.Resource
	if err := c.doJSON(ctx, http.MethodGet, u, nil, "", &out); err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	return out, nil
}

// GetResource fetches one resource's metadata.
func (c *Client) GetResource(ctx context.Context, id string) (*catalog.Resource, error) {
	var out catalog.Resource
	if err := c.doJSON(ctx, http.MethodGet, c.url("api", "resources", id), nil, "", &out); err != nil {
		return nil, fmt.Errorf("fetching resource %s: %w", id, err)
	}
	return &out, nil
}

// Upload submits a validated draft as a multipart form. The draft must
// have passed Validate; Upload re-checks it so no partial submission can
// slip through a caller that skipped the gate.
func (c *Client) Upload(ctx context.Context, d *catalog.Draft) error {
	if err := d.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"title":         d.Title,
		"description":   d.Description,
		"categories":    strings.Join(d.Categories, ","),
		"file_type":     d.FileType,
		"external_link": d.Link,
		"user_id":       d.UserID,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("building upload form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("building upload form: %w", err)
	}

	if err := c.doJSON(ctx, http.MethodPost, c.url("api", "resources", "upload"), &buf, w.FormDataContentType(), nil); err != nil {
		return fmt.Errorf("uploading resource: %w", err)
	}
	return nil
}

// FetchContent retrieves the raw content at a resource's candidate URL.
// This is the secondary fetch for text-like resources; its failure is
// reported separately from the metadata fetch.
func (c *Client) FetchContent(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("fetching text content: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching text content: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetching text content: %w",
			&StatusError{StatusCode: resp.StatusCode})
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetching text content: %w", err)
	}
	return string(data), nil
}

// DownloadContent streams the payload at rawURL for caching. The caller
// must close the reader.
func (c *Client) DownloadContent(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}
