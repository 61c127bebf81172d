package loader

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sgpinkus/jsonref"
	"github.com/sgpinkus/jsonref/referrors"
)

// defaultHTTPTimeout bounds requests when no client is supplied.
const defaultHTTPTimeout = 30 * time.Second

// HTTPLoader fetches documents over HTTP or HTTPS. Because loading a
// document means following every external reference it contains, wiring an
// HTTPLoader is an explicit opt-in to remote fetches.
type HTTPLoader struct {
	// Client is the HTTP client used for fetching. If nil, a default client
	// with a 30-second timeout is created on first use.
	Client *http.Client
	// UserAgent is the User-Agent string sent with requests.
	// Defaults to jsonref's own.
	UserAgent string
	// MaxFileSize is the maximum response size in bytes (0 means MaxFileSize).
	MaxFileSize int64
}

// NewHTTPLoader creates an HTTP loader. A nil client gets a default with a
// 30-second timeout.
func NewHTTPLoader(client *http.Client) *HTTPLoader {
	return &HTTPLoader{Client: client}
}

// Load implements Loader.
func (l *HTTPLoader) Load(u *url.URL) ([]byte, error) {
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &referrors.ResourceNotFoundError{
			URI:     u.String(),
			Message: fmt.Sprintf("scheme %q not supported by HTTP loader", u.Scheme),
		}
	}
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &referrors.ResourceNotFoundError{URI: u.String(), Cause: err}
	}
	ua := l.UserAgent
	if ua == "" {
		ua = jsonref.UserAgent()
	}
	req.Header.Set("User-Agent", ua)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &referrors.ResourceNotFoundError{URI: u.String(), Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &referrors.ResourceNotFoundError{
			URI:     u.String(),
			Message: fmt.Sprintf("unexpected status %s", resp.Status),
		}
	}

	limit := l.MaxFileSize
	if limit == 0 {
		limit = MaxFileSize
	}
	// Read one byte past the limit so an oversized body is distinguishable
	// from one that is exactly at it.
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &referrors.ResourceNotFoundError{URI: u.String(), Cause: err}
	}
	if int64(len(data)) > limit {
		return nil, &referrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Message:      u.String(),
		}
	}
	return data, nil
}

var _ Loader = (*HTTPLoader)(nil)
