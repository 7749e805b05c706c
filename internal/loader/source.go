// Package loader retrieves the raw fighter dataset and publishes the
// normalized roster to readers.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/ufccards/ufccards/internal/roster"
)

// Source delivers the raw delimited text.
type Source interface {
	// Open returns a reader over the raw text. Callers close it.
	Open(ctx context.Context) (io.ReadCloser, error)

	// String describes the source for logs and messages.
	String() string
}

// IOError reports that the raw text could not be retrieved.
type IOError struct {
	Source string
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Source, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{roster.ErrIO, e.Err}
}

// NewSource picks an HTTP source for http(s) URLs and a file source otherwise.
func NewSource(location string, opts ...Option) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, opts...)
	}
	return FileSource{Path: location}
}

// FileSource reads the dataset from the local filesystem.
type FileSource struct {
	Path string
}

// Open opens the file.
func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, &IOError{Source: s.String(), Err: err}
	}
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, &IOError{Source: s.String(), Err: err}
	}
	return file, nil
}

func (s FileSource) String() string {
	return s.Path
}

// HTTPSource fetches the dataset with a GET request.
type HTTPSource struct {
	URL    string
	client HTTPClient
}

// NewHTTPSource creates an HTTP source for url.
func NewHTTPSource(url string, opts ...Option) *HTTPSource {
	options := applyOptions(opts)
	return &HTTPSource{URL: url, client: options.httpClient}
}

// Open performs the request. Non-2xx responses are IOErrors.
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &IOError{Source: s.URL, Err: err}
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &IOError{Source: s.URL, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, &IOError{Source: s.URL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	return resp.Body, nil
}

func (s *HTTPSource) String() string {
	return s.URL
}
