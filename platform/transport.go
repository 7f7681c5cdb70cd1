package platform

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Transport fetches asset bytes. http(s) URLs go over the network;
// anything else is resolved against the asset directory, then the raw
// path, then the bare filename, mirroring how loose assets are found
// during development.
type Transport struct {
	dir    string
	client *http.Client
}

func NewTransport(assetDir string) *Transport {
	return &Transport{
		dir:    assetDir,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *Transport) Fetch(url string) ([]byte, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return t.fetchHTTP(url)
	}

	tried := []string{filepath.Join(t.dir, url), url, filepath.Base(url)}
	var firstErr error
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err == nil {
			return b, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

func (t *Transport) fetchHTTP(url string) ([]byte, error) {
	resp, err := t.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
