// Package res loads the binary assets a document refers to: images given as
// data URLs, files or remote URLs, and the icons bundled with the program.
package res

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

var (
	// ErrNotFound is returned when a resource exists in no search location.
	ErrNotFound = errors.New("resource not found")
	// ErrNotImage is returned when a payload does not sniff as an image.
	ErrNotImage = errors.New("resource is not an image")
)

// ResourceType represents the type of resource
type ResourceType int

const (
	// ResourceTypeOther is any resource that is not an image
	ResourceTypeOther ResourceType = iota
	// ResourceTypeImage is an image resource
	ResourceTypeImage
)

// Resource represents a loaded resource
type Resource struct {
	URL      string
	Type     ResourceType
	Data     []byte
	MimeType string
}

// Loader handles loading resources. It is safe for concurrent use.
type Loader struct {
	// Base URL or file path for resolving relative URLs
	BaseURL string

	// Resource cache
	cache     map[string]*Resource
	cacheLock sync.RWMutex

	// Resource search paths
	searchPaths []string

	// HTTP client for remote resources
	client *http.Client
}

// NewLoader creates a new resource loader
func NewLoader(baseURL string) *Loader {
	return &Loader{
		BaseURL:     baseURL,
		cache:       make(map[string]*Resource),
		searchPaths: []string{},
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

// AddSearchPath adds a directory to search for local resources
func (l *Loader) AddSearchPath(path string) {
	l.cacheLock.Lock()
	defer l.cacheLock.Unlock()
	l.searchPaths = append(l.searchPaths, path)
}

// SetHTTPClient replaces the client used for remote resources.
func (l *Loader) SetHTTPClient(c *http.Client) {
	l.client = c
}

// Load loads a resource from a data URL, URL or file path
func (l *Loader) Load(urlStr string) (*Resource, error) {
	urlStr = strings.TrimSpace(urlStr)
	if urlStr == "" {
		return nil, fmt.Errorf("%w: empty source", ErrNotFound)
	}

	l.cacheLock.RLock()
	if res, ok := l.cache[urlStr]; ok {
		l.cacheLock.RUnlock()
		return res, nil
	}
	l.cacheLock.RUnlock()

	var (
		res *Resource
		err error
	)
	switch {
	case strings.HasPrefix(urlStr, "data:"):
		res, err = parseDataURL(urlStr)
	default:
		var resolved string
		resolved, err = l.resolveURL(urlStr)
		if err != nil {
			return nil, err
		}
		if isRemote(resolved) {
			res, err = l.loadRemote(resolved)
		} else {
			res, err = l.loadLocal(resolved)
		}
	}
	if err != nil {
		return nil, err
	}

	l.cacheLock.Lock()
	l.cache[urlStr] = res
	l.cacheLock.Unlock()
	return res, nil
}

// LoadImage loads a resource and checks that its content is an image.
func (l *Loader) LoadImage(urlStr string) (*Resource, error) {
	res, err := l.Load(urlStr)
	if err != nil {
		return nil, err
	}
	if res.Type != ResourceTypeImage {
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotImage, shorten(urlStr), res.MimeType)
	}
	return res, nil
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// parseDataURL parses a data URL (RFC 2397) and returns a Resource.
// Examples:
//
//	data:image/png;base64,<base64>
//	data:text/plain,Hello%20World
func parseDataURL(u string) (*Resource, error) {
	if !strings.HasPrefix(u, "data:") {
		return nil, fmt.Errorf("not a data URL")
	}
	s := strings.TrimPrefix(u, "data:")
	meta, dataPart, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("invalid data URL")
	}

	declared := "application/octet-stream"
	isBase64 := false
	if meta != "" {
		comps := strings.Split(meta, ";")
		if comps[0] != "" {
			declared = comps[0]
		}
		for _, c := range comps[1:] {
			if strings.EqualFold(strings.TrimSpace(c), "base64") {
				isBase64 = true
			}
		}
	}

	var data []byte
	if isBase64 {
		clean := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
				return -1
			}
			return r
		}, dataPart)
		var err error
		data, err = base64.StdEncoding.DecodeString(clean)
		if err != nil {
			if data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(clean, "=")); err != nil {
				return nil, fmt.Errorf("invalid base64 data URL: %w", err)
			}
		}
	} else {
		// The non-base64 form is URL-escaped
		if d, derr := url.QueryUnescape(dataPart); derr == nil {
			data = []byte(d)
		} else {
			data = []byte(dataPart)
		}
	}

	return newResource(shorten(u), data, declared), nil
}

// newResource sniffs data so that a wrong declared type never decides what
// the payload is.
func newResource(urlStr string, data []byte, declared string) *Resource {
	mt := mimetype.Detect(data)
	res := &Resource{URL: urlStr, Data: data, MimeType: mt.String()}
	switch {
	case strings.HasPrefix(mt.String(), "image/"):
		res.Type = ResourceTypeImage
	case mt.Is("text/plain") && strings.HasPrefix(declared, "image/svg"):
		res.MimeType = declared
		res.Type = ResourceTypeImage
	default:
		res.Type = ResourceTypeOther
	}
	return res
}

// resolveURL resolves a URL relative to the base URL
func (l *Loader) resolveURL(urlStr string) (string, error) {
	if isRemote(urlStr) || filepath.IsAbs(urlStr) {
		return urlStr, nil
	}
	if l.BaseURL == "" {
		return urlStr, nil
	}

	if !isRemote(l.BaseURL) {
		baseDir := l.BaseURL
		if fi, err := os.Stat(baseDir); err != nil || !fi.IsDir() {
			baseDir = filepath.Dir(baseDir)
		}
		return filepath.Join(baseDir, urlStr), nil
	}

	baseURL, err := url.Parse(l.BaseURL)
	if err != nil {
		return "", err
	}
	relURL, err := url.Parse(urlStr)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(relURL).String(), nil
}

// loadRemote loads a resource from a remote URL
func (l *Loader) loadRemote(urlStr string) (*Resource, error) {
	resp, err := l.client.Get(urlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: HTTP %s", urlStr, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", urlStr, err)
	}
	return newResource(urlStr, data, resp.Header.Get("Content-Type")), nil
}

// loadLocal loads a resource from a local file
func (l *Loader) loadLocal(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l.loadFromSearchPaths(path)
		}
		return nil, err
	}
	return newResource(path, data, declaredType(path)), nil
}

// loadFromSearchPaths tries to load a resource from the search paths
func (l *Loader) loadFromSearchPaths(filename string) (*Resource, error) {
	l.cacheLock.RLock()
	paths := append([]string(nil), l.searchPaths...)
	l.cacheLock.RUnlock()

	for _, searchPath := range paths {
		for _, candidate := range []string{filename, filepath.Base(filename)} {
			path := filepath.Join(searchPath, candidate)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			return newResource(path, data, declaredType(path)), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
}

// declaredType guesses a MIME type from the file extension. It only matters
// for formats that content sniffing reports as plain text.
func declaredType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

// shorten keeps error messages readable when the source is a data URL.
func shorten(s string) string {
	const limit = 48
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
