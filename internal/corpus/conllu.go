// Package corpus prepares demo corpora: sentences extracted from CoNLL-U
// treebanks and plain files with one document per line.
package corpus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultLimit is the number of sentences kept by BuildCorpus callers by default
const DefaultLimit = 300

// Source is a named CoNLL-U location, either a URL or a local path
type Source struct {
	Name     string
	Location string
}

// DefaultSources are the UD Russian-GSD splits, in the order they are read
var DefaultSources = []Source{
	{Name: "train", Location: "https://github.com/UniversalDependencies/UD_Russian-GSD/raw/master/ru_gsd-ud-train.conllu"},
	{Name: "dev", Location: "https://github.com/UniversalDependencies/UD_Russian-GSD/raw/master/ru_gsd-ud-dev.conllu"},
	{Name: "test", Location: "https://github.com/UniversalDependencies/UD_Russian-GSD/raw/master/ru_gsd-ud-test.conllu"},
}

// maxLineBytes bounds a single CoNLL-U line
const maxLineBytes = 1 << 20

// ParseCoNLLUSentences returns the surface forms of every sentence joined by
// single spaces. Comment lines, multiword ranges ("1-2") and empty nodes
// ("1.1") are skipped.
func ParseCoNLLUSentences(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	var sentences []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			sentences = append(sentences, strings.Join(current, " "))
			current = current[:0]
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		if strings.ContainsAny(parts[0], "-.") {
			continue
		}
		current = append(current, parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read conllu: %w", err)
	}
	flush()

	return sentences, nil
}

// BuildCorpus keeps the first limit sentences. A non-positive limit keeps all.
func BuildCorpus(sentences []string, limit int) []string {
	if limit <= 0 || limit >= len(sentences) {
		return sentences
	}
	return sentences[:limit]
}

// Loader opens corpus sources over HTTP or from disk
type Loader struct {
	httpClient *http.Client
}

// NewLoader creates a loader with the given download timeout
func NewLoader(timeout time.Duration) *Loader {
	return &Loader{httpClient: &http.Client{Timeout: timeout}}
}

// Open returns a reader for location, which is a http(s) URL or a file path
func (l *Loader) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", location, err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", location, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to download %s: HTTP %d", location, resp.StatusCode)
	}
	return resp.Body, nil
}

// LoadSentences reads every source in order and concatenates their sentences
func (l *Loader) LoadSentences(ctx context.Context, sources []Source) ([]string, error) {
	var all []string
	for _, src := range sources {
		rc, err := l.Open(ctx, src.Location)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src.Name, err)
		}

		sentences, err := ParseCoNLLUSentences(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src.Name, err)
		}
		all = append(all, sentences...)
	}
	return all, nil
}
