package content

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"trendsight/internal/models"
)

const fetchTimeout = 10 * time.Second

// Loader turns a raw submission into a NormalizedDocument. One attempt per
// submission; the user retries manually on failure.
type Loader struct {
	client *http.Client
}

func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{Timeout: fetchTimeout},
	}
}

func (l *Loader) Load(ctx context.Context, input models.RawInput) (models.NormalizedDocument, error) {
	if input.URL != "" && input.Text != "" {
		return models.NormalizedDocument{}, &InvalidInputError{Reason: "submit either a url or text, not both"}
	}

	if input.IsURL() {
		return l.loadURL(ctx, input.URL)
	}
	return loadText(input.Text)
}

func loadText(raw string) (models.NormalizedDocument, error) {
	if strings.TrimSpace(raw) == "" {
		return models.NormalizedDocument{}, &InvalidInputError{Reason: "empty text submitted"}
	}

	text := normalizeWhitespace(flattenMarkdown(raw))
	if text == "" {
		return models.NormalizedDocument{}, &InvalidInputError{Reason: "text is empty after normalization"}
	}

	return models.NormalizedDocument{Text: text}, nil
}

func (l *Loader) loadURL(ctx context.Context, rawURL string) (models.NormalizedDocument, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return models.NormalizedDocument{}, &InvalidInputError{Reason: "malformed url: " + rawURL}
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return models.NormalizedDocument{}, &FetchError{URL: rawURL, Err: err}
	}

	res, err := l.client.Do(req)
	if err != nil {
		slog.Warn("[ContentLoader] Request failed",
			slog.String("url", rawURL),
			slog.String("error", err.Error()))
		return models.NormalizedDocument{}, &FetchError{URL: rawURL, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return models.NormalizedDocument{}, &FetchError{URL: rawURL, StatusCode: res.StatusCode}
	}

	article, err := readability.FromReader(res.Body, parsed)
	if err != nil {
		return models.NormalizedDocument{}, &FetchError{URL: rawURL, Err: err}
	}

	text := normalizeWhitespace(article.TextContent)
	if text == "" {
		return models.NormalizedDocument{}, &FetchError{URL: rawURL}
	}

	slog.Info("[ContentLoader] Content extracted",
		slog.String("url", rawURL),
		slog.Int("content_length", len(text)))

	return models.NormalizedDocument{Text: text, SourceURL: rawURL}, nil
}
