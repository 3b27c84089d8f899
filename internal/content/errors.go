package content

import "fmt"

// InvalidInputError reports a submission rejected before any network I/O:
// empty text, a malformed URL, or both/neither input modes set.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// FetchError reports a network failure, a non-2xx response, or a page from
// which no textual content could be extracted.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: no textual content extracted", e.URL)
}

func (e *FetchError) Unwrap() error { return e.Err }
