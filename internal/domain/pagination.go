package domain

import (
	"encoding/base64"
	"strconv"
)

// DefaultPageSize is used when a list request does not set MaxResults.
const DefaultPageSize = 50

// MaxPageSize caps how many rows a single person or audit listing returns.
const MaxPageSize = 500

// PageRequest carries pagination parameters for person and audit listings.
// PageToken is opaque to callers; list responses hand out the token for the
// next page.
type PageRequest struct {
	MaxResults int
	PageToken  string
}

// Offset decodes the page token into a row offset. An empty or malformed
// token means the first page.
func (p PageRequest) Offset() int {
	if p.PageToken == "" {
		return 0
	}
	decoded, err := base64.StdEncoding.DecodeString(p.PageToken)
	if err != nil {
		return 0
	}
	offset, err := strconv.Atoi(string(decoded))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// Limit returns the effective page size, clamped to [1, MaxPageSize].
func (p PageRequest) Limit() int {
	if p.MaxResults <= 0 {
		return DefaultPageSize
	}
	if p.MaxResults > MaxPageSize {
		return MaxPageSize
	}
	return p.MaxResults
}

// EncodePageToken turns a row offset into an opaque token. Offsets at or
// below zero encode to the empty token (the first page).
func EncodePageToken(offset int) string {
	if offset <= 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// NextPageToken returns the token for the page after the current one, or
// the empty string when the listing is exhausted.
func NextPageToken(offset, limit int, total int64) string {
	next := offset + limit
	if int64(next) >= total {
		return ""
	}
	return EncodePageToken(next)
}
