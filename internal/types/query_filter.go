package types

import (
	"strconv"
	"strings"
)

const (
	// DefaultPage is used when the page parameter is absent or unparsable.
	DefaultPage = 1
	// DefaultLimit is used when the limit parameter is absent or unparsable.
	// No upper bound is enforced on limit; callers own that tradeoff.
	DefaultLimit = 10
)

// QueryFilter carries the raw list parameters of a dashboard request. Page
// and Limit stay textual so that non-numeric input degrades to the defaults
// instead of failing the bind, matching the permissive contract the UI
// relies on.
type QueryFilter struct {
	Page   string `form:"page" json:"page,omitempty"`
	Limit  string `form:"limit" json:"limit,omitempty"`
	Search string `form:"search" json:"search,omitempty"`
	Status Status `form:"status" json:"status,omitempty"`
}

// GetPage returns the parsed page number, falling back to DefaultPage for
// anything that is not a positive integer.
func (f *QueryFilter) GetPage() int {
	return parsePositiveInt(f.Page, DefaultPage)
}

// GetLimit returns the parsed page size, falling back to DefaultLimit for
// anything that is not a positive integer.
func (f *QueryFilter) GetLimit() int {
	return parsePositiveInt(f.Limit, DefaultLimit)
}

// GetOffset converts page/limit into a slice offset.
func (f *QueryFilter) GetOffset() int {
	return (f.GetPage() - 1) * f.GetLimit()
}

// GetSearch returns the trimmed search term; empty means "no filter".
func (f *QueryFilter) GetSearch() string {
	return strings.TrimSpace(f.Search)
}

// GetStatus returns the status clause; empty means "no filter". Status
// matching is exact and case sensitive.
func (f *QueryFilter) GetStatus() Status {
	return f.Status
}

// Validate checks the only structured parameter the filter carries. Page and
// limit are self-healing and never invalid.
func (f *QueryFilter) Validate() error {
	return f.Status.Validate()
}

func parsePositiveInt(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
