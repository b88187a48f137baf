// Package navigation computes nav-bar state for tenant-scoped pages:
// which entry is active for the current path, and how to rewrite the path
// when the visitor switches to a sibling tenant.
package navigation

import (
	"errors"
	"strings"

	"github.com/orgsites/federation/platform/go/tenant"
)

// Entry is one declared nav link. RelativePath is appended to the tenant's
// base path; the empty string marks the tenant index.
type Entry struct {
	Label        string
	RelativePath string
}

// Entries returns the fixed, ordered nav list shared by every tenant.
func Entries() []Entry {
	return []Entry{
		{Label: "Home", RelativePath: ""},
		{Label: "About", RelativePath: "/about"},
		{Label: "Leadership", RelativePath: "/leadership"},
		{Label: "Campaigns", RelativePath: "/campaigns"},
		{Label: "Join Us", RelativePath: "/join"},
		{Label: "Contact", RelativePath: "/contact"},
	}
}

// IsActive reports whether the entry with the given relative path is the
// active one. Matching is exact: the index entry ("") is active only when
// the current path equals the base path, and any other entry only when the
// current path equals basePath + relativePath. There is no prefix
// matching; "/aisf/about" does not activate "/aisf" and vice versa.
func IsActive(relativePath, currentPath, basePath string) bool {
	if relativePath == "" {
		return currentPath == basePath
	}
	return currentPath == basePath+relativePath
}

// ErrNoTenantSegment is returned by SwitchPath when the current path does
// not begin with a known tenant segment.
var ErrNoTenantSegment = errors.New("navigation: path does not start with a tenant segment")

// SwitchPath rewrites the leading tenant segment of currentPath to the
// target id, preserving everything after it verbatim. The leading segment
// must be a member of the tenant enumeration; switching from a path outside
// a resolved tenant scope is a caller bug and yields ErrNoTenantSegment.
// Query strings and fragments are not part of the contract.
func SwitchPath(currentPath string, target tenant.ID) (string, error) {
	trimmed := strings.TrimPrefix(currentPath, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")

	if _, ok := tenant.ParseID(segment); !ok {
		return "", ErrNoTenantSegment
	}

	if rest == "" && !strings.HasSuffix(trimmed, "/") {
		return target.BasePath(), nil
	}
	return target.BasePath() + "/" + rest, nil
}
