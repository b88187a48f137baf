package tenant

// ID identifies one branded site in the catalogue. It is used both as the
// registry key and as the leading URL path segment of every tenant-scoped
// page.
type ID string

// Known tenant ids. The registry keys and this enumeration are defined
// together and must stay in lock-step; nothing else in the codebase may
// assume how many members the set has.
const (
	AISF ID = "aisf"
	AIYF ID = "aiyf"
)

// All returns the closed set of known tenant ids in display order.
func All() []ID {
	return []ID{AISF, AIYF}
}

// ParseID matches a raw path segment against the enumeration. Matching is
// exact and case sensitive: empty segments, trailing slashes ("aisf/"),
// different casing ("AISF") and superstrings ("aisf2") all fail.
func ParseID(segment string) (ID, bool) {
	for _, id := range All() {
		if segment == string(id) {
			return id, true
		}
	}
	return "", false
}

// String returns the id as its URL path segment form.
func (id ID) String() string {
	return string(id)
}

// BasePath returns the root path of the tenant's site, "/" + id.
func (id ID) BasePath() string {
	return "/" + string(id)
}
