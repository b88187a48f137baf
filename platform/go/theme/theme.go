// Package theme maps a tenant id to its color theme. The mapping lives in
// exactly one place: the chrome builder resolves it once per request and
// passes the result down as data, so leaf view models never branch on the
// tenant id themselves.
package theme

import "github.com/orgsites/federation/platform/go/tenant"

// Theme is the resolved set of presentation tokens for one tenant. The
// values are opaque to this service; the rendering layer interprets them.
type Theme struct {
	Accent   string `json:"accent"`
	AccentBg string `json:"accentBg"`
	Gradient string `json:"gradient"`
}

var themes = map[tenant.ID]Theme{
	tenant.AISF: {
		Accent:   "red-600",
		AccentBg: "red-500/10",
		Gradient: "from-red-800 via-red-700 to-red-600",
	},
	tenant.AIYF: {
		Accent:   "blue-600",
		AccentBg: "blue-500/10",
		Gradient: "from-blue-800 via-blue-700 to-blue-600",
	},
}

var fallback = Theme{
	Accent:   "neutral-600",
	AccentBg: "neutral-500/10",
	Gradient: "from-neutral-800 via-neutral-700 to-neutral-600",
}

// ForTenant returns the theme for a tenant id. Unknown ids get a neutral
// fallback so a future tenant without a declared theme still renders.
func ForTenant(id tenant.ID) Theme {
	if t, ok := themes[id]; ok {
		return t
	}
	return fallback
}
