// Package service builds the page view models for tenant-scoped pages.
// Content builders read the tenant record through the context lookup, the
// single access point published by the resolver middleware; nothing here
// forwards the record by hand through intermediate layers.
package service

import (
	"context"

	"github.com/orgsites/federation/platform/go/navigation"
	"github.com/orgsites/federation/platform/go/tenant"
	"github.com/orgsites/federation/platform/go/theme"
)

// Service assembles view models from the tenant in scope.
type Service interface {
	Landing(ctx context.Context) LandingView
	Home(ctx context.Context, currentPath string) HomeView
	About(ctx context.Context, currentPath string) AboutView
	Leadership(ctx context.Context, currentPath string) LeadershipView
	Campaigns(ctx context.Context, currentPath string) CampaignsView
	Contact(ctx context.Context, currentPath string) ContactView
	Join(ctx context.Context, currentPath string) JoinView
}

type service struct {
	registry *tenant.Registry
}

// New constructs a sites Service over the tenant registry.
func New(registry *tenant.Registry) Service {
	if registry == nil {
		panic("tenant registry is required")
	}
	return &service{registry: registry}
}

// Chrome is the shared page frame: tenant identity, theme, nav and footer.
// The theme is resolved here exactly once per page view; leaf view models
// carry it as data and never branch on the tenant id themselves.
type Chrome struct {
	Tenant   Summary            `json:"tenant"`
	Theme    theme.Theme        `json:"theme"`
	Nav      []NavLink          `json:"nav"`
	Switcher []SwitchOption     `json:"switcher"`
	Toggles  navigation.Toggles `json:"toggles"`
	Footer   Footer             `json:"footer"`
}

// Summary is the identity block used by the nav bar.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	LogoRef   string `json:"logoRef"`
	BasePath  string `json:"basePath"`
}

// NavLink is one rendered nav entry.
type NavLink struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// SwitchOption is one entry of the tenant switcher dropdown. Href keeps
// the current sub-path and rewrites only the tenant segment.
type SwitchOption struct {
	ID        string `json:"id"`
	ShortName string `json:"shortName"`
	Name      string `json:"name"`
	Href      string `json:"href"`
	Current   bool   `json:"current"`
}

// Footer is the shared page footer block.
type Footer struct {
	Tagline string         `json:"tagline"`
	Founded string         `json:"founded"`
	Contact tenant.Contact `json:"contact"`
}

func (s *service) chrome(record tenant.Record, currentPath string) Chrome {
	basePath := record.ID.BasePath()
	resolved := theme.ForTenant(record.ID)

	entries := navigation.Entries()
	nav := make([]NavLink, 0, len(entries))
	for _, e := range entries {
		nav = append(nav, NavLink{
			Label:  e.Label,
			Href:   basePath + e.RelativePath,
			Active: navigation.IsActive(e.RelativePath, currentPath, basePath),
		})
	}

	switcher := make([]SwitchOption, 0, len(tenant.All()))
	for _, id := range tenant.All() {
		href, err := navigation.SwitchPath(currentPath, id)
		if err != nil {
			href = id.BasePath()
		}
		other := s.registry.Lookup(id)
		switcher = append(switcher, SwitchOption{
			ID:        id.String(),
			ShortName: other.ShortName,
			Name:      other.Name,
			Href:      href,
			Current:   id == record.ID,
		})
	}

	return Chrome{
		Tenant: Summary{
			ID:        record.ID.String(),
			Name:      record.Name,
			ShortName: record.ShortName,
			LogoRef:   record.LogoRef,
			BasePath:  basePath,
		},
		Theme:    resolved,
		Nav:      nav,
		Switcher: switcher,
		// A new page view starts with both nav toggles closed.
		Toggles: navigation.Toggles{},
		Footer: Footer{
			Tagline: record.Tagline,
			Founded: record.Founded,
			Contact: record.Contact,
		},
	}
}

// LandingView lists the known tenants for the selection entry point.
type LandingView struct {
	Tenants []LandingOption `json:"tenants"`
}

// LandingOption is one selectable tenant on the landing page.
type LandingOption struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Short    string `json:"shortName"`
	Tagline  string `json:"tagline"`
	LogoRef  string `json:"logoRef"`
	BasePath string `json:"basePath"`
}

func (s *service) Landing(ctx context.Context) LandingView {
	options := make([]LandingOption, 0, len(tenant.All()))
	for _, id := range tenant.All() {
		record := s.registry.Lookup(id)
		options = append(options, LandingOption{
			ID:       id.String(),
			Name:     record.Name,
			Short:    record.ShortName,
			Tagline:  record.Tagline,
			LogoRef:  record.LogoRef,
			BasePath: id.BasePath(),
		})
	}
	return LandingView{Tenants: options}
}

// HomeView is the tenant index page.
type HomeView struct {
	Chrome     Chrome             `json:"chrome"`
	Hero       Hero               `json:"hero"`
	Highlights []tenant.Highlight `json:"highlights"`
	Campaigns  []tenant.Campaign  `json:"campaigns"`
}

// Hero is the home page banner block.
type Hero struct {
	Tagline     string `json:"tagline"`
	Slogan      string `json:"slogan"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Founded     string `json:"founded"`
}

const homeCampaignPreview = 3

func (s *service) Home(ctx context.Context, currentPath string) HomeView {
	record := tenant.MustFromContext(ctx)

	preview := record.Campaigns
	if len(preview) > homeCampaignPreview {
		preview = preview[:homeCampaignPreview]
	}

	return HomeView{
		Chrome: s.chrome(record, currentPath),
		Hero: Hero{
			Tagline:     record.Tagline,
			Slogan:      record.Slogan,
			Subtitle:    record.HeroSubtitle,
			Description: record.Description,
			Founded:     record.Founded,
		},
		Highlights: record.Highlights,
		Campaigns:  preview,
	}
}

// AboutView carries the four narrative sections.
type AboutView struct {
	Chrome  Chrome       `json:"chrome"`
	Founded string       `json:"founded"`
	About   tenant.About `json:"about"`
}

func (s *service) About(ctx context.Context, currentPath string) AboutView {
	record := tenant.MustFromContext(ctx)
	return AboutView{
		Chrome:  s.chrome(record, currentPath),
		Founded: record.Founded,
		About:   record.About,
	}
}

// LeadershipView lists the leadership roster in declared order.
type LeadershipView struct {
	Chrome  Chrome          `json:"chrome"`
	Leaders []tenant.Leader `json:"leaders"`
}

func (s *service) Leadership(ctx context.Context, currentPath string) LeadershipView {
	record := tenant.MustFromContext(ctx)
	return LeadershipView{
		Chrome:  s.chrome(record, currentPath),
		Leaders: record.Leaders,
	}
}

// CampaignsView lists all campaigns in declared order.
type CampaignsView struct {
	Chrome    Chrome            `json:"chrome"`
	Campaigns []tenant.Campaign `json:"campaigns"`
}

func (s *service) Campaigns(ctx context.Context, currentPath string) CampaignsView {
	record := tenant.MustFromContext(ctx)
	return CampaignsView{
		Chrome:    s.chrome(record, currentPath),
		Campaigns: record.Campaigns,
	}
}

// ContactView carries the office and social coordinates.
type ContactView struct {
	Chrome  Chrome         `json:"chrome"`
	Contact tenant.Contact `json:"contact"`
}

func (s *service) Contact(ctx context.Context, currentPath string) ContactView {
	record := tenant.MustFromContext(ctx)
	return ContactView{
		Chrome:  s.chrome(record, currentPath),
		Contact: record.Contact,
	}
}

// JoinView is the form page shell: the benefits grid and membership
// options rendered around the registration form.
type JoinView struct {
	Chrome            Chrome             `json:"chrome"`
	Benefits          []Benefit          `json:"benefits"`
	MembershipOptions []MembershipOption `json:"membershipOptions"`
	Note              string             `json:"note"`
}

// Benefit is one membership benefit card.
type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MembershipOption is one of the two signup flavors.
type MembershipOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func (s *service) Join(ctx context.Context, currentPath string) JoinView {
	record := tenant.MustFromContext(ctx)
	return JoinView{
		Chrome: s.chrome(record, currentPath),
		Benefits: []Benefit{
			{Title: "Community", Description: "Join a powerful national network"},
			{Title: "Voice", Description: "Raise your voice on vital issues"},
			{Title: "Impact", Description: "Create real social change"},
			{Title: "Support", Description: "Stand protected and united"},
		},
		MembershipOptions: []MembershipOption{
			{Value: "member", Label: "Become a Member"},
			{Value: "volunteer", Label: "Volunteer"},
		},
		Note: "By joining, you agree to uphold the values of " + record.ShortName + ".",
	}
}
