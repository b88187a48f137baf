package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orgsites/federation/platform/go/tenant"
	"github.com/orgsites/federation/platform/go/theme"
)

func newScopedContext(t *testing.T, id tenant.ID) (context.Context, Service) {
	t.Helper()

	registry, err := tenant.NewRegistry()
	require.NoError(t, err)

	ctx := tenant.WithRecord(context.Background(), registry.Lookup(id))
	return ctx, New(registry)
}

func TestChromeMarksActiveNavEntry(t *testing.T) {
	t.Parallel()

	ctx, svc := newScopedContext(t, tenant.AISF)
	view := svc.About(ctx, "/aisf/about")

	var activeLabels []string
	for _, link := range view.Chrome.Nav {
		if link.Active {
			activeLabels = append(activeLabels, link.Label)
		}
	}
	require.Equal(t, []string{"About"}, activeLabels)
}

func TestChromeIndexEntryActiveOnBasePath(t *testing.T) {
	t.Parallel()

	ctx, svc := newScopedContext(t, tenant.AISF)
	view := svc.Home(ctx, "/aisf")

	require.True(t, view.Chrome.Nav[0].Active, "Home must be active on the base path")
	for _, link := range view.Chrome.Nav[1:] {
		require.False(t, link.Active, "%s must not be active on the base path", link.Label)
	}
}

func TestChromeSwitcherRewritesPath(t *testing.T) {
	t.Parallel()

	ctx, svc := newScopedContext(t, tenant.AISF)
	view := svc.Campaigns(ctx, "/aisf/campaigns")

	byID := map[string]SwitchOption{}
	for _, opt := range view.Chrome.Switcher {
		byID[opt.ID] = opt
	}

	require.Equal(t, "/aisf/campaigns", byID["aisf"].Href)
	require.True(t, byID["aisf"].Current)
	require.Equal(t, "/aiyf/campaigns", byID["aiyf"].Href)
	require.False(t, byID["aiyf"].Current)
}

func TestChromeThemeResolvedOnce(t *testing.T) {
	t.Parallel()

	ctx, svc := newScopedContext(t, tenant.AIYF)
	view := svc.Home(ctx, "/aiyf")

	require.Equal(t, theme.ForTenant(tenant.AIYF), view.Chrome.Theme)
	require.False(t, view.Chrome.Toggles.MenuOpen)
	require.False(t, view.Chrome.Toggles.SwitcherOpen)
}

func TestHomeCampaignPreviewIsCapped(t *testing.T) {
	t.Parallel()

	ctx, svc := newScopedContext(t, tenant.AISF)
	view := svc.Home(ctx, "/aisf")

	require.Len(t, view.Campaigns, homeCampaignPreview)
	require.NotEmpty(t, view.Highlights)
	require.NotEmpty(t, view.Hero.Tagline)
}

func TestPageBuildersReadTenantFromContext(t *testing.T) {
	t.Parallel()

	ctx, svc := newScopedContext(t, tenant.AIYF)

	require.Equal(t, "aiyf", svc.About(ctx, "/aiyf/about").Chrome.Tenant.ID)
	require.NotEmpty(t, svc.Leadership(ctx, "/aiyf/leadership").Leaders)
	require.NotEmpty(t, svc.Campaigns(ctx, "/aiyf/campaigns").Campaigns)
	require.NotEmpty(t, svc.Contact(ctx, "/aiyf/contact").Contact.Email)
	require.Contains(t, svc.Join(ctx, "/aiyf/join").Note, "AIYF")
}

func TestPageBuildersPanicOutsideTenantScope(t *testing.T) {
	t.Parallel()

	registry, err := tenant.NewRegistry()
	require.NoError(t, err)
	svc := New(registry)

	require.Panics(t, func() {
		svc.Home(context.Background(), "/aisf")
	})
}

func TestLandingListsAllTenants(t *testing.T) {
	t.Parallel()

	registry, err := tenant.NewRegistry()
	require.NoError(t, err)
	svc := New(registry)

	view := svc.Landing(context.Background())
	require.Len(t, view.Tenants, len(tenant.All()))
	require.Equal(t, "/aisf", view.Tenants[0].BasePath)
}
