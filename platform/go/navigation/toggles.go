package navigation

import "github.com/orgsites/federation/platform/go/tenant"

// Toggles holds the two independent nav-bar booleans: the mobile menu and
// the tenant-switcher dropdown. Opening one never closes the other
// implicitly; both start closed on every new page view.
type Toggles struct {
	MenuOpen     bool
	SwitcherOpen bool
}

// ToggleMenu flips the mobile menu open or closed.
func (t *Toggles) ToggleMenu() {
	t.MenuOpen = !t.MenuOpen
}

// ToggleSwitcher flips the tenant-switcher dropdown open or closed.
func (t *Toggles) ToggleSwitcher() {
	t.SwitcherOpen = !t.SwitcherOpen
}

// SelectSwitchTarget records a tenant-switch selection: the dropdown
// closes, the menu is left alone. The returned id is what the caller
// should navigate to via SwitchPath.
func (t *Toggles) SelectSwitchTarget(target tenant.ID) tenant.ID {
	t.SwitcherOpen = false
	return target
}

// FollowLink records a nav-link navigation: the mobile menu closes, the
// dropdown is left alone.
func (t *Toggles) FollowLink() {
	t.MenuOpen = false
}

// Reset closes both toggles. A new page view starts from this state.
func (t *Toggles) Reset() {
	t.MenuOpen = false
	t.SwitcherOpen = false
}
