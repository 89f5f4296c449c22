package tabbar

import "strings"

// Variant names.
const (
	VariantUser  = "user"
	VariantAdmin = "admin"
)

// Variant parameterises the tab bar for one product surface.
type Variant struct {
	Name string

	// HiddenRoutes are push-only screens that never get a slot.
	HiddenRoutes map[string]struct{}
	// NoIndicator routes keep their slot but suppress the pill while active.
	NoIndicator map[string]struct{}
	// ActionRoutes render as a raised action button instead of an icon.
	ActionRoutes map[string]struct{}

	Icons  Icons
	Layout Layout
	// PillFraction is the pill width as a share of one slot.
	PillFraction float64
}

// UserVariant is the renter-facing bar: Home, Favorite, Add, Chat, Profile.
func UserVariant() Variant {
	return Variant{
		Name:         VariantUser,
		HiddenRoutes: set(),
		NoIndicator:  set("add"),
		ActionRoutes: set("add"),
		Icons:        userIcons,
		Layout:       Layout{WidthFraction: 0.9, Padding: 2},
		PillFraction: 0.9,
	}
}

// AdminVariant is the admin bar. Sub-pages reached by push navigation are
// hidden from it.
func AdminVariant() Variant {
	return Variant{
		Name: VariantAdmin,
		HiddenRoutes: set(
			"feedback",
			"notifications",
			"roles",
			"security",
			"change-password",
			"edit-role",
			"approvals",
			"earnings",
		),
		NoIndicator:  set(),
		ActionRoutes: set(),
		Icons:        adminIcons,
		Layout:       Layout{Margin: 2, Padding: 1},
		PillFraction: 0.85,
	}
}

// VariantByName returns the named variant. Matching ignores case and
// surrounding space.
func VariantByName(name string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case VariantUser:
		return UserVariant(), true
	case VariantAdmin:
		return AdminVariant(), true
	default:
		return Variant{}, false
	}
}

// VariantNames lists the compiled variants.
func VariantNames() []string {
	return []string{VariantUser, VariantAdmin}
}

// Hidden reports whether the route name is filtered from the bar.
func (v Variant) Hidden(name string) bool {
	_, ok := v.HiddenRoutes[name]
	return ok
}

// Action reports whether the route name renders as an action button.
func (v Variant) Action(name string) bool {
	_, ok := v.ActionRoutes[name]
	return ok
}

func (v Variant) suppressesIndicator(name string) bool {
	_, ok := v.NoIndicator[name]
	return ok
}

func set(names ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}
