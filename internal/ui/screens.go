package ui

import (
	"github.com/betkiray/kiray/internal/nav"
	"github.com/betkiray/kiray/internal/tabbar"
)

// screenLink pushes a route when its key is pressed on a screen.
type screenLink struct {
	Key   string
	Route string
	Label string
}

// screenContent is the placeholder body for one route.
type screenContent struct {
	Lines []string
	Links []screenLink
}

// UserScreens declares the renter routes in tab order.
func UserScreens() []nav.Screen {
	return []nav.Screen{
		{Name: "index", Title: "Home"},
		{Name: "saved", Title: "Favorite"},
		{Name: "add", Title: "Add listing", Label: "Add", HideTabBar: true},
		{Name: "messages", Title: "Chat"},
		{Name: "profile", Title: "Profile"},
	}
}

// AdminScreens declares the admin routes. The four tab routes come first;
// the rest are sub-pages reached from links and hide the bar.
func AdminScreens() []nav.Screen {
	return []nav.Screen{
		{Name: "index", Title: "Dashboard"},
		{Name: "properties", Title: "Properties"},
		{Name: "users", Title: "Users"},
		{Name: "settings", Title: "Settings"},
		{Name: "feedback", Title: "Feedback", HideTabBar: true},
		{Name: "notifications", Title: "Notifications", HideTabBar: true},
		{Name: "roles", Title: "Roles & Permissions", HideTabBar: true},
		{Name: "security", Title: "Security", HideTabBar: true},
		{Name: "change-password", Title: "Change Password", HideTabBar: true},
		{Name: "edit-role", Title: "Edit Role", HideTabBar: true},
		{Name: "approvals", Title: "Pending Approvals", HideTabBar: true},
		{Name: "earnings", Title: "Earnings", HideTabBar: true},
	}
}

// ScreensFor returns the routes for a variant name.
func ScreensFor(variant string) []nav.Screen {
	if variant == tabbar.VariantAdmin {
		return AdminScreens()
	}
	return UserScreens()
}

var listings = []string{
	"Cozy studio Apartment · Bole · 12,000 ETB/mo",
	"Luxury Apartment · Kazanchis · 45,000 ETB/mo",
	"1 Room Apartment · Piassa · 6,500 ETB/mo",
	"Apartments for Rent · CMC · 18,000 ETB/mo",
	"Apartments for Rent · Ayat · 15,500 ETB/mo",
	"Luxury 2BHK Apartment · Sarbet · 38,000 ETB/mo",
	"Modern Apartment in Bole · 25,000 ETB/mo",
	"Cozy Studio near Piaza · 8,000 ETB/mo",
	"Luxury Villa in CMC · 90,000 ETB/mo",
	"Shared room · Megenagna · 4,000 ETB/mo",
	"Townhouse · Gerji · 32,000 ETB/mo",
	"Penthouse · Old Airport · 120,000 ETB/mo",
}

func homeLines() []string {
	lines := []string{"Featured near you", ""}
	for i := 0; i < 3; i++ {
		for _, l := range listings {
			lines = append(lines, "  "+l)
		}
	}
	return lines
}

var userContent = map[string]screenContent{
	"saved": {Lines: []string{
		"Saved properties",
		"",
		"  Luxury Apartment · Kazanchis",
		"  Modern Apartment in Bole",
	}},
	"add": {Lines: []string{
		"List a new property",
		"",
		"  Title, price, location and photos.",
		"  Press esc to go back.",
	}},
	"messages": {Lines: []string{
		"Conversations",
		"",
		"  Abebe K. · Is the studio still available?",
		"  Sara M. · Thanks, see you Saturday.",
	}},
	"profile": {Lines: []string{
		"Your profile",
		"",
		"  Listings: 3",
		"  Member since 2024",
	}},
}

var adminContent = map[string]screenContent{
	"index": {
		Lines: []string{"Overview", "", "  Properties 128", "  Pending approvals 6", "  Users 2,340", "  Earnings 86,000 ETB"},
		Links: []screenLink{
			{Key: "a", Route: "approvals", Label: "Pending approvals"},
			{Key: "e", Route: "earnings", Label: "Earnings"},
			{Key: "n", Route: "notifications", Label: "Notifications"},
		},
	},
	"properties": {Lines: []string{"All properties", "", "  Pending · Approved · Rejected"}},
	"users":      {Lines: []string{"Users", "", "  Renters 2,100", "  Owners 240"}},
	"settings": {
		Lines: []string{"Admin settings"},
		Links: []screenLink{
			{Key: "r", Route: "roles", Label: "Roles & Permissions"},
			{Key: "s", Route: "security", Label: "Security"},
			{Key: "n", Route: "notifications", Label: "Notifications"},
			{Key: "f", Route: "feedback", Label: "Feedback"},
		},
	},
	"feedback": {Lines: []string{"User feedback", "", "  No new feedback."}},
	"notifications": {Lines: []string{
		"Notifications",
		"",
		"  New Property Listed",
		"  User Reported",
		"  Payment Received",
		"  System Update",
		"  New Message",
	}},
	"roles": {
		Lines: []string{"Roles", "", "  Property Owner", "  Renter", "  Administrator"},
		Links: []screenLink{{Key: "e", Route: "edit-role", Label: "Edit role"}},
	},
	"security": {
		Lines: []string{"Security"},
		Links: []screenLink{{Key: "c", Route: "change-password", Label: "Change password"}},
	},
	"change-password": {Lines: []string{"Change password", "", "  Current, new and confirm."}},
	"edit-role":       {Lines: []string{"Edit role permissions", "", "  Access Dashboard", "  Manage Users", "  Approve Listings"}},
	"approvals":       {Lines: []string{"Pending approvals", "", "  Modern Apartment in Bole", "  Cozy Studio near Piaza", "  Luxury Villa in CMC"}},
	"earnings":        {Lines: []string{"Earnings", "", "  This month 86,000 ETB"}},
}

// contentFor returns the body for a route name within a variant.
func contentFor(variant, name string) screenContent {
	table := userContent
	if variant == tabbar.VariantAdmin {
		table = adminContent
	}
	if c, ok := table[name]; ok {
		return c
	}
	return screenContent{Lines: []string{name}}
}
