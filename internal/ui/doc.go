// Package ui is the Bubble Tea shell that hosts the tab bar.
//
// # Layout
//
//	┌──────────────────────────────────────┐
//	│ kiray USER  Home       ? help        │  header (1 row)
//	│                                      │
//	│  screen body                         │  fills the rest
//	│                                      │
//	│  ╭────────────────────────────────╮  │
//	│  │ ■ Home  ♡ Favorite  +  ◇ Chat … │  │  tabbar.Model
//	│  ╰────────────────────────────────╯  │
//	└──────────────────────────────────────┘
//
// The bar is hidden while the active route's descriptor asks for it (the
// "add listing" flow, admin sub-pages); the body then takes its rows.
//
// # Screens
//
// Screen bodies are static placeholders keyed by route name. Some screens
// carry links (single letters) that push routes the bar does not show, such
// as admin Settings → n → Notifications. esc goes back through the
// navigator's history.
//
// The Home screen is a viewport. It registers a tabPress listener on its
// own route and scrolls to the top when Home is pressed while already
// active. The listener never calls PreventDefault.
//
// # Key Bindings
//
//	1-9        Press tab
//	←/→, H/L   Previous / next tab
//	j/k, g/G   Scroll Home
//	esc        Back
//	T          Toggle Light/Dark theme (saved to prefs)
//	?          Toggle help
//	q, ctrl+c  Quit
//
// Left mouse presses on the bar select a tab; the wheel scrolls Home.
package ui
