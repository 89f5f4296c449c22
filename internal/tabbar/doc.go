// Package tabbar renders a bottom tab bar with a spring-animated pill that
// slides to the active slot.
//
// # Overview
//
// The bar is one component parameterised by a Variant: which routes are
// hidden from it, which slots are action buttons, the icon table and the
// layout. UserVariant and AdminVariant are the two surfaces shipped by the
// app.
//
// A Model never owns navigation. It reads the host's State on every message
// and on every render, so a route change made elsewhere (a push from a
// screen, Back) is picked up on the next update.
//
// # Pipeline
//
//	host.State()
//	     ↓
//	VisibleRoutes ──→ Resolve(width, layout, count) ──→ Geometry
//	     ↓                                                ↓
//	ActiveVisibleIndex ──────→ Indicator.SetTarget(i, itemWidth)
//	                                   ↓
//	                          FrameMsg → Indicator.Step
//
// Geometry is recomputed for every pass and is pure. Widths are float64
// cells so the pill can move in sub-cell steps; View rounds to cells.
//
// # Indicator
//
// The indicator is a two-state machine (Settled, Animating) over a
// harmonica spring with stiffness 100, damping 15 and mass 1. A new target
// while animating is applied to the running spring, keeping position and
// velocity, and never starts a second frame loop. A negative index hides the
// pill and freezes its offset so it resumes from the same place.
//
// Frame messages carry the bar's id and a tag. Only a Settled→Animating
// transition bumps the tag, so stale ticks from an earlier loop are dropped.
//
// # Presses
//
// Press emits one cancelable tabPress event per press and navigates only
// when the slot is not already focused and no listener called
// PreventDefault. Pressing the focused slot is idempotent apart from the
// event, which screens use for "scroll to top".
//
// Presses come from slot keys (1..9), ←/→ for the neighbours of the active
// slot, and left mouse presses inside the bar's rows. SetOrigin tells the bar
// which screen row it is drawn at.
package tabbar
