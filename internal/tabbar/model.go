package tabbar

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/betkiray/kiray/internal/nav"
)

// noIndex marks a bar that has not resolved an indicator index yet, so the
// first sync always counts as a change.
const noIndex = -2

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances the indicator animation of one bar.
type FrameMsg struct {
	id  int
	tag int
}

// PressMsg is returned as a command after every slot press so parents can
// observe presses without registering listeners.
type PressMsg struct {
	Result PressResult
}

// Slot is the resolved presentation of one visible route.
type Slot struct {
	Route              nav.Route
	Label              string
	Glyph              string
	Focused            bool
	Action             bool
	AccessibilityLabel string
	TestID             string
	Start, End         int
}

// Model is a Bubble Tea tab bar bound to a navigation host. It never stores
// the host's route list; every Update and View reads the current state.
type Model struct {
	id        int
	tag       int
	host      Host
	variant   Variant
	style     Style
	keys      KeyMap
	indicator Indicator

	width     int
	originY   int
	lastIndex int
	lastItem  float64
}

// New returns a bar for host using variant and style.
func New(host Host, variant Variant, style Style) Model {
	return Model{
		id:        nextID(),
		host:      host,
		variant:   variant,
		style:     style,
		keys:      DefaultKeyMap(),
		indicator: NewIndicator(),
		lastIndex: noIndex,
	}
}

// ID identifies the bar's frame messages.
func (m Model) ID() int { return m.id }

// Variant returns the bar's configuration.
func (m Model) Variant() Variant { return m.variant }

// Indicator returns a copy of the pill state.
func (m Model) Indicator() Indicator { return m.indicator }

// Keys returns the bar's key bindings.
func (m Model) Keys() KeyMap { return m.keys }

// SetStyle replaces the bar's styles.
func (m *Model) SetStyle(s Style) { m.style = s }

// SetOrigin sets the screen row the bar is drawn at, used for mouse hits.
func (m *Model) SetOrigin(row int) { m.originY = row }

// SetSize sets the screen width and returns the command needed to keep the
// pill in place.
func (m *Model) SetSize(width int) tea.Cmd {
	m.width = width
	return m.Sync()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles frames, slot keys and mouse presses, then re-syncs with the
// host.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.id != m.id || msg.tag != m.tag {
			return m, nil
		}
		if m.indicator.Step() {
			return m, m.frame()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}
	sync := m.Sync()
	return m, tea.Batch(cmd, sync)
}

// Sync reads the host state and retargets the indicator when the active slot
// or the slot width changed. It returns a frame command when an animation
// has to start.
func (m *Model) Sync() tea.Cmd {
	if m.host == nil {
		return nil
	}
	state := m.host.State()
	visible := VisibleRoutes(state.Routes, m.variant.HiddenRoutes)
	geom := m.geometry(len(visible))

	idx := m.indicatorIndex(state, visible)
	if geom.Empty {
		idx = -1
	}

	started := false
	switch {
	case idx != m.lastIndex:
		started = m.indicator.SetTarget(idx, geom.ItemWidth)
	case idx >= 0 && geom.ItemWidth != m.lastItem:
		if m.indicator.Phase() == Animating {
			started = m.indicator.SetTarget(idx, geom.ItemWidth)
		} else {
			m.indicator.Jump(geom.Offset(idx))
		}
	}
	m.lastIndex = idx
	m.lastItem = geom.ItemWidth

	if !started {
		return nil
	}
	m.tag++
	return m.frame()
}

func (m Model) frame() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(time.Second/FrameRate, func(time.Time) tea.Msg {
		return FrameMsg{id: id, tag: tag}
	})
}

// indicatorIndex is ActiveVisibleIndex with NoIndicator routes treated as
// hidden.
func (m Model) indicatorIndex(state nav.State, visible []nav.Route) int {
	idx := ActiveVisibleIndex(state, visible)
	if idx >= 0 && m.variant.suppressesIndicator(visible[idx].Name) {
		return -1
	}
	return idx
}

func (m Model) geometry(count int) Geometry {
	return Resolve(float64(m.width), m.variant.Layout, count)
}

// Hidden reports whether the active route asks for the bar to be hidden.
func (m Model) Hidden() bool {
	if m.host == nil {
		return true
	}
	state := m.host.State()
	if len(state.Routes) == 0 {
		return true
	}
	return m.host.Descriptor(state.Active().Key).HideTabBar
}

// Height is the number of rows View occupies.
func (m Model) Height() int {
	if m.Hidden() {
		return 0
	}
	state := m.host.State()
	geom := m.geometry(len(VisibleRoutes(state.Routes, m.variant.HiddenRoutes)))
	if geom.Empty {
		return 0
	}
	if m.bordered(geom) {
		return 3
	}
	return 1
}

// Press presses visible slot i as if it had been clicked.
func (m *Model) Press(i int) (PressResult, tea.Cmd) {
	if m.host == nil || m.Hidden() {
		return PressResult{}, nil
	}
	state := m.host.State()
	visible := VisibleRoutes(state.Routes, m.variant.HiddenRoutes)
	res := Press(m.host, state, visible, i)
	if res.Event == nil {
		return res, nil
	}
	return res, func() tea.Msg { return PressMsg{Result: res} }
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	for i, b := range m.keys.Slots {
		if key.Matches(msg, b) {
			_, cmd := m.Press(i)
			return cmd
		}
	}

	step := 0
	switch {
	case key.Matches(msg, m.keys.Next):
		step = 1
	case key.Matches(msg, m.keys.Prev):
		step = -1
	default:
		return nil
	}
	if m.host == nil {
		return nil
	}

	state := m.host.State()
	visible := VisibleRoutes(state.Routes, m.variant.HiddenRoutes)
	if len(visible) == 0 {
		return nil
	}
	cur := ActiveVisibleIndex(state, visible)
	next := 0
	if cur >= 0 {
		next = cur + step
	}
	if next < 0 || next >= len(visible) {
		return nil
	}
	_, cmd := m.Press(next)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	height := m.Height()
	if height == 0 || msg.Y < m.originY || msg.Y >= m.originY+height {
		return nil
	}
	state := m.host.State()
	visible := VisibleRoutes(state.Routes, m.variant.HiddenRoutes)
	geom := m.geometry(len(visible))
	left, pad := m.placement(geom)
	slot := geom.SlotAt(msg.X - left - pad)
	if slot < 0 {
		return nil
	}
	_, cmd := m.Press(slot)
	return cmd
}

// Slots resolves the visible slots for the current host state.
func (m Model) Slots() []Slot {
	if m.host == nil {
		return nil
	}
	state := m.host.State()
	visible := VisibleRoutes(state.Routes, m.variant.HiddenRoutes)
	geom := m.geometry(len(visible))
	active := state.Active().Key

	slots := make([]Slot, 0, len(visible))
	for i, r := range visible {
		desc := m.host.Descriptor(r.Key)
		icon := m.variant.Icons.IconFor(r.Name)
		focused := r.Key == active
		start, end := geom.SlotBounds(i)
		slots = append(slots, Slot{
			Route:              r,
			Label:              resolveLabel(icon, desc, r),
			Glyph:              Glyph(icon.Variant(focused)),
			Focused:            focused,
			Action:             m.variant.Action(r.Name),
			AccessibilityLabel: desc.AccessibilityLabel,
			TestID:             desc.TestID,
			Start:              start,
			End:                end,
		})
	}
	return slots
}

func resolveLabel(icon Icon, desc nav.Descriptor, r nav.Route) string {
	switch {
	case icon.Label != "":
		return icon.Label
	case desc.Label != "":
		return desc.Label
	case desc.Title != "":
		return desc.Title
	default:
		return r.Name
	}
}

// View renders the bar, or nothing when it is hidden or has no slots.
func (m Model) View() string {
	if m.Hidden() {
		return ""
	}
	slots := m.Slots()
	geom := m.geometry(len(slots))
	if geom.Empty {
		return ""
	}
	inner, _ := geom.Cells()

	var plain strings.Builder
	for _, s := range slots {
		plain.WriteString(slotText(s, s.End-s.Start))
	}
	line := plain.String()
	if w := ansi.StringWidth(line); w < inner {
		line += strings.Repeat(" ", inner-w)
	}

	pillStart, pillEnd := -1, -1
	if m.indicator.Visible() {
		pillStart, pillEnd = m.pillSpan(geom)
	}

	base := lipgloss.NewStyle().Background(m.style.Bar.GetBackground())
	var out strings.Builder
	for _, s := range slots {
		style := m.style.Inactive
		switch {
		case s.Action:
			style = m.style.Action
		case s.Focused:
			style = m.style.Active
		}
		style = style.Inherit(base)
		for _, seg := range splitSpan(s.Start, s.End, pillStart, pillEnd) {
			st := style
			if seg.pill {
				st = style.Inherit(m.style.Pill)
				if !s.Action {
					st = st.Background(m.style.Pill.GetBackground())
				}
			}
			out.WriteString(st.Render(ansi.Cut(line, seg.start, seg.end)))
		}
	}
	if last := slots[len(slots)-1].End; last < inner {
		out.WriteString(base.Render(ansi.Cut(line, last, inner)))
	}

	left, pad := m.placement(geom)
	bar := m.style.Bar
	if m.bordered(geom) {
		bar = bar.Padding(0, pad-1)
	} else {
		bar = lipgloss.NewStyle().Background(m.style.Bar.GetBackground())
	}
	return bar.MarginLeft(left).Render(out.String())
}

// pillSpan returns the cell span of the pill, centred inside one slot width
// starting at the animated offset.
func (m Model) pillSpan(geom Geometry) (int, int) {
	frac := m.variant.PillFraction
	if frac <= 0 || frac > 1 {
		frac = 1
	}
	width := geom.ItemWidth * frac
	start := m.indicator.Offset() + (geom.ItemWidth-width)/2
	inner, _ := geom.Cells()
	s := clamp(cell(start), 0, inner)
	e := clamp(cell(start+width), 0, inner)
	return s, e
}

// placement returns the left margin of the bar and the padding cells inside
// it.
func (m Model) placement(geom Geometry) (left, pad int) {
	inner, _ := geom.Cells()
	pad = cell(math.Max(geom.Padding, 0))
	outer := inner + 2*pad
	left = (m.width - outer) / 2
	if left < 0 {
		left = 0
	}
	return left, pad
}

func (m Model) bordered(geom Geometry) bool {
	_, pad := m.placement(geom)
	return pad >= 1
}

type span struct {
	start, end int
	pill       bool
}

// splitSpan cuts [start, end) at the pill boundaries.
func splitSpan(start, end, pillStart, pillEnd int) []span {
	if end <= start {
		return nil
	}
	if pillEnd <= pillStart || pillEnd <= start || pillStart >= end {
		return []span{{start, end, false}}
	}
	var out []span
	ps, pe := max(pillStart, start), min(pillEnd, end)
	if ps > start {
		out = append(out, span{start, ps, false})
	}
	out = append(out, span{ps, pe, true})
	if pe < end {
		out = append(out, span{pe, end, false})
	}
	return out
}

// slotText centres the glyph, and the label when it fits, in width cells.
func slotText(s Slot, width int) string {
	if width <= 0 {
		return ""
	}
	text := s.Glyph
	if s.Action {
		text = " " + s.Glyph + " "
	}
	if withLabel := text + " " + s.Label; ansi.StringWidth(withLabel)+2 <= width {
		text = withLabel
	}
	text = ansi.Truncate(text, width, "")
	gap := width - ansi.StringWidth(text)
	left := gap / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
