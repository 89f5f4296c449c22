package tabbar

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring parameters for the sliding pill. The stiffness, damping and mass
// describe a damped oscillator; harmonica takes the equivalent angular
// frequency and damping ratio.
const (
	SpringStiffness = 100.0
	SpringDamping   = 15.0
	SpringMass      = 1.0

	// FrameRate is the number of animation frames per second.
	FrameRate = 60

	settleEpsilon = 0.01
)

// AngularFrequency returns sqrt(k/m) for the spring constants.
func AngularFrequency() float64 {
	return math.Sqrt(SpringStiffness / SpringMass)
}

// DampingRatio returns c / (2*sqrt(k*m)) for the spring constants.
func DampingRatio() float64 {
	return SpringDamping / (2 * math.Sqrt(SpringStiffness*SpringMass))
}

// Phase is the indicator's animation state.
type Phase int

const (
	Settled Phase = iota
	Animating
)

func (p Phase) String() string {
	if p == Animating {
		return "animating"
	}
	return "settled"
}

// Indicator drives the pill offset. It starts settled at 0 and hidden.
// SetTarget retargets the running spring in place, keeping the current
// position and velocity, so rapid index changes never queue.
type Indicator struct {
	spring   harmonica.Spring
	offset   float64
	velocity float64
	target   float64
	phase    Phase
	visible  bool

	// OnSettle, when set, is called with the final offset each time an
	// animation comes to rest.
	OnSettle func(offset float64)
}

// NewIndicator returns an indicator using the package spring constants.
func NewIndicator() Indicator {
	return Indicator{
		spring: harmonica.NewSpring(harmonica.FPS(FrameRate), AngularFrequency(), DampingRatio()),
	}
}

// SetTarget points the indicator at slot index. A negative index hides the
// pill and freezes the offset where it is. It reports whether the indicator
// just left the settled phase, meaning the caller must start driving frames.
func (ind *Indicator) SetTarget(index int, itemWidth float64) bool {
	if index < 0 {
		ind.visible = false
		ind.velocity = 0
		ind.target = ind.offset
		ind.phase = Settled
		return false
	}

	ind.visible = true
	ind.target = float64(index) * itemWidth
	if ind.phase == Settled && near(ind.offset, ind.target) {
		ind.offset = ind.target
		return false
	}
	started := ind.phase == Settled
	ind.phase = Animating
	return started
}

// Jump places the indicator at offset without animating.
func (ind *Indicator) Jump(offset float64) {
	ind.offset = offset
	ind.target = offset
	ind.velocity = 0
	ind.phase = Settled
}

// Step advances the spring by one frame and reports whether it is still
// moving.
func (ind *Indicator) Step() bool {
	if ind.phase != Animating {
		return false
	}
	ind.offset, ind.velocity = ind.spring.Update(ind.offset, ind.velocity, ind.target)
	if near(ind.offset, ind.target) && math.Abs(ind.velocity) < settleEpsilon {
		ind.offset = ind.target
		ind.velocity = 0
		ind.phase = Settled
		if ind.OnSettle != nil {
			ind.OnSettle(ind.offset)
		}
		return false
	}
	return true
}

// Offset is the current animated position.
func (ind Indicator) Offset() float64 { return ind.offset }

// Velocity is the current spring velocity in cells per second.
func (ind Indicator) Velocity() float64 { return ind.velocity }

// Target is the position the spring is heading to.
func (ind Indicator) Target() float64 { return ind.target }

// Phase reports whether the indicator is settled or animating.
func (ind Indicator) Phase() Phase { return ind.phase }

// Visible reports whether the pill should be drawn.
func (ind Indicator) Visible() bool { return ind.visible }

func near(a, b float64) bool {
	return math.Abs(a-b) < settleEpsilon
}
