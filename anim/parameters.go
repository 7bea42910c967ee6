// Package anim records animation parameters and replays the animation
// events that clips raise at fixed offsets.
package anim

import (
	"maps"
	"slices"
)

// Parameter names written by the locomotion controller.
const (
	Velocity         = "Velocity"
	VelocityX        = "VelocityX"
	VelocityZ        = "VelocityZ"
	ClimbVelocityX   = "ClimbVelocityX"
	ClimbVelocityY   = "ClimbVelocityY"
	IsGrounded       = "IsGrounded"
	IsClimbing       = "IsClimbing"
	IsCrouch         = "IsCrouch"
	IsGliding        = "IsGliding"
	Combo            = "Combo"
	TriggerJump      = "Jump"
	TriggerPunch     = "Punch"
	TriggerChangePOV = "ChangePerspective"
)

// Sink receives animation parameter writes.
type Sink interface {
	SetFloat(name string, value float64)
	SetBool(name string, value bool)
	SetInteger(name string, value int)
	SetTrigger(name string)
}

// Parameters is a map-backed Sink that remembers the last value of every
// parameter and counts trigger firings.
type Parameters struct {
	floats   map[string]float64
	bools    map[string]bool
	ints     map[string]int
	triggers map[string]int
}

func NewParameters() *Parameters {
	return &Parameters{
		floats:   make(map[string]float64),
		bools:    make(map[string]bool),
		ints:     make(map[string]int),
		triggers: make(map[string]int),
	}
}

func (p *Parameters) SetFloat(name string, value float64) { p.floats[name] = value }
func (p *Parameters) SetBool(name string, value bool)     { p.bools[name] = value }
func (p *Parameters) SetInteger(name string, value int)   { p.ints[name] = value }
func (p *Parameters) SetTrigger(name string)              { p.triggers[name]++ }

func (p *Parameters) Float(name string) float64 { return p.floats[name] }
func (p *Parameters) Bool(name string) bool     { return p.bools[name] }
func (p *Parameters) Integer(name string) int   { return p.ints[name] }

// Triggered returns how many times the trigger has fired.
func (p *Parameters) Triggered(name string) int {
	return p.triggers[name]
}

// Floats returns the float parameter names in sorted order.
func (p *Parameters) Floats() []string {
	return slices.Sorted(maps.Keys(p.floats))
}

// Bools returns the bool parameter names in sorted order.
func (p *Parameters) Bools() []string {
	return slices.Sorted(maps.Keys(p.bools))
}

// Integers returns the int parameter names in sorted order.
func (p *Parameters) Integers() []string {
	return slices.Sorted(maps.Keys(p.ints))
}

// Triggers returns the names of triggers that have fired, sorted.
func (p *Parameters) Triggers() []string {
	return slices.Sorted(maps.Keys(p.triggers))
}
