package main

import (
	"github.com/plus3/strider/input"
	"github.com/plus3/strider/vecmath"
)

var forward = vecmath.Vec2{Y: 1}

// Scenario is a scripted run from a spawn point on the practice course.
type Scenario struct {
	Name   string
	Spawn  vecmath.Vec3
	Frames []input.ScriptFrame
}

func lookFrames(count int, delta vecmath.Vec2) []input.ScriptFrame {
	frames := make([]input.ScriptFrame, count)
	for i := range frames {
		frames[i].Look = delta
	}
	return frames
}

func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:   "walk",
			Frames: input.Sequence(input.Hold(120, forward), input.Idle(30)),
		},
		{
			Name:   "sprint",
			Frames: input.Sequence(input.Hold(120, forward, input.ActionSprint), input.Idle(30)),
		},
		{
			Name: "crouch",
			Frames: input.Sequence(
				input.Tap(input.ActionCrouch),
				input.Hold(90, forward),
				input.Tap(input.ActionCrouch),
				input.Idle(30),
			),
		},
		{
			Name:  "jump",
			Spawn: vecmath.Vec3{X: 2},
			Frames: input.Sequence(
				input.Idle(10),
				input.Tap(input.ActionJump),
				input.Idle(90),
			),
		},
		{
			Name:  "punch",
			Spawn: vecmath.Vec3{X: -4, Z: 1.4},
			Frames: input.Sequence(
				input.Idle(5),
				input.Tap(input.ActionPunch), input.Idle(30),
				input.Tap(input.ActionPunch), input.Idle(30),
				input.Tap(input.ActionPunch), input.Idle(90),
			),
		},
		{
			Name:  "climb",
			Spawn: vecmath.Vec3{Z: 7.5},
			Frames: input.Sequence(
				input.Idle(5),
				input.Tap(input.ActionClimb),
				input.Hold(90, forward),
				input.Tap(input.ActionCancel),
				input.Idle(120),
			),
		},
		{
			Name:  "glide",
			Spawn: vecmath.Vec3{X: 7.5, Y: 8, Z: 1.5},
			Frames: input.Sequence(
				input.Idle(5),
				input.Hold(90, forward),
				input.Tap(input.ActionGlide),
				input.Hold(60, vecmath.Vec2{X: -0.5}),
				input.Idle(480),
			),
		},
		{
			Name: "first_person",
			Frames: input.Sequence(
				input.Tap(input.ActionChangePOV),
				lookFrames(60, vecmath.Vec2{X: 1}),
				input.Hold(60, vecmath.Vec2{X: 1, Y: 1}),
				input.Tap(input.ActionChangePOV),
				input.Idle(30),
			),
		},
	}
}

// FindScenarios selects scenarios by name; "all" selects every scenario.
func FindScenarios(name string) []Scenario {
	all := Scenarios()
	if name == "all" {
		return all
	}
	for _, s := range all {
		if s.Name == name {
			return []Scenario{s}
		}
	}
	return nil
}
