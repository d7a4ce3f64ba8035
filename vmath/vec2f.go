package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector used for particle position, velocity and acceleration
type Vec2F struct {
	X, Y float64
}

// V2FZero is the additive identity
var V2FZero = Vec2F{}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FFromAngle returns the unit vector pointing at theta radians
func V2FFromAngle(theta float64) Vec2F {
	return Vec2F{math.Cos(theta), math.Sin(theta)}
}
