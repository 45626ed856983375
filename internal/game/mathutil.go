package game

import "math"

// Vec2 is a 2D vector in world meters (or m/s for velocities).
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func vec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func vecFromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross is the scalar z-component of the 3D cross product.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec2) Unit() Vec2 {
	m := v.Magnitude()
	if m == 0 {
		return Vec2{}
	}
	return v.Scale(1 / m)
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}

func clampFloat(number, min, max float64) float64 {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}

// wrapAngle normalizes an angle into (-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// angleDiff gives the signed shortest rotation from a to b.
func angleDiff(a, b float64) float64 {
	return wrapAngle(b - a)
}

// lerpAngle interpolates along the shortest arc between two angles.
func lerpAngle(a, b, t float64) float64 {
	return wrapAngle(a + angleDiff(a, b)*clampFloat(t, 0, 1))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// smoothstep eases t in [0,1] with zero slope at both ends.
func smoothstep(t float64) float64 {
	t = clampFloat(t, 0, 1)
	return t * t * (3 - 2*t)
}

func signum(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
