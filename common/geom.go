package common

import "math"

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// AngleTo returns the angle in radians from (srcX, srcY) to (dstX, dstY).
// 0 points along +x and angles grow clockwise in screen space (+y down).
func AngleTo(srcX, srcY, dstX, dstY float64) float64 {
	return math.Atan2(dstY-srcY, dstX-srcX)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize scales (x, y) to unit length.
// A zero-length vector normalizes to (0, 0) rather than NaN.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// PointInRect reports whether (px, py) lies strictly inside the axis-aligned
// rectangle centred on (cx, cy) with the given width and height.
func PointInRect(px, py, cx, cy, w, h float64) bool {
	return px > cx-w/2 && px < cx+w/2 &&
		py > cy-h/2 && py < cy+h/2
}

// InterceptAngle returns the angle to fire a projectile of the given speed from
// (srcX, srcY) so that it meets a target at (tx, ty) moving with (tvx, tvy).
// Falls back to direct aim when no intercept exists.
func InterceptAngle(srcX, srcY, tx, ty, tvx, tvy, projectileSpeed float64) float64 {
	dx := tx - srcX
	dy := ty - srcY

	// a*t² + b*t + c = 0
	a := tvx*tvx + tvy*tvy - projectileSpeed*projectileSpeed
	b := 2 * (dx*tvx + dy*tvy)
	c := dx*dx + dy*dy

	var t float64
	if math.Abs(a) < 0.0001 {
		if math.Abs(b) > 0.0001 {
			t = -c / b
		}
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return math.Atan2(dy, dx)
		}
		sq := math.Sqrt(disc)
		t1 := (-b - sq) / (2 * a)
		t2 := (-b + sq) / (2 * a)
		switch {
		case t1 > 0 && t2 > 0:
			t = math.Min(t1, t2)
		case t1 > 0:
			t = t1
		case t2 > 0:
			t = t2
		default:
			return math.Atan2(dy, dx)
		}
	}
	if t < 0 {
		t = 0
	}

	return math.Atan2(dy+tvy*t, dx+tvx*t)
}
