package common

// FrameRate averages frames per second over a window of recent frame timestamps.
type FrameRate struct {
	stamps []float64 // milliseconds, ring buffer
	next   int
	filled bool
}

// NewFrameRate creates a counter averaging over window frames. window is at least 2.
func NewFrameRate(window int) *FrameRate {
	if window < 2 {
		window = 2
	}
	return &FrameRate{stamps: make([]float64, window)}
}

// Record adds a frame timestamp in milliseconds.
func (f *FrameRate) Record(ms float64) {
	f.stamps[f.next] = ms
	f.next = (f.next + 1) % len(f.stamps)
	if f.next == 0 {
		f.filled = true
	}
}

// FPS is zero until two frames have been recorded.
func (f *FrameRate) FPS() float64 {
	n, oldest := f.next, 0
	if f.filled {
		n, oldest = len(f.stamps), f.next
	}
	if n < 2 {
		return 0
	}
	newest := f.stamps[(f.next+len(f.stamps)-1)%len(f.stamps)]
	span := newest - f.stamps[oldest]
	if span <= 0 {
		return 0
	}
	return float64(n-1) * 1000 / span
}
