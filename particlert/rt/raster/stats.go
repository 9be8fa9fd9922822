package raster

// Stats counts what a draw did, for logging and the profiler.
type Stats struct {
	Primitives int // points or line segments submitted
	Culled     int // primitives rejected before rasterization
	Fragments  int // fragments written to the target
	Discarded  int // fragments the shader discarded
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Primitives += o.Primitives
	s.Culled += o.Culled
	s.Fragments += o.Fragments
	s.Discarded += o.Discarded
}
