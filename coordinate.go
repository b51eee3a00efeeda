package vivaldi

import "math"

// zeroThreshold is the smallest positive normal float64, used to guard
// against division by zero.
const zeroThreshold = 0x1p-1022

// Coordinate is a point in a height-augmented Euclidean space, plus a
// running estimate of that point's prediction error. Distance between two
// coordinates approximates the round-trip time between the peers they
// represent.
type Coordinate struct {
	cfg    Config
	vector []float64
	height float64
	err    float64
}

// NewCoordinate returns a coordinate at the origin under cfg. It panics if
// cfg fails validation.
func NewCoordinate(cfg Config) *Coordinate {
	cfg.validate()
	return &Coordinate{
		cfg:    cfg,
		vector: make([]float64, cfg.Dimensionality),
		height: cfg.HeightMin,
		err:    cfg.VivaldiErrorMax,
	}
}

// Vector returns a copy of the Euclidean component.
func (c *Coordinate) Vector() []float64 {
	out := make([]float64, len(c.vector))
	copy(out, c.vector)
	return out
}

// SetVector overwrites the Euclidean component; len(v) must equal the
// coordinate's configured dimensionality. Intended for tests.
func (c *Coordinate) SetVector(v []float64) {
	assert(len(v) == len(c.vector), ErrInvalidDimensionality)
	copy(c.vector, v)
}

func (c *Coordinate) Height() float64 { return c.height }

// SetHeight overwrites the height component. Intended for tests.
func (c *Coordinate) SetHeight(h float64) { c.height = h }

func (c *Coordinate) Error() float64 { return c.err }

// Distance returns the predicted round-trip time, in seconds, to other.
func (c *Coordinate) Distance(other *Coordinate) float64 {
	return magnitude(diffVec(c.vector, other.vector)) + c.height + other.height
}

// Update moves c toward the position implied by observing rtt seconds to
// other, and applies gravity toward the origin. localAdj and remoteAdj are
// the caller's current hybrid-adjustment offsets (zero if unused); they are
// folded into the effective distance without being allowed to invert its
// sign.
func (c *Coordinate) Update(other *Coordinate, rtt, localAdj, remoteAdj float64) {
	assert(!math.IsNaN(rtt) && !math.IsInf(rtt, 0), ErrNonFiniteInput)

	if rtt < zeroThreshold {
		log.Debugw("rtt below zero threshold, clamping", "rtt", rtt)
	}
	rttp := math.Max(rtt, zeroThreshold)

	d := c.Distance(other)
	d = math.Max(d, d+localAdj+remoteAdj)

	e := math.Abs(d-rttp) / rttp

	denom := c.err + other.err
	var w float64
	if denom > zeroThreshold {
		w = c.err / denom
	} else {
		log.Debugw("zero total error, skipping update", "self_error", c.err, "other_error", other.err)
	}

	c.err = math.Min(e*c.cfg.VivaldiCE*w+c.err*(1-c.cfg.VivaldiCE*w), c.cfg.VivaldiErrorMax)

	force := c.cfg.VivaldiCC * w * (rttp - d)
	c.applyForce(other, force)

	origin := NewCoordinate(c.cfg)
	g := c.Distance(origin)
	g = math.Max(g, g+localAdj)
	gravity := -math.Pow(g/c.cfg.GravityRho, 2)
	c.applyForce(origin, gravity)

	c.checkInvariants()

	rec := c.cfg.recorder()
	rec.ObserveError(c.err)
	rec.ObserveHeight(c.height)
}

// applyForce nudges c away from (or toward, for negative force) other by
// force seconds along the line between them.
func (c *Coordinate) applyForce(other *Coordinate, force float64) {
	unit, m := unitVectorFromTo(c.vector, other.vector, c.cfg.rand())
	for i := range c.vector {
		c.vector[i] += unit[i] * force
	}
	if m > zeroThreshold {
		c.height = math.Max((c.height+other.height)*force/m+c.height, c.cfg.HeightMin)
	}
}

func (c *Coordinate) checkInvariants() {
	for i, v := range c.vector {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			log.Errorw("coordinate vector component became non-finite", "index", i, "value", v)
			panic(ErrInvariantViolation)
		}
	}
	if math.IsNaN(c.height) || math.IsInf(c.height, 0) {
		log.Errorw("coordinate height became non-finite", "value", c.height)
		panic(ErrInvariantViolation)
	}
	if math.IsNaN(c.err) || math.IsInf(c.err, 0) {
		log.Errorw("coordinate error became non-finite", "value", c.err)
		panic(ErrInvariantViolation)
	}
}

// unitVectorFromTo returns a unit vector pointing from src to dest and the
// magnitude of dest-src. When the two points coincide (within
// zeroThreshold), it falls back to a random direction drawn from rnd so
// that coincident coordinates still separate under a repulsive force; if
// that random draw is itself degenerate, the first axis is used.
func unitVectorFromTo(dest, src []float64, rnd RandSource) ([]float64, float64) {
	u := diffVec(dest, src)
	m := magnitude(u)
	if m > zeroThreshold {
		return scaleVec(u, 1/m), m
	}

	log.Debugw("coincident coordinates, using random direction", "magnitude", m)
	u = randUnitVector(len(dest), rnd)
	if magnitude(u) > zeroThreshold {
		return u, 0.0
	}

	fallback := make([]float64, len(dest))
	if len(fallback) > 0 {
		fallback[0] = 1
	}
	return fallback, 0.0
}

func randUnitVector(dim int, rnd RandSource) []float64 {
	v := make([]float64, dim)
	for i := range v {
		v[i] = rnd.Float64() - 0.5
	}
	if m := magnitude(v); m > zeroThreshold {
		return scaleVec(v, 1/m)
	}
	return v
}

func magnitude(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func diffVec(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func scaleVec(v []float64, s float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * s
	}
	return out
}
