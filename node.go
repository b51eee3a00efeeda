package vivaldi

// Node wraps a Coordinate with the sliding-window adjustment term of Ledlie
// et al., a compact per-peer correction for latency that a purely Euclidean
// (plus height) embedding cannot express. window == 0 disables the
// adjustment entirely, leaving Node equivalent to its embedded Coordinate.
type Node struct {
	coordinate *Coordinate
	window     int
	samples    []float64
	index      int
	adjustment float64
}

// NewNode returns a Node at the origin under cfg. window must be
// non-negative; zero disables the hybrid adjustment.
func NewNode(cfg Config, window int) *Node {
	assert(window >= 0, ErrInvalidWindow)
	n := &Node{
		coordinate: NewCoordinate(cfg),
		window:     window,
	}
	if window > 0 {
		n.samples = make([]float64, window)
	}
	return n
}

// Coordinate exposes the wrapped Coordinate for read access.
func (n *Node) Coordinate() *Coordinate { return n.coordinate }

// Adjustment returns the node's current non-Euclidean offset, always zero
// when the hybrid adjustment is disabled.
func (n *Node) Adjustment() float64 { return n.adjustment }

// Distance returns the predicted round-trip time to other, folding in both
// nodes' adjustment offsets when hybrid adjustment is enabled.
func (n *Node) Distance(other *Node) float64 {
	d := n.coordinate.Distance(other.coordinate)
	if n.window == 0 {
		return d
	}
	return maxFloat(d, d+n.adjustment+other.adjustment)
}

// Update records an observed rtt (seconds) to other, updating the embedded
// coordinate and, if enabled, the adjustment offset fed into future
// updates.
func (n *Node) Update(other *Node, rtt float64) {
	if n.window == 0 {
		n.coordinate.Update(other.coordinate, rtt, 0, 0)
		return
	}

	n.coordinate.Update(other.coordinate, rtt, n.adjustment, other.adjustment)

	d := n.coordinate.Distance(other.coordinate)
	n.samples[n.index] = rtt - d
	n.index = (n.index + 1) % n.window

	var sum float64
	for _, s := range n.samples {
		sum += s
	}
	n.adjustment = sum / float64(2*n.window)
	n.coordinate.cfg.recorder().ObserveAdjustment(n.adjustment)
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
