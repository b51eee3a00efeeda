package vivaldi

import "math"

// The functions in this file build synthetic latency matrices for the
// convergence scenarios exercised by simulation_test.go. They have no
// public counterpart: network simulation is a test concern, not something
// this package exposes.

// linearTopology places n nodes on a line, spacing seconds apart.
func linearTopology(n int, spacing float64) [][]float64 {
	rtt := make([][]float64, n)
	for i := range rtt {
		rtt[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rtt[i][j] = math.Abs(float64(i-j)) * spacing
		}
	}
	return rtt
}

// gridTopology places side*side nodes on a square grid, spacing seconds
// apart along each axis, using Euclidean distance between grid cells.
func gridTopology(side int, spacing float64) [][]float64 {
	n := side * side
	rtt := make([][]float64, n)
	for i := range rtt {
		rtt[i] = make([]float64, n)
	}
	pos := func(i int) (float64, float64) {
		return float64(i % side), float64(i / side)
	}
	for i := 0; i < n; i++ {
		xi, yi := pos(i)
		for j := 0; j < n; j++ {
			xj, yj := pos(j)
			rtt[i][j] = math.Hypot(xi-xj, yi-yj) * spacing
		}
	}
	return rtt
}

// twoClusterTopology splits n nodes into two halves, the second taking the
// extra node when n is odd (adapted
// from a region-partitioning scheme that originally grouped peers by
// geolocation; here the "region" assignment is just the node's half).
// Intra-cluster pairs get intraRTT, inter-cluster pairs get interRTT.
func twoClusterTopology(n int, intraRTT, interRTT float64) [][]float64 {
	half := n / 2
	clusterOf := func(i int) int {
		if i < half {
			return 0
		}
		return 1
	}
	rtt := make([][]float64, n)
	for i := range rtt {
		rtt[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if clusterOf(i) == clusterOf(j) {
				rtt[i][j] = intraRTT
			} else {
				rtt[i][j] = interRTT
			}
		}
	}
	return rtt
}

// circleAndCenterTopology places n-1 nodes evenly around a circle of the
// given radius and one node (index 0) at the center, reached through an
// extra "height" component of radius seconds each way.
func circleAndCenterTopology(n int, radius float64) [][]float64 {
	rtt := make([][]float64, n)
	for i := range rtt {
		rtt[i] = make([]float64, n)
	}
	angle := func(i int) float64 {
		return 2 * math.Pi * float64(i-1) / float64(n-1)
	}
	for i := 1; i < n; i++ {
		// center to rim: radius across the plane plus radius of height.
		rtt[0][i] = 2 * radius
		rtt[i][0] = 2 * radius
	}
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			if i == j {
				continue
			}
			rtt[i][j] = radius * chordLength(angle(i), angle(j))
		}
	}
	return rtt
}

func chordLength(a, b float64) float64 {
	return 2 * math.Abs(math.Sin((a-b)/2))
}

// squareTopology places 4 nodes at the corners of a side-length square.
func squareTopology(side float64) [][]float64 {
	corners := [][2]float64{{0, 0}, {side, 0}, {side, side}, {0, side}}
	rtt := make([][]float64, 4)
	for i := range rtt {
		rtt[i] = make([]float64, 4)
	}
	for i, a := range corners {
		for j, b := range corners {
			rtt[i][j] = math.Hypot(a[0]-b[0], a[1]-b[1])
		}
	}
	return rtt
}
