// Package vivaldi maintains decentralized network coordinates in the style
// of Dabek et al.'s Vivaldi algorithm, augmented with the height term from
// the same paper and the sliding-window adjustment of Ledlie et al.
//
// The package has no notion of transport, peer discovery, or persistence.
// Callers observe round-trip times by whatever means they choose, optionally
// smooth them through a LatencyFilter, and feed them to a Node or Coordinate
// to update its position. Reading Distance against another position then
// yields a latency estimate without further communication.
package vivaldi
