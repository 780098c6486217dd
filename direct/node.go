// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: the resolution-node vocabulary spec.md §4.6 names. Resolve
// itself tracks resolved values directly rather than materializing a
// Node per anchor; these types describe why a given widget did or did
// not resolve, for callers that want to report it.

package direct

// NodeType classifies how an anchor's value would be computed, were it
// to resolve directly.
type NodeType uint8

const (
	Unconnected NodeType = iota
	DirectConnection
	CenterConnection
	MatchConnection
	ChainConnection
)

// NodeState is whether a node's value has been computed yet.
type NodeState uint8

const (
	Unresolved NodeState = iota
	Resolved
)
