package domain

import "errors"

var (
	// ErrInvalidFormat indicates an upload payload that cannot be normalized
	// into a graph, or one that yields zero nodes.
	ErrInvalidFormat = errors.New("invalid graph format")

	// ErrNoActiveGraph indicates a query issued before any successful upload.
	ErrNoActiveGraph = errors.New("no active graph")

	// ErrUnknownNode indicates a start or end node ID absent from the active
	// graph's node set.
	ErrUnknownNode = errors.New("invalid start or end node id")
)
