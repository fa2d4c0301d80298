// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates the graph has fewer nodes than the topology needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates dimensions that do not match the node count.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrConstructFailed indicates a nil constructor or a failed edge insertion.
var ErrConstructFailed = errors.New("builder: construction failed")
