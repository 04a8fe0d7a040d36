// Package encoding converts a hexboard.GameState into the fixed-shape
// numeric tensor a neural predictor consumes.
package encoding

import (
	"github.com/alphabeth/hex/hexboard"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Planes is the number of feature planes per encoded board: the
// mover's stones, the opponent's stones, and a uniform side-to-move
// broadcast plane.
const Planes = 3

// ErrEmptyBatch is returned by Batch when given no states to encode.
var ErrEmptyBatch = errors.New("encoding: empty batch")

// Encode returns a [Planes, n, n] tensor for state, always from the
// perspective of the player to move: plane 0 holds the mover's
// stones, plane 1 the opponent's, plane 2 is filled with 1 if Red is
// to move and 0 if Black. Black's coordinates are reflected
// (row, col) -> (col, row) so that the network only ever has to learn
// one orientation: "play toward the top/bottom edge as Red".
func Encode(state hexboard.GameState) *tensor.Dense {
	n := state.Board.Size()
	backing := make([]float32, Planes*n*n)
	mine := state.ToMove.Stone()
	theirs := state.ToMove.Other().Stone()

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := state.Board.Cell(r, c)
			pr, pc := canonicalIndex(state.ToMove, n, r, c)
			idx := pr*n + pc
			switch cell {
			case mine:
				backing[idx] = 1
			case theirs:
				backing[n*n+idx] = 1
			}
		}
	}

	if state.ToMove == hexboard.Red {
		for i := 0; i < n*n; i++ {
			backing[2*n*n+i] = 1
		}
	}

	return tensor.New(tensor.WithBacking(backing), tensor.WithShape(Planes, n, n))
}

// canonicalIndex maps a board coordinate into the canonical
// orientation for mover. Red plays top-to-bottom natively; Black's
// board is transposed so Black also "plays top-to-bottom" in the
// encoded tensor.
func canonicalIndex(mover hexboard.Player, n, row, col int) (int, int) {
	if mover == hexboard.Black {
		return col, row
	}
	return row, col
}

// CanonicalIndex returns the flat row-major index into a [n²] policy
// vector for move, under the same row/column reflection Encode uses
// for mover. It is the inverse companion to the per-cell reflection
// performed inside Encode, used to read a predictor's policy output
// back into move space.
func CanonicalIndex(move hexboard.Move, n int, mover hexboard.Player) int {
	r, c := canonicalIndex(mover, n, move.Row, move.Col)
	return r*n + c
}

// Batch stacks the encodings of states into a single [len(states),
// Planes, n, n] tensor, for submission to a batched predictor.
func Batch(states []hexboard.GameState) (*tensor.Dense, error) {
	if len(states) == 0 {
		return nil, ErrEmptyBatch
	}
	n := states[0].Board.Size()
	backing := make([]float32, 0, len(states)*Planes*n*n)
	for _, s := range states {
		enc := Encode(s)
		data, ok := enc.Data().([]float32)
		if !ok {
			return nil, errors.New("encoding: unexpected tensor backing type")
		}
		backing = append(backing, data...)
	}
	return tensor.New(tensor.WithBacking(backing), tensor.WithShape(len(states), Planes, n, n)), nil
}
