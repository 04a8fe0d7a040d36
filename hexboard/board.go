package hexboard

import "github.com/pkg/errors"

// Virtual edge node offsets, relative to n*n (see unionFind).
const (
	redTopOffset = iota
	redBottomOffset
	blackLeftOffset
	blackRightOffset
	numVirtualNodes
)

// moveSnapshot is one entry of Board's undo history: enough state to
// precisely reverse one placeStone call.
type moveSnapshot struct {
	idx        int
	prevColor  Color
	ufParent   []int32
	ufRank     []int8
}

// Board is an n x n Hex board: a cell array, a disjoint-set over cells
// plus four virtual edge nodes, and an undo-capable move history.
type Board struct {
	n       int
	cells   []Color
	uf      *unionFind
	history []moveSnapshot
}

// NewBoard constructs an empty n x n board. n must be >= 1.
func NewBoard(n int) (*Board, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "board size must be >= 1, got %d", n)
	}
	b := &Board{
		n:     n,
		cells: make([]Color, n*n),
		uf:    newUnionFind(n*n + numVirtualNodes),
	}
	return b, nil
}

// Size returns the board's n.
func (b *Board) Size() int { return b.n }

func (b *Board) index(r, c int) int { return r*b.n + c }

func (b *Board) redTop() int32    { return int32(b.n*b.n + redTopOffset) }
func (b *Board) redBottom() int32 { return int32(b.n*b.n + redBottomOffset) }
func (b *Board) blackLeft() int32 { return int32(b.n*b.n + blackLeftOffset) }
func (b *Board) blackRight() int32 { return int32(b.n*b.n + blackRightOffset) }

// ValidCell reports whether (r, c) is in bounds.
func (b *Board) ValidCell(r, c int) bool {
	return r >= 0 && r < b.n && c >= 0 && c < b.n
}

// Cell returns the color at (r, c). Out-of-bounds reads return Empty.
func (b *Board) Cell(r, c int) Color {
	if !b.ValidCell(r, c) {
		return Empty
	}
	return b.cells[b.index(r, c)]
}

// IsEmpty reports whether (r, c) is in bounds and unoccupied.
func (b *Board) IsEmpty(r, c int) bool {
	return b.ValidCell(r, c) && b.cells[b.index(r, c)] == Empty
}

// Neighbors returns the in-bounds hex neighbors of (r, c).
func (b *Board) Neighbors(r, c int) []Move {
	return Neighbors(b.n, r, c)
}

// PlaceStone places color at (r, c), updating connectivity. It fails
// with ErrInvalidMove if the cell is out of bounds or already occupied.
func (b *Board) PlaceStone(r, c int, color Color) error {
	if !ValidMove(b, r, c) {
		return errors.Wrapf(ErrInvalidMove, "place (%d,%d)", r, c)
	}

	idx := b.index(r, c)
	parent, rank := b.uf.snapshot()
	b.history = append(b.history, moveSnapshot{
		idx:       idx,
		prevColor: b.cells[idx],
		ufParent:  parent,
		ufRank:    rank,
	})

	b.cells[idx] = color
	cellNode := int32(idx)

	for _, nb := range b.Neighbors(r, c) {
		if b.cells[b.index(nb.Row, nb.Col)] == color {
			b.uf.union(cellNode, int32(b.index(nb.Row, nb.Col)))
		}
	}

	switch color {
	case RedStone:
		if r == 0 {
			b.uf.union(cellNode, b.redTop())
		}
		if r == b.n-1 {
			b.uf.union(cellNode, b.redBottom())
		}
	case BlackStone:
		if c == 0 {
			b.uf.union(cellNode, b.blackLeft())
		}
		if c == b.n-1 {
			b.uf.union(cellNode, b.blackRight())
		}
	}

	return nil
}

// Undo reverses the last PlaceStone call. It fails with ErrNothingToUndo
// if the history is empty.
func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return errors.WithStack(ErrNothingToUndo)
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	b.cells[last.idx] = last.prevColor
	b.uf.restore(last.ufParent, last.ufRank)
	return nil
}

// RedWins reports whether Red's top and bottom virtual edges are connected.
func (b *Board) RedWins() bool {
	return b.uf.connected(b.redTop(), b.redBottom())
}

// BlackWins reports whether Black's left and right virtual edges are connected.
func (b *Board) BlackWins() bool {
	return b.uf.connected(b.blackLeft(), b.blackRight())
}

// LegalMoves returns every empty cell, in row-major order.
func (b *Board) LegalMoves() []Move {
	moves := make([]Move, 0, len(b.cells))
	for idx, color := range b.cells {
		if color == Empty {
			moves = append(moves, Move{Row: idx / b.n, Col: idx % b.n})
		}
	}
	return moves
}

// Reset clears every cell and reinitializes connectivity and history.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	b.uf = newUnionFind(b.n*b.n + numVirtualNodes)
	b.history = nil
}

// Copy returns a deep copy of the board: independent cell array,
// union-find, and history.
func (b *Board) Copy() *Board {
	clone := &Board{
		n:     b.n,
		cells: make([]Color, len(b.cells)),
		uf:    b.uf.clone(),
	}
	copy(clone.cells, b.cells)
	if len(b.history) > 0 {
		clone.history = make([]moveSnapshot, len(b.history))
		for i, h := range b.history {
			parent := make([]int32, len(h.ufParent))
			rank := make([]int8, len(h.ufRank))
			copy(parent, h.ufParent)
			copy(rank, h.ufRank)
			clone.history[i] = moveSnapshot{idx: h.idx, prevColor: h.prevColor, ufParent: parent, ufRank: rank}
		}
	}
	return clone
}
