// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
// The Branch-and-Bound engine clones one Dense per search node, so Clone and
// the fill helpers below sit on the solver's hot path.

package matrix

import "fmt"

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// compile-time interface check.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return the new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n Dense matrix initialized to zeros.
// Thin alias of NewDense with an intention-revealing name: cost matrices in
// the TSP engine are always square.
// Complexity: O(n²).
func NewSquare(n int) (*Dense, error) {
	return NewDense(n, n)
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// FillRow assigns v to every element of the given row.
// The solver uses this to invalidate a committed source city (+Inf row).
// Complexity: O(c).
func (m *Dense) FillRow(row int, v float64) error {
	if row < 0 || row >= m.r {
		return fmt.Errorf("Dense.FillRow(%d): %w", row, ErrOutOfRange)
	}
	var (
		base = row * m.c
		j    int
	)
	for j = 0; j < m.c; j++ {
		m.data[base+j] = v
	}

	return nil
}

// FillCol assigns v to every element of the given column.
// The solver uses this to invalidate a committed destination city (+Inf col).
// Complexity: O(r).
func (m *Dense) FillCol(col int, v float64) error {
	if col < 0 || col >= m.c {
		return fmt.Errorf("Dense.FillCol(%d): %w", col, ErrOutOfRange)
	}
	var i int
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+col] = v
	}

	return nil
}

// Clone returns a deep copy of the Dense matrix as a Matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense returns a deep copy with the concrete type preserved.
// The solver calls this once per candidate edge; keeping the concrete return
// type avoids a type assertion on every node expansion.
// Complexity: O(r*c) time and memory.
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var (
		s    string
		i, j int
	)
	for i = 0; i < m.r; i++ {
		s += "["
		for j = 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
