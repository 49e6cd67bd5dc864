package matrix

// Matrix is the minimal read/write contract shared by matrix consumers.
// Dense is the canonical implementation; tests may provide their own.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (row, col); ErrOutOfRange on bad indices.
	At(row, col int) (float64, error)

	// Set assigns v at (row, col); ErrOutOfRange on bad indices.
	Set(row, col int, v float64) error

	// Clone returns a deep, independent copy.
	Clone() Matrix
}
