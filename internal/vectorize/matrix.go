package vectorize

import (
	"encoding/json"
	"fmt"
)

// IntMatrix is a row-major matrix of non-negative counts
type IntMatrix struct {
	Rows int
	Cols int
	Data []int
}

// NewIntMatrix allocates a zeroed rows x cols count matrix
func NewIntMatrix(rows, cols int) *IntMatrix {
	return &IntMatrix{
		Rows: rows,
		Cols: cols,
		Data: make([]int, rows*cols),
	}
}

// At returns the value at row i, column j
func (m *IntMatrix) At(i, j int) int {
	return m.Data[i*m.Cols+j]
}

// Inc adds one to the value at row i, column j
func (m *IntMatrix) Inc(i, j int) {
	m.Data[i*m.Cols+j]++
}

// Row returns a view of row i. The slice aliases the matrix storage.
func (m *IntMatrix) Row(i int) []int {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// RowSum returns the sum of row i
func (m *IntMatrix) RowSum(i int) int {
	sum := 0
	for _, v := range m.Row(i) {
		sum += v
	}
	return sum
}

// ToNested converts the matrix to a slice of rows
func (m *IntMatrix) ToNested() [][]int {
	out := make([][]int, m.Rows)
	for i := range out {
		row := make([]int, m.Cols)
		copy(row, m.Row(i))
		out[i] = row
	}
	return out
}

// MarshalJSON encodes the matrix as nested integer arrays
func (m *IntMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToNested())
}

// UnmarshalJSON decodes nested integer arrays. All rows must have equal length.
func (m *IntMatrix) UnmarshalJSON(data []byte) error {
	var nested [][]int
	if err := json.Unmarshal(data, &nested); err != nil {
		return err
	}
	rows, cols := len(nested), 0
	if rows > 0 {
		cols = len(nested[0])
	}
	out := NewIntMatrix(rows, cols)
	for i, row := range nested {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d columns, expected %d", i, len(row), cols)
		}
		copy(out.Row(i), row)
	}
	*m = *out
	return nil
}

// Matrix is a row-major matrix of float64 values
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// NewMatrix allocates a zeroed rows x cols matrix
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}
}

// At returns the value at row i, column j
func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

// Set stores v at row i, column j
func (m *Matrix) Set(i, j int, v float64) {
	m.Data[i*m.Cols+j] = v
}

// Row returns a view of row i. The slice aliases the matrix storage.
func (m *Matrix) Row(i int) []float64 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// ToNested converts the matrix to a slice of rows
func (m *Matrix) ToNested() [][]float64 {
	out := make([][]float64, m.Rows)
	for i := range out {
		row := make([]float64, m.Cols)
		copy(row, m.Row(i))
		out[i] = row
	}
	return out
}

// MarshalJSON encodes the matrix as nested float arrays
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToNested())
}

// UnmarshalJSON decodes nested float arrays. All rows must have equal length.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var nested [][]float64
	if err := json.Unmarshal(data, &nested); err != nil {
		return err
	}
	rows, cols := len(nested), 0
	if rows > 0 {
		cols = len(nested[0])
	}
	out := NewMatrix(rows, cols)
	for i, row := range nested {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d columns, expected %d", i, len(row), cols)
		}
		copy(out.Row(i), row)
	}
	*m = *out
	return nil
}
