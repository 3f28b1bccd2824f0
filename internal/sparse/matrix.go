/*
Package sparse implements a sparse integer matrix, adapted from the source
corpus's parser-table encoding for use as an automaton's transition table:
rows are state IDs, columns are alphabet-partition indices, and a stored
value is the destination state ID (or NullValue for "no transition").

This implementation uses the COO algorithm (a.k.a. triplet encoding), which
fits an automaton transition table well since most (state, symbol) pairs
have no transition at all.
*/
package sparse

import "fmt"

// IntMatrix is a sparse matrix of int32 values, indexed (row, col). Construct
// with NewIntMatrix, giving dimensions and a null-value standing in for
// entries never Set.
//
//	m := NewIntMatrix(10, 4, DefaultNullValue)
//	m.Set(2, 3, 7)
//	m.Value(2, 3) // 7
//	m.Value(0, 0) // DefaultNullValue
//
// Values cannot be deleted, only overwritten with the null-value; space for
// overwritten entries is not reclaimed.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	value    int32
}

// DefaultNullValue is the default empty-value for matrices (min int32),
// chosen so it can never collide with a real state ID.
const DefaultNullValue = -2147483648

// NewIntMatrix creates a new m x n matrix, with nullValue standing in for
// unset entries.
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// M returns the row count.
func (m *IntMatrix) M() int { return m.rowcnt }

// N returns the column count.
func (m *IntMatrix) N() int { return m.colcnt }

// NullValue returns this matrix's null value.
func (m *IntMatrix) NullValue() int32 { return m.nullval }

// ValueCount returns the number of entries actually stored.
func (m *IntMatrix) ValueCount() int { return len(m.values) }

// Value returns the value stored at (i,j), or NullValue if none was Set.
func (m *IntMatrix) Value(i, j int) int32 {
	for _, t := range m.values {
		if !t.storedLeftOf(i, j) {
			if t.storedAt(i, j) {
				return t.value
			}
			break
		}
	}
	return m.nullval
}

// Set stores value at (i,j), overwriting whatever was there.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	at := 0
	for k, t := range m.values {
		if !t.storedLeftOf(i, j) {
			if t.storedAt(i, j) {
				m.values[k].value = value
				return m
			}
			break
		}
		at++
	}
	tnew := triplet{row: i, col: j, value: value}
	m.values = append(m.values, tnew)
	copy(m.values[at+1:], m.values[at:])
	m.values[at] = tnew
	return m
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}

// Row returns every (col, value) pair actually stored in row i.
func (m *IntMatrix) Row(i int) map[int]int32 {
	r := make(map[int]int32)
	for _, t := range m.values {
		if t.row == i {
			r[t.col] = t.value
		}
	}
	return r
}

func (m *IntMatrix) String() string {
	return fmt.Sprintf("sparse.IntMatrix[%dx%d, %d stored]", m.rowcnt, m.colcnt, len(m.values))
}
