package blockfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHasSevenTetrominoes(t *testing.T) {
	shapes := Catalog()
	require.Len(t, shapes, 7)

	names := make([]string, 0, len(shapes))
	for _, s := range shapes {
		names = append(names, s.Name())
		filled := 0
		for r := range s.Rows() {
			for c := range s.Cols() {
				if s.Filled(r, c) {
					filled++
				}
			}
		}
		assert.Equal(t, 4, filled, "shape %s", s.Name())
	}
	assert.Equal(t, []string{"I", "O", "T", "L", "J", "Z", "S"}, names)
}

func TestCatalogReturnsCopy(t *testing.T) {
	a := Catalog()
	a[0] = NewShape("X", "#")
	b := Catalog()
	assert.Equal(t, "I", b[0].Name())
}

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"I", "#\n#\n#\n#"},
		{"O", "##\n##"},
		{"T", ".#\n##\n.#"},
		{"L", "##\n.#\n.#"},
		{"Z", ".#\n##\n#."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := ShapeByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, s.Rotate().String())
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, s := range Catalog() {
		r := s.Rotate().Rotate().Rotate().Rotate()
		assert.True(t, s.Equal(r), "shape %s:\n%s\nvs\n%s", s.Name(), s, r)
	}
}

func TestRotateSwapsDimensions(t *testing.T) {
	s, _ := ShapeByName("T")
	r := s.Rotate()
	assert.Equal(t, s.Cols(), r.Rows())
	assert.Equal(t, s.Rows(), r.Cols())
	assert.Equal(t, "T", r.Name())
}

func TestNewShapeRejectsRaggedRows(t *testing.T) {
	assert.Panics(t, func() { NewShape("bad", "##", "#") })
	assert.Panics(t, func() { NewShape("empty") })
}

func TestShapeByNameUnknown(t *testing.T) {
	_, ok := ShapeByName("Q")
	assert.False(t, ok)
}
