package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateIDRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  RoomID
	}{
		{name: "origin", coord: Coordinate{0, 0, 0}, want: "0,0,0"},
		{name: "positive", coord: Coordinate{3, 7, 1}, want: "3,7,1"},
		{name: "negative", coord: Coordinate{-12, -4, -2}, want: "-12,-4,-2"},
		{name: "mixed", coord: Coordinate{-1, 0, 5}, want: "-1,0,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.coord.ID()
			assert.Equal(t, tt.want, id)

			parsed, err := ParseID(id)
			require.NoError(t, err)
			assert.Equal(t, tt.coord, parsed)
		})
	}
}

func TestParseIDInvalid(t *testing.T) {
	tests := []struct {
		name string
		id   RoomID
	}{
		{name: "empty", id: ""},
		{name: "too few components", id: "1,2"},
		{name: "too many components", id: "1,2,3,4"},
		{name: "non-numeric", id: "a,b,c"},
		{name: "trailing comma", id: "1,2,"},
		{name: "float", id: "1.5,2,3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseID(tt.id)
			assert.Error(t, err)
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite(), "opposite should be an involution for %s", d)
		assert.NotEqual(t, d, d.Opposite())
	}

	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, Down, Up.Opposite())
}

func TestDirectionVertical(t *testing.T) {
	assert.True(t, Up.Vertical())
	assert.True(t, Down.Vertical())
	for _, d := range CardinalDirections {
		assert.False(t, d.Vertical())
	}
}

func TestNeighbor(t *testing.T) {
	origin := Coordinate{}

	assert.Equal(t, Coordinate{Y: 1}, origin.Neighbor(North))
	assert.Equal(t, Coordinate{Y: -1}, origin.Neighbor(South))
	assert.Equal(t, Coordinate{X: 1}, origin.Neighbor(East))
	assert.Equal(t, Coordinate{X: -1}, origin.Neighbor(West))
	assert.Equal(t, Coordinate{Z: 1}, origin.Neighbor(Up))
	assert.Equal(t, Coordinate{Z: -1}, origin.Neighbor(Down))

	// Stepping out and back returns to the start.
	c := Coordinate{X: 4, Y: -2, Z: 1}
	for _, d := range Directions {
		assert.Equal(t, c, c.Neighbor(d).Neighbor(d.Opposite()))
	}
}

func TestDirectionTo(t *testing.T) {
	c := Coordinate{X: 2, Y: 2, Z: 0}

	for _, d := range Directions {
		got, ok := c.DirectionTo(c.Neighbor(d))
		require.True(t, ok)
		assert.Equal(t, d, got)
	}

	// Non-adjacent coordinates have no direction.
	_, ok := c.DirectionTo(Coordinate{X: 5, Y: 5, Z: 5})
	assert.False(t, ok)
	_, ok = c.DirectionTo(c)
	assert.False(t, ok)

	// Diagonal neighbors are not grid-adjacent.
	_, ok = c.DirectionTo(Coordinate{X: 3, Y: 3, Z: 0})
	assert.False(t, ok)
}

func TestChebyshevDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinate
		want int
	}{
		{name: "same point", a: Coordinate{1, 1, 1}, b: Coordinate{1, 1, 1}, want: 0},
		{name: "axis step", a: Coordinate{}, b: Coordinate{X: 1}, want: 1},
		{name: "diagonal", a: Coordinate{}, b: Coordinate{X: 3, Y: 3, Z: 3}, want: 3},
		{name: "dominant axis", a: Coordinate{}, b: Coordinate{X: 2, Y: 7, Z: 1}, want: 7},
		{name: "negative coords", a: Coordinate{X: -5}, b: Coordinate{X: 5}, want: 10},
		{name: "symmetric", a: Coordinate{X: 4, Y: -2}, b: Coordinate{X: -1, Y: 3}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChebyshevDistance(tt.a, tt.b))
			assert.Equal(t, tt.want, ChebyshevDistance(tt.b, tt.a))
		})
	}
}
