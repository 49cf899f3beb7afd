package kernel

import (
	"fmt"
	"math"
)

// Location represents a point on the city plane with integer coordinates.
// Location is an immutable value object; it is created and discarded freely
// and is safe to copy and compare with ==.
//
// The plane is unbounded: any integer pair is a valid location.
//
// Example:
//
//	loc := kernel.NewLocation(3, 4)
//	fmt.Println(loc) // Output: Location(3,4)
type Location struct {
	x int
	y int
}

// NewLocation creates a new Location with the specified coordinates.
func NewLocation(x int, y int) Location {
	return Location{x: x, y: y}
}

// X returns the X coordinate of the location.
func (l Location) X() int {
	return l.x
}

// Y returns the Y coordinate of the location.
func (l Location) Y() int {
	return l.y
}

// String returns a human-readable string representation of the Location.
// The format is "Location(x,y)". This method implements the fmt.Stringer interface.
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// Distance calculates the Euclidean distance between two locations:
// √((x1-x2)² + (y1-y2)²).
//
// Euclidean is the single distance metric of the whole system; every ranking
// and every travel distance shown to a courier is derived from this method.
//
// Example:
//
//	a := kernel.NewLocation(0, 0)
//	b := kernel.NewLocation(3, 4)
//	d := a.Distance(b) // d = 5
func (l Location) Distance(other Location) float64 {
	dx := float64(l.x - other.x)
	dy := float64(l.y - other.y)
	return math.Sqrt(dx*dx + dy*dy)
}
