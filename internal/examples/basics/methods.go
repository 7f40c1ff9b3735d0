package basics

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Circle is used by the method examples.
type Circle struct {
	X, Y   float64
	Radius float64
}

// NewCircle is the conventional constructor form.
func NewCircle(x, y, radius float64) *Circle {
	return &Circle{X: x, Y: y, Radius: radius}
}

// Area uses a value receiver: it only reads the circle.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Scale uses a pointer receiver because it modifies the circle.
func (c *Circle) Scale(f float64) {
	c.Radius *= f
}

// Rectangle is used by the method examples.
type Rectangle struct {
	Width  uint32
	Height uint32
}

// Area returns the rectangle's area.
func (r Rectangle) Area() uint32 {
	return r.Width * r.Height
}

// HasWidth reports whether the width is non-zero. A method cannot share a
// name with a field, so the getter gets a descriptive name.
func (r Rectangle) HasWidth() bool {
	return r.Width > 0
}

// Account shows a constructor that fills in generated fields.
type Account struct {
	ID      uuid.UUID
	Owner   string
	Created time.Time
}

// NewAccount creates an account with a random ID.
func NewAccount(owner string) *Account {
	return &Account{
		ID:      uuid.New(),
		Owner:   owner,
		Created: time.Now(),
	}
}

// Methods shows value and pointer receivers, constructors and method values.
func (d *Demo) Methods() {
	rect1 := Rectangle{Width: 30, Height: 50}
	d.r.Printf("The area of the rectangle is %d square pixels.\n", rect1.Area())
	if rect1.HasWidth() {
		d.r.Printf("The rectangle has a nonzero width; it is %d\n", rect1.Width)
	}

	c := NewCircle(0, 0, 1)
	d.r.Printf("circle area = %.4f\n", c.Area())
	// Value methods work through pointers and pointer methods on addressable values.
	c.Scale(2)
	d.r.Printf("after Scale(2) area = %.4f\n", c.Area())

	// A method value binds the receiver.
	area := rect1.Area
	rect1.Width = 1
	d.r.Printf("method value keeps the old receiver copy: %d\n", area())

	// A method expression takes the receiver as the first argument.
	areaOf := Rectangle.Area
	d.r.Printf("Rectangle.Area(rect1) = %d\n", areaOf(rect1))

	acct := NewAccount("gopher")
	d.r.Printf("account %s owned by %s (version %d UUID)\n", acct.ID, acct.Owner, acct.ID.Version())
}
