package patterns

import (
	"fmt"
	"io"
)

// Coffee is the component being decorated.
type Coffee interface {
	Description() string
	Cost() float64
}

// SimpleCoffee is the undecorated base.
type SimpleCoffee struct{}

func (SimpleCoffee) Description() string { return "Simple Coffee" }
func (SimpleCoffee) Cost() float64       { return 5.00 }

// Milk adds milk to any coffee.
type Milk struct {
	Coffee
}

func (m Milk) Description() string { return m.Coffee.Description() + ", Milk" }
func (m Milk) Cost() float64       { return m.Coffee.Cost() + 1.50 }

// Sugar adds sugar to any coffee.
type Sugar struct {
	Coffee
}

func (s Sugar) Description() string { return s.Coffee.Description() + ", Sugar" }
func (s Sugar) Cost() float64       { return s.Coffee.Cost() + 0.50 }

// RunDecoratorDemo prices a coffee as milk and then sugar are added.
func RunDecoratorDemo(w io.Writer) error {
	var coffee Coffee = SimpleCoffee{}
	printCoffee(w, coffee)

	coffee = Milk{Coffee: coffee}
	printCoffee(w, coffee)

	coffee = Sugar{Coffee: coffee}
	printCoffee(w, coffee)
	return nil
}

func printCoffee(w io.Writer, c Coffee) {
	fmt.Fprintf(w, "%s Cost: $%s\n", c.Description(), formatAmount(c.Cost()))
}
