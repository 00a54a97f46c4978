package patterns

import (
	"fmt"
	"io"
	"strings"

	"astro-schedule/internal/errors"
)

// Animal is the product created by NewAnimal.
type Animal interface {
	Speak() string
}

type Dog struct{}

func (Dog) Speak() string { return "Dog says: Woof Woof!" }

type Cat struct{}

func (Cat) Speak() string { return "Cat says: Meow!" }

type Duck struct{}

func (Duck) Speak() string { return "Duck says: Quack!" }

// NewAnimal creates an animal by kind, ignoring case.
func NewAnimal(kind string) (Animal, error) {
	switch strings.ToLower(kind) {
	case "dog":
		return Dog{}, nil
	case "cat":
		return Cat{}, nil
	case "duck":
		return Duck{}, nil
	default:
		return nil, errors.NewInvalidInputError("animal", kind, "unknown animal type")
	}
}

// RunFactoryDemo creates and voices one of each animal.
func RunFactoryDemo(w io.Writer) error {
	for _, kind := range []string{"dog", "cat", "duck"} {
		animal, err := NewAnimal(kind)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, animal.Speak())
	}
	return nil
}
