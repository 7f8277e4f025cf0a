package visitor

import (
	"fmt"
	"io"
	"strings"
)

// drinkingAge is the age below which AcceptWithNote visitors get a warning.
const drinkingAge = 21

// Visitor is a single entry in the visitor list.
type Visitor struct {
	Name     string
	Greeting string
	Action   Action
	Age      int8
}

// Normalize turns raw input into a lookup key. An empty result means the
// user entered nothing.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// New creates a Visitor with a normalized name.
func New(name, greeting string, action Action, age int8) Visitor {
	return Visitor{
		Name:     Normalize(name),
		Greeting: greeting,
		Action:   action,
		Age:      age,
	}
}

// Greet writes the greeting followed by the lines for the visitor's action.
func (v Visitor) Greet(w io.Writer) error {
	lines := []string{v.Greeting}

	switch v.Action.Kind {
	case KindAccept:
		lines = append(lines, welcome(v.Name))
	case KindAcceptWithNote:
		lines = append(lines, welcome(v.Name), v.Action.Note)
		if v.Age < drinkingAge {
			lines = append(lines, fmt.Sprintf("Do not serve alcohol to %s", v.Name))
		}
	case KindProbation:
		lines = append(lines, fmt.Sprintf("%s is now a probationary member", v.Name))
	case KindRefuse:
		lines = append(lines, fmt.Sprintf("Do not allow %s in!", v.Name))
	default:
		return fmt.Errorf("visitor %q has unsupported action %s", v.Name, v.Action.Kind)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func welcome(name string) string {
	return fmt.Sprintf("Welcome to the tree house, %s", name)
}

// Seed returns the visitor list the program starts with when no seed file
// is configured.
func Seed() []Visitor {
	return []Visitor{
		New("Bert", "Hello Bert, enjoy your treehouse.", Accept(), 45),
		New("steve", "Hi Steve. Your milk is in the fridge.", AcceptWithNote("Lactose-free milk is in the fridge"), 15),
		New("fred", "Wow, who invited Fred?", Refuse(), 30),
	}
}
