package config

import (
	"fmt"

	"github.com/specialistvlad/treehouse/internal/visitor"
)

// Model is the unified representation of a seed visitor list.
type Model struct {
	Visitors []*VisitorDefinition
}

// VisitorDefinition is the format-agnostic form of a declared visitor.
type VisitorDefinition struct {
	Name     string
	Greeting string
	Action   string
	Note     *string
	Age      int8

	// Source points at the declaration, e.g. "visitors.hcl:3,1-16".
	Source string
}

// ToVisitor validates the definition and builds the runtime Visitor.
func (d *VisitorDefinition) ToVisitor() (visitor.Visitor, error) {
	if visitor.Normalize(d.Name) == "" {
		return visitor.Visitor{}, fmt.Errorf("%s: visitor name must not be empty", d.Source)
	}

	kind, err := visitor.ParseActionKind(d.Action)
	if err != nil {
		return visitor.Visitor{}, fmt.Errorf("%s: visitor %q: %w", d.Source, d.Name, err)
	}

	var action visitor.Action
	switch kind {
	case visitor.KindAcceptWithNote:
		note := ""
		if d.Note != nil {
			note = *d.Note
		}
		action = visitor.AcceptWithNote(note)
	default:
		if d.Note != nil {
			return visitor.Visitor{}, fmt.Errorf("%s: visitor %q: note is only allowed with action 'accept_with_note'", d.Source, d.Name)
		}
		action = visitor.Action{Kind: kind}
	}

	return visitor.New(d.Name, d.Greeting, action, d.Age), nil
}

// BuildVisitors converts every definition, stopping at the first invalid one.
func (m *Model) BuildVisitors() ([]visitor.Visitor, error) {
	out := make([]visitor.Visitor, 0, len(m.Visitors))
	for _, def := range m.Visitors {
		v, err := def.ToVisitor()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
