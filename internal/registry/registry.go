package registry

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/treehouse/internal/visitor"
)

// Registry is the ordered list of known visitors.
type Registry struct {
	visitors []visitor.Visitor
}

// New creates a Registry pre-populated with the given visitors, in order.
func New(seed ...visitor.Visitor) *Registry {
	r := &Registry{visitors: make([]visitor.Visitor, 0, len(seed))}
	r.visitors = append(r.visitors, seed...)
	return r
}

// Append adds a visitor to the end of the list.
func (r *Registry) Append(v visitor.Visitor) {
	r.visitors = append(r.visitors, v)
}

// Lookup scans the list in insertion order and returns the first visitor
// whose name equals key. The key is expected to be normalized already.
func (r *Registry) Lookup(key string) (visitor.Visitor, bool) {
	for _, v := range r.visitors {
		if v.Name == key {
			return v, true
		}
	}
	return visitor.Visitor{}, false
}

// Len returns the number of visitors.
func (r *Registry) Len() int {
	return len(r.visitors)
}

// All returns a copy of the visitors in insertion order.
func (r *Registry) All() []visitor.Visitor {
	out := make([]visitor.Visitor, len(r.visitors))
	copy(out, r.visitors)
	return out
}

// Dump writes every visitor with all of its fields, one block per visitor.
func (r *Registry) Dump(w io.Writer) error {
	var b strings.Builder
	if len(r.visitors) == 0 {
		b.WriteString("[]\n")
	} else {
		b.WriteString("[\n")
		for _, v := range r.visitors {
			writeVisitor(&b, v)
		}
		b.WriteString("]\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

const indent = "    "

func writeVisitor(b *strings.Builder, v visitor.Visitor) {
	fmt.Fprintf(b, "%sVisitor {\n", indent)
	fmt.Fprintf(b, "%sname: %q,\n", indent+indent, v.Name)
	if v.Action.Kind == visitor.KindAcceptWithNote {
		fmt.Fprintf(b, "%saction: %s {\n", indent+indent, v.Action.Kind)
		fmt.Fprintf(b, "%snote: %q,\n", indent+indent+indent, v.Action.Note)
		fmt.Fprintf(b, "%s},\n", indent+indent)
	} else {
		fmt.Fprintf(b, "%saction: %s,\n", indent+indent, v.Action.Kind)
	}
	fmt.Fprintf(b, "%sage: %d,\n", indent+indent, v.Age)
	fmt.Fprintf(b, "%sgreeting: %q,\n", indent+indent, v.Greeting)
	fmt.Fprintf(b, "%s},\n", indent)
}
