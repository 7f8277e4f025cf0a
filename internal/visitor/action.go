package visitor

import (
	"fmt"
	"strings"
)

// ActionKind is the discriminant of an Action.
type ActionKind int

const (
	KindAccept ActionKind = iota
	KindAcceptWithNote
	KindProbation
	KindRefuse
)

// String returns the display name used in the registry dump.
func (k ActionKind) String() string {
	switch k {
	case KindAccept:
		return "Accept"
	case KindAcceptWithNote:
		return "AcceptWithNote"
	case KindProbation:
		return "Probation"
	case KindRefuse:
		return "Refuse"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// ParseActionKind maps the seed file spelling of an action to its kind.
func ParseActionKind(s string) (ActionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accept":
		return KindAccept, nil
	case "accept_with_note":
		return KindAcceptWithNote, nil
	case "probation":
		return KindProbation, nil
	case "refuse":
		return KindRefuse, nil
	}
	return 0, fmt.Errorf("unknown action %q: must be 'accept', 'accept_with_note', 'probation' or 'refuse'", s)
}

// Action describes what happens when a visitor shows up. Note is only
// meaningful for KindAcceptWithNote.
type Action struct {
	Kind ActionKind
	Note string
}

func Accept() Action { return Action{Kind: KindAccept} }
func AcceptWithNote(note string) Action { return Action{Kind: KindAcceptWithNote, Note: note} }
func Probation() Action { return Action{Kind: KindProbation} }
func Refuse() Action { return Action{Kind: KindRefuse} }
