package vim

// Operator is a command that acts on a range produced by a motion, a text
// object, a doubled-key line selection, or the visual selection.
type Operator uint8

const (
	// OpNone is the zero value, no pending operator.
	OpNone Operator = iota

	// OpDelete removes the range and stores it in the register.
	OpDelete

	// OpChange removes the range, stores it, and enters insert mode.
	OpChange

	// OpYank copies the range into the register.
	OpYank

	// OpIndent shifts the covered lines right.
	OpIndent

	// OpOutdent shifts the covered lines left.
	OpOutdent
)

// String returns the operator's name.
func (o Operator) String() string {
	switch o {
	case OpDelete:
		return "delete"
	case OpChange:
		return "change"
	case OpYank:
		return "yank"
	case OpIndent:
		return "indent"
	case OpOutdent:
		return "outdent"
	default:
		return "none"
	}
}

// Key returns the key character that triggers the operator.
func (o Operator) Key() rune {
	switch o {
	case OpDelete:
		return 'd'
	case OpChange:
		return 'c'
	case OpYank:
		return 'y'
	case OpIndent:
		return '>'
	case OpOutdent:
		return '<'
	default:
		return 0
	}
}

// EntersInsert returns true if completing the operator switches to insert
// mode.
func (o Operator) EntersInsert() bool {
	return o == OpChange
}

// operatorForKey maps operator keys to operators.
func operatorForKey(r rune) Operator {
	switch r {
	case 'd':
		return OpDelete
	case 'c':
		return OpChange
	case 'y':
		return OpYank
	case '>':
		return OpIndent
	case '<':
		return OpOutdent
	default:
		return OpNone
	}
}
