package core

// Command is a semantic game command, abstracted from the keys that produce it.
// The input actor and the gravity ticker both speak in commands.
type Command int

const (
	CommandNone        Command = iota
	CommandQuit                // Ctrl+C, q
	CommandLeft                // a, left arrow
	CommandRight               // d, right arrow
	CommandRotate              // s, up arrow
	CommandDrop                // space - hard drop
	CommandFall                // issued by the ticker - soft drop
	CommandToggleHelp          // h
	CommandToggleNext          // n
	CommandToggleColor         // c
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandQuit:
		return "Quit"
	case CommandLeft:
		return "Left"
	case CommandRight:
		return "Right"
	case CommandRotate:
		return "Rotate"
	case CommandDrop:
		return "Drop"
	case CommandFall:
		return "Fall"
	case CommandToggleHelp:
		return "ToggleHelp"
	case CommandToggleNext:
		return "ToggleNext"
	case CommandToggleColor:
		return "ToggleColor"
	default:
		return "Unknown"
	}
}

// IsToggle reports whether the command only changes what is displayed.
func (c Command) IsToggle() bool {
	return c == CommandToggleHelp || c == CommandToggleNext || c == CommandToggleColor
}
