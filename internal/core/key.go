package core

// Key is a classified keyboard command, abstracted from raw terminal bytes
// and Bubble Tea key messages alike.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp          // Up arrow - speed up tilt
	KeyDown        // Down arrow - slow down tilt
	KeyLeft        // Left arrow - slow down spin
	KeyRight       // Right arrow - speed up spin
	KeyReset       // r - reset speeds to defaults
	KeyStart       // s - start/resume at default speeds
	KeyPause       // p - zero both speeds
	KeyEscape      // Esc - quit
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyReset:
		return "Reset"
	case KeyStart:
		return "Start"
	case KeyPause:
		return "Pause"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}
