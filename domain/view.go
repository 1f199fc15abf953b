package domain

// View is the screen selected by the session state.
type View int

const (
	ViewLogin View = iota
	ViewIntake
	ViewAdvisory
)

func (v View) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewIntake:
		return "intake"
	case ViewAdvisory:
		return "advisory"
	default:
		return "unknown"
	}
}

// SelectView maps the two session flags to exactly one view.
func SelectView(authenticated, hasProfile bool) View {
	switch {
	case !authenticated:
		return ViewLogin
	case !hasProfile:
		return ViewIntake
	default:
		return ViewAdvisory
	}
}

// Generation identifies one login-to-logout session. It only grows.
type Generation uint64
