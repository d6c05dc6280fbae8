package constants

// SessionState represents the current screen of the TUI application
type SessionState int

const (
	AppName           = "habito"
	DefaultConfigDir  = "~/.config/habito"
	LogFileName       = "habito.log"
	EnvPrefix         = "HABITO"
	Version           = "v0.1.0"
	DisplayDateFormat = "02/01/2006"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"
)

// Session States
const (
	StateList SessionState = iota
	StateDetail
	StateCreate
	StateEdit
	StateConfirmDiscard
)
