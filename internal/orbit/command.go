package orbit

import "fmt"

// Command is a discrete orbit control event produced by input handling.
type Command int

const (
	CommandNone Command = iota
	CommandPause
	CommandResume
	CommandSpeedUp
	CommandSlowDown
	CommandRadiusUp
	CommandRadiusDown
)

// String returns a readable command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandPause:
		return "pause"
	case CommandResume:
		return "resume"
	case CommandSpeedUp:
		return "speed-up"
	case CommandSlowDown:
		return "slow-down"
	case CommandRadiusUp:
		return "radius-up"
	case CommandRadiusDown:
		return "radius-down"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Apply executes a command using the configured step sizes.
func (o *Orbit) Apply(cmd Command) {
	switch cmd {
	case CommandPause:
		o.Pause()
	case CommandResume:
		o.Resume()
	case CommandSpeedUp:
		o.IncreaseSpeed(o.cfg.SpeedStep)
	case CommandSlowDown:
		o.DecreaseSpeed(o.cfg.SpeedStep)
	case CommandRadiusUp:
		o.IncreaseRadius(o.cfg.RadiusStep)
	case CommandRadiusDown:
		o.DecreaseRadius(o.cfg.RadiusStep)
	}
}
