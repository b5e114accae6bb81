package config

import "github.com/rs/zerolog"

// Overrides carries the optional command-line replacements for profile
// fields plus the command to run. A nil field means "keep the profile's
// value". The command line parser guarantees Command is non-empty.
type Overrides struct {
	Title        *string
	Message      *string
	Timeout      *string
	Urgency      *string
	ShowExitCode *string
	Command      []string
}

// Effective is the fully resolved configuration for one run. It is built
// once and never mutated.
type Effective struct {
	Title        string
	Message      string
	Icon         string
	Timeout      Timeout
	Urgency      Urgency
	ShowExitCode ExitCodeMode
	Command      []string
}

// Resolve merges a profile with command-line overrides. Overrides win
// field by field; the command always comes from the command line, there
// is no profile-level command. Invalid override values degrade to their
// defaults with a warning, so Resolve itself cannot fail.
func Resolve(p Profile, o Overrides, log zerolog.Logger) Effective {
	eff := Effective{
		Title:        p.Title,
		Message:      p.Message,
		Icon:         p.Icon,
		Timeout:      p.Timeout,
		Urgency:      p.Urgency,
		ShowExitCode: p.ShowExitCode,
		Command:      o.Command,
	}
	if o.Title != nil {
		eff.Title = *o.Title
	}
	if o.Message != nil {
		eff.Message = *o.Message
	}
	if o.Timeout != nil {
		eff.Timeout = ParseTimeout(*o.Timeout, log)
	}
	if o.Urgency != nil {
		eff.Urgency = ParseUrgency(*o.Urgency, log)
	}
	if o.ShowExitCode != nil {
		eff.ShowExitCode = ParseExitCodeMode(*o.ShowExitCode, log)
	}
	return eff
}
