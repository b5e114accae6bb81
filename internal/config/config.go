// Package config loads notification profiles and resolves the effective
// configuration for a run from a profile plus command-line overrides.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// DefaultProfileName is the profile used when none is selected and the
// fallback for unknown profile names.
const DefaultProfileName = "default"

// Profile is a named bundle of notification defaults. Profiles are
// immutable once loaded.
type Profile struct {
	Name         string
	Title        string
	Message      string
	Icon         string
	Timeout      Timeout
	Urgency      Urgency
	ShowExitCode ExitCodeMode
}

// DefaultProfile returns the built-in defaults.
func DefaultProfile() Profile {
	return Profile{
		Name:         DefaultProfileName,
		Title:        "Command completed",
		Timeout:      TimeoutDefault,
		Urgency:      UrgencyNormal,
		ShowExitCode: ExitCodeOnFailure,
	}
}

type tomlProfile struct {
	Name         string  `toml:"name"`
	Title        *string `toml:"title"`
	Summary      *string `toml:"summary"`
	Message      *string `toml:"message"`
	Body         *string `toml:"body"`
	Icon         *string `toml:"icon"`
	Timeout      any     `toml:"timeout"`
	Urgency      *string `toml:"urgency"`
	ShowExitCode *string `toml:"show_exit_code"`
}

type tomlConfig struct {
	Profiles []tomlProfile `toml:"profile"`
}

// Store maps profile names to profiles. It always contains the
// "default" entry and is read-only after Load.
type Store struct {
	profiles map[string]Profile
	log      zerolog.Logger
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "notify-complete", "config.toml"), nil
}

// Load builds a Store from the TOML file at path. A missing or broken
// config file is not fatal: the store degrades to the built-in default
// profile and the problem is logged.
func Load(path string, log zerolog.Logger) *Store {
	s := &Store{
		profiles: map[string]Profile{DefaultProfileName: DefaultProfile()},
		log:      log,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("no config file, using built-in defaults")
		} else {
			log.Warn().Err(err).Str("path", path).Msg("cannot read config file, using built-in defaults")
		}
		return s
	}

	var cfg tomlConfig
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("cannot parse config file, using built-in defaults")
		return s
	}

	for _, tp := range cfg.Profiles {
		if tp.Name == "" {
			log.Warn().Msg("skipping profile without a name")
			continue
		}
		// Last declaration wins on duplicate names.
		s.profiles[tp.Name] = s.fromTOML(tp)
	}
	return s
}

// fromTOML fills omitted fields from the built-in defaults. Fields never
// inherit from other profiles.
func (s *Store) fromTOML(tp tomlProfile) Profile {
	p := DefaultProfile()
	p.Name = tp.Name
	if v := firstSet(tp.Title, tp.Summary); v != nil {
		p.Title = *v
	}
	if v := firstSet(tp.Message, tp.Body); v != nil {
		p.Message = *v
	}
	if tp.Icon != nil {
		p.Icon = *tp.Icon
	}
	if tp.Timeout != nil {
		p.Timeout = s.timeoutValue(tp.Name, tp.Timeout)
	}
	if tp.Urgency != nil {
		p.Urgency = ParseUrgency(*tp.Urgency, s.log)
	}
	if tp.ShowExitCode != nil {
		p.ShowExitCode = ParseExitCodeMode(*tp.ShowExitCode, s.log)
	}
	return p
}

// timeoutValue accepts both schema encodings: the historical string form
// ("never", "5000") and the integer form (-1, 0, milliseconds).
func (s *Store) timeoutValue(name string, v any) Timeout {
	switch t := v.(type) {
	case string:
		return ParseTimeout(t, s.log)
	case int64:
		return TimeoutFromInt(t, s.log)
	default:
		s.log.Warn().Str("profile", name).Msgf("timeout must be a string or an integer, got %T", v)
		return TimeoutDefault
	}
}

// Lookup returns the named profile, falling back to "default" with a
// warning when the name is unknown. It never fails.
func (s *Store) Lookup(name string) Profile {
	if p, ok := s.profiles[name]; ok {
		return p
	}
	s.log.Warn().Str("profile", name).Msg("unknown profile, using default")
	return s.profiles[DefaultProfileName]
}

func firstSet(ptrs ...*string) *string {
	for _, p := range ptrs {
		if p != nil {
			return p
		}
	}
	return nil
}
