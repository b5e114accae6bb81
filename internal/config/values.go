package config

import (
	"math"
	"strconv"

	"github.com/rs/zerolog"
)

// Timeout controls how long the desktop notification stays visible: the
// server default, never expire, or an explicit duration in milliseconds.
type Timeout struct {
	kind timeoutKind
	ms   uint32
}

type timeoutKind uint8

const (
	timeoutDefault timeoutKind = iota
	timeoutNever
	timeoutMillis
)

var (
	TimeoutDefault = Timeout{kind: timeoutDefault}
	TimeoutNever   = Timeout{kind: timeoutNever}
)

// TimeoutMilliseconds returns an explicit expiry timeout.
func TimeoutMilliseconds(ms uint32) Timeout {
	return Timeout{kind: timeoutMillis, ms: ms}
}

// ExpireMillis converts the timeout to the encoding used by
// org.freedesktop.Notifications: -1 for the server default, 0 for never.
func (t Timeout) ExpireMillis() int32 {
	switch t.kind {
	case timeoutNever:
		return 0
	case timeoutMillis:
		if t.ms > math.MaxInt32 {
			return math.MaxInt32
		}
		return int32(t.ms)
	default:
		return -1
	}
}

func (t Timeout) String() string {
	switch t.kind {
	case timeoutNever:
		return "never"
	case timeoutMillis:
		return strconv.FormatUint(uint64(t.ms), 10) + "ms"
	default:
		return "default"
	}
}

// ParseTimeout interprets the string encoding used by profiles and the
// --timeout flag: "default", "never", or a number of milliseconds.
// Anything else degrades to the default with a warning.
func ParseTimeout(s string, log zerolog.Logger) Timeout {
	switch s {
	case "default":
		return TimeoutDefault
	case "never":
		return TimeoutNever
	}
	ms, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		log.Warn().Str("timeout", s).Msg("invalid timeout value, using default")
		return TimeoutDefault
	}
	return TimeoutMilliseconds(uint32(ms))
}

// TimeoutFromInt interprets the integer encoding used by newer profile
// schemas: -1 means default, 0 means never, positive values are
// milliseconds. Out-of-range values degrade to the default.
func TimeoutFromInt(n int64, log zerolog.Logger) Timeout {
	switch {
	case n == -1:
		return TimeoutDefault
	case n == 0:
		return TimeoutNever
	case n < -1 || n > math.MaxUint32:
		log.Warn().Int64("timeout", n).Msg("timeout out of range, using default")
		return TimeoutDefault
	default:
		return TimeoutMilliseconds(uint32(n))
	}
}

// Urgency is the severity hint passed to the notification server. The
// values match the org.freedesktop.Notifications urgency hint byte.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyCritical:
		return "critical"
	default:
		return "normal"
	}
}

// ParseUrgency maps low/normal/critical; anything else degrades to
// normal with a warning.
func ParseUrgency(s string, log zerolog.Logger) Urgency {
	switch s {
	case "low":
		return UrgencyLow
	case "normal":
		return UrgencyNormal
	case "critical":
		return UrgencyCritical
	default:
		log.Warn().Str("urgency", s).Msg("invalid urgency value, using normal")
		return UrgencyNormal
	}
}

// ExitCodeMode controls whether the child's exit code appears in the
// notification body.
type ExitCodeMode uint8

const (
	ExitCodeOnFailure ExitCodeMode = iota
	ExitCodeAlways
	ExitCodeNever
)

func (m ExitCodeMode) String() string {
	switch m {
	case ExitCodeAlways:
		return "always"
	case ExitCodeNever:
		return "never"
	default:
		return "on-failure"
	}
}

// ParseExitCodeMode maps on-failure/always/never; anything else degrades
// to on-failure with a warning.
func ParseExitCodeMode(s string, log zerolog.Logger) ExitCodeMode {
	switch s {
	case "on-failure":
		return ExitCodeOnFailure
	case "always":
		return ExitCodeAlways
	case "never":
		return ExitCodeNever
	default:
		log.Warn().Str("show_exit_code", s).Msg("invalid show_exit_code value, using on-failure")
		return ExitCodeOnFailure
	}
}
