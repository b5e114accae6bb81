// Package output builds the notification payload from the resolved
// configuration and the process result.
package output

import (
	"fmt"
	"strings"
	"time"

	"notify-complete/internal/config"
	"notify-complete/internal/runner"
)

// Payload is the final notification content handed to the transport.
type Payload struct {
	Title   string
	Body    string
	Icon    string
	Timeout config.Timeout
	Urgency config.Urgency
}

// Compose builds the payload for one run. The body starts with the
// configured message, then the exit-code line when the show-exit-code
// mode asks for one, then the elapsed-time line. Title, icon, urgency
// and timeout are copied from the configuration unchanged.
func Compose(cfg config.Effective, res runner.Result) Payload {
	var lines []string
	if cfg.Message != "" {
		lines = append(lines, cfg.Message)
	}
	if line, ok := exitLine(cfg.ShowExitCode, res); ok {
		lines = append(lines, line)
	}
	lines = append(lines, "Completed in "+FormatDuration(res.Elapsed))

	return Payload{
		Title:   cfg.Title,
		Body:    strings.Join(lines, "\n"),
		Icon:    cfg.Icon,
		Timeout: cfg.Timeout,
		Urgency: cfg.Urgency,
	}
}

func exitLine(mode config.ExitCodeMode, res runner.Result) (string, bool) {
	if mode == config.ExitCodeNever {
		return "", false
	}
	code, ok := res.ExitCode()
	if !ok {
		return "Terminated by signal", true
	}
	if mode == config.ExitCodeOnFailure && code == 0 {
		return "", false
	}
	return fmt.Sprintf("Result: %d", code), true
}

// FormatDuration renders a duration in coarse human units, e.g. "2m 5s".
// Sub-second precision has already been discarded by the runner.
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	days := secs / 86400
	hours := (secs % 86400) / 3600
	mins := (secs % 3600) / 60
	rest := secs % 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	if hours > 0 || days > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	if mins > 0 || hours > 0 || days > 0 {
		fmt.Fprintf(&b, "%dm ", mins)
	}
	fmt.Fprintf(&b, "%ds", rest)
	return b.String()
}
