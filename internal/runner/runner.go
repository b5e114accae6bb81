// Package runner executes the target command and normalizes its outcome.
package runner

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
)

// Result is the outcome of one command run. Code is only meaningful when
// Signaled is false; a child killed by a signal has no exit code.
type Result struct {
	Elapsed  time.Duration
	Code     int
	Signaled bool
}

// ExitCode returns the child's exit code and whether one exists.
func (r Result) ExitCode() (int, bool) {
	if r.Signaled {
		return 0, false
	}
	return r.Code, true
}

// StatusCode is the exit status the run itself should report: the
// child's code when available, 1 when the child was killed by a signal.
func (r Result) StatusCode() int {
	if r.Signaled {
		return 1
	}
	return r.Code
}

// Run spawns command[0] with the remaining elements as arguments,
// inheriting the parent's standard streams, and blocks until the child
// terminates. Elapsed wall-clock time is truncated to whole seconds so
// the formatted duration stays quiet. A start failure is returned as an
// error; a non-zero exit or signal termination is a normal Result.
func Run(command []string, log zerolog.Logger) (Result, error) {
	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("starting %s: %w", command[0], err)
	}
	err := cmd.Wait()
	elapsed := time.Since(start).Truncate(time.Second)

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, fmt.Errorf("waiting for %s: %w", command[0], err)
		}
	}

	res := Result{Elapsed: elapsed}
	// ExitCode reports -1 when the child was terminated by a signal.
	if code := cmd.ProcessState.ExitCode(); code == -1 {
		res.Signaled = true
		log.Warn().Str("command", command[0]).Msg("command terminated by signal")
	} else {
		res.Code = code
	}
	return res, nil
}
