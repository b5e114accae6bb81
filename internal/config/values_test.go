package config

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		in   string
		want Timeout
	}{
		{"default", TimeoutDefault},
		{"never", TimeoutNever},
		{"0", TimeoutMilliseconds(0)},
		{"3000", TimeoutMilliseconds(3000)},
		{"-1", TimeoutDefault},
		{"abc", TimeoutDefault},
		{"", TimeoutDefault},
		{"12.5", TimeoutDefault},
		{"99999999999", TimeoutDefault},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTimeout(tt.in, zerolog.Nop()))
		})
	}
}

func TestTimeoutFromInt(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want Timeout
	}{
		{"default", -1, TimeoutDefault},
		{"never", 0, TimeoutNever},
		{"millis", 5000, TimeoutMilliseconds(5000)},
		{"below minus one", -2, TimeoutDefault},
		{"very negative", -50000, TimeoutDefault},
		{"above uint32", math.MaxUint32 + 1, TimeoutDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeoutFromInt(tt.in, zerolog.Nop()))
		})
	}
}

func TestTimeoutExpireMillis(t *testing.T) {
	assert.Equal(t, int32(-1), TimeoutDefault.ExpireMillis())
	assert.Equal(t, int32(0), TimeoutNever.ExpireMillis())
	assert.Equal(t, int32(5000), TimeoutMilliseconds(5000).ExpireMillis())
	// Values beyond int32 are clamped for the wire encoding.
	assert.Equal(t, int32(math.MaxInt32), TimeoutMilliseconds(math.MaxUint32).ExpireMillis())
}

func TestParseUrgency(t *testing.T) {
	assert.Equal(t, UrgencyLow, ParseUrgency("low", zerolog.Nop()))
	assert.Equal(t, UrgencyNormal, ParseUrgency("normal", zerolog.Nop()))
	assert.Equal(t, UrgencyCritical, ParseUrgency("critical", zerolog.Nop()))

	// Matching is case-sensitive; anything unknown degrades to normal.
	assert.Equal(t, UrgencyNormal, ParseUrgency("Critical", zerolog.Nop()))
	assert.Equal(t, UrgencyNormal, ParseUrgency("urgent", zerolog.Nop()))
	assert.Equal(t, UrgencyNormal, ParseUrgency("", zerolog.Nop()))
}

func TestParseUrgencyWarns(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	ParseUrgency("invalid", log)
	assert.Contains(t, buf.String(), "invalid urgency value")
}

func TestParseTimeoutWarns(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	ParseTimeout("soon", log)
	assert.Contains(t, buf.String(), "invalid timeout value")

	buf.Reset()
	TimeoutFromInt(-7, log)
	assert.Contains(t, buf.String(), "timeout out of range")
}

func TestParseExitCodeMode(t *testing.T) {
	assert.Equal(t, ExitCodeOnFailure, ParseExitCodeMode("on-failure", zerolog.Nop()))
	assert.Equal(t, ExitCodeAlways, ParseExitCodeMode("always", zerolog.Nop()))
	assert.Equal(t, ExitCodeNever, ParseExitCodeMode("never", zerolog.Nop()))
	assert.Equal(t, ExitCodeOnFailure, ParseExitCodeMode("sometimes", zerolog.Nop()))
}

func TestValueStrings(t *testing.T) {
	assert.Equal(t, "default", TimeoutDefault.String())
	assert.Equal(t, "never", TimeoutNever.String())
	assert.Equal(t, "250ms", TimeoutMilliseconds(250).String())
	assert.Equal(t, "critical", UrgencyCritical.String())
	assert.Equal(t, "on-failure", ExitCodeOnFailure.String())
}
