package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	cases := map[string]int64{
		"100":   100,
		"1KB":   1024,
		"2MB":   2 * 1024 * 1024,
		"1GB":   1024 * 1024 * 1024,
		"10B":   10,
		" 5MB ": 5 * 1024 * 1024,
	}
	for in, want := range cases {
		got, err := parseSize(in)
		assert.NoError(t, err, "parseSize(%q)", in)
		assert.Equal(t, want, got, "parseSize(%q)", in)
	}
}

func TestParseSizeInvalid(t *testing.T) {
	_, err := parseSize("notanumber")
	assert.Error(t, err)
}

func TestManagerPromptDefault(t *testing.T) {
	t.Setenv("WSH_PROMPT", "")
	m := New(nil)
	assert.Equal(t, DefaultPrompt, m.Prompt())
}

func TestManagerPromptFromEnv(t *testing.T) {
	t.Setenv("WSH_PROMPT", "> ")
	m := New(nil)
	assert.Equal(t, "> ", m.Prompt())
}

func TestManagerMaxHistorySizeDefault(t *testing.T) {
	t.Setenv("HISTORY_MAX_SIZE", "")
	m := New(nil)
	assert.Equal(t, int64(DefaultMaxHistorySize), m.MaxHistorySize())
}
