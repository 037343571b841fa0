package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandStripsNonPrintingMarkersKeepingContent(t *testing.T) {
	assert.Equal(t, "hello \x1b[1mworld", Expand("hello %{\x1b[1m%}world"))
}

func TestExpandLeavesPlainStringAlone(t *testing.T) {
	assert.Equal(t, "$ ", Expand("$ "))
}

func TestExpandUnterminatedMarkerLeftVerbatim(t *testing.T) {
	assert.Equal(t, "prefix %{unterminated", Expand("prefix %{unterminated"))
}

func TestPromptPrimaryUsesConfiguredFunction(t *testing.T) {
	p := NewPrompt(func() string { return "$ " })
	assert.Equal(t, "$ ", p.Primary())
}

func TestPromptPrimaryNilFuncReturnsEmpty(t *testing.T) {
	p := NewPrompt(nil)
	assert.Equal(t, "", p.Primary())
}

func TestPromptSecondaryDefaultsWhenUnset(t *testing.T) {
	p := NewPrompt(func() string { return "$ " })
	assert.Equal(t, "> ", p.Secondary())
}

func TestPromptSecondaryUsesConfiguredFunction(t *testing.T) {
	p := NewPrompt(func() string { return "$ " })
	p.SetSecondary(func() string { return "... " })
	assert.Equal(t, "... ", p.Secondary())
}

func TestColorizeWrapsWithReset(t *testing.T) {
	assert.Equal(t, "\x1b[31mhi\x1b[0m", Colorize("\x1b[31m", "hi"))
}
