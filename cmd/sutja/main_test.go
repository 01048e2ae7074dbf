package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), &out, args)
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := runCLI(t, "encode", "사랑")
	require.NoError(t, err)
	assert.Contains(t, out, "52")
}

func TestDeriveCommand(t *testing.T) {
	out, err := runCLI(t, "derive", "--length", "4", "사랑")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 4)
	assert.True(t, strings.HasPrefix(out, "52"))
}

func TestComposeCommand(t *testing.T) {
	out, err := runCLI(t, "compose", "--level", "standard", "--service", "google", "--length", "2", "사랑")
	require.NoError(t, err)
	assert.Equal(t, "Google52!", strings.TrimSpace(out))

	_, err = runCLI(t, "compose", "--level", "master", "사랑")
	assert.Error(t, err)
}

func TestChunkCommand(t *testing.T) {
	out, err := runCLI(t, "chunk", "5227")
	require.NoError(t, err)
	assert.Contains(t, out, "사랑")
	assert.Contains(t, out, "(no keyword)")
}

func TestUnknownCommandShowsHelp(t *testing.T) {
	_, err := runCLI(t)
	assert.Error(t, err)
}
