package cli

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/animal-facts/internal/config"
)

func runRoot(t *testing.T, args ...string) (config.Overrides, error) {
	t.Helper()

	var got config.Overrides
	cmd := newRootCmd("test", func(version string, o config.Overrides) error {
		assert.Equal(t, "test", version)
		got = o
		return nil
	})
	if args == nil {
		// cobra falls back to os.Args when args are nil
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return got, err
}

func TestRootCmd_NoFlagsLeavesSettings(t *testing.T) {
	o, err := runRoot(t)
	require.NoError(t, err)

	assert.Nil(t, o.Title)
	assert.Nil(t, o.ShowBackground)
	assert.Nil(t, o.DataPath)
	assert.Nil(t, o.Language)
	assert.Nil(t, o.Debug)
}

func TestRootCmd_Flags(t *testing.T) {
	o, err := runRoot(t,
		"--title", "Ocean Friends",
		"--background=false",
		"--data", "/tmp/animals.yaml",
		"--lang", "pt",
		"--debug",
	)
	require.NoError(t, err)

	require.NotNil(t, o.Title)
	assert.Equal(t, "Ocean Friends", *o.Title)
	require.NotNil(t, o.ShowBackground)
	assert.False(t, *o.ShowBackground)
	require.NotNil(t, o.DataPath)
	assert.Equal(t, "/tmp/animals.yaml", *o.DataPath)
	require.NotNil(t, o.Language)
	assert.Equal(t, "pt", *o.Language)
	require.NotNil(t, o.Debug)
	assert.True(t, *o.Debug)
}

func TestRootCmd_EmptyTitleIsAnOverride(t *testing.T) {
	o, err := runRoot(t, "--title", "")
	require.NoError(t, err)

	require.NotNil(t, o.Title)
	assert.Empty(t, *o.Title)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, err := runRoot(t, "dolphin")
	assert.Error(t, err)
}

func TestRootCmd_LauncherError(t *testing.T) {
	cmd := newRootCmd("test", func(string, config.Overrides) error {
		return errors.New("no display")
	})
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.EqualError(t, cmd.Execute(), "no display")
}

func TestSetupLogging(t *testing.T) {
	defer log.SetFlags(log.Flags())

	setupLogging(true)
	assert.NotZero(t, log.Flags()&log.Lshortfile)

	setupLogging(false)
	assert.Zero(t, log.Flags()&log.Lshortfile)
}
