package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconCmd_DefaultsToKeyFilename(t *testing.T) {
	stub, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"icon", "Axe"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.Len(t, stub.savedIcons, 1)
	assert.Equal(t, "", stub.savedIcons[0])
	assert.Contains(t, buf.String(), "Saved Axe icon to npc_dota_hero_axe.png")
}

func TestIconCmd_OutputFlag(t *testing.T) {
	stub, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"icon", "Axe", "-o", "axe.png"})
	defer func() {
		rootCmd.SetArgs(nil)
		iconOutput = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.Len(t, stub.savedIcons, 1)
	assert.Equal(t, "axe.png", stub.savedIcons[0])
	assert.Contains(t, buf.String(), "Saved Axe icon to axe.png")
}
