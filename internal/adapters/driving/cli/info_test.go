package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoCmd_Executes(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"info", "Axe"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Axe")
	assert.Contains(t, buf.String(), "Strength")
	assert.Contains(t, buf.String(), "Icon: http://cdn/axe.png")
}

func TestInfoCmd_JSONOutput(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"info", "Axe", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		infoJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"key": "npc_dota_hero_axe"`)
	assert.Contains(t, buf.String(), `"bio": "Mogul Khan was a soldier."`)
}
