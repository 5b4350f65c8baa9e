package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeAppSkipsVersionCommand(t *testing.T) {
	// No config file and no Radarr credentials are present here, so
	// anything beyond the early return would fail validation.
	require.NoError(t, initializeApp(versionCmd, nil))
	assert.Nil(t, radarrClient)
}
