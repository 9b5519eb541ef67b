package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

func TestVersionCmd(t *testing.T) {
	cmd, buffer := newTestRoot(t)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, buffer.String(), "clonesim version")
	require.Contains(t, buffer.String(), m.Version)
}
