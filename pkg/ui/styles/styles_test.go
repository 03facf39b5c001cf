package styles_test

import (
	"bytes"
	"testing"

	"github.com/namjae/rebar3/pkg/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	assert.Equal(t, []string{"Error"}, styles.Names())
}

func TestRender_NonTerminalIsPlain(t *testing.T) {
	var buf bytes.Buffer

	assert.False(t, styles.IsTerminal(&buf))
	assert.Equal(t, "Error: boom", styles.Render(&buf, "Error", "Error: boom"))
	assert.Equal(t, "text", styles.Render(&buf, "NoSuchStyle", "text"))
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, styles.Reset())
	})

	require.NoError(t, styles.LoadStylesFromData([]byte("styles:\n  Custom:\n    italic: true\n")))
	assert.Equal(t, []string{"Custom"}, styles.Names())

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
}

func TestReset(t *testing.T) {
	require.NoError(t, styles.LoadStylesFromData([]byte("styles:\n  Custom: {}\n")))
	require.NoError(t, styles.Reset())
	assert.Equal(t, []string{"Error"}, styles.Names())
}
