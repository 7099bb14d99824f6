package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 36) // UUID length
	assert.NotEqual(t, id, NewID())
}

func TestRenderTemplate(t *testing.T) {
	out, err := RenderTemplate("Produce {{.num_versions}} variants <in OpenSCAD>.", map[string]any{"num_versions": 3})
	require.NoError(t, err)
	assert.Equal(t, "Produce 3 variants <in OpenSCAD>.", out)
}

func TestRenderTemplate_Passthrough(t *testing.T) {
	out, err := RenderTemplate("module m() { cube(1); }", nil)
	require.NoError(t, err)
	assert.Equal(t, "module m() { cube(1); }", out)
}

func TestRenderTemplate_Funcs(t *testing.T) {
	out, err := RenderTemplate(`{{upper .role}} {{default "n/a" .style}}`, map[string]any{"role": "critic", "style": ""})
	require.NoError(t, err)
	assert.Equal(t, "CRITIC n/a", out)
}

func TestRenderTemplate_Errors(t *testing.T) {
	_, err := RenderTemplate("{{.unclosed", nil)
	assert.Error(t, err)

	_, err = RenderTemplate("{{.missing}}", map[string]any{})
	assert.Error(t, err)
}
