package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Continue(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\nnext\n  X  \n"), &out)

	for _, expected := range []bool{true, true, false} {
		more, err := p.Continue()
		require.NoError(t, err)
		assert.Equal(t, expected, more)
	}
	assert.Equal(t, 3, strings.Count(out.String(), promptText))
}

func TestPrompter_LowerCaseQuit(t *testing.T) {
	p := NewPrompter(strings.NewReader("x\n"), &bytes.Buffer{})

	more, err := p.Continue()
	require.NoError(t, err)
	assert.False(t, more)
}

func TestPrompter_EOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	more, err := p.Continue()
	assert.NoError(t, err)
	assert.False(t, more)
}

func TestAutoPlay(t *testing.T) {
	more, err := AutoPlay{}.Continue()
	assert.NoError(t, err)
	assert.True(t, more)
}
