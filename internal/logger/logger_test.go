package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitWithoutPathKeepsNop(t *testing.T) {
	l := New()
	require.NoError(t, l.Init("debug", ""))
	assert.False(t, l.Log.Core().Enabled(zap.ErrorLevel))
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helpmate.log")

	l := New()
	require.NoError(t, l.Init("info", path))
	l.Log.Debug("hidden")
	l.Log.Info("flow started", zap.String("flow_id", "abc"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, `"msg":"flow started"`), out)
	assert.True(t, strings.Contains(out, `"flow_id":"abc"`), out)
	assert.False(t, strings.Contains(out, "hidden"), out)
}

func TestInitBadLevel(t *testing.T) {
	l := New()
	err := l.Init("loud", filepath.Join(t.TempDir(), "x.log"))
	assert.Error(t, err)
}
