package tts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAudio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, n, err := WriteAudio(bytes.NewReader([]byte("audio-bytes")), dir, "episode.mp3")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "episode.mp3"), path)
	assert.Equal(t, int64(len("audio-bytes")), n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("audio-bytes"), data)
}

func TestWriteAudio_EmptyStream(t *testing.T) {
	dir := t.TempDir()

	path, n, err := WriteAudio(bytes.NewReader(nil), dir, "empty.mp3")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestDefaultOutputDir(t *testing.T) {
	dir, err := DefaultOutputDir()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Desktop", "google_podcasts"), dir)
}
