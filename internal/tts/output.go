package tts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// defaultOutputDirName is where synthesized podcasts land unless the caller
// picks a path, matching the layout downstream players expect.
const defaultOutputDirName = "Desktop/google_podcasts"

// DefaultOutputDir resolves the default audio output directory under the
// user's home.
func DefaultOutputDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, filepath.FromSlash(defaultOutputDirName)), nil
}

// WriteAudio drains the audio stream into dir/filename, creating the
// directory if needed. Returns the written path and byte count.
func WriteAudio(audio io.Reader, dir, filename string) (string, int64, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	n, err := io.Copy(f, audio)
	if err != nil {
		return "", 0, fmt.Errorf("failed to write audio to %s: %w", path, err)
	}

	log.Debug().Str("path", path).Int64("bytes", n).Msg("Wrote audio file")
	return path, n, nil
}
