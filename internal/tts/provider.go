package tts

import (
	"context"
	"fmt"
	"io"

	"github.com/daikw/dialoguecast/internal/dialogue"
)

// Provider is implemented by synthesis backends that can voice a canonical
// turn sequence with distinct per-speaker voices.
type Provider interface {
	// Name returns the provider name
	Name() string

	// ListVoices returns available voices for this provider
	ListVoices(ctx context.Context) ([]Voice, error)

	// SynthesizeTurns renders a turn sequence as a single audio stream
	SynthesizeTurns(ctx context.Context, turns []dialogue.Turn, options SynthesizeOptions) (io.ReadCloser, error)

	// IsAvailable checks if the provider is available (can be used)
	IsAvailable(ctx context.Context) bool
}

// Voice represents a voice option
type Voice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Language    string `json:"language"`
	Gender      string `json:"gender,omitempty"`
	Description string `json:"description,omitempty"`
}

// SynthesizeOptions contains options for turn synthesis
type SynthesizeOptions struct {
	Language   string  `json:"language,omitempty"`    // BCP-47 code, e.g. "en-US"
	Format     string  `json:"format,omitempty"`      // Output format (mp3, wav, etc.)
	Speed      float64 `json:"speed,omitempty"`       // Speed multiplier (0.25-4.0)
	SampleRate string  `json:"sample_rate,omitempty"` // Sample rate in Hz
	Region     string  `json:"region,omitempty"`      // AWS region (Polly only)
}

// NewProvider creates a synthesis provider by name.
func NewProvider(ctx context.Context, name string, options SynthesizeOptions) (Provider, error) {
	switch name {
	case "google", "":
		return NewGoogleProvider(ctx)
	case "polly":
		return NewPollyProvider(options.Region)
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: google, polly)", name)
	}
}
