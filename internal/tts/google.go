package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/status"

	"github.com/daikw/dialoguecast/internal/dialogue"
)

// multiSpeakerVoiceSuffix is appended to the language code to select
// Google's studio multi-speaker voice, e.g. en-US-Studio-MultiSpeaker.
const multiSpeakerVoiceSuffix = "-Studio-MultiSpeaker"

// googleClient is the subset of the Cloud TTS client used by
// GoogleProvider, narrowed for mock testing.
type googleClient interface {
	ListVoices(ctx context.Context, req *texttospeechpb.ListVoicesRequest, opts ...gax.CallOption) (*texttospeechpb.ListVoicesResponse, error)
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	Close() error
}

// GoogleProvider implements Provider using Google Cloud Text-to-Speech's
// multi-speaker dialogue feature. Each canonical speaker ID maps directly to
// one of the markup's four voices.
type GoogleProvider struct {
	client   googleClient
	language string
}

// GoogleProviderOption is a functional option for configuring GoogleProvider
type GoogleProviderOption func(*GoogleProvider)

// WithGoogleLanguage sets the default language code
func WithGoogleLanguage(language string) GoogleProviderOption {
	return func(p *GoogleProvider) {
		p.language = language
	}
}

// NewGoogleProvider creates a new Google Cloud TTS provider.
// Authentication is handled via GOOGLE_APPLICATION_CREDENTIALS or
// Application Default Credentials (ADC).
func NewGoogleProvider(ctx context.Context, opts ...GoogleProviderOption) (*GoogleProvider, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google TTS client: %w", err)
	}

	p := &GoogleProvider{
		client:   client,
		language: "en-US",
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// ListVoices returns available voices from Google Cloud TTS.
func (p *GoogleProvider) ListVoices(ctx context.Context) ([]Voice, error) {
	resp, err := p.client.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to list Google voices: %w", err)
	}

	var voices []Voice
	for _, v := range resp.Voices {
		for _, langCode := range v.LanguageCodes {
			gender := "unknown"
			switch v.SsmlGender {
			case texttospeechpb.SsmlVoiceGender_MALE:
				gender = "male"
			case texttospeechpb.SsmlVoiceGender_FEMALE:
				gender = "female"
			case texttospeechpb.SsmlVoiceGender_NEUTRAL:
				gender = "neutral"
			}

			voices = append(voices, Voice{
				ID:          v.Name,
				Name:        v.Name,
				Language:    langCode,
				Gender:      gender,
				Description: fmt.Sprintf("Google voice (%s)", strings.Join(v.LanguageCodes, ", ")),
			})
		}
	}

	log.Debug().Int("count", len(voices)).Msg("Listed Google TTS voices")
	return voices, nil
}

// buildMarkup converts a turn sequence into Google's MultiSpeakerMarkup.
func buildMarkup(turns []dialogue.Turn) *texttospeechpb.MultiSpeakerMarkup {
	markup := &texttospeechpb.MultiSpeakerMarkup{
		Turns: make([]*texttospeechpb.MultiSpeakerMarkup_Turn, 0, len(turns)),
	}
	for _, t := range turns {
		markup.Turns = append(markup.Turns, &texttospeechpb.MultiSpeakerMarkup_Turn{
			Speaker: string(t.Speaker),
			Text:    t.Text,
		})
	}
	return markup
}

// SynthesizeTurns renders the whole conversation in a single multi-speaker
// synthesis call.
func (p *GoogleProvider) SynthesizeTurns(ctx context.Context, turns []dialogue.Turn, options SynthesizeOptions) (io.ReadCloser, error) {
	if len(turns) == 0 {
		return nil, fmt.Errorf("no dialogue turns to synthesize")
	}

	language := p.language
	if options.Language != "" {
		language = options.Language
	}

	input := &texttospeechpb.SynthesisInput{
		InputSource: &texttospeechpb.SynthesisInput_MultiSpeakerMarkup{
			MultiSpeakerMarkup: buildMarkup(turns),
		},
	}

	voice := &texttospeechpb.VoiceSelectionParams{
		LanguageCode: language,
		Name:         language + multiSpeakerVoiceSuffix,
	}

	audioConfig := &texttospeechpb.AudioConfig{
		AudioEncoding: googleAudioEncoding(options.Format),
		SpeakingRate:  clampSpeakingRate(options.Speed),
		Pitch:         0.0,
	}

	log.Debug().
		Str("voice", voice.Name).
		Int("turns", len(turns)).
		Str("format", options.Format).
		Msg("Making Google multi-speaker synthesis request")

	resp, err := p.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input:       input,
		Voice:       voice,
		AudioConfig: audioConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}

	log.Debug().
		Int("audio_bytes", len(resp.AudioContent)).
		Msg("Google multi-speaker synthesis successful")

	return io.NopCloser(bytes.NewReader(resp.AudioContent)), nil
}

// IsAvailable checks if the Google TTS service is reachable with the
// ambient credentials.
func (p *GoogleProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{})
	if err != nil {
		log.Debug().
			Str("grpc_code", status.Code(err).String()).
			Err(err).
			Msg("Google TTS availability check failed")
		return false
	}
	return true
}

// Close closes the underlying client.
func (p *GoogleProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

// googleAudioEncoding converts a format string to a Google audio encoding.
func googleAudioEncoding(format string) texttospeechpb.AudioEncoding {
	switch strings.ToLower(format) {
	case "mp3", "":
		return texttospeechpb.AudioEncoding_MP3
	case "wav", "linear16":
		return texttospeechpb.AudioEncoding_LINEAR16
	case "ogg", "ogg_opus":
		return texttospeechpb.AudioEncoding_OGG_OPUS
	case "mulaw":
		return texttospeechpb.AudioEncoding_MULAW
	case "alaw":
		return texttospeechpb.AudioEncoding_ALAW
	default:
		return texttospeechpb.AudioEncoding_MP3
	}
}

// clampSpeakingRate clamps speed to Google's accepted range (0.25 to 4.0).
func clampSpeakingRate(speed float64) float64 {
	if speed <= 0 {
		return 1.0
	}
	if speed < 0.25 {
		return 0.25
	}
	if speed > 4.0 {
		return 4.0
	}
	return speed
}
