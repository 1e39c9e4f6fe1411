package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/daikw/dialoguecast/internal/dialogue"
)

// PollyClient interface defines the methods we need from the Polly client
type PollyClient interface {
	DescribeVoices(ctx context.Context, params *polly.DescribeVoicesInput, optFns ...func(*polly.Options)) (*polly.DescribeVoicesOutput, error)
	SynthesizeSpeech(ctx context.Context, params *polly.SynthesizeSpeechInput, optFns ...func(*polly.Options)) (*polly.SynthesizeSpeechOutput, error)
}

// pollySpeakerVoices assigns a distinct Polly voice to each canonical
// speaker. Polly has no multi-speaker markup, so turns are synthesized one
// at a time and concatenated.
var pollySpeakerVoices = map[dialogue.SpeakerID]types.VoiceId{
	dialogue.SpeakerR: types.VoiceIdJoanna,
	dialogue.SpeakerS: types.VoiceIdMatthew,
	dialogue.SpeakerT: types.VoiceIdJoey,
	dialogue.SpeakerU: types.VoiceIdAmy,
}

// PollyProvider implements the Provider interface for Amazon Polly
type PollyProvider struct {
	client PollyClient
	region string
}

// NewPollyProvider creates a new Amazon Polly TTS provider
func NewPollyProvider(region string) (*PollyProvider, error) {
	if region == "" {
		region = "us-east-1" // Default region
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &PollyProvider{
		client: polly.NewFromConfig(cfg),
		region: region,
	}, nil
}

// Name returns the provider name
func (p *PollyProvider) Name() string {
	return "polly"
}

// ListVoices returns available Amazon Polly voices
func (p *PollyProvider) ListVoices(ctx context.Context) ([]Voice, error) {
	result, err := p.client.DescribeVoices(ctx, &polly.DescribeVoicesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list Polly voices: %w", err)
	}

	voices := make([]Voice, 0, len(result.Voices))
	for _, v := range result.Voices {
		voice := Voice{
			ID:       string(v.Id),
			Name:     aws.ToString(v.Name),
			Language: string(v.LanguageCode),
			Description: fmt.Sprintf("%s voice, %s engine supported",
				cases.Title(language.English).String(string(v.Gender)),
				formatSupportedEngines(v.SupportedEngines)),
		}

		switch v.Gender {
		case types.GenderFemale:
			voice.Gender = "female"
		case types.GenderMale:
			voice.Gender = "male"
		}

		voices = append(voices, voice)
	}

	return voices, nil
}

// SynthesizeTurns voices each turn with its speaker's assigned Polly voice
// and concatenates the audio segments into a single stream.
func (p *PollyProvider) SynthesizeTurns(ctx context.Context, turns []dialogue.Turn, options SynthesizeOptions) (io.ReadCloser, error) {
	if len(turns) == 0 {
		return nil, fmt.Errorf("no dialogue turns to synthesize")
	}

	outputFormat := options.Format
	if outputFormat == "" {
		outputFormat = "mp3"
	}

	var pollyFormat types.OutputFormat
	switch strings.ToLower(outputFormat) {
	case "mp3":
		pollyFormat = types.OutputFormatMp3
	case "ogg":
		pollyFormat = types.OutputFormatOggVorbis
	case "pcm":
		pollyFormat = types.OutputFormatPcm
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", outputFormat)
	}

	var buf bytes.Buffer
	for i, turn := range turns {
		voiceID, ok := pollySpeakerVoices[turn.Speaker]
		if !ok {
			return nil, fmt.Errorf("turn %d: no Polly voice assigned to speaker %s", i, turn.Speaker)
		}

		input := &polly.SynthesizeSpeechInput{
			Text:         aws.String(turn.Text),
			VoiceId:      voiceID,
			OutputFormat: pollyFormat,
			Engine:       types.EngineNeural,
			TextType:     types.TextTypeText,
		}
		if options.SampleRate != "" {
			switch options.SampleRate {
			case "8000", "16000", "22050", "24000":
				input.SampleRate = aws.String(options.SampleRate)
			default:
				log.Warn().Str("sample_rate", options.SampleRate).Msg("Invalid sample rate, using default")
			}
		}

		log.Debug().
			Int("turn", i).
			Str("speaker", string(turn.Speaker)).
			Str("voice_id", string(voiceID)).
			Msg("Making Polly synthesis request")

		result, err := p.client.SynthesizeSpeech(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("turn %d: failed to synthesize speech: %w", i, err)
		}

		if _, err := io.Copy(&buf, result.AudioStream); err != nil {
			_ = result.AudioStream.Close()
			return nil, fmt.Errorf("turn %d: failed to read audio stream: %w", i, err)
		}
		_ = result.AudioStream.Close()
	}

	log.Debug().
		Int("turns", len(turns)).
		Int("audio_bytes", buf.Len()).
		Msg("Polly turn synthesis successful")

	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}

// IsAvailable checks if Amazon Polly provider is available
func (p *PollyProvider) IsAvailable(ctx context.Context) bool {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := p.client.DescribeVoices(checkCtx, &polly.DescribeVoicesInput{})
	return err == nil
}

// formatSupportedEngines formats the list of supported engines for display
func formatSupportedEngines(engines []types.Engine) string {
	if len(engines) == 0 {
		return "unknown"
	}

	engineNames := make([]string, len(engines))
	for i, engine := range engines {
		engineNames[i] = string(engine)
	}

	return strings.Join(engineNames, ", ")
}
