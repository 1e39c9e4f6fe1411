package tts

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/daikw/dialoguecast/internal/dialogue"
)

// mockPollyClient is a mock for the Polly client
type mockPollyClient struct {
	mock.Mock
}

func (m *mockPollyClient) DescribeVoices(ctx context.Context, params *polly.DescribeVoicesInput, optFns ...func(*polly.Options)) (*polly.DescribeVoicesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*polly.DescribeVoicesOutput), args.Error(1)
}

func (m *mockPollyClient) SynthesizeSpeech(ctx context.Context, params *polly.SynthesizeSpeechInput, optFns ...func(*polly.Options)) (*polly.SynthesizeSpeechOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*polly.SynthesizeSpeechOutput), args.Error(1)
}

func TestPollyProvider_Name(t *testing.T) {
	p := &PollyProvider{}
	assert.Equal(t, "polly", p.Name())
}

func TestPollyProvider_SynthesizeTurns_PerSpeakerVoices(t *testing.T) {
	client := new(mockPollyClient)
	p := &PollyProvider{client: client, region: "us-east-1"}

	turns := []dialogue.Turn{
		{Speaker: dialogue.SpeakerR, Text: "hello"},
		{Speaker: dialogue.SpeakerS, Text: "world"},
	}

	client.On("SynthesizeSpeech", mock.Anything, mock.MatchedBy(func(in *polly.SynthesizeSpeechInput) bool {
		return in.VoiceId == types.VoiceIdJoanna && aws.ToString(in.Text) == "hello"
	})).Return(&polly.SynthesizeSpeechOutput{
		AudioStream: io.NopCloser(bytes.NewReader([]byte("seg1-"))),
	}, nil).Once()

	client.On("SynthesizeSpeech", mock.Anything, mock.MatchedBy(func(in *polly.SynthesizeSpeechInput) bool {
		return in.VoiceId == types.VoiceIdMatthew && aws.ToString(in.Text) == "world"
	})).Return(&polly.SynthesizeSpeechOutput{
		AudioStream: io.NopCloser(bytes.NewReader([]byte("seg2"))),
	}, nil).Once()

	reader, err := p.SynthesizeTurns(context.Background(), turns, SynthesizeOptions{Format: "mp3"})
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("seg1-seg2"), data)

	client.AssertExpectations(t)
}

func TestPollyProvider_SynthesizeTurns_Empty(t *testing.T) {
	p := &PollyProvider{}

	_, err := p.SynthesizeTurns(context.Background(), nil, SynthesizeOptions{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no dialogue turns")
}

func TestPollyProvider_SynthesizeTurns_UnsupportedFormat(t *testing.T) {
	p := &PollyProvider{client: new(mockPollyClient)}

	_, err := p.SynthesizeTurns(context.Background(),
		[]dialogue.Turn{{Speaker: dialogue.SpeakerR, Text: "x"}},
		SynthesizeOptions{Format: "flac"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported audio format")
}

func TestPollyProvider_ListVoices(t *testing.T) {
	client := new(mockPollyClient)
	p := &PollyProvider{client: client}

	client.On("DescribeVoices", mock.Anything, mock.Anything).Return(&polly.DescribeVoicesOutput{
		Voices: []types.Voice{
			{
				Id:               types.VoiceIdJoanna,
				Name:             aws.String("Joanna"),
				Gender:           types.GenderFemale,
				LanguageCode:     types.LanguageCodeEnUs,
				SupportedEngines: []types.Engine{types.EngineNeural, types.EngineStandard},
			},
		},
	}, nil)

	voices, err := p.ListVoices(context.Background())
	require.NoError(t, err)
	require.Len(t, voices, 1)
	assert.Equal(t, "Joanna", voices[0].ID)
	assert.Equal(t, "female", voices[0].Gender)
	assert.Contains(t, voices[0].Description, "Female voice")
	assert.Contains(t, voices[0].Description, "neural, standard")
}

func TestPollyProvider_IsAvailable(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		client := new(mockPollyClient)
		client.On("DescribeVoices", mock.Anything, mock.Anything).Return(&polly.DescribeVoicesOutput{}, nil)

		p := &PollyProvider{client: client}
		assert.True(t, p.IsAvailable(context.Background()))
	})

	t.Run("unavailable", func(t *testing.T) {
		client := new(mockPollyClient)
		client.On("DescribeVoices", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		p := &PollyProvider{client: client}
		assert.False(t, p.IsAvailable(context.Background()))
	})
}

func TestPollySpeakerVoices_CoverAllCanonicalSpeakers(t *testing.T) {
	for _, id := range dialogue.SpeakerOrder {
		_, ok := pollySpeakerVoices[id]
		assert.Truef(t, ok, "speaker %s has no Polly voice", id)
	}
}

func TestFormatSupportedEngines(t *testing.T) {
	assert.Equal(t, "unknown", formatSupportedEngines(nil))
	assert.Equal(t, "neural", formatSupportedEngines([]types.Engine{types.EngineNeural}))
	assert.Equal(t, "neural, standard", formatSupportedEngines([]types.Engine{types.EngineNeural, types.EngineStandard}))
}
