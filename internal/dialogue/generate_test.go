package dialogue

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_MinimumLength(t *testing.T) {
	// Every format, at every duration, must at least produce its opening
	// and closing turns.
	for _, name := range FormatNames() {
		for _, minutes := range []int{1, 2, 5, 30} {
			t.Run(fmt.Sprintf("%s_%dmin", name, minutes), func(t *testing.T) {
				turns := Generate("quantum computing", name, minutes, nil)
				assert.GreaterOrEqual(t, len(turns), 4)
			})
		}
	}
}

func TestGenerate_SpeakersBelongToFormat(t *testing.T) {
	for _, name := range FormatNames() {
		t.Run(name, func(t *testing.T) {
			format := LookupFormat(name)
			allowed := make(map[SpeakerID]bool)
			for _, id := range format.Speakers {
				allowed[id] = true
			}

			turns := Generate("space exploration", name, 10, nil)
			for i, turn := range turns {
				assert.Truef(t, allowed[turn.Speaker], "turn %d uses speaker %s outside format %s", i, turn.Speaker, name)
				assert.NotEmpty(t, turn.Text)
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	ctx := &Context{KeyPoints: []string{"ethics", "jobs"}}

	a := Generate("AI", "roundtable", 8, ctx)
	b := Generate("AI", "roundtable", 8, ctx)

	assert.Equal(t, a, b)
}

func TestGenerate_UnknownFormatFallsBack(t *testing.T) {
	unknown := Generate("gardening", "no-such-format", 3, nil)
	dialogue := Generate("gardening", "dialogue", 3, nil)

	assert.Equal(t, dialogue, unknown)
}

func TestGenerate_InterviewOpening(t *testing.T) {
	turns := Generate("climate change", "interview", 5, nil)
	require.GreaterOrEqual(t, len(turns), 2)

	assert.Equal(t, SpeakerR, turns[0].Speaker)
	assert.Contains(t, turns[0].Text, "climate change")
	assert.Equal(t, SpeakerS, turns[1].Speaker)
	assert.Contains(t, turns[1].Text, "Thank you for having me")
}

func TestGenerate_DebateOpening(t *testing.T) {
	turns := Generate("nuclear energy", "debate", 5, nil)
	require.GreaterOrEqual(t, len(turns), 3)

	assert.Equal(t, SpeakerR, turns[0].Speaker)
	assert.Equal(t, SpeakerS, turns[1].Speaker)
	assert.Equal(t, SpeakerT, turns[2].Speaker)
	assert.Contains(t, turns[0].Text, "debate on nuclear energy")
}

func TestGenerate_DefaultOpening(t *testing.T) {
	turns := Generate("tea ceremonies", "dialogue", 5, nil)
	require.GreaterOrEqual(t, len(turns), 2)

	assert.Equal(t, Turn{SpeakerR, "Let's explore tea ceremonies together."}, turns[0])
	assert.Equal(t, SpeakerS, turns[1].Speaker)
}

func TestGenerate_KeyPointsCycle(t *testing.T) {
	ctx := &Context{KeyPoints: []string{"alpha", "beta"}}
	turns := Generate("robotics", "dialogue", 10, ctx)

	// Body responses are every second body turn: opening is 2 turns, then
	// question/response pairs.
	var responses []string
	for i := 3; i < len(turns)-3; i += 2 {
		responses = append(responses, turns[i].Text)
	}
	require.GreaterOrEqual(t, len(responses), 2)

	assert.Contains(t, responses[0], "alpha")
	assert.Contains(t, responses[1], "beta")
	assert.Contains(t, responses[0], "robotics")
}

func TestGenerate_WithoutKeyPointsUsesGenericFiller(t *testing.T) {
	turns := Generate("jazz", "dialogue", 5, nil)

	found := false
	for _, turn := range turns {
		if turn.Speaker == SpeakerS && strings.Contains(turn.Text, "jazz has many dimensions we need to consider.") {
			found = true
		}
	}
	assert.True(t, found, "expected generic filler response mentioning the topic")
}

func TestGenerate_ReactionTurnsOnlyForMultiSpeakerFormats(t *testing.T) {
	tests := []struct {
		format        string
		wantsReaction bool
	}{
		{"dialogue", false},
		{"interview", false},
		{"roundtable", true},
		{"debate", true},
		{"storytelling", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			turns := Generate("history", tt.format, 10, nil)

			hasReaction := false
			for _, turn := range turns {
				for _, r := range reactions {
					if turn.Text == r {
						hasReaction = true
					}
				}
			}
			assert.Equal(t, tt.wantsReaction, hasReaction)
		})
	}
}

func TestGenerate_ClosingShape(t *testing.T) {
	turns := Generate("bees", "dialogue", 5, nil)
	require.GreaterOrEqual(t, len(turns), 3)

	last := turns[len(turns)-1]
	assert.Equal(t, SpeakerR, last.Speaker)
	assert.Equal(t, "Thank you for joining us today. Until next time!", last.Text)

	takeaway := turns[len(turns)-2]
	assert.Equal(t, SpeakerS, takeaway.Speaker)
	assert.Contains(t, takeaway.Text, "key takeaway")

	finalThoughts := turns[len(turns)-3]
	assert.Equal(t, SpeakerR, finalThoughts.Speaker)
	assert.Contains(t, finalThoughts.Text, "Any final thoughts?")
}

func TestGenerate_BodyCappedByPromptPool(t *testing.T) {
	// 30 minutes asks for 60 turns, but the body is capped at the size of
	// the content prompt pool.
	turns := Generate("economics", "dialogue", 30, nil)

	// 2 opening + 10 question/response pairs + 3 closing
	assert.Equal(t, 2+2*len(contentPrompts)+3, len(turns))
}
