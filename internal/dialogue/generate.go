package dialogue

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// contentPrompts is the fixed pool of question/prompt turns cycled by the
// first speaker during the body of a generated conversation.
var contentPrompts = []string{
	"What's the most important thing people should understand?",
	"Can you give us a specific example?",
	"How does this impact our daily lives?",
	"What are the common misconceptions?",
	"What does the future hold?",
	"What challenges do we face?",
	"Are there any surprising aspects?",
	"How can people get involved?",
	"What's your personal experience with this?",
	"What advice would you give?",
}

// responseIntros is the fixed pool of response openers cycled by the second
// speaker.
var responseIntros = []string{
	"That's a great question. Let me explain...",
	"Actually, it's quite fascinating when you look at it closely...",
	"People often don't realize that...",
	"From my perspective, the key is...",
	"What's really interesting is...",
	"The data shows us that...",
	"In my experience...",
	"Here's what I've learned...",
	"The breakthrough came when...",
	"This reminds me of...",
}

// reactions is the fixed pool of third-speaker interjections used by
// formats with more than two speakers.
var reactions = []string{
	"I'd like to add to that point...",
	"That's interesting, but have you considered...",
	"Building on what was just said...",
	"From another angle...",
}

// Generate expands (topic, format, duration, optional context) into an
// ordered turn sequence. The target turn count is durationMinutes*2,
// assuming roughly 30 seconds of audio per turn. Output is fully
// deterministic: all pool indices are computed from the loop counter, never
// sampled.
func Generate(topic, formatName string, durationMinutes int, ctx *Context) []Turn {
	format := LookupFormat(formatName)
	speakers := format.Speakers
	numTurns := durationMinutes * 2

	var turns []Turn

	// Opening
	switch format.Name {
	case "interview":
		turns = append(turns,
			Turn{SpeakerR, fmt.Sprintf("Welcome to today's discussion about %s. I'm here with an expert who's going to share fascinating insights with us.", topic)},
			Turn{SpeakerS, "Thank you for having me! I'm excited to dive into this topic with your listeners."},
		)
	case "debate":
		turns = append(turns,
			Turn{SpeakerR, fmt.Sprintf("Welcome to our debate on %s. We have two distinguished speakers with opposing viewpoints.", topic)},
			Turn{SpeakerS, "I'm here to argue for the positive aspects and potential benefits."},
			Turn{SpeakerT, "And I'll be presenting the concerns and challenges we need to consider."},
		)
	default:
		turns = append(turns, Turn{speakers[0], fmt.Sprintf("Let's explore %s together.", topic)})
		if len(speakers) > 1 {
			turns = append(turns, Turn{speakers[1], "Absolutely! This is such a relevant topic right now."})
		}
	}

	// Body: question/response pairs, capped by the prompt pool size.
	body := numTurns - 4
	if body > len(contentPrompts) {
		body = len(contentPrompts)
	}
	for i := 0; i < body; i++ {
		turns = append(turns, Turn{speakers[0], contentPrompts[i%len(contentPrompts)]})

		intro := responseIntros[i%len(responseIntros)]
		var text string
		if ctx != nil && len(ctx.KeyPoints) > 0 {
			point := ctx.KeyPoints[i%len(ctx.KeyPoints)]
			text = fmt.Sprintf("%s When it comes to %s in %s, we're seeing significant developments.", intro, point, topic)
		} else {
			text = fmt.Sprintf("%s %s has many dimensions we need to consider.", intro, topic)
		}
		turns = append(turns, Turn{speakers[1%len(speakers)], text})

		if len(speakers) > 2 && i%3 == 0 {
			turns = append(turns, Turn{speakers[2%len(speakers)], reactions[i%len(reactions)]})
		}
	}

	// Closing
	turns = append(turns, Turn{speakers[0], fmt.Sprintf("This has been an enlightening discussion about %s. Any final thoughts?", topic)})
	if len(speakers) > 1 {
		turns = append(turns, Turn{speakers[1], "The key takeaway is to stay informed and engaged with these developments."})
	}
	turns = append(turns, Turn{speakers[0], "Thank you for joining us today. Until next time!"})

	log.Debug().
		Str("format", format.Name).
		Int("duration_minutes", durationMinutes).
		Int("turns", len(turns)).
		Msg("Generated dialogue turns")

	return turns
}
