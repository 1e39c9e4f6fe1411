package dialogue

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the instructional brief handed to an external script
// writer: the chosen format, speaker assignments, turn-count target, and
// the `ID|text` line convention. Pure string substitution.
func BuildPrompt(topic, formatName string, durationMinutes int, ctx *Context) string {
	format := LookupFormat(formatName)

	ids := make([]string, 0, len(format.Speakers))
	for _, id := range format.Speakers {
		ids = append(ids, string(id))
	}
	speakerList := strings.Join(ids, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "Create a natural %s podcast script about %q using Google's multi-speaker format.\n\n", formatName, topic)
	fmt.Fprintf(&b, "FORMAT: %s\n", format.Description)
	fmt.Fprintf(&b, "SPEAKERS: %s (Google TTS speaker IDs)\n", speakerList)
	fmt.Fprintf(&b, "DURATION: Approximately %d minutes\n\n", durationMinutes)

	b.WriteString("SPEAKER ASSIGNMENTS:\n")
	for _, id := range format.Speakers {
		sp := Speakers[id]
		role := sp.Name
		if r, ok := format.Roles[id]; ok {
			role = r
		}
		fmt.Fprintf(&b, "- %s: %s (%s)\n", id, role, sp.Description)
	}

	fmt.Fprintf(&b, `
CONTENT REQUIREMENTS:
1. Create %d dialogue turns (approximately)
2. Each turn should be 1-3 sentences
3. Make dialogue natural and conversational
4. Include personality in the speaking style
5. Add natural reactions and follow-ups

FORMAT EACH TURN AS:
Speaker ID|Dialogue text

Example:
R|Welcome to our podcast about artificial intelligence!
S|Thanks for having me. AI is transforming how we live and work.
R|Can you give us a specific example?
S|Sure! Take healthcare - AI is now helping doctors diagnose diseases earlier than ever before.

IMPORTANT:
- Use only the speaker IDs: %s
- Keep each turn concise but natural
- Include appropriate emotions and reactions in the text
- Make it sound like a real conversation, not a script

Topic focus areas:`, durationMinutes*2, speakerList)

	if ctx != nil {
		if len(ctx.KeyPoints) > 0 {
			fmt.Fprintf(&b, "\n- key_points: %s", strings.Join(ctx.KeyPoints, ", "))
		}
		for _, key := range ctx.extraKeys() {
			fmt.Fprintf(&b, "\n- %s: %s", key, ctx.Extra[key])
		}
	}

	return b.String()
}
