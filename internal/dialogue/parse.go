package dialogue

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// colonLine matches a single canonical speaker letter at start of line,
// followed by a colon and the dialogue text.
var colonLine = regexp.MustCompile(`^([RSTU]):\s*(.+)$`)

// Parse recovers an ordered turn sequence from raw script text.
//
// Each line is tried against two strategies: the pipe format (`R|Text`)
// and the colon format (`R: Text`). Blank lines and lines starting with
// `#` or `//` are skipped. If no line yields a turn, the whole script
// falls back to a paragraph split with speakers alternating R, S.
//
// An empty result means no dialogue was recognized; it is a normal return
// value, not an error.
func Parse(script string) []Turn {
	var turns []Turn

	for _, line := range strings.Split(strings.TrimSpace(script), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.Contains(line, Separator) {
			parts := strings.SplitN(line, Separator, 2)
			speaker := SpeakerID(strings.ToUpper(strings.TrimSpace(parts[0])))
			text := strings.TrimSpace(parts[1])
			// Pipe lines that fail validation are dropped, not retried
			// against the colon format.
			if IsValidSpeaker(speaker) && text != "" {
				turns = append(turns, Turn{Speaker: speaker, Text: text})
			}
			continue
		}

		if strings.Contains(line, ":") {
			if m := colonLine.FindStringSubmatch(line); m != nil {
				text := strings.TrimSpace(m[2])
				if text != "" {
					turns = append(turns, Turn{Speaker: SpeakerID(m[1]), Text: text})
				}
			}
		}
	}

	// Last resort: assign alternating speakers to paragraphs.
	if len(turns) == 0 && strings.TrimSpace(script) != "" {
		for i, para := range splitParagraphs(script) {
			turns = append(turns, Turn{Speaker: SpeakerOrder[i%2], Text: para})
		}
		log.Debug().Int("turns", len(turns)).Msg("No structured markup found, used paragraph fallback")
	}

	return turns
}

// splitParagraphs splits on blank-line boundaries, dropping empty chunks.
func splitParagraphs(script string) []string {
	var paras []string
	for _, p := range strings.Split(script, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}
