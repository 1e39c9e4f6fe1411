package dialogue

import (
	"fmt"
	"sort"
	"strings"
)

// Separator is the canonical field separator between speaker ID and text.
const Separator = "|"

// Turn is one attributed line of dialogue.
type Turn struct {
	Speaker SpeakerID `json:"speaker"`
	Text    string    `json:"text"`
}

// Render serializes turns into the canonical line format consumed by the
// multi-speaker synthesis backend: one `ID|text` line per turn.
func Render(turns []Turn) string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, string(t.Speaker)+Separator+t.Text)
	}
	return strings.Join(lines, "\n")
}

// SpeakerCounts returns the per-speaker turn distribution.
func SpeakerCounts(turns []Turn) map[SpeakerID]int {
	counts := make(map[SpeakerID]int)
	for _, t := range turns {
		counts[t.Speaker]++
	}
	return counts
}

// Context carries optional caller-supplied hints for generation. KeyPoints
// is the only field the turn generator reads; Extra is preserved opaquely
// for the prompt renderer.
type Context struct {
	KeyPoints []string
	Extra     map[string]string
}

// ContextFromMap builds a Context from a free-form JSON object, recognizing
// the key_points key and retaining everything else as pass-through.
func ContextFromMap(m map[string]any) *Context {
	if len(m) == 0 {
		return nil
	}
	ctx := &Context{}
	for key, value := range m {
		if key == "key_points" {
			switch v := value.(type) {
			case []any:
				for _, p := range v {
					if s, ok := p.(string); ok && s != "" {
						ctx.KeyPoints = append(ctx.KeyPoints, s)
					}
				}
			case []string:
				ctx.KeyPoints = append(ctx.KeyPoints, v...)
			case string:
				if v != "" {
					ctx.KeyPoints = append(ctx.KeyPoints, v)
				}
			}
			continue
		}
		if ctx.Extra == nil {
			ctx.Extra = make(map[string]string)
		}
		ctx.Extra[key] = fmt.Sprint(value)
	}
	return ctx
}

// extraKeys returns the pass-through keys in deterministic order.
func (c *Context) extraKeys() []string {
	keys := make([]string, 0, len(c.Extra))
	for k := range c.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
