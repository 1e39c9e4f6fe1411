package dialogue

import (
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// labelPrefix matches a free-text speaker label at the start of a line: a
// run of letters, spaces, hyphens, apostrophes, and periods, an optional
// bracketed annotation (discarded), then a colon.
var labelPrefix = regexp.MustCompile(`^([A-Za-z\s'.-]+?)(?:\s*\[.*?\])?\s*:\s*`)

// labelLine is labelPrefix plus the dialogue text capture, used during
// conversion.
var labelLine = regexp.MustCompile(`^([A-Za-z\s'.-]+?)(?:\s*\[.*?\])?\s*:\s*(.+)$`)

// MaxMappedSpeakers caps a mapping at the four canonical voices.
const MaxMappedSpeakers = 4

// SpeakerMapping assigns free-text speaker labels to canonical IDs,
// preserving the first-appearance order of the labels.
type SpeakerMapping struct {
	labels []string
	ids    map[string]SpeakerID
}

// NewSpeakerMapping returns an empty mapping.
func NewSpeakerMapping() *SpeakerMapping {
	return &SpeakerMapping{ids: make(map[string]SpeakerID)}
}

// MappingFromMap builds an explicit mapping from label→ID pairs. Labels are
// recorded in sorted order since the source map carries none; entries beyond
// the canonical four are ignored.
func MappingFromMap(m map[string]SpeakerID) *SpeakerMapping {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	sm := NewSpeakerMapping()
	for _, label := range labels {
		sm.Add(label, m[label])
	}
	return sm
}

// Add records a label→ID assignment. Duplicate labels and additions beyond
// the four-speaker cap are ignored.
func (m *SpeakerMapping) Add(label string, id SpeakerID) {
	label = strings.TrimSpace(label)
	if label == "" || len(m.labels) >= MaxMappedSpeakers {
		return
	}
	if _, exists := m.ids[label]; exists {
		return
	}
	m.labels = append(m.labels, label)
	m.ids[label] = id
}

// Get looks up the canonical ID for a label.
func (m *SpeakerMapping) Get(label string) (SpeakerID, bool) {
	id, ok := m.ids[label]
	return id, ok
}

// Labels returns the mapped labels in assignment order.
func (m *SpeakerMapping) Labels() []string {
	return m.labels
}

// Len returns the number of mapped labels.
func (m *SpeakerMapping) Len() int {
	return len(m.labels)
}

// AutoMap scans a script for speaker labels and assigns them, in
// first-appearance order, onto the canonical IDs R, S, T, U. Labels beyond
// the fourth are ignored.
func AutoMap(script string) *SpeakerMapping {
	mapping := NewSpeakerMapping()

	for _, line := range strings.Split(script, "\n") {
		if !strings.Contains(line, ":") {
			continue
		}
		m := labelPrefix.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		label := strings.TrimSpace(m[1])
		if label == "" {
			continue
		}
		if _, seen := mapping.Get(label); seen {
			continue
		}
		if mapping.Len() >= MaxMappedSpeakers {
			continue
		}
		mapping.Add(label, SpeakerOrder[mapping.Len()])
	}

	log.Debug().Int("speakers", mapping.Len()).Msg("Auto-mapped script speakers")
	return mapping
}

// Convert rewrites a `Label: text` script into canonical `ID|text` lines
// using the supplied mapping. Lines whose label is unmapped or whose text is
// empty are silently omitted. An empty result means no valid dialogue was
// found.
func Convert(script string, mapping *SpeakerMapping) string {
	if mapping == nil {
		mapping = NewSpeakerMapping()
	}

	var out []string
	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, ":") {
			continue
		}
		m := labelLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		label := strings.TrimSpace(m[1])
		text := strings.TrimSpace(m[2])

		id, ok := mapping.Get(label)
		if !ok || text == "" {
			continue
		}
		out = append(out, string(id)+Separator+text)
	}

	return strings.Join(out, "\n")
}
