package dialogue

// Format is a named conversational shape: which speakers participate, what
// roles they play, and how the conversation should feel.
type Format struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Speakers    []SpeakerID           `json:"speakers"`
	Roles       map[SpeakerID]string  `json:"roles,omitempty"`
	Style       string                `json:"style,omitempty"`
}

// DefaultFormat is substituted when an unknown format name is requested.
const DefaultFormat = "dialogue"

// formats is the catalog of conversational formats. Populated once at
// startup, never mutated.
var formats = map[string]Format{
	"dialogue": {
		Name:        "dialogue",
		Description: "Two-person conversational format",
		Speakers:    []SpeakerID{SpeakerR, SpeakerS},
		Style:       "Natural back-and-forth discussion",
	},
	"interview": {
		Name:        "interview",
		Description: "Host interviewing an expert",
		Speakers:    []SpeakerID{SpeakerR, SpeakerS},
		Roles:       map[SpeakerID]string{SpeakerR: "Host", SpeakerS: "Expert"},
	},
	"roundtable": {
		Name:        "roundtable",
		Description: "Multi-person discussion (up to 4 speakers)",
		Speakers:    []SpeakerID{SpeakerR, SpeakerS, SpeakerT, SpeakerU},
		Style:       "Collaborative discussion with multiple viewpoints",
	},
	"storytelling": {
		Name:        "storytelling",
		Description: "Narrative with character voices",
		Speakers:    []SpeakerID{SpeakerR, SpeakerS, SpeakerT},
		Roles: map[SpeakerID]string{
			SpeakerR: "Narrator",
			SpeakerS: "Character 1",
			SpeakerT: "Character 2",
		},
	},
	"educational": {
		Name:        "educational",
		Description: "Teaching format with Q&A",
		Speakers:    []SpeakerID{SpeakerR, SpeakerS},
		Roles:       map[SpeakerID]string{SpeakerR: "Teacher", SpeakerS: "Student"},
	},
	"debate": {
		Name:        "debate",
		Description: "Point-counterpoint discussion",
		Speakers:    []SpeakerID{SpeakerR, SpeakerS, SpeakerT},
		Roles: map[SpeakerID]string{
			SpeakerR: "Moderator",
			SpeakerS: "Advocate",
			SpeakerT: "Opponent",
		},
	},
}

// FormatNames returns all valid format names.
func FormatNames() []string {
	return []string{
		"dialogue",
		"interview",
		"roundtable",
		"storytelling",
		"educational",
		"debate",
	}
}

// LookupFormat resolves a format name against the catalog. Unknown names
// fall back to the default format; this is not an error.
func LookupFormat(name string) Format {
	if f, ok := formats[name]; ok {
		return f
	}
	return formats[DefaultFormat]
}

// IsValidFormat reports whether name is a recognized format.
func IsValidFormat(name string) bool {
	_, ok := formats[name]
	return ok
}

// AllFormats returns the catalog keyed by name, for resource serialization.
func AllFormats() map[string]Format {
	out := make(map[string]Format, len(formats))
	for k, v := range formats {
		out[k] = v
	}
	return out
}
