package dialogue

// SpeakerID identifies one of the four voices supported by Google's
// multi-speaker TTS markup.
type SpeakerID string

// The canonical speaker identifiers.
const (
	SpeakerR SpeakerID = "R"
	SpeakerS SpeakerID = "S"
	SpeakerT SpeakerID = "T"
	SpeakerU SpeakerID = "U"
)

// Speaker describes a canonical speaker voice.
type Speaker struct {
	ID          SpeakerID `json:"id"`
	Name        string    `json:"name"`
	Personality string    `json:"personality"`
	Description string    `json:"description"`
}

// SpeakerOrder is the fixed order used when assigning detected labels to
// canonical IDs and when alternating speakers in the paragraph fallback.
var SpeakerOrder = []SpeakerID{SpeakerR, SpeakerS, SpeakerT, SpeakerU}

// Speakers is the registry of canonical speakers. Populated once at startup,
// never mutated.
var Speakers = map[SpeakerID]Speaker{
	SpeakerR: {
		ID:          SpeakerR,
		Name:        "Speaker R",
		Personality: "warm_engaging",
		Description: "Friendly, conversational voice suitable for hosts",
	},
	SpeakerS: {
		ID:          SpeakerS,
		Name:        "Speaker S",
		Personality: "analytical",
		Description: "Clear, informative voice suitable for experts",
	},
	SpeakerT: {
		ID:          SpeakerT,
		Name:        "Speaker T",
		Personality: "energetic",
		Description: "Dynamic voice suitable for enthusiastic commentary",
	},
	SpeakerU: {
		ID:          SpeakerU,
		Name:        "Speaker U",
		Personality: "contemplative",
		Description: "Thoughtful voice suitable for deeper discussions",
	},
}

// IsValidSpeaker reports whether id is one of the four canonical speakers.
func IsValidSpeaker(id SpeakerID) bool {
	_, ok := Speakers[id]
	return ok
}
