package technique

import (
	"strings"

	"github.com/jahboukie/inner-architect/internal/domain"
)

// moodKeywords scores each mood by keyword hits. Longer phrases are listed
// before their substrings so a single occurrence is not double counted.
var moodKeywords = map[domain.Mood][]string{
	domain.MoodAnxious: {
		"anxious", "anxiety", "worried", "worry", "nervous", "panic",
		"afraid", "scared", "fear", "overwhelmed", "stress", "dread",
	},
	domain.MoodSad: {
		"sad", "depressed", "down", "hopeless", "lonely", "empty",
		"miserable", "crying", "grief", "lost",
	},
	domain.MoodFrustrated: {
		"frustrated", "frustrating", "angry", "annoyed", "irritated",
		"fed up", "sick of", "furious", "stuck", "hate",
	},
	domain.MoodHopeful: {
		"hopeful", "hoping", "looking forward", "excited", "optimistic",
		"better lately", "improving", "progress",
	},
	domain.MoodConfident: {
		"confident", "proud", "strong", "capable", "ready", "i can do",
		"accomplished", "succeeded",
	},
}

// DetectMood classifies the emotional tone of a message by keyword scoring.
// Ties and no-hits fall back to neutral.
func (s *Service) DetectMood(text string) domain.Mood {
	lowered := strings.ToLower(text)

	best := domain.MoodNeutral
	bestScore := 0
	for _, mood := range []domain.Mood{
		domain.MoodAnxious,
		domain.MoodSad,
		domain.MoodFrustrated,
		domain.MoodHopeful,
		domain.MoodConfident,
	} {
		score := 0
		for _, kw := range moodKeywords[mood] {
			score += strings.Count(lowered, kw)
		}
		if score > bestScore {
			best = mood
			bestScore = score
		}
	}
	return best
}
