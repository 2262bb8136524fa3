package technique

import (
	"strings"

	"github.com/jahboukie/inner-architect/internal/domain"
)

// triggerKeywords maps message content straight to a technique, taking
// priority over the mood default.
var triggerKeywords = []struct {
	technique domain.TechniqueID
	words     []string
}{
	{domain.TechniqueMetaModel, []string{
		"always", "never", "everyone", "nobody", "everything is", "nothing works",
	}},
	{domain.TechniquePatternInterruption, []string{
		"can't stop", "keep thinking", "over and over", "spiral", "habit", "loop",
	}},
	{domain.TechniqueFuturePacing, []string{
		"interview", "presentation", "next week", "upcoming", "goal", "imagine",
	}},
	{domain.TechniqueSensoryLanguage, []string{
		"doesn't listen", "not getting through", "misunderstood", "communicate",
	}},
}

// moodDefaults picks the technique for a mood when no keyword trigger fires.
var moodDefaults = map[domain.Mood]domain.TechniqueID{
	domain.MoodAnxious:    domain.TechniqueAnchoring,
	domain.MoodSad:        domain.TechniqueReframing,
	domain.MoodFrustrated: domain.TechniquePatternInterruption,
	domain.MoodHopeful:    domain.TechniqueFuturePacing,
	domain.MoodConfident:  domain.TechniqueFuturePacing,
	domain.MoodNeutral:    domain.TechniqueReframing,
}

// Recommend picks the technique to coach with for one message. Keyword
// triggers win over the mood default; reframing is the final fallback.
func (s *Service) Recommend(text string, mood domain.Mood) domain.TechniqueID {
	lowered := strings.ToLower(text)

	for _, trigger := range triggerKeywords {
		for _, w := range trigger.words {
			if strings.Contains(lowered, w) {
				return trigger.technique
			}
		}
	}

	if t, ok := moodDefaults[mood]; ok {
		return t
	}
	return domain.TechniqueReframing
}
