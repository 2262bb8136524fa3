package domain

import "github.com/google/uuid"

// TechniqueID identifies one of the NLP coaching techniques.
type TechniqueID string

const (
	TechniqueReframing           TechniqueID = "reframing"
	TechniqueAnchoring           TechniqueID = "anchoring"
	TechniquePatternInterruption TechniqueID = "pattern_interruption"
	TechniqueFuturePacing        TechniqueID = "future_pacing"
	TechniqueSensoryLanguage     TechniqueID = "sensory_language"
	TechniqueMetaModel           TechniqueID = "meta_model"
)

func (t TechniqueID) String() string { return string(t) }

// AllTechniques lists every technique in catalog order.
var AllTechniques = []TechniqueID{
	TechniqueReframing,
	TechniqueAnchoring,
	TechniquePatternInterruption,
	TechniqueFuturePacing,
	TechniqueSensoryLanguage,
	TechniqueMetaModel,
}

// Valid reports whether t is a known technique.
func (t TechniqueID) Valid() bool {
	for _, known := range AllTechniques {
		if t == known {
			return true
		}
	}
	return false
}

// TechniqueUsage aggregates how often a technique was applied within one
// chat session, with the running average of user ratings. One row per
// (session, technique).
type TechniqueUsage struct {
	ID          uuid.UUID
	SessionID   string
	Technique   TechniqueID
	Count       int
	RatingSum   int
	RatingCount int
}

// AverageRating returns the mean rating, or 0 when unrated.
func (u *TechniqueUsage) AverageRating() float64 {
	if u.RatingCount == 0 {
		return 0
	}
	return float64(u.RatingSum) / float64(u.RatingCount)
}
