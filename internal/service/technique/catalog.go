package technique

import (
	"github.com/jahboukie/inner-architect/internal/domain"
)

// Technique is one catalog entry. Prompt is the system-prompt fragment the
// chat service splices in when the technique is applied.
type Technique struct {
	ID          domain.TechniqueID
	Name        string
	Summary     string
	Description string
	WhenToUse   string
	Steps       []string
	Prompt      string
}

var catalog = map[domain.TechniqueID]Technique{
	domain.TechniqueReframing: {
		ID:        domain.TechniqueReframing,
		Name:      "Reframing",
		Summary:   "Shift the meaning of a situation to open new responses.",
		WhenToUse: "Stuck interpretations, self-critical narratives, setbacks.",
		Description: "Reframing separates an event from the meaning attached to it. " +
			"The same facts seen through a different frame produce different feelings " +
			"and different options.",
		Steps: []string{
			"Name the situation in one neutral sentence.",
			"Write down the meaning you are currently giving it.",
			"List at least three other meanings the same facts could carry.",
			"Pick the frame that gives you the most useful next move.",
		},
		Prompt: "Apply reframing: acknowledge the user's current interpretation, then " +
			"offer one or two alternative frames for the same facts and ask which one " +
			"opens a next step for them.",
	},
	domain.TechniqueAnchoring: {
		ID:        domain.TechniqueAnchoring,
		Name:      "Anchoring",
		Summary:   "Tie a physical trigger to a resourceful emotional state.",
		WhenToUse: "Anxiety before known situations, wanting on-demand calm or focus.",
		Description: "Anchoring pairs a deliberate physical gesture with a strongly felt " +
			"state so the gesture can later re-evoke the state under pressure.",
		Steps: []string{
			"Choose the state you want on demand (calm, focus, confidence).",
			"Recall a moment you felt it fully; rebuild the scene in detail.",
			"At the peak of the feeling, apply a unique gesture, like pressing thumb and finger together.",
			"Release, break state, and repeat three times.",
			"Test the anchor in a neutral moment before relying on it.",
		},
		Prompt: "Apply anchoring: guide the user to pick a target state, revivify a " +
			"reference experience, and set a physical anchor at the emotional peak. " +
			"Keep instructions concrete and brief.",
	},
	domain.TechniquePatternInterruption: {
		ID:        domain.TechniquePatternInterruption,
		Name:      "Pattern interruption",
		Summary:   "Break a habitual thought or behavior loop mid-cycle.",
		WhenToUse: "Rumination, spirals, habits that run on autopilot.",
		Description: "A loop that runs automatically keeps its momentum. Interrupting it " +
			"mid-sequence with something unexpected creates a gap where a chosen " +
			"response can be installed.",
		Steps: []string{
			"Describe the loop step by step, including its trigger.",
			"Pick the earliest point where you notice it starting.",
			"Choose an interrupt: stand up, count backwards from 30, change rooms.",
			"Decide in advance what you will do in the gap the interrupt creates.",
		},
		Prompt: "Apply pattern interruption: help the user map the loop, find its " +
			"earliest detectable moment, and design a concrete interrupt plus a " +
			"replacement action.",
	},
	domain.TechniqueFuturePacing: {
		ID:        domain.TechniqueFuturePacing,
		Name:      "Future pacing",
		Summary:   "Mentally rehearse handling a future situation well.",
		WhenToUse: "Upcoming events, new habits, goals that feel distant.",
		Description: "Future pacing runs a detailed mental rehearsal of a coming " +
			"situation as if it is happening now, so the rehearsed response is " +
			"available when the real moment arrives.",
		Steps: []string{
			"Pick one specific upcoming situation.",
			"Step into it in first person: what you see, hear and feel.",
			"Play it through responding exactly the way you want to.",
			"Notice the first cue in the scene and link it to your rehearsed response.",
			"Repeat the run-through until it feels routine.",
		},
		Prompt: "Apply future pacing: walk the user through a first-person rehearsal " +
			"of a specific upcoming situation, anchoring the desired response to a " +
			"concrete cue inside the scene.",
	},
	domain.TechniqueSensoryLanguage: {
		ID:        domain.TechniqueSensoryLanguage,
		Name:      "Sensory language",
		Summary:   "Match visual, auditory and kinesthetic wording.",
		WhenToUse: "Communication that is not landing, building rapport.",
		Description: "People lean on visual, auditory or kinesthetic vocabulary. " +
			"Noticing the preferred channel and answering in it makes messages land " +
			"with less friction.",
		Steps: []string{
			"Re-read what the other person said and underline sensory words.",
			"Classify them: see/look/clear (visual), hear/sounds/tell (auditory), feel/grasp/heavy (kinesthetic).",
			"Rephrase your key message in their dominant channel.",
			"Check the response and adjust.",
		},
		Prompt: "Apply sensory language: mirror the predicate channel the user writes " +
			"in (visual, auditory or kinesthetic) and point out how to match it when " +
			"they communicate with others.",
	},
	domain.TechniqueMetaModel: {
		ID:        domain.TechniqueMetaModel,
		Name:      "Meta model",
		Summary:   "Precision questions that recover deleted or distorted detail.",
		WhenToUse: "Absolute statements, vague complaints, mind reading.",
		Description: "Statements like \"I always fail\" or \"she thinks I'm useless\" " +
			"compress experience through deletion, distortion and generalization. " +
			"Meta-model questions unpack the compression and recover choice.",
		Steps: []string{
			"Catch the absolute or vague statement verbatim.",
			"Identify the pattern: universal, necessity, impossibility, mind reading, cause-effect.",
			"Ask the matching precision question (\"Always? Every single time?\").",
			"Restate the claim with the recovered detail.",
		},
		Prompt: "Apply the meta model: pick the strongest generalization or distortion " +
			"in the user's message and ask the one precision question that loosens it. " +
			"One question at a time.",
	},
}

// List returns every catalog technique in stable order.
func (s *Service) List() []Technique {
	out := make([]Technique, 0, len(domain.AllTechniques))
	for _, id := range domain.AllTechniques {
		out = append(out, catalog[id])
	}
	return out
}

// Get returns one catalog technique. Returns ErrNotFound for unknown ids.
func (s *Service) Get(id domain.TechniqueID) (Technique, error) {
	t, ok := catalog[id]
	if !ok {
		return Technique{}, domain.ErrNotFound
	}
	return t, nil
}

// Prompt returns the system-prompt fragment for a technique, or empty for
// unknown ids. The chat service splices it into the coaching system prompt.
func (s *Service) Prompt(id domain.TechniqueID) string {
	return catalog[id].Prompt
}
