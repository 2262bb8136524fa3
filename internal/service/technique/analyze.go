package technique

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jahboukie/inner-architect/internal/adapter/llm"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// PatternKind names one meta-model pattern class.
type PatternKind string

const (
	PatternUniversal   PatternKind = "universal_quantifier"
	PatternNecessity   PatternKind = "modal_necessity"
	PatternPossibility PatternKind = "modal_impossibility"
	PatternMindReading PatternKind = "mind_reading"
	PatternCauseEffect PatternKind = "cause_effect"
)

// PatternMatch is one detected pattern class with the matched fragments
// and the precision question that challenges it.
type PatternMatch struct {
	Kind     PatternKind
	Matches  []string
	Question string
}

// Analysis is the communication analyzer result.
type Analysis struct {
	Patterns  []PatternMatch
	Channels  map[string]int // sensory predicate counts: visual, auditory, kinesthetic
	Suggested domain.TechniqueID
	Narrative string
}

var patternTable = []struct {
	kind     PatternKind
	re       *regexp.Regexp
	question string
}{
	{
		PatternUniversal,
		regexp.MustCompile(`(?i)\b(always|never|everyone|no one|nobody|everything|nothing|every time)\b`),
		"Always? Has there been even one exception?",
	},
	{
		PatternNecessity,
		regexp.MustCompile(`(?i)\b(must|should|have to|need to|ought to|supposed to)\b`),
		"What would happen if you didn't?",
	},
	{
		PatternPossibility,
		regexp.MustCompile(`(?i)\b(can't|cannot|impossible|unable to|no way)\b`),
		"What stops you, specifically?",
	},
	{
		PatternMindReading,
		regexp.MustCompile(`(?i)\b(he thinks|she thinks|they think|knows? (that )?i|everyone thinks)\b`),
		"How do you know that is what they think?",
	},
	{
		PatternCauseEffect,
		regexp.MustCompile(`(?i)\b(makes me|made me|forces me|because of (him|her|them))\b`),
		"How exactly does that cause this?",
	},
}

var channelWords = map[string][]string{
	"visual":      {"see", "look", "picture", "clear", "view", "appears", "imagine", "focus"},
	"auditory":    {"hear", "sounds", "listen", "tell", "loud", "said", "rings", "tune"},
	"kinesthetic": {"feel", "grasp", "heavy", "touch", "pressure", "solid", "warm", "stuck"},
}

// Analyze runs communication analysis over a block of text. It deducts one
// unit from the analyses quota before doing any work; QuotaError is passed
// through for the transport layer to render.
func (s *Service) Analyze(ctx context.Context, text string) (*Analysis, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("text", "required")
	}
	if len(text) > 8000 {
		return nil, domain.NewValidationError("text", "too long")
	}

	if err := s.quota.CheckAndConsume(ctx, domain.QuotaAnalyses); err != nil {
		return nil, err
	}

	out := &Analysis{Channels: map[string]int{}}

	for _, p := range patternTable {
		matches := p.re.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		out.Patterns = append(out.Patterns, PatternMatch{
			Kind:     p.kind,
			Matches:  dedupeLower(matches),
			Question: p.question,
		})
	}

	lowered := strings.ToLower(text)
	for channel, words := range channelWords {
		for _, w := range words {
			out.Channels[channel] += strings.Count(lowered, w)
		}
	}

	out.Suggested = suggestFromAnalysis(out)
	out.Narrative = s.narrative(ctx, text, out)

	return out, nil
}

// suggestFromAnalysis picks a technique from the detected patterns: any
// meta-model hit suggests the meta model, otherwise a strongly skewed
// sensory channel suggests sensory language, otherwise reframing.
func suggestFromAnalysis(a *Analysis) domain.TechniqueID {
	if len(a.Patterns) > 0 {
		return domain.TechniqueMetaModel
	}

	total := 0
	max := 0
	for _, n := range a.Channels {
		total += n
		if n > max {
			max = n
		}
	}
	if total >= 3 && max*2 > total {
		return domain.TechniqueSensoryLanguage
	}
	return domain.TechniqueReframing
}

// narrative asks the LLM for a short observation about the text. Analysis
// stays usable without a provider, so failures degrade to a static summary.
func (s *Service) narrative(ctx context.Context, text string, a *Analysis) string {
	req := llm.Request{
		System: "You are a communication coach. In at most 80 words, point out the " +
			"strongest language pattern in the text and suggest one more precise rephrasing. " +
			"Address the writer directly.",
		Message: text,
	}
	got, err := s.llm.Complete(ctx, req)
	if err != nil {
		s.log.WarnContext(ctx, "analysis narrative unavailable", slog.String("error", err.Error()))
		return staticNarrative(a)
	}
	return got
}

func staticNarrative(a *Analysis) string {
	if len(a.Patterns) == 0 {
		return "No strong meta-model patterns detected. The language is fairly specific."
	}
	p := a.Patterns[0]
	return fmt.Sprintf("Detected %s (%s). Try asking yourself: %s",
		strings.ReplaceAll(string(p.Kind), "_", " "),
		strings.Join(p.Matches, ", "),
		p.Question)
}

func dedupeLower(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		k := strings.ToLower(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
