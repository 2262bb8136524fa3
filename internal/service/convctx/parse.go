package convctx

import (
	"encoding/json"
	"strings"

	"github.com/jahboukie/inner-architect/internal/domain"
)

const (
	maxThemes      = 5
	maxMemoryItems = 10
)

// summaryWire is the JSON shape the summarization prompt asks for.
type summaryWire struct {
	Summary     string   `json:"summary"`
	Themes      []string `json:"themes"`
	MemoryItems []struct {
		Kind      string  `json:"kind"`
		Content   string  `json:"content"`
		Relevance float64 `json:"relevance"`
	} `json:"memory_items"`
}

// parseSummary extracts a SummarizeResult from an LLM reply. Models do
// not reliably return bare JSON, so the object is cut out of whatever
// surrounds it; when no parseable object is found the reply is scraped
// line by line as a last resort.
func parseSummary(raw string) SummarizeResult {
	if obj := extractObject(raw); obj != "" {
		var wire summaryWire
		if err := json.Unmarshal([]byte(obj), &wire); err == nil && strings.TrimSpace(wire.Summary) != "" {
			return fromWire(wire)
		}
	}
	return scrapeSummary(raw)
}

// extractObject returns the outermost {...} span of text, or "".
func extractObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

func fromWire(wire summaryWire) SummarizeResult {
	result := SummarizeResult{Summary: strings.TrimSpace(wire.Summary)}

	for _, theme := range wire.Themes {
		theme = strings.TrimSpace(theme)
		if theme == "" {
			continue
		}
		result.Themes = append(result.Themes, theme)
		if len(result.Themes) == maxThemes {
			break
		}
	}

	for _, item := range wire.MemoryItems {
		content := strings.TrimSpace(item.Content)
		if content == "" {
			continue
		}
		result.MemoryItems = append(result.MemoryItems, domain.MemoryItem{
			Kind:      memoryKind(item.Kind),
			Content:   content,
			Relevance: clamp01(item.Relevance),
		})
		if len(result.MemoryItems) == maxMemoryItems {
			break
		}
	}
	return result
}

// scrapeSummary salvages a summary from free-form model output: the
// first paragraph becomes the summary and leading bullet lines become
// themes. No memory items are extracted, the next pass replaces them.
func scrapeSummary(raw string) SummarizeResult {
	var result SummarizeResult
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		if bullet, ok := strings.CutPrefix(line, "- "); ok {
			if len(result.Themes) < maxThemes {
				result.Themes = append(result.Themes, strings.TrimSpace(bullet))
			}
			continue
		}
		if result.Summary == "" {
			result.Summary = strings.TrimPrefix(line, "Summary:")
			result.Summary = strings.TrimSpace(result.Summary)
		}
	}
	return result
}

func memoryKind(kind string) domain.MemoryItemKind {
	switch k := domain.MemoryItemKind(strings.ToLower(strings.TrimSpace(kind))); k {
	case domain.MemoryFact, domain.MemoryGoal, domain.MemoryPreference, domain.MemoryConcern:
		return k
	default:
		return domain.MemoryFact
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
