package technique

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jahboukie/inner-architect/internal/adapter/llm"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// BeliefStep is one stage of the belief-change protocol.
type BeliefStep struct {
	Number      int
	Name        string
	Instruction string
	// ask is what the LLM is asked to produce when guiding this step.
	ask string
}

// beliefSteps is the fixed 7-step protocol. The protocol is stateless:
// clients resubmit the belief and their prior answers with each step.
var beliefSteps = []BeliefStep{
	{1, "identify", "State the limiting belief in one sentence, in your own words.",
		"Help the user sharpen the belief statement into one precise sentence."},
	{2, "examine", "List the evidence you currently use to support this belief.",
		"Help the user examine where the belief came from and what sustains it."},
	{3, "challenge", "Find counter-examples: moments where the belief did not hold.",
		"Surface counter-examples and exceptions that weaken the belief."},
	{4, "reframe", "Write an alternative belief that fits the same facts but serves you.",
		"Propose two or three empowering alternative beliefs consistent with the user's evidence."},
	{5, "strengthen", "Collect evidence from your own life that supports the new belief.",
		"Help the user find real past experiences that support the new belief."},
	{6, "anchor", "Pick the situations where the new belief matters most and rehearse it there.",
		"Guide a brief rehearsal of the new belief in one concrete upcoming situation."},
	{7, "integrate", "Commit: decide how you will act this week as someone who holds the new belief.",
		"Help the user turn the new belief into one small concrete commitment for this week."},
}

// BeliefChangeInput carries the stateless protocol state from the client.
type BeliefChangeInput struct {
	Step      int
	Belief    string
	Responses []string // answers to the steps completed so far
}

// BeliefChangeResult is one protocol step with its guidance.
type BeliefChangeResult struct {
	Step        int
	Name        string
	Instruction string
	Guidance    string
	NextStep    int // 0 when the protocol is complete
}

// Validate checks the protocol input.
func (i BeliefChangeInput) Validate() error {
	var errs []domain.FieldError

	if i.Step < 1 || i.Step > len(beliefSteps) {
		errs = append(errs, domain.FieldError{Field: "step", Message: fmt.Sprintf("must be 1..%d", len(beliefSteps))})
	}
	if strings.TrimSpace(i.Belief) == "" {
		errs = append(errs, domain.FieldError{Field: "belief", Message: "required"})
	} else if len(i.Belief) > 1000 {
		errs = append(errs, domain.FieldError{Field: "belief", Message: "too long"})
	}
	if len(i.Responses) > len(beliefSteps) {
		errs = append(errs, domain.FieldError{Field: "responses", Message: "too many"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BeliefChangeStep returns one step of the belief-change protocol with LLM
// guidance tailored to the belief and prior answers. Guidance degrades to
// the static instruction when no provider is available.
func (s *Service) BeliefChangeStep(ctx context.Context, input BeliefChangeInput) (*BeliefChangeResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	step := beliefSteps[input.Step-1]

	out := &BeliefChangeResult{
		Step:        step.Number,
		Name:        step.Name,
		Instruction: step.Instruction,
	}
	if input.Step < len(beliefSteps) {
		out.NextStep = input.Step + 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Belief being worked on: %s\n", strings.TrimSpace(input.Belief))
	for i, r := range input.Responses {
		if r == "" || i >= len(beliefSteps) {
			continue
		}
		fmt.Fprintf(&b, "Answer for step %d (%s): %s\n", i+1, beliefSteps[i].Name, r)
	}
	fmt.Fprintf(&b, "Current step %d (%s): %s", step.Number, step.Name, step.Instruction)

	req := llm.Request{
		System: "You are guiding a structured belief-change exercise. " + step.ask +
			" Keep it under 120 words and end with one question.",
		Message: b.String(),
	}

	guidance, err := s.llm.Complete(ctx, req)
	if err != nil {
		s.log.WarnContext(ctx, "belief change guidance unavailable",
			slog.Int("step", step.Number),
			slog.String("error", err.Error()))
		guidance = step.Instruction
	}
	out.Guidance = guidance

	return out, nil
}

// BeliefSteps exposes the protocol outline for the catalog endpoint.
func (s *Service) BeliefSteps() []BeliefStep {
	out := make([]BeliefStep, len(beliefSteps))
	copy(out, beliefSteps)
	return out
}
