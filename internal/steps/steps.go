// Package steps parses a model's task-breakdown reply into structured steps.
// The model is asked for JSON but does not always comply, so parsing is a
// chain: strict JSON first, then a line scanner for numbered prose.
package steps

import (
	"encoding/json"
	"strings"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/port"
)

// JSONParser accepts a JSON array of steps, optionally wrapped in a markdown
// code fence.
type JSONParser struct{}

func (JSONParser) Parse(text string) ([]domain.TaskStep, bool) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var parsed []domain.TaskStep
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return nil, false
	}
	if len(parsed) == 0 {
		return nil, false
	}
	for i := range parsed {
		if parsed[i].StepNumber == 0 {
			parsed[i].StepNumber = i + 1
		}
	}
	return parsed, true
}

// LineParser scans prose for "Step N: ..." lines, attaching any following
// "Visual: ..." line to the step it belongs to.
type LineParser struct{}

func (LineParser) Parse(text string) ([]domain.TaskStep, bool) {
	var out []domain.TaskStep
	var current *domain.TaskStep

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.Contains(line, "Step") && strings.Contains(line, ":"):
			if current != nil && current.Instruction != "" {
				out = append(out, *current)
			}
			_, after, _ := strings.Cut(line, ":")
			current = &domain.TaskStep{
				StepNumber:  len(out) + 1,
				Instruction: strings.TrimSpace(after),
			}
		case strings.Contains(line, "Visual") && strings.Contains(line, ":"):
			if current == nil || current.Instruction == "" {
				continue
			}
			_, after, _ := strings.Cut(line, ":")
			current.VisualDescription = strings.TrimSpace(after)
		}
	}
	if current != nil && current.Instruction != "" {
		out = append(out, *current)
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// Parse runs the parsers in order and returns the first successful result.
func Parse(text string, parsers ...port.StepParser) ([]domain.TaskStep, bool) {
	if len(parsers) == 0 {
		parsers = []port.StepParser{JSONParser{}, LineParser{}}
	}
	for _, p := range parsers {
		if steps, ok := p.Parse(text); ok {
			return steps, true
		}
	}
	return nil, false
}
