package port

import "github.com/yongxin12/Macrohard/internal/domain"

// StepParser turns a model's task-breakdown reply into structured steps.
// Implementations report via ok whether they could make sense of the text, so
// a caller can chain parsers from strictest to most permissive.
type StepParser interface {
	Parse(text string) (steps []domain.TaskStep, ok bool)
}
