// File: services/intelligence/interface.go
package ai

import "context"

// TextGenerator produces text from a prompt. Implementations wrap a concrete
// LLM provider; tests substitute fakes since real calls are not reproducible.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
