package domain

import "context"

// Assistant generates a reply to a visitor's question.
type Assistant interface {
	Reply(ctx context.Context, systemInstruction, message string) (string, error)
}

// AssistantService answers visitor questions about the program.
type AssistantService interface {
	Ask(ctx context.Context, message string) (string, error)
}
