package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"startupambassadors/internal/domain"
)

const maxAssistantMessageRunes = 2000

// AssistantInstruction is the fixed persona given to the generative model.
const AssistantInstruction = `Siz "Startup Ambassadors Tashkent" klubining AI mentorisiz.
Sizning vazifangiz yoshlarga startup nima ekanligini tushuntirish, ularning g'oyalarini validatsiya qilishda yordam berish va klub haqida ma'lumot berish.
Klubimiz Yoshlar ishlari agentligi va Yoshlar Ventures bilan hamkorlikda ishlaydi.
O'zbek tilida, do'stona, g'ayratli va professional tilda javob bering.`

type assistantService struct {
	assistant      domain.Assistant
	contextTimeout time.Duration
}

// NewAssistantService returns an AssistantService. A nil assistant means no
// provider is configured and every question fails with ErrAssistantUnavailable.
func NewAssistantService(assistant domain.Assistant, timeout time.Duration) domain.AssistantService {
	return &assistantService{assistant: assistant, contextTimeout: timeout}
}

func (s *assistantService) Ask(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", domain.NewValidationError("message is required")
	}
	if utf8.RuneCountInString(message) > maxAssistantMessageRunes {
		return "", domain.NewValidationError(fmt.Sprintf("message must be at most %d characters", maxAssistantMessageRunes))
	}
	if s.assistant == nil {
		return "", domain.ErrAssistantUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reply, err := s.assistant.Reply(ctx, AssistantInstruction, message)
	if err != nil {
		return "", fmt.Errorf("assistant reply: %w: %w", domain.ErrAssistantUnavailable, err)
	}
	return reply, nil
}
