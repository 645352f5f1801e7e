package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"startupambassadors/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssistant struct {
	gotInstruction string
	gotMessage     string
	reply          string
	err            error
}

func (f *fakeAssistant) Reply(ctx context.Context, systemInstruction, message string) (string, error) {
	f.gotInstruction = systemInstruction
	f.gotMessage = message
	return f.reply, f.err
}

func TestAssistantService_Ask(t *testing.T) {
	t.Run("forwards with instruction", func(t *testing.T) {
		a := &fakeAssistant{reply: "Startup - bu ..."}
		svc := NewAssistantService(a, time.Second)

		got, err := svc.Ask(context.Background(), "  Startup nima?  ")
		require.NoError(t, err)
		assert.Equal(t, "Startup - bu ...", got)
		assert.Equal(t, "Startup nima?", a.gotMessage)
		assert.Equal(t, AssistantInstruction, a.gotInstruction)
	})

	t.Run("empty message", func(t *testing.T) {
		svc := NewAssistantService(&fakeAssistant{}, time.Second)
		_, err := svc.Ask(context.Background(), "   ")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("too long", func(t *testing.T) {
		svc := NewAssistantService(&fakeAssistant{}, time.Second)
		_, err := svc.Ask(context.Background(), strings.Repeat("a", maxAssistantMessageRunes+1))
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("not configured", func(t *testing.T) {
		svc := NewAssistantService(nil, time.Second)
		_, err := svc.Ask(context.Background(), "salom")
		require.ErrorIs(t, err, domain.ErrAssistantUnavailable)
	})

	t.Run("provider failure", func(t *testing.T) {
		svc := NewAssistantService(&fakeAssistant{err: errors.New("quota")}, time.Second)
		_, err := svc.Ask(context.Background(), "salom")
		require.ErrorIs(t, err, domain.ErrAssistantUnavailable)
	})
}
