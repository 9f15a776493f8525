package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestLogUseCaseObserver_WritesTextLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "set-entries",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"slots": 2},
	})

	out := buf.String()
	assert.Contains(t, out, "use_case=set-entries")
	assert.Contains(t, out, "duration_ms=3")
	assert.Contains(t, out, "slots=2")
	assert.Contains(t, out, "level=INFO")
}

func TestLogUseCaseObserver_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "import", Err: errors.New("bad yaml")})

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `error="bad yaml"`)
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}
