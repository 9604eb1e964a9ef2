package buildctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerAccumulates(t *testing.T) {
	ctx := New()
	ctx.StartTimer(TimerIngest)
	time.Sleep(time.Millisecond)
	ctx.StopTimer(TimerIngest)

	assert.Greater(t, ctx.AccumulatedTime(TimerIngest), time.Duration(0))
	assert.Equal(t, time.Duration(0), ctx.AccumulatedTime(TimerPlacement))
}

func TestLogBounded(t *testing.T) {
	ctx := New()
	for i := 0; i < MaxMessages+10; i++ {
		ctx.Log(Progress, "message %d", i)
	}
	assert.Len(t, ctx.Messages(), MaxMessages)
}

func TestResetLogAndTimers(t *testing.T) {
	ctx := New()
	ctx.Log(Warning, "uh oh")
	ctx.StartTimer(TimerOutput)
	ctx.StopTimer(TimerOutput)

	ctx.ResetLog()
	ctx.ResetTimers()

	assert.Empty(t, ctx.Messages())
	assert.Equal(t, time.Duration(0), ctx.AccumulatedTime(TimerOutput))
}
