package skatewatch_test

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skatewatch/skatewatch-go/pkg/beep"
	"github.com/skatewatch/skatewatch-go/pkg/catalog"
	"github.com/skatewatch/skatewatch-go/pkg/classify"
	"github.com/skatewatch/skatewatch-go/pkg/clock"
	"github.com/skatewatch/skatewatch-go/pkg/engine"
	"github.com/skatewatch/skatewatch-go/pkg/log"
	"github.com/skatewatch/skatewatch-go/pkg/panel"
)

type buzzer struct {
	on    bool
	edges int
}

func (b *buzzer) Set(on bool) {
	if on && !b.on {
		b.edges++
	}
	b.on = on
}

// TestE2E_JudgedProgram runs one skater through call, program, interruption
// and end, with the session written to a log file and read back.
func TestE2E_JudgedProgram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.swlog")
	fileLogger, err := log.NewFileLogger(path)
	require.NoError(t, err)

	cat, err := catalog.New("e2e", []catalog.Entry{{Duration: 150, Kind: catalog.Max}})
	require.NoError(t, err)

	clk := clock.NewManual(time.Date(2026, 2, 14, 18, 30, 0, 0, time.UTC))
	out := &buzzer{}
	bell := beep.NewCounter(out)
	eng, err := engine.New(clk, bell, engine.Config{Catalog: cat, Logger: fileLogger})
	require.NoError(t, err)

	advance := func(secs int) engine.Snapshot {
		clk.Advance(time.Duration(secs) * time.Second)
		return eng.Tick()
	}
	press := func(cmds ...engine.Command) {
		for _, c := range cmds {
			require.True(t, eng.Handle(c), "command %v not applied", c)
		}
	}

	press(engine.CommandCompete, engine.CommandCallSkater)
	s := advance(20)
	assert.Equal(t, 20, s.Call)
	assert.Equal(t, classify.IdleTier, s.Tier)

	press(engine.CommandStart)
	s = eng.Tick()
	assert.Equal(t, classify.Green, s.Tier.Color)

	clk.Advance(60 * time.Second)
	press(engine.CommandInterrupt)
	clk.Advance(12 * time.Second)
	press(engine.CommandContinue)

	s = advance(78)
	require.Equal(t, 150, s.Main)
	assert.Equal(t, classify.Yellow, s.Tier.Color)
	assert.True(t, s.Beeped)
	assert.Equal(t, beep.BurstLoops, bell.Remaining())
	for bell.Remaining() > 0 {
		bell.Process()
	}
	bell.Process()
	assert.False(t, out.on)

	s = advance(10)
	assert.Equal(t, classify.Tier{Color: classify.Red, Message: classify.MsgTooLong}, s.Tier)

	press(engine.CommandWhistle)
	assert.Equal(t, beep.WhistleLoops, bell.Remaining())

	press(engine.CommandStop)
	assert.False(t, eng.HandleToken("bogus"))
	s = advance(5)

	frame := panel.Render(s)
	assert.Equal(t, "2:40", frame.Time)
	assert.Equal(t, classify.Idle, frame.Color)
	assert.Equal(t, panel.SecondHalfText, frame.SecondHalf)
	assert.Equal(t, "Compete-Between", frame.Mode)
	assert.Equal(t, [3]string{panel.DurationLabel, "2:30", "MAX"}, frame.Duration)
	assert.Equal(t, panel.Note{Text: "Since Skater Called: 0:20"}, frame.Notes[0])
	assert.Equal(t, panel.Note{Text: "Since Last Skater End: 0:05"}, frame.Notes[1])
	assert.Equal(t, panel.Note{Text: "Interrupt @ 1:00   Dur: 12s", Color: panel.Orange}, frame.Notes[2])

	require.NoError(t, fileLogger.Close())

	reader, err := log.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	var (
		events      []log.Event
		applied     []string
		ignored     []string
		transitions []string
		tiers       []string
		beeps       []log.BeepReason
		interrupts  []*log.InterruptionEvent
	)
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		events = append(events, event)

		assert.Equal(t, eng.SessionID(), event.SessionID)
		switch event.Category {
		case log.CategoryCommand:
			if event.Command.Applied {
				applied = append(applied, event.Command.Token)
			} else {
				ignored = append(ignored, event.Command.Token)
			}
		case log.CategoryTransition:
			transitions = append(transitions, event.Transition.NewState)
		case log.CategoryTier:
			tiers = append(tiers, event.Tier.Color)
		case log.CategoryBeep:
			beeps = append(beeps, event.Beep.Reason)
		case log.CategoryInterruption:
			interrupts = append(interrupts, event.Interruption)
		}
	}

	require.NotEmpty(t, events)
	assert.Equal(t, []string{"Compete", "Call.Sk", "Start", "Interrupt", "Continue", "Whistle", "Stop"}, applied)
	assert.Equal(t, []string{"bogus"}, ignored)
	require.GreaterOrEqual(t, len(transitions), 3)
	assert.Equal(t, []string{"Compete-Called", "Compete-InProgram", "Compete-Between"}, transitions[len(transitions)-3:])
	assert.Equal(t, []string{"IDLE", "GREEN", "YELLOW", "RED", "IDLE"}, tiers)
	assert.Equal(t, []log.BeepReason{log.BeepAlert, log.BeepWhistle}, beeps)

	require.Len(t, interrupts, 2)
	assert.False(t, interrupts[0].Ended)
	assert.Equal(t, 60, interrupts[0].StartedAt)
	assert.True(t, interrupts[1].Ended)
	assert.Equal(t, 12, interrupts[1].Duration)

	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Timestamp.Before(events[i-1].Timestamp), "event %d out of order", i)
	}
}

// TestE2E_FilteredReplay reads back only the tier changes of a warmup.
func TestE2E_FilteredReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warmup.swlog")
	fileLogger, err := log.NewFileLogger(path)
	require.NoError(t, err)

	clk := clock.NewManual(time.Date(2026, 2, 14, 17, 0, 0, 0, time.UTC))
	eng, err := engine.New(clk, beep.NewCounter(&buzzer{}), engine.Config{
		Logger:         fileLogger,
		WarmupDuration: 180,
		Silent:         true,
	})
	require.NoError(t, err)

	require.True(t, eng.Handle(engine.CommandWarmup))
	require.True(t, eng.Handle(engine.CommandStart))
	eng.Tick()
	for i := 0; i < 181; i++ {
		clk.Advance(time.Second)
		eng.Tick()
	}
	require.NoError(t, fileLogger.Close())

	tier := log.CategoryTier
	reader, err := log.NewFilteredReader(path, log.Filter{Category: &tier, Mode: "WARMUP"})
	require.NoError(t, err)
	defer reader.Close()

	var messages []string
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		require.Equal(t, log.CategoryTier, event.Category)
		messages = append(messages, event.Tier.Color+"/"+event.Tier.Message)
	}

	assert.Equal(t, []string{
		"GREEN/",
		"YELLOW/",
		"YELLOW/" + classify.MsgFinalMinute,
		"ORANGE/" + classify.MsgFinalMinute,
		"ORANGE/",
		"RED/" + classify.MsgWarmupOver,
	}, messages)
}
