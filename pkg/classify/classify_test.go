package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skatewatch/skatewatch-go/pkg/catalog"
	"github.com/skatewatch/skatewatch-go/pkg/mode"
)

func program(kind catalog.Kind, target, elapsed int) Input {
	return Input{Mode: mode.Program, Kind: kind, Target: target, Elapsed: elapsed, Running: true}
}

func TestClassifyProgramMax(t *testing.T) {
	tests := []struct {
		elapsed int
		want    Tier
	}{
		{0, Tier{Green, ""}},
		{100, Tier{Green, ""}},
		{144, Tier{Green, ""}},
		{145, Tier{Yellow, MsgEndIsNear}},
		{150, Tier{Yellow, MsgEndIsNear}},
		{151, Tier{Red, MsgTooLong}},
		{160, Tier{Red, MsgTooLong}},
	}
	for _, tt := range tests {
		got := Classify(program(catalog.Max, 150, tt.elapsed))
		assert.Equal(t, tt.want, got.Tier, "elapsed=%d", tt.elapsed)
	}
}

func TestClassifyProgramWindow(t *testing.T) {
	tests := []struct {
		elapsed int
		want    Tier
	}{
		{0, Tier{Idle, ""}},
		{1, Tier{Red, MsgTooShort}},
		{50, Tier{Red, MsgTooShort}},
		{119, Tier{Red, MsgTooShort}},
		{120, Tier{Orange, MsgShortDeduct}},
		{139, Tier{Orange, MsgShortDeduct}},
		{140, Tier{Green, ""}},
		{154, Tier{Green, ""}},
		{155, Tier{Yellow, MsgEndIsNear}},
		{160, Tier{Yellow, MsgEndIsNear}},
		{161, Tier{Red, MsgTooLong}},
	}
	for _, tt := range tests {
		got := Classify(program(catalog.Window, 150, tt.elapsed))
		assert.Equal(t, tt.want, got.Tier, "elapsed=%d", tt.elapsed)
	}
}

func TestClassifySecondHalf(t *testing.T) {
	assert.False(t, Classify(program(catalog.Max, 150, 75)).SecondHalf)
	assert.True(t, Classify(program(catalog.Max, 150, 76)).SecondHalf)

	// Odd target: 75 > 150/2 only once past 75.5 whole seconds, so 76.
	assert.False(t, Classify(program(catalog.Window, 151, 75)).SecondHalf)
	assert.True(t, Classify(program(catalog.Window, 151, 76)).SecondHalf)

	// The flag is independent of the tier.
	r := Classify(program(catalog.Max, 150, 151))
	assert.True(t, r.SecondHalf)
	assert.Equal(t, Red, r.Tier.Color)

	// Stopped programs keep the flag; warmups never set it.
	stopped := program(catalog.Max, 150, 140)
	stopped.Running = false
	assert.True(t, Classify(stopped).SecondHalf)
	assert.False(t, Classify(Input{Mode: mode.Warmup, Target: 240, Elapsed: 10, Running: true}).SecondHalf)
}

func TestClassifyWarmup(t *testing.T) {
	tests := []struct {
		remaining int
		want      Tier
	}{
		{240, Tier{Green, ""}},
		{61, Tier{Green, ""}},
		{60, Tier{Yellow, ""}},
		{59, Tier{Yellow, MsgFinalMinute}},
		{5, Tier{Yellow, MsgFinalMinute}},
		{4, Tier{Orange, MsgFinalMinute}},
		{1, Tier{Orange, MsgFinalMinute}},
		{0, Tier{Orange, ""}},
		{-1, Tier{Red, MsgWarmupOver}},
		{-90, Tier{Red, MsgWarmupOver}},
	}
	for _, tt := range tests {
		got := Classify(Input{Mode: mode.Warmup, Target: 240, Elapsed: tt.remaining, Running: true})
		assert.Equal(t, tt.want, got.Tier, "remaining=%d", tt.remaining)
	}
}

func TestClassifyIdleWhenStopped(t *testing.T) {
	inputs := []Input{
		{Mode: mode.Program, Kind: catalog.Max, Target: 150, Elapsed: 200},
		{Mode: mode.Program, Kind: catalog.Window, Target: 150, Elapsed: 50},
		{Mode: mode.Warmup, Target: 240, Elapsed: -30},
	}
	for _, in := range inputs {
		assert.Equal(t, IdleTier, Classify(in).Tier, "%+v", in)
	}
}

func TestBeepPoints(t *testing.T) {
	assert.Equal(t, []int{150}, BeepPoints(mode.Program, catalog.Max, 150))
	assert.Equal(t, []int{160}, BeepPoints(mode.Program, catalog.Window, 150))
	assert.Equal(t, []int{60, 0}, BeepPoints(mode.Warmup, catalog.Window, 240))
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "ORANGE", Orange.String())
	assert.Equal(t, "IDLE", Idle.String())
	assert.Equal(t, "UNKNOWN", Color(99).String())
}
