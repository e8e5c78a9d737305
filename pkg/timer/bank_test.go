package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankTimersAreIndependent(t *testing.T) {
	b := NewBank()

	b.Timer(Main).Start(t0)
	b.Timer(Call).Start(at(10))
	b.Timer(Separation).Reset(0, Up)
	b.Timer(Interrupt).Start(at(20))
	b.Timer(Interrupt).Stop(at(25))

	b.Update(at(30))

	assert.Equal(t, 30, b.Seconds(Main))
	assert.Equal(t, 20, b.Seconds(Call))
	assert.Equal(t, 0, b.Seconds(Separation))
	assert.Equal(t, 5, b.Seconds(Interrupt))

	assert.True(t, b.Running(Main))
	assert.True(t, b.Running(Call))
	assert.False(t, b.Running(Separation))
	assert.False(t, b.Running(Interrupt))
}

func TestBankCallAndSeparationMayRunTogether(t *testing.T) {
	b := NewBank()
	b.Timer(Call).Start(t0)
	b.Timer(Separation).Start(t0)

	b.Update(at(7))
	assert.Equal(t, 7, b.Seconds(Call))
	assert.Equal(t, 7, b.Seconds(Separation))
}

func TestBankUnknownID(t *testing.T) {
	b := NewBank()
	require.Nil(t, b.Timer(ID(42)))
	assert.Equal(t, 0, b.Seconds(ID(42)))
	assert.False(t, b.Running(ID(42)))
}

func TestIDString(t *testing.T) {
	want := map[ID]string{
		Main:       "MAIN",
		Call:       "CALL",
		Separation: "SEPARATION",
		Interrupt:  "INTERRUPT",
		ID(77):     "UNKNOWN",
	}
	for id, s := range want {
		assert.Equal(t, s, id.String())
	}
	assert.Len(t, IDs, 4)
}
