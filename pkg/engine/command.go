package engine

import "strings"

// Command is an operator action.
type Command uint8

const (
	// CommandStart begins a program run or a warmup countdown.
	CommandStart Command = iota + 1
	// CommandStop ends the run in progress.
	CommandStop
	// CommandReset clears the main timer.
	CommandReset
	// CommandInterrupt starts timing an interruption.
	CommandInterrupt
	// CommandContinue ends the interruption.
	CommandContinue
	// CommandWhistle sounds the long beep.
	CommandWhistle
	// CommandWarmup switches to Warmup mode.
	CommandWarmup
	// CommandCompete switches to Program mode.
	CommandCompete
	// CommandCallSkater records that the next skater was called.
	CommandCallSkater
	// CommandChangeDuration selects the next duration.
	CommandChangeDuration
	// CommandSilent disables button chirps.
	CommandSilent
	// CommandNoisy enables button chirps.
	CommandNoisy
)

// Commands lists every command in button order.
var Commands = []Command{
	CommandStart,
	CommandStop,
	CommandReset,
	CommandInterrupt,
	CommandContinue,
	CommandWhistle,
	CommandWarmup,
	CommandCompete,
	CommandCallSkater,
	CommandChangeDuration,
	CommandSilent,
	CommandNoisy,
}

// String returns the button token of the command.
func (c Command) String() string {
	switch c {
	case CommandStart:
		return "Start"
	case CommandStop:
		return "Stop"
	case CommandReset:
		return "Reset"
	case CommandInterrupt:
		return "Interrupt"
	case CommandContinue:
		return "Continue"
	case CommandWhistle:
		return "Whistle"
	case CommandWarmup:
		return "Warmup"
	case CommandCompete:
		return "Compete"
	case CommandCallSkater:
		return "Call.Sk"
	case CommandChangeDuration:
		return "Chg.Dur"
	case CommandSilent:
		return "Silent"
	case CommandNoisy:
		return "Noisy"
	default:
		return "UNKNOWN"
	}
}

// ParseCommand maps a button token to a command. Matching ignores case and
// surrounding space; "Start New" (the Start button after a run) is accepted
// as Start.
func ParseCommand(token string) (Command, bool) {
	t := strings.ToLower(strings.Join(strings.Fields(token), " "))
	if t == "start new" {
		return CommandStart, true
	}
	for _, c := range Commands {
		if strings.ToLower(c.String()) == t {
			return c, true
		}
	}
	return 0, false
}
