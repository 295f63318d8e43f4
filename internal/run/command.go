package run

import "github.com/san-kum/sortviz/internal/algo"

type CommandKind int

const (
	CmdReset CommandKind = iota
	CmdStartStop
	CmdSetDirection
	CmdSelect
)

// Command is a discrete request from the input source.
type Command struct {
	Kind      CommandKind
	Values    []int
	Direction algo.Direction
	Algorithm algo.ID
}

func ResetCommand(values []int) Command {
	return Command{Kind: CmdReset, Values: values}
}

func StartStopCommand() Command {
	return Command{Kind: CmdStartStop}
}

func DirectionCommand(dir algo.Direction) Command {
	return Command{Kind: CmdSetDirection, Direction: dir}
}

func SelectCommand(id algo.ID) Command {
	return Command{Kind: CmdSelect, Algorithm: id}
}

// Dispatch applies cmd to the state machine. Commands that are not allowed
// in the current state are dropped without error. StartStop only starts:
// there is no transition from Running back to Idle other than completion
// and reset.
func (c *Controller) Dispatch(cmd Command) error {
	switch cmd.Kind {
	case CmdReset:
		return c.Reset(cmd.Values)
	case CmdStartStop:
		if c.Running() {
			return nil
		}
		return c.Start()
	case CmdSetDirection:
		c.SetDirection(cmd.Direction)
	case CmdSelect:
		c.Select(cmd.Algorithm)
	}
	return nil
}
