package types

import "fmt"

type CommandType uint8

const (
	CommandTypeGrowAvatar CommandType = iota + 1
	CommandTypeShrinkAvatar
	CommandTypeRestart
)

func (t CommandType) String() string {
	switch t {
	case CommandTypeGrowAvatar:
		return "grow"
	case CommandTypeShrinkAvatar:
		return "shrink"
	case CommandTypeRestart:
		return "restart"
	}
	return "unknown"
}

// ParseCommandType parses the name of a command.
func ParseCommandType(s string) (CommandType, error) {
	switch s {
	case "grow":
		return CommandTypeGrowAvatar, nil
	case "shrink":
		return CommandTypeShrinkAvatar, nil
	case "restart":
		return CommandTypeRestart, nil
	}
	return 0, fmt.Errorf("unknown command: %s", s)
}

// Command is a player intent applied at the start of the next tick.
type Command struct {
	Type CommandType
}
