package debugger

import (
	"strconv"
	"strings"
)

// Command is an operator action at the debug prompt.
type Command int

const (
	COMMAND_END    = Command(0) // End the run.
	COMMAND_RUN    = Command(1) // Leave single-step mode.
	COMMAND_STOP   = Command(2) // Stay suspended.
	COMMAND_STEP   = Command(3) // Execute one instruction.
	COMMAND_PRINTM = Command(4) // Dump image memory.
	COMMAND_PRINTS = Command(5) // Dump the data stack.
)

var _command_name = map[string]Command{
	"end":    COMMAND_END,
	"0":      COMMAND_END,
	"run":    COMMAND_RUN,
	"start":  COMMAND_RUN,
	"1":      COMMAND_RUN,
	"stop":   COMMAND_STOP,
	"2":      COMMAND_STOP,
	"step":   COMMAND_STEP,
	"stepf":  COMMAND_STEP,
	"3":      COMMAND_STEP,
	"printm": COMMAND_PRINTM,
	"mem":    COMMAND_PRINTM,
	"4":      COMMAND_PRINTM,
	"prints": COMMAND_PRINTS,
	"stack":  COMMAND_PRINTS,
	"5":      COMMAND_PRINTS,
}

// Maximum arguments per command.
var _command_args = [...]int{
	COMMAND_END:    0,
	COMMAND_RUN:    0,
	COMMAND_STOP:   0,
	COMMAND_STEP:   0,
	COMMAND_PRINTM: 2,
	COMMAND_PRINTS: 1,
}

// ParseCommand parses an operator input line.
func ParseCommand(line string) (cmd Command, args []uint64, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		err = ErrCommandEmpty
		return
	}

	cmd, ok := _command_name[strings.ToLower(words[0])]
	if !ok {
		err = ErrCommandInvalid
		return
	}

	if len(words)-1 > _command_args[cmd] {
		err = ErrCommandArgs
		return
	}

	for _, word := range words[1:] {
		var value uint64
		value, err = strconv.ParseUint(word, 0, 64)
		if err != nil {
			err = ErrArgument(word)
			return
		}
		args = append(args, value)
	}

	return
}
