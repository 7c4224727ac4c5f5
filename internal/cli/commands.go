package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"vidar/internal/common"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("wrong number of arguments")
	ErrBadSide        = errors.New("side must be BUY or SELL")
)

type CommandType int

const (
	Submit CommandType = iota
	Match
	Cancel
	Verify
	Book
)

type Command interface {
	GetType() CommandType
}

// BaseCommand covers the argument-free commands.
type BaseCommand struct {
	TypeOf CommandType
}

func (c BaseCommand) GetType() CommandType {
	return c.TypeOf
}

type SubmitCommand struct {
	BaseCommand
	ID       uint32
	Price    uint32
	Quantity uint32
	Side     common.Side
}

type CancelCommand struct {
	BaseCommand
	ID uint32
}

// Parse turns one harness line into a typed command. Command words are
// case-insensitive, fields are whitespace separated:
//
//	SUBMIT <id> <price> <quantity> <BUY|SELL>
//	MATCH
//	CANCEL <id>
//	VERIFY
//	BOOK
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}

	switch strings.ToUpper(fields[0]) {
	case "SUBMIT":
		cmd, err := parseSubmit(fields[1:])
		if err != nil {
			return nil, err
		}
		return cmd, nil
	case "CANCEL":
		cmd, err := parseCancel(fields[1:])
		if err != nil {
			return nil, err
		}
		return cmd, nil
	case "MATCH":
		return parseBare(Match, fields[1:])
	case "VERIFY":
		return parseBare(Verify, fields[1:])
	case "BOOK":
		return parseBare(Book, fields[1:])
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}
}

func parseBare(typeOf CommandType, args []string) (Command, error) {
	if len(args) != 0 {
		return nil, ErrBadArguments
	}
	return BaseCommand{TypeOf: typeOf}, nil
}

func parseSubmit(args []string) (SubmitCommand, error) {
	cmd := SubmitCommand{BaseCommand: BaseCommand{TypeOf: Submit}}
	if len(args) != 4 {
		return cmd, ErrBadArguments
	}

	var err error
	if cmd.ID, err = parseUint32(args[0]); err != nil {
		return cmd, fmt.Errorf("id: %w", err)
	}
	if cmd.Price, err = parseUint32(args[1]); err != nil {
		return cmd, fmt.Errorf("price: %w", err)
	}
	if cmd.Quantity, err = parseUint32(args[2]); err != nil {
		return cmd, fmt.Errorf("quantity: %w", err)
	}

	switch strings.ToUpper(args[3]) {
	case "BUY":
		cmd.Side = common.Buy
	case "SELL":
		cmd.Side = common.Sell
	default:
		return cmd, ErrBadSide
	}
	return cmd, nil
}

func parseCancel(args []string) (CancelCommand, error) {
	cmd := CancelCommand{BaseCommand: BaseCommand{TypeOf: Cancel}}
	if len(args) != 1 {
		return cmd, ErrBadArguments
	}

	var err error
	if cmd.ID, err = parseUint32(args[0]); err != nil {
		return cmd, fmt.Errorf("id: %w", err)
	}
	return cmd, nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
