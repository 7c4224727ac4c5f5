package cli_test

import (
	"testing"

	"vidar/internal/cli"
	. "vidar/internal/common"

	"github.com/stretchr/testify/assert"
)

func TestParse_Submit(t *testing.T) {
	cmd, err := cli.Parse("SUBMIT 1 100 50 SELL")
	assert.NoError(t, err)
	assert.Equal(t, cli.SubmitCommand{
		BaseCommand: cli.BaseCommand{TypeOf: cli.Submit},
		ID:          1,
		Price:       100,
		Quantity:    50,
		Side:        Sell,
	}, cmd)
}

func TestParse_Cancel(t *testing.T) {
	cmd, err := cli.Parse("CANCEL 7")
	assert.NoError(t, err)
	assert.Equal(t, cli.CancelCommand{
		BaseCommand: cli.BaseCommand{TypeOf: cli.Cancel},
		ID:          7,
	}, cmd)
}

func TestParse_BareCommands(t *testing.T) {
	for line, typeOf := range map[string]cli.CommandType{
		"MATCH":  cli.Match,
		"VERIFY": cli.Verify,
		"BOOK":   cli.Book,
	} {
		cmd, err := cli.Parse(line)
		assert.NoError(t, err, line)
		assert.Equal(t, typeOf, cmd.GetType(), line)
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	cmd, err := cli.Parse("submit 2 99 10 buy")
	assert.NoError(t, err)

	sub, ok := cmd.(cli.SubmitCommand)
	assert.True(t, ok)
	assert.Equal(t, Buy, sub.Side)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		line string
		want error
	}{
		{"blank line", "   ", cli.ErrEmptyCommand},
		{"unknown word", "NOPE", cli.ErrUnknownCommand},
		{"submit short", "SUBMIT 1 100", cli.ErrBadArguments},
		{"submit side", "SUBMIT 1 100 50 HOLD", cli.ErrBadSide},
		{"match extra", "MATCH now", cli.ErrBadArguments},
		{"cancel short", "CANCEL", cli.ErrBadArguments},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cli.Parse(tc.line)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_BadNumbers(t *testing.T) {
	_, err := cli.Parse("SUBMIT x 100 50 BUY")
	assert.Error(t, err)

	// Does not fit a uint32.
	_, err = cli.Parse("SUBMIT 1 100 4294967296 BUY")
	assert.Error(t, err)
}
