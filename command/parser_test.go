package command_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantfabric/limitbook/command"
	"github.com/quantfabric/limitbook/matching"
)

func TestParse(t *testing.T) {
	t.Run("add and cancel", func(t *testing.T) {
		input := strings.Join([]string{
			"# warm up the book",
			"ADD BUY 100 10",
			"",
			"ADD SELL 105 5",
			"CANCEL 1",
		}, "\n")

		commands, skipped, err := command.Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Equal(t, 0, skipped)
		require.Equal(t, []command.Command{
			{Kind: command.KindAdd, Side: matching.OrderSideBuy, Price: 100, Quantity: 10},
			{Kind: command.KindAdd, Side: matching.OrderSideSell, Price: 105, Quantity: 5},
			{Kind: command.KindCancel, ID: 1},
		}, commands)
	})

	t.Run("malformed lines are skipped", func(t *testing.T) {
		input := strings.Join([]string{
			"ADD BUY 100 10",
			"ADD HOLD 100 10",    // unknown side
			"ADD BUY ten 10",     // non-numeric price
			"ADD BUY 100",        // missing quantity
			"CANCEL",             // missing id
			"CANCEL x",           // non-numeric id
			"MODIFY 1 100 10",    // unknown command
			"ADD BUY 100 10 now", // trailing token
			"CANCEL 2",
		}, "\n")

		commands, skipped, err := command.Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Equal(t, 7, skipped)
		require.Len(t, commands, 2)
		require.Equal(t, command.KindAdd, commands[0].Kind)
		require.Equal(t, command.KindCancel, commands[1].Kind)
		require.EqualValues(t, 2, commands[1].ID)
	})

	t.Run("empty input", func(t *testing.T) {
		commands, skipped, err := command.Parse(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, 0, skipped)
		require.Empty(t, commands)
	})
}
