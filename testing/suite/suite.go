package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DANI05132/conecta4/internal/apperror"
	"github.com/DANI05132/conecta4/internal/entity"
)

const maxWaitDuration = 5 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Console *ScriptedConsole
}

// New - builds the shared harness for loop tests: a silent logger and a
// console that replays the given answers.
func New(t *testing.T, inputs ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Console: NewScriptedConsole(inputs...),
	}
}

// ScriptedConsole replays pre-recorded answers and records everything
// the loop asked and printed. Once the answers run out it reports a
// closed input, the same way a player leaving the terminal would.
type ScriptedConsole struct {
	inputs []string

	Prompts []string
	Lines   []string
	Boards  []entity.Board
}

func NewScriptedConsole(inputs ...string) *ScriptedConsole {
	return &ScriptedConsole{inputs: inputs}
}

func (that *ScriptedConsole) ReadLine(prompt string) (string, error) {
	that.Prompts = append(that.Prompts, prompt)

	if len(that.inputs) == 0 {
		return "", apperror.ErrInputClosed
	}

	input := that.inputs[0]
	that.inputs = that.inputs[1:]

	return input, nil
}

func (that *ScriptedConsole) RenderBoard(board *entity.Board) {
	that.Boards = append(that.Boards, *board)
}

func (that *ScriptedConsole) WriteLine(text string) {
	that.Lines = append(that.Lines, text)
}

func (that *ScriptedConsole) WaitKey() error {
	return nil
}

// LastLine - the most recent printed text, or "" before any output.
func (that *ScriptedConsole) LastLine() string {
	if len(that.Lines) == 0 {
		return ""
	}

	return that.Lines[len(that.Lines)-1]
}

// NearDrawBoard - a board with 41 cells occupied and no line of four
// anywhere; only the top-left cell is still empty. Rows come in pairs
// (11/22 vertically, alternating horizontally), which caps every run at
// three.
func NearDrawBoard() entity.Board {
	var board entity.Board

	for r := 0; r < entity.Rows; r++ {
		for c := 0; c < entity.Columns; c++ {
			first := c%2 == 0
			if r == 2 || r == 3 {
				first = !first
			}

			if first {
				board[r][c] = entity.PlayerOne
			} else {
				board[r][c] = entity.PlayerTwo
			}
		}
	}

	board[0][0] = entity.Empty

	return board
}
