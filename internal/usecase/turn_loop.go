package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/DANI05132/conecta4/internal/apperror"
	"github.com/DANI05132/conecta4/internal/connectfour"
	"github.com/DANI05132/conecta4/internal/entity"
)

// console is the terminal collaborator the loop talks to: one line of
// input per request, plus board and status rendering.
type console interface {
	ReadLine(prompt string) (string, error)
	RenderBoard(board *entity.Board)
	WriteLine(text string)
	WaitKey() error
}

// TurnLoop drives one match: prompt the active player, validate the
// answer, apply the move and evaluate the result.
type TurnLoop struct {
	logger  *slog.Logger
	game    *connectfour.Game
	console console
	marks   map[entity.Cell]string

	// notice carries a rejection message into the next redraw, so the
	// player sees why the same prompt comes back.
	notice string
}

func NewTurnLoop(logger *slog.Logger, game *connectfour.Game, console console, markOne, markTwo string) *TurnLoop {
	return &TurnLoop{
		logger:  logger.With("component", "turnloop"),
		game:    game,
		console: console,
		marks: map[entity.Cell]string{
			entity.PlayerOne: markOne,
			entity.PlayerTwo: markTwo,
		},
	}
}

// Run - plays the game until a win, a draw, a closed input or a
// canceled context. Malformed input never ends the loop.
func (that *TurnLoop) Run(ctx context.Context) error {
	for !that.game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.playTurn(); err != nil {
			if errors.Is(err, apperror.ErrInputClosed) {
				that.logger.Info("input closed, leaving the game")
				return nil
			}

			return err
		}
	}

	that.announceResult()

	// keep the final board on screen until the player reacts
	if err := that.console.WaitKey(); err != nil && !errors.Is(err, apperror.ErrInputClosed) {
		return fmt.Errorf("failed to wait for a key: %w", err)
	}

	return nil
}

// playTurn - runs a single prompt-validate-apply cycle. A rejected
// answer leaves the game untouched and the same player on turn.
func (that *TurnLoop) playTurn() error {
	player := that.game.Turn

	that.console.RenderBoard(&that.game.Board)
	if that.notice != "" {
		that.console.WriteLine(that.notice)
		that.notice = ""
	}

	prompt := fmt.Sprintf("Player %d (%s), choose a column (1-%d): ", player, that.marks[player], entity.Columns)

	line, err := that.console.ReadLine(prompt)
	if err != nil {
		return fmt.Errorf("failed to read column: %w", err)
	}

	column, err := parseColumn(line)
	if err != nil {
		that.logger.Debug("rejected input", "player", int(player), "input", line)
		that.notice = fmt.Sprintf("Invalid column, pick a number between 1 and %d.", entity.Columns)

		return nil
	}

	row, err := that.game.MakeTurn(column)
	if err != nil {
		if errors.Is(err, apperror.ErrColumnFull) {
			that.logger.Debug("column full", "player", int(player), "column", column)
			that.notice = fmt.Sprintf("Column %d is full, pick another one.", column+1)

			return nil
		}

		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Info("piece dropped",
		"player", int(player), "row", row, "column", column, "status", that.game.Status)

	return nil
}

// announceResult - shows the final board together with the verdict.
func (that *TurnLoop) announceResult() {
	that.console.RenderBoard(&that.game.Board)

	switch that.game.Status {
	case connectfour.StatusWon:
		winner := that.game.Winner
		that.console.WriteLine(fmt.Sprintf("Player %d (%s) wins!", winner, that.marks[winner]))
	case connectfour.StatusDraw:
		that.console.WriteLine("It's a draw, the board is full.")
	default:
		that.logger.Error("unknown game status", "status", that.game.Status)
		that.console.WriteLine("Game over.")
	}

	that.console.WriteLine("Press any key to exit.")

	that.logger.Info("game over",
		"status", that.game.Status, "winner", int(that.game.Winner), "moves", that.game.Moves)
}

// parseColumn turns a 1-based user answer into a 0-based column index.
func parseColumn(line string) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1, fmt.Errorf("%w: %q", apperror.ErrInvalidColumn, line)
	}

	column := number - 1
	if column < 0 || column >= entity.Columns {
		return -1, fmt.Errorf("%w: %d", apperror.ErrInvalidColumn, number)
	}

	return column, nil
}
