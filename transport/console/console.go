package console

import (
	"fmt"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/DANI05132/conecta4/internal/apperror"
	"github.com/DANI05132/conecta4/internal/entity"
)

// Console renders the game on a termbox screen and reads player input
// line by line. It owns the terminal between New and Close.
type Console struct {
	marks map[entity.Cell]rune
	line  int // next free screen row
}

// New - takes over the terminal. Close must be called before anything
// else writes to stdout again.
func New(markOne, markTwo string) (*Console, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("failed to init terminal: %w", err)
	}

	return &Console{
		marks: map[entity.Cell]rune{
			entity.Empty:     '.',
			entity.PlayerOne: firstRune(markOne, 'X'),
			entity.PlayerTwo: firstRune(markTwo, 'O'),
		},
	}, nil
}

// Close - gives the terminal back.
func (that *Console) Close() {
	termbox.Close()
}

// RenderBoard - redraws the whole screen: the column numbers on top,
// then the grid with the bottom row last.
func (that *Console) RenderBoard(board *entity.Board) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	that.line = 0

	that.WriteLine("CONNECT FOUR")
	that.WriteLine("")

	header := ""
	for column := 1; column <= entity.Columns; column++ {
		header += fmt.Sprintf(" %d", column)
	}
	that.WriteLine(header)

	for row := 0; row < entity.Rows; row++ {
		x := 0
		for column := 0; column < entity.Columns; column++ {
			cell := board[row][column]

			termbox.SetCell(x, that.line, ' ', termbox.ColorDefault, termbox.ColorDefault)
			x++

			mark := that.marks[cell]
			termbox.SetCell(x, that.line, mark, cellColor(cell), termbox.ColorDefault)
			x += runewidth.RuneWidth(mark)
		}
		that.line++
	}

	that.line++ // blank line under the grid
	termbox.Flush()
}

// WriteLine - draws the text on the next free line and advances it.
func (that *Console) WriteLine(text string) {
	that.drawText(0, that.line, text)
	that.line++
	termbox.Flush()
}

// ReadLine - shows the prompt and edits a single input line: printable
// runes append, backspace deletes, enter submits. Esc and Ctrl+C close
// the input for good.
func (that *Console) ReadLine(prompt string) (string, error) {
	y := that.line
	start := that.drawText(0, y, prompt)
	termbox.SetCursor(start, y)
	termbox.Flush()

	var input []rune

	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventKey:
			switch {
			case event.Key == termbox.KeyEnter:
				termbox.HideCursor()
				that.line = y + 1

				return string(input), nil
			case event.Key == termbox.KeyEsc || event.Key == termbox.KeyCtrlC:
				termbox.HideCursor()

				return "", apperror.ErrInputClosed
			case event.Key == termbox.KeyBackspace || event.Key == termbox.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case event.Key == termbox.KeySpace:
				input = append(input, ' ')
			case event.Ch != 0 && unicode.IsPrint(event.Ch):
				input = append(input, event.Ch)
			}

			termbox.SetCursor(that.redrawInput(start, y, input), y)
			termbox.Flush()
		case termbox.EventInterrupt:
			termbox.HideCursor()

			return "", apperror.ErrInputClosed
		case termbox.EventError:
			return "", fmt.Errorf("terminal event error: %w", event.Err)
		}
	}
}

// WaitKey - blocks until any key arrives.
func (that *Console) WaitKey() error {
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventKey:
			return nil
		case termbox.EventInterrupt:
			return apperror.ErrInputClosed
		case termbox.EventError:
			return fmt.Errorf("terminal event error: %w", event.Err)
		}
	}
}

// Interrupt - unblocks a pending read; called from the signal handler.
func (that *Console) Interrupt() {
	termbox.Interrupt()
}

// redrawInput repaints the editable part of the prompt line and returns
// the new cursor position.
func (that *Console) redrawInput(start, y int, input []rune) int {
	x := start
	for _, r := range input {
		termbox.SetCell(x, y, r, termbox.ColorDefault, termbox.ColorDefault)
		x += runewidth.RuneWidth(r)
	}

	// erase the spot a deleted rune may have left behind
	termbox.SetCell(x, y, ' ', termbox.ColorDefault, termbox.ColorDefault)

	return x
}

func (that *Console) drawText(x, y int, text string) int {
	for _, r := range text {
		termbox.SetCell(x, y, r, termbox.ColorDefault, termbox.ColorDefault)
		x += runewidth.RuneWidth(r)
	}

	return x
}

func cellColor(cell entity.Cell) termbox.Attribute {
	switch cell {
	case entity.PlayerOne:
		return termbox.ColorRed
	case entity.PlayerTwo:
		return termbox.ColorYellow
	default:
		return termbox.ColorDefault
	}
}

// firstRune picks the display rune out of a configured mark, which may
// arrive empty or longer than one character.
func firstRune(mark string, fallback rune) rune {
	for _, r := range mark {
		return r
	}

	return fallback
}
