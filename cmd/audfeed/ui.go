// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// interactive reports whether both ends of the session are a terminal.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

const helpLine = "space play  +/- gain  s stop  q quit"

type ui struct {
	screen tcell.Screen
	title  string
}

func newUI(title string) (*ui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	screen.Clear()

	return &ui{screen: screen, title: title}, nil
}

// pollInput turns key presses into commands until the screen is closed.
func (u *ui) pollInput(ctx context.Context, cmds chan<- command) {
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if cmd, ok := keyCommand(ev); ok {
				select {
				case cmds <- cmd:
				case <-ctx.Done():
					return
				}
			}
		case *tcell.EventResize:
			u.screen.Sync()
		}
	}
}

func (u *ui) draw(s status) {
	u.screen.Clear()

	u.line(0, u.title, tcell.StyleDefault.Bold(true))
	u.line(2, statusLine(s), tcell.StyleDefault)
	u.line(4, helpLine, tcell.StyleDefault.Foreground(tcell.ColorGray))

	u.screen.Show()
}

func (u *ui) line(y int, text string, style tcell.Style) {
	x := 0
	for _, r := range text {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (u *ui) close() {
	u.screen.Fini()
}

func keyCommand(ev *tcell.EventKey) (command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return cmdPlay, true
		case '+', '=':
			return cmdGainUp, true
		case '-', '_':
			return cmdGainDown, true
		case 's', 'S':
			return cmdStop, true
		case 'q', 'Q':
			return cmdQuit, true
		}
	}

	return 0, false
}

func statusLine(s status) string {
	state := "idle"
	if s.Playing {
		state = "playing"
	}

	return fmt.Sprintf("%-7s t=%7.3fs  submitted=%5d  gain=%+5.1f dB  cursor=%d/%d",
		state, s.Time, s.Submitted, s.GainDB, s.Cursor, s.Frames)
}
