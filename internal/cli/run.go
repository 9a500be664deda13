// Package cli is the interactive terminal front end: it reads coordinates
// from the player, drives a session, and renders both boards.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"battleship/internal/app"
	"battleship/internal/game"
)

// Run plays one interactive match on the given streams. The human fleet is
// placed at random, as in the classic console game. Returns nil when the
// match ends or the player quits.
func Run(s *app.Session, in io.Reader, out io.Writer) error {
	if !s.State().Placed[app.HumanSide] {
		if err := s.AutoPlaceHumanFleet(); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Match %s: your fleet on the left, your shots on the right.\n", s.ID)
	fmt.Fprintln(out, `Enter a coordinate (e.g. C7), "show" to redraw, or "quit" to end.`)
	render(s, out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nYour turn: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		command := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		switch command {
		case "":
			continue
		case "QUIT":
			fmt.Fprintln(out, "Goodbye.")
			return nil
		case "SHOW":
			render(s, out)
			continue
		}

		coord, err := game.ParseCoord(command)
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid coordinate such as C7.")
			continue
		}

		report, err := s.HumanShot(coord)
		switch {
		case errors.Is(err, game.ErrShotOutOfBounds):
			fmt.Fprintf(out, "%s is off the board.\n", coord)
			continue
		case err != nil:
			return err
		}

		fmt.Fprintf(out, "%s: %s\n", coord, report.Human.Result)
		if report.Human.Result.Outcome == game.AlreadyFired {
			continue
		}
		if reply := report.Computer; reply != nil {
			fmt.Fprintf(out, "Computer fires %s: %s\n", reply.Coord, reply.Result)
		}
		render(s, out)

		if report.State.Phase == game.Finished {
			if report.State.Winner == app.HumanSide {
				fmt.Fprintln(out, "\nYou win!")
			} else {
				fmt.Fprintln(out, "\nThe computer wins.")
			}
			return nil
		}
	}
}

func render(s *app.Session, out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprint(out, SideBySide(FleetLines(s.HumanFleetView()), TargetLines(s.HumanTargetView())))
}
