package cli

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"battleship/internal/game"
)

// FleetLines renders the player's own board: ship initials, X for incoming
// hits, O for misses.
func FleetLines(v game.FleetView) []string {
	return renderLines(v.Width(), v.Height(), func(c game.Coord) string {
		if m, ok := v.MarkAt(c); ok {
			if m == game.MarkHit {
				return "X"
			}
			return "O"
		}
		if name, ok := v.ShipAt(c); ok && name != "" {
			return strings.ToUpper(name[:1])
		}
		return "."
	})
}

// TargetLines renders what the player knows about the opponent: X for hits,
// O for misses, nothing else.
func TargetLines(v game.TargetView) []string {
	return renderLines(v.Width(), v.Height(), func(c game.Coord) string {
		if m, ok := v.MarkAt(c); ok {
			if m == game.MarkHit {
				return "X"
			}
			return "O"
		}
		return "."
	})
}

// SideBySide joins two equally tall blocks of lines with a gutter, for the
// classic fleet-next-to-target layout.
func SideBySide(left, right []string) string {
	var b strings.Builder
	for i := range left {
		b.WriteString(left[i])
		b.WriteString("      ")
		if i < len(right) {
			b.WriteString(right[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderLines(width, height int, cell func(game.Coord) string) []string {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 2, 0, 1, ' ', 0)

	fmt.Fprint(tw, "\t")
	for col := 0; col < width; col++ {
		fmt.Fprintf(tw, "%d\t", col+1)
	}
	fmt.Fprint(tw, "\n")

	for row := 0; row < height; row++ {
		fmt.Fprintf(tw, "%c\t", rowLabel(row))
		for col := 0; col < width; col++ {
			fmt.Fprintf(tw, "%s\t", cell(game.C(col, row)))
		}
		fmt.Fprint(tw, "\n")
	}
	tw.Flush()
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func rowLabel(row int) rune {
	if row < 26 {
		return rune('A' + row)
	}
	return '?'
}
