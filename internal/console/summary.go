package console

import (
	"fmt"
	"io"

	"github.com/jason-s-yu/monopoly/engine"
)

// Summary prints a table summary after every turn.
type Summary struct {
	W io.Writer
}

func (s Summary) Observe(snap engine.Snapshot) {
	PrintSummary(s.W, snap)
}

// PrintSummary writes where every player stands, what they hold and how much they are worth.
func PrintSummary(w io.Writer, snap engine.Snapshot) {
	fmt.Fprintf(w, "==== Summary after turn %d ====\n", snap.Turn)
	for _, p := range snap.Players {
		fmt.Fprintf(w, "%s : $%d (worth $%d)\n", p.Name, p.Cash, p.NetWorth)
		switch {
		case p.Left:
			fmt.Fprintln(w, "\t has left the game")
			continue
		case p.InJail:
			fmt.Fprintf(w, "\t is IN JAIL, but still has $%d\n", p.Cash)
		default:
			fmt.Fprintf(w, "\t is on %s with $%d\n", p.Square, p.Cash)
		}
		if p.JailCards > 0 {
			fmt.Fprintf(w, "\t has %d get-out-of-jail cards\n", p.JailCards)
		}
		if len(p.Assets) == 0 {
			fmt.Fprintln(w, "\t owns nothing :(")
			continue
		}
		fmt.Fprintln(w, "\t owns the following assets:")
		for _, a := range p.Assets {
			fmt.Fprintf(w, "\t\t %s%s\n", a.Name, assetDetail(a))
		}
	}
	fmt.Fprintln(w, "=================")
}

func assetDetail(a engine.AssetView) string {
	switch {
	case a.Mortgaged:
		return " (mortgaged)"
	case a.Hotel:
		return " (hotel)"
	case a.Houses == 1:
		return " (1 house)"
	case a.Houses > 1:
		return fmt.Sprintf(" (%d houses)", a.Houses)
	}
	return ""
}
