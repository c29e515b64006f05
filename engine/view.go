package engine

import (
	"fmt"
	"io"

	"tablut/game"
)

// TextView prints the board after every move, followed by the side to move
// or the result.
func TextView(w io.Writer) View {
	return ViewFunc(func(b *game.Board) {
		fmt.Fprint(w, b.Render(true))
		switch {
		case b.Winner() == game.NoSide:
			fmt.Fprintf(w, "%s to move\n", b.Turn())
		case b.RepeatedPosition():
			fmt.Fprintf(w, "%s win by repetition\n", b.Winner())
		default:
			fmt.Fprintf(w, "%s win\n", b.Winner())
		}
	})
}
