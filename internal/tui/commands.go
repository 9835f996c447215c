package tui

import (
	"fmt"
	"regexp"
	"strings"

	"janggi/internal/janggi"
	"janggi/internal/session"
)

// "e7 e6", "e7-e6" and "e7e6" are all moves.
var reMove = regexp.MustCompile(`^([a-i](?:10|[1-9]))[\s-]*([a-i](?:10|[1-9]))$`)

const helpText = `commands:
  e7 e6        move the piece on e7 to e6 (also e7-e6)
  pass         give the turn away
  moves e7     show where the piece on e7 may go
  history      list the moves played
  layout       print the position as a layout string
  new          start a new game
  games        list games
  switch ID    resume the game whose id starts with ID
  help         this text
  quit         leave`

// Commander runs text commands against the current game. The TUI and the
// line mode in cmd/janggi share it.
type Commander struct {
	games *session.Manager
	game  *janggi.Game
	marks janggi.SquareSet
}

func NewCommander(games *session.Manager) (*Commander, error) {
	g, err := games.NewGame()
	if err != nil {
		return nil, err
	}
	return &Commander{games: games, game: g}, nil
}

func (c *Commander) Game() *janggi.Game { return c.game }

// Marks are the squares the last "moves" command highlighted.
func (c *Commander) Marks() janggi.SquareSet { return c.marks }

func (c *Commander) ClearMarks() { c.marks = janggi.SquareSet{} }

// Exec runs one command line and returns what to show the player.
func (c *Commander) Exec(line string) (out []string, quit bool) {
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return nil, false
	}
	if m := reMove.FindStringSubmatch(line); m != nil {
		c.ClearMarks()
		return c.move(func() error { return c.game.MakeMove(m[1], m[2]) }, m[1]+"-"+m[2]), false
	}

	parts := strings.Fields(line)
	switch parts[0] {
	case "quit", "q", "exit":
		return []string{"bye"}, true

	case "help", "?":
		return strings.Split(helpText, "\n"), false

	case "pass":
		c.ClearMarks()
		return c.move(c.game.Pass, "pass"), false

	case "moves":
		if len(parts) != 2 {
			return []string{"usage: moves <square>"}, false
		}
		from, err := janggi.ParseCoord(parts[1])
		if err != nil {
			return []string{err.Error()}, false
		}
		pc, ok := c.game.PieceAt(from)
		if !ok {
			return []string{fmt.Sprintf("no piece on %v", from)}, false
		}
		c.ClearMarks()
		targets := c.game.Targets(from)
		names := make([]string, 0, len(targets))
		for _, t := range targets {
			c.marks.Add(t)
			names = append(names, t.String())
		}
		if len(names) == 0 {
			return []string{fmt.Sprintf("%v %v on %v cannot move", pc.Side, pc.Kind, from)}, false
		}
		return []string{fmt.Sprintf("%v %v on %v: %s", pc.Side, pc.Kind, from, strings.Join(names, " "))}, false

	case "history":
		h := c.game.History()
		if len(h) == 0 {
			return []string{"no moves yet"}, false
		}
		out = make([]string, 0, len(h))
		for i, r := range h {
			out = append(out, fmt.Sprintf("%3d. %s", i+1, describe(r)))
		}
		return out, false

	case "layout":
		return []string{c.game.Layout()}, false

	case "new":
		g, err := c.games.NewGame()
		if err != nil {
			return []string{fmt.Sprintf("new game failed: %v", err)}, false
		}
		c.game = g
		c.ClearMarks()
		return []string{fmt.Sprintf("new game %s, %v to move", shortID(g.ID), g.Turn())}, false

	case "games":
		for _, e := range c.games.List() {
			cur := " "
			if e.Game == c.game {
				cur = "*"
			}
			out = append(out, fmt.Sprintf("%s %s  %3d plies  %s", cur, shortID(e.Game.ID), len(e.Game.History()), status(e.Game)))
		}
		return out, false

	case "switch":
		if len(parts) != 2 {
			return []string{"usage: switch <id>"}, false
		}
		g, err := c.games.Get(parts[1])
		if err != nil {
			return []string{err.Error()}, false
		}
		c.game = g
		c.ClearMarks()
		return []string{fmt.Sprintf("game %s, %s", shortID(g.ID), status(g))}, false
	}
	return []string{fmt.Sprintf("unknown command: %s (try help)", parts[0])}, false
}

func (c *Commander) move(play func() error, what string) []string {
	side := c.game.Turn()
	if err := play(); err != nil {
		return []string{fmt.Sprintf("%v %s rejected: %v", side, what, err)}
	}
	_ = c.games.Touch(c.game.ID)

	out := []string{fmt.Sprintf("%v %s", side, what)}
	st := c.game.State()
	switch {
	case st.Over():
		out = append(out, fmt.Sprintf("checkmate, %v wins", st.Winner))
	case st.Check != janggi.NoSide:
		out = append(out, fmt.Sprintf("%v is in check", st.Check))
	}
	return out
}

func describe(r janggi.Record) string {
	if r.Move.IsPass() {
		return fmt.Sprintf("%v pass", r.Side)
	}
	s := fmt.Sprintf("%v %s %v", r.Side, r.Kind.Label(), r.Move)
	if r.Captured != janggi.KindNone {
		s += " x" + r.Captured.Label()
	}
	if r.Check {
		s += " +"
	}
	return s
}

func status(g *janggi.Game) string {
	st := g.State()
	switch {
	case st.Over():
		return fmt.Sprintf("%v won", st.Winner)
	case st.Check != janggi.NoSide:
		return fmt.Sprintf("%v to move, in check", st.Turn)
	}
	return fmt.Sprintf("%v to move", st.Turn)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
