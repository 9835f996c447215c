package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"

	"janggi/internal/janggi"
	"janggi/internal/session"
	"janggi/internal/tui"
)

func main() {
	// Flags (env fallbacks).
	layout := flag.String("layout", getenv("JANGGI_LAYOUT", ""), "starting layout (default: standard setup)")
	mate := flag.String("mate", getenv("JANGGI_MATE", "general"), "checkmate rule: general or any")
	logPath := flag.String("log", getenv("JANGGI_LOG", ""), "write JSON logs to this file")
	debug := flag.Bool("debug", getenb("JANGGI_DEBUG", false), "log every move")
	dump := flag.Bool("dump", false, "print the starting position and exit")
	flag.Parse()

	rule, err := parseMate(*mate)
	fatalIf(err, "mate")

	logger, closeLog, err := newLogger(*logPath, *debug)
	fatalIf(err, "log")
	defer closeLog()

	games := session.NewManager(janggi.Config{Layout: *layout, Mate: rule, Logger: logger})
	cmd, err := tui.NewCommander(games)
	fatalIf(err, "new game")

	if *dump {
		dumpGame(os.Stdout, cmd.Game())
		return
	}

	if term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd()) {
		fatalIf(tui.Run(cmd), "tui")
		return
	}
	fatalIf(lineMode(os.Stdin, os.Stdout, cmd), "input")
}

// lineMode reads one command per line, for pipes and scripts.
func lineMode(r io.Reader, w io.Writer, cmd *tui.Commander) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out, quit := cmd.Exec(sc.Text())
		for _, s := range out {
			fmt.Fprintln(w, s)
		}
		if quit {
			return nil
		}
	}
	return sc.Err()
}

func dumpGame(w io.Writer, g *janggi.Game) {
	fmt.Fprintln(w, "Layout:", g.Layout())
	fmt.Fprint(w, tui.RenderBoard(g, janggi.SquareSet{}))
	for _, side := range []janggi.Side{janggi.Blue, janggi.Red} {
		fmt.Fprintf(w, "%v: %d pieces, %d reachable points\n", side, len(g.PiecesOf(side)), g.Reachable(side).Len())
	}
	st := g.State()
	fmt.Fprintf(w, "Turn: %v  Check: %v  Status: %v\n", st.Turn, st.Check, st.Status)
}

func parseMate(s string) (janggi.MateRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "general", "":
		return janggi.MateGeneralMobility, nil
	case "any":
		return janggi.MateAnyMove, nil
	}
	return 0, fmt.Errorf("invalid mate rule %q; valid: general, any", s)
}

// newLogger logs JSON to path. The terminal belongs to the board, so with no
// path everything is discarded.
func newLogger(path string, debug bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	opts := slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return slog.New(slog.NewJSONHandler(f, &opts)), func() { f.Close() }, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func fatalIf(err error, label string) {
	if err != nil {
		log.Fatalf("%s: %v", label, err)
	}
}
