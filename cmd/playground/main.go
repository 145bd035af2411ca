package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/typelist"
)

// sample is the list the playground works on: a float64 over a string over
// two ints, so shadowing is visible in the layout.
type sample = typelist.Cons[float64, typelist.Cons[string, typelist.Cons[int, typelist.Cons[int, typelist.Nil]]]]

func newSample() sample {
	return typelist.Add(typelist.Add(typelist.Add(typelist.Add(typelist.New(), 7), 42), "hello"), 3.14)
}

func main() {
	var (
		demo        = flag.Bool("demo", false, "Print the sample list layout and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Log slot resolution at debug level")
	)
	flag.Parse()

	if *debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		typelist.SetLogger(l)
	}

	switch {
	case *interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *demo:
		runDemo()
	default:
		fmt.Fprintln(os.Stderr, "Usage: playground -demo          (print layout table)")
		fmt.Fprintln(os.Stderr, "       playground -i  [-debug]  (interactive mode)")
		os.Exit(1)
	}
}

func runDemo() {
	l := newSample()

	fmt.Printf("List: %T\n", l)
	fmt.Printf("Slots: %d\n\n", typelist.Len[sample]())

	fmt.Printf("%-6s %-10s %-8s %-6s %s\n", "DEPTH", "TYPE", "OFFSET", "SIZE", "NOTE")
	for _, s := range typelist.Describe[sample]() {
		note := ""
		if s.Shadowed {
			note = "shadowed"
		}
		fmt.Printf("%-6d %-10s %-8d %-6d %s\n", s.Depth, s.Type, s.Offset, s.Size, note)
	}

	fmt.Println()
	fmt.Printf("Get[float64] = %v\n", *typelist.MustGet[float64](&l))
	fmt.Printf("Get[string]  = %q\n", *typelist.MustGet[string](&l))
	fmt.Printf("Get[int]     = %v  (most recently added wins)\n", *typelist.MustGet[int](&l))

	typelist.Set(&l, 99)
	fmt.Printf("after Set(99): Get[int] = %v\n", *typelist.MustGet[int](&l))
}
