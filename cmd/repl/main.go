// Command repl is an interactive terminal session for typing Vietnamese
// with the engine package: each keystroke is read raw (no line buffering)
// and the composed word is redrawn in place.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/username/vicompose/internal/engine"
)

const (
	keyBackspace = 127
	keyCtrlC     = 3
	keyCtrlD     = 4
	keyEnter     = '\r'
)

func main() {
	methodName := "Telex"
	if len(os.Args) > 1 {
		methodName = os.Args[1]
	}
	if _, ok := engine.DefinitionByName(methodName); !ok {
		fmt.Fprintf(os.Stderr, "Unknown typing method %q - use telex or vni\n", methodName)
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		runPipeMode(methodName)
		return
	}

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to enter raw mode:", err)
		os.Exit(1)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	fmt.Printf("vicompose repl - %s - Ctrl+D to exit\r\n", methodName)

	buf := engine.NewConfiguredBuffer(&engine.Config{MethodName: methodName, AccentStyle: engine.AccentNew})
	var committed strings.Builder

	reader := bufio.NewReader(os.Stdin)
	for {
		r, _, err := reader.ReadRune()
		if err != nil {
			break
		}

		switch r {
		case keyCtrlC, keyCtrlD:
			term.Restore(int(os.Stdin.Fd()), oldState)
			fmt.Printf("\r\n%s\r\n", committed.String()+buf.View())
			return

		case keyBackspace:
			buf.Backspace()

		case keyEnter, ' ':
			committed.WriteString(buf.View())
			committed.WriteRune(' ')
			buf.Clear()

		default:
			buf.Push(r)
		}

		redraw(committed.String(), buf.View())
	}

	term.Restore(int(os.Stdin.Fd()), oldState)
	fmt.Printf("\r\n%s\r\n", committed.String()+buf.View())
}

// redraw clears the current line and reprints the committed text followed
// by the word still being composed.
func redraw(committed, preedit string) {
	fmt.Print("\r\033[K")
	fmt.Print(committed + preedit)
}

// runPipeMode handles non-interactive input (stdin redirected from a
// file or pipe), composing each line as a sequence of words separated by
// spaces and printing the result, since raw terminal mode has nothing to
// attach to.
func runPipeMode(methodName string) {
	def, _ := engine.DefinitionByName(methodName)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		rendered, _ := engine.TransformBuffer(def, scanner.Text())
		fmt.Println(rendered)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "Error reading from stdin:", err)
		os.Exit(1)
	}
}
