package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

const maxLineWidth = 79

func outWriter(s *GameState) io.Writer {
	if s != nil && s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func outPrint(s *GameState, a ...any) {
	_, _ = fmt.Fprint(outWriter(s), a...)
}

func outPrintln(s *GameState, a ...any) {
	_, _ = fmt.Fprintln(outWriter(s), a...)
}

func outPrintf(s *GameState, format string, a ...any) {
	_, _ = fmt.Fprintf(outWriter(s), format, a...)
}

// wrapWriteLn prints text broken on spaces so no line exceeds maxLineWidth runes.
func wrapWriteLn(s *GameState, text string) {
	for utf8.RuneCountInString(text) > maxLineWidth {
		runes := []rune(text)
		cut := maxLineWidth
		for cut > 0 && runes[cut] != ' ' {
			cut--
		}
		if cut == 0 {
			cut = maxLineWidth
		}
		outPrintln(s, string(runes[:cut]))
		text = strings.TrimLeft(string(runes[cut:]), " ")
	}
	outPrintln(s, text)
}

// reportError shows a failed command to the player. Input mistakes are
// expected; anything else is also logged.
func reportError(s *GameState, err error) {
	if errors.Is(err, ErrInvalidCommand) {
		outPrintf(s, "Error: %v\n", err)
		return
	}
	slog.Warn("Command failed", "error", err)
	outPrintf(s, "Unexpected error: %v\n", err)
}
