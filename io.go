package main

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

func look(s *GameState) {
	r := s.Current
	outPrintf(s, "📍 === %s ===\n", r.Name)
	wrapWriteLn(s, r.Description)

	if exits := r.VisibleExits(); len(exits) > 0 {
		outPrintf(s, "Exits: %s\n", strings.Join(exits, ", "))
	}
	if len(r.Items) > 0 {
		names := make([]string, 0, len(r.Items))
		for _, it := range r.Items {
			names = append(names, it.Name())
		}
		outPrintf(s, "📦 Items: %s\n", strings.Join(names, ", "))
	}
	if r.Monster != nil {
		outPrintf(s, "👹 Monster here: %s (level %d, HP %d)\n", r.Monster.Name, r.Monster.Level, displayHP(r.Monster.HP))
	}
}

// lineReader reads player commands. On a terminal it edits the line in
// raw mode with history on the arrow keys; otherwise it reads plain lines.
type lineReader struct {
	buffered *bufio.Reader
	tty      *os.File
}

func newLineReader(in io.Reader, headless bool) *lineReader {
	lr := &lineReader{buffered: bufio.NewReader(in)}
	if f, ok := in.(*os.File); ok && !headless && term.IsTerminal(int(f.Fd())) {
		lr.tty = f
	}
	return lr
}

// readLine returns io.EOF once input is exhausted; any text read before
// the end is returned with it.
func (lr *lineReader) readLine(s *GameState, prompt string) (string, error) {
	outPrint(s, prompt)
	if lr.tty == nil {
		return lr.readPlain()
	}

	fd := int(lr.tty.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return lr.readPlain()
	}
	defer func() { _ = term.Restore(fd, oldState) }()
	return lr.readRaw(s)
}

func (lr *lineReader) readPlain() (string, error) {
	line, err := lr.buffered.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

func (lr *lineReader) readRaw(s *GameState) (string, error) {
	var lineRunes []rune
	histIdx := s.HistoryCount

	erase := func() {
		for range lineRunes {
			outPrint(s, "\b \b")
		}
	}

	for {
		buf := make([]byte, 4)
		n, err := lr.tty.Read(buf)
		if err != nil || n == 0 {
			outPrint(s, "\r\n")
			if len(lineRunes) > 0 {
				return string(lineRunes), nil
			}
			return "", io.EOF
		}
		b := buf[0]

		switch {
		case b == '\r' || b == '\n':
			outPrint(s, "\r\n")
			line := string(lineRunes)
			s.remember(line)
			return line, nil

		case b == '\x04': // Ctrl-D
			outPrint(s, "\r\n")
			return "", io.EOF

		case b == '\x7f' || b == '\x08':
			if len(lineRunes) > 0 {
				lineRunes = lineRunes[:len(lineRunes)-1]
				outPrint(s, "\b \b")
			}

		case b == '\x1b': // arrow keys arrive as ESC [ A/B
			seq := buf[1:n]
			if len(seq) < 2 {
				rest := make([]byte, 2)
				m, _ := lr.tty.Read(rest)
				seq = append(seq, rest[:m]...)
			}
			if len(seq) < 2 || seq[0] != '[' {
				continue
			}
			switch seq[1] {
			case 'A':
				if histIdx > 0 && histIdx > s.HistoryCount-MaxHistory {
					erase()
					histIdx--
					lineRunes = []rune(s.History[histIdx%MaxHistory])
					outPrint(s, string(lineRunes))
				}
			case 'B':
				if histIdx < s.HistoryCount {
					erase()
					histIdx++
					lineRunes = nil
					if histIdx < s.HistoryCount {
						lineRunes = []rune(s.History[histIdx%MaxHistory])
					}
					outPrint(s, string(lineRunes))
				}
			}

		default:
			if b >= ' ' {
				r, _ := utf8.DecodeRune(buf[:n])
				if r != utf8.RuneError {
					lineRunes = append(lineRunes, r)
					outPrint(s, string(r))
				}
			}
		}
	}
}

// runLoop feeds commands to the interpreter until the game stops or input
// runs out.
func runLoop(s *GameState, lr *lineReader) {
	for s.IsPlaying {
		line, err := lr.readLine(s, "> ")
		if line != "" {
			processCommand(s, line)
		}
		if err != nil {
			if err != io.EOF {
				outPrintf(s, "Input error: %v\n", err)
			}
			return
		}
	}
}
