package main

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// ErrInvalidCommand marks mistakes in player input. They are reported and
// the loop carries on.
var ErrInvalidCommand = errors.New("invalid command")

type commandError struct {
	msg string
}

func (e *commandError) Error() string        { return e.msg }
func (e *commandError) Is(target error) bool { return target == ErrInvalidCommand }

func invalidf(format string, a ...any) error {
	return &commandError{msg: fmt.Sprintf(format, a...)}
}

type commandHandler func(s *GameState, args []string) error

type commandEntry struct {
	verb    string
	aliases []string
	handler commandHandler
}

var (
	commands     []commandEntry
	commandIndex map[string]commandHandler
	verbFolder   = cases.Fold()
)

func init() {
	commands = []commandEntry{
		{"help", nil, cmdShowHelp},
		{"about", nil, cmdAbout},
		{"gc-stats", nil, cmdGCStats},
		{"alloc", nil, cmdAlloc},
		{"look", nil, cmdLook},
		{"move", []string{"go"}, cmdMove},
		{"take", nil, cmdTake},
		{"inventory", []string{"inv"}, cmdInventory},
		{"use", nil, cmdUse},
		{"fight", nil, cmdFight},
		{"save", nil, cmdSave},
		{"load", nil, cmdLoad},
		{"scores", nil, cmdScores},
		{"exit", []string{"quit"}, cmdExit},
	}
	commandIndex = make(map[string]commandHandler)
	for _, entry := range commands {
		commandIndex[entry.verb] = entry.handler
		for _, alias := range entry.aliases {
			commandIndex[alias] = entry.handler
		}
	}
}

func foldVerb(verb string) string {
	return verbFolder.String(verb)
}

func splitCommand(line string) (verb string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return foldVerb(fields[0]), fields[1:]
}

func processCommand(s *GameState, line string) {
	verb, args := splitCommand(line)
	if verb == "" {
		return
	}
	slog.Debug("Dispatching command", "verb", verb, "args", len(args), "room", s.Current.Key)

	handler, ok := commandIndex[verb]
	var err error
	if !ok {
		err = invalidf("Unknown command: %s", verb)
	} else {
		err = handler(s, args)
	}
	if err != nil {
		reportError(s, err)
		return
	}
	if s.IsPlaying {
		s.addScore(ScorePerCommand)
	}
}

func cmdShowHelp(s *GameState, args []string) error {
	verbs := make([]string, 0, len(commands))
	for _, entry := range commands {
		v := entry.verb
		if len(entry.aliases) > 0 {
			v += " (" + strings.Join(entry.aliases, ", ") + ")"
		}
		verbs = append(verbs, v)
	}
	outPrintln(s, "Commands: "+strings.Join(verbs, ", "))
	return nil
}

func cmdAbout(s *GameState, args []string) error {
	outPrintf(s, "%s %s - a console RPG\n", GameName, GameVersion)
	outPrintln(s, "Type 'help' for the list of commands.")
	return nil
}

func cmdGCStats(s *GameState, args []string) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	outPrintf(s, "Memory: used=%d free=%d total=%d gc=%d\n", m.HeapAlloc, m.HeapIdle, m.HeapSys, m.NumGC)
	return nil
}

const allocCount = 10000

// cmdAlloc creates short-lived strings and forces a collection so the heap
// figures can be compared with gc-stats.
func cmdAlloc(s *GameState, args []string) error {
	outPrintf(s, "Allocating %d strings...\n", allocCount)
	garbage := make([]string, 0, allocCount)
	for i := range allocCount {
		garbage = append(garbage, fmt.Sprintf("string_%d_%d", i, time.Now().UnixNano()))
	}
	runtime.KeepAlive(garbage)

	outPrintln(s, "Created. Running the garbage collector...")
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	outPrintf(s, "Memory after GC: used=%d gc=%d\n", m.HeapAlloc, m.NumGC)
	return nil
}

func cmdLook(s *GameState, args []string) error {
	look(s)
	return nil
}

func cmdMove(s *GameState, args []string) error {
	if len(args) == 0 {
		return invalidf("Specify a direction: north, south, east, west")
	}
	dir := strings.ToLower(args[0])
	cur := s.Current

	if keyName, locked := cur.Locks[dir]; locked {
		if !s.Player.HasItem(KindKey, keyName) {
			return invalidf("The door is locked. You need a key.")
		}
		s.Player.RemoveItem(NewKey(keyName))
		outPrintln(s, "🔓 Key used. The door opens.")
	}

	target, ok := cur.Exits[dir]
	if !ok {
		return invalidf("There is no way %s.", dir)
	}
	s.Current = s.World.Rooms[target]
	outPrintf(s, "🚶 You walk into: %s\n", s.Current.Name)
	look(s)
	return nil
}

func cmdTake(s *GameState, args []string) error {
	if len(args) == 0 {
		return invalidf("Specify an item name")
	}
	name := strings.Join(args, " ")
	idx, it := findItem(s.Current.Items, name)
	if it == nil {
		return invalidf("There is no '%s' in this room", name)
	}
	s.Current.Items = removeAt(s.Current.Items, idx)
	s.Player.Inventory = append(s.Player.Inventory, it)
	outPrintf(s, "🎒 Taken: %s\n", it.Name())
	return nil
}

func cmdInventory(s *GameState, args []string) error {
	inv := s.Player.Inventory
	if len(inv) == 0 {
		outPrintln(s, "Inventory is empty.")
		return nil
	}
	grouped := make(map[ItemKind][]string)
	for _, it := range inv {
		grouped[it.Kind()] = append(grouped[it.Kind()], it.Name())
	}
	kinds := make([]string, 0, len(grouped))
	for k := range grouped {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	outPrintln(s, "Inventory:")
	for _, k := range kinds {
		names := grouped[ItemKind(k)]
		sort.Strings(names)
		outPrintf(s, "- %s (%d): %s\n", k, len(names), strings.Join(names, ", "))
	}
	return nil
}

func cmdUse(s *GameState, args []string) error {
	if len(args) == 0 {
		return invalidf("Specify an item to use")
	}
	name := strings.Join(args, " ")
	_, it := findItem(s.Player.Inventory, name)
	if it == nil {
		return invalidf("There is no '%s' in your inventory", name)
	}
	return it.Apply(s)
}

func cmdSave(s *GameState, args []string) error {
	return saveGame(s)
}

func cmdLoad(s *GameState, args []string) error {
	return loadGame(s)
}

func cmdScores(s *GameState, args []string) error {
	return printScores(s)
}

func cmdExit(s *GameState, args []string) error {
	outPrintln(s, "Bye!")
	s.IsPlaying = false
	return nil
}
