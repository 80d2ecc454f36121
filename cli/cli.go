// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the Scoundrel engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/nathoo/scoundrel/engine"
	"github.com/nathoo/scoundrel/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop. It shows the title, describes the first room,
// then loops: prompt → input → dispatch → output.
func (c *CLI) Run() {
	if title := c.Engine.Settings.Title; title != "" {
		c.printLine(title)
		c.printLine("")
	}
	c.printLine(c.Engine.State.Message)

	result := c.Engine.Step("look")
	c.printResult(result)

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)

		if c.Trace {
			c.printTrace(result)
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/new":
		c.cmdNew(arg)

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdNew(arg string) {
	maxHP := 0
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			c.printSystem(fmt.Sprintf("Max HP must be a positive number, got %q.", arg))
			return
		}
		maxHP = n
	}
	result := c.Engine.NewGame(maxHP)
	c.printResult(result)
	c.printResult(c.Engine.Step("look"))
}

// HelpLines lists the commands shared by every front end.
var HelpLines = []string{
	"System:",
	"  /new [hp]     Deal a new game, optionally with a different max HP",
	"  /quit         Exit game",
	"  /help         Show this help",
	"  /state        Debug: dump current state",
	"  /trace        Toggle debug trace output",
	"",
	"Game commands (<card> is a slot number 1-4 or a name like orc, potion, 7):",
	"  fight <card> [bare|weapon] (f)  Fight a monster",
	"  equip <card> (e)                Wield a weapon, discarding the old one",
	"  drink <card> (p)                Drink a potion",
	"  flee (r)                        Send the whole room to the bottom of the deck",
	"  look (l)                        Describe the room",
	"  weapon (w)                      Show your weapon and its kills",
	"  new [hp]                        Start over",
	"  again (g)                       Repeat your last command",
}

func (c *CLI) cmdHelp() {
	for _, line := range HelpLines {
		c.printLine(line)
	}
}

// StateLines renders the debug dump shown by /state.
func StateLines(e *engine.Engine) []string {
	s := e.State
	lines := []string{
		fmt.Sprintf("Game: %s", s.GameID),
		fmt.Sprintf("Seed: %d  RNG draws: %d", e.RNG.Seed(), e.RNG.Position()),
		fmt.Sprintf("Status: %s", s.Status),
		fmt.Sprintf("HP: %d/%d", s.HP, s.MaxHP),
		fmt.Sprintf("Deck: %d  Room: %d  Resolved: %d", len(s.Deck), len(s.Room), len(s.Resolved)),
		fmt.Sprintf("Actions: %d  Potion used: %t  Fled last room: %t",
			s.Turn.Actions, s.Turn.PotionUsed, s.Turn.FledLastRoom),
		fmt.Sprintf("Last action: %s  Last potion: %d", s.LastAction, s.LastPotion),
		fmt.Sprintf("Intents: %d", s.Intents),
	}
	if s.Status != types.StatusPlaying {
		lines = append(lines, fmt.Sprintf("Score: %d", s.Score))
	}
	return lines
}

func (c *CLI) cmdState() {
	for _, line := range StateLines(c.Engine) {
		c.printSystem(line)
	}
}

// TraceLines renders the events of a result for /trace.
func TraceLines(result types.Result) []string {
	if len(result.Events) == 0 {
		return nil
	}
	lines := []string{fmt.Sprintf("[trace] Events: %d", len(result.Events))}
	for _, e := range result.Events {
		lines = append(lines, fmt.Sprintf("[trace]   %s %s", e.Type, formatData(e.Data)))
	}
	return lines
}

// formatData prints event data with sorted keys.
func formatData(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, data[k])
	}
	return strings.Join(parts, " ")
}

func (c *CLI) printTrace(result types.Result) {
	for _, line := range TraceLines(result) {
		c.printSystem(line)
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
