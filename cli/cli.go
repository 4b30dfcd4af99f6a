// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the Shmoopland engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/nathoo/shmoopland/engine"
	"github.com/nathoo/shmoopland/engine/save"
	"github.com/nathoo/shmoopland/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Game      *engine.Game
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	EchoInput bool // echo each input line after the prompt (for script playback)

	lines chan string
	sigc  chan os.Signal
}

// New creates a CLI wired to the given game.
func New(g *engine.Game, saveDir string) *CLI {
	if saveDir == "" {
		home, _ := os.UserHomeDir()
		saveDir = filepath.Join(home, ".shmoopland", "saves")
	}
	return &CLI{
		Game:    g,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: saveDir,
	}
}

// Run starts the game loop: describe the start, then prompt -> input ->
// dispatch -> output. Interrupts at the prompt route through the quit
// confirmation; interrupts inside a conversation end only that
// conversation.
func (c *CLI) Run() {
	c.printLine("Welcome to Shmoopland!")
	c.printLine("")
	c.printResult(c.Game.Step("look"))

	c.lines = make(chan string)
	go func() {
		scanner := bufio.NewScanner(c.In)
		for scanner.Scan() {
			c.lines <- scanner.Text()
		}
		close(c.lines)
	}()

	c.sigc = make(chan os.Signal, 1)
	signal.Notify(c.sigc, os.Interrupt)
	defer signal.Stop(c.sigc)

	for {
		c.print("> ")

		var input string
		select {
		case line, ok := <-c.lines:
			if !ok {
				c.Game.Close()
				return
			}
			input = strings.TrimSpace(line)
		case <-c.sigc:
			c.printLine("")
			input = "quit"
		}

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

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				c.Game.Close()
				return
			}
			continue
		}

		result := c.Game.Step(input)
		c.printResult(result)
		if result.GameOver {
			return
		}

		if conv := c.Game.TakeConversation(); conv != nil {
			c.runConversation(conv)
		}
	}
}

// runConversation drives the nested dialogue loop. The conversation
// owns the input until a farewell, EOF, or interrupt ends it; the outer
// game loop resumes afterwards.
func (c *CLI) runConversation(conv *engine.Conversation) {
	for {
		c.print("say> ")
		select {
		case line, ok := <-c.lines:
			if !ok {
				conv.End()
				return
			}
			reply, done := conv.Say(line)
			if reply != "" {
				c.printLine(reply)
			}
			if done {
				return
			}
		case <-c.sigc:
			conv.End()
			c.printLine("")
			c.printLine("(You end the conversation.)")
			return
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

	case "/save":
		c.cmdSave(arg)

	case "/load":
		c.cmdLoad(arg)

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(name string) {
	if name == "" {
		name = "quicksave"
	}

	data, err := save.Capture(c.Game)
	if err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	if err := os.MkdirAll(c.SaveDir, 0o755); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	path := filepath.Join(c.SaveDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	c.printSystem(fmt.Sprintf("Game saved to %s.", name))
}

func (c *CLI) cmdLoad(name string) {
	if name == "" {
		name = "quicksave"
	}

	path := filepath.Join(c.SaveDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	sd, err := save.Load(data)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	save.Apply(c.Game, sd)
	c.printSystem(fmt.Sprintf("Game loaded from %s.", name))
	c.printResult(c.Game.Step("look"))
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /save [name]  - Save game (default: quicksave)",
		"  /load [name]  - Load game (default: quicksave)",
		"  /quit         - Exit game",
		"  /help         - Show this help",
		"  /state        - Dump current state",
		"",
		"Game commands:",
		"  look                  - Describe where you are",
		"  examine <thing>       - Look closely at something",
		"  go <dir>              - Move (or just type n/s/e/w/u/d)",
		"  take/get <item>       - Pick something up",
		"  drop <item>           - Put something down",
		"  talk to <npc>         - Start a conversation (say 'bye' to end)",
		"  inventory (inv)       - Check what you're carrying",
		"  quests / quest <id>   - Review or start quests",
		"  skills / train <s>    - Review or practice skills",
		"  recipes / craft <r>   - Craft items",
		"  quit                  - Leave the game",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	snap := c.Game.GetState()
	c.printSystem(fmt.Sprintf("Location: %s", snap.Location))
	c.printSystem(fmt.Sprintf("Inventory: %v", snap.Inventory))
	c.printSystem(fmt.Sprintf("Experience: %d", c.Game.World().Experience))
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
