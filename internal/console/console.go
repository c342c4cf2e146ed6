// Package console is the interactive line shell over the editor core. It
// stands in for the GUI host: it parses commands from stdin, drives editor
// operations, and prints event notices, without rendering anything.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tovenaar/easel/internal/config"
	"github.com/tovenaar/easel/internal/core"
	"github.com/tovenaar/easel/internal/event"
	"github.com/tovenaar/easel/internal/logger"
)

const prompt = "easel> "

// Options configure a console instance.
type Options struct {
	Input      io.Reader
	Output     io.Writer
	ScriptPath string // Commands run before going interactive
	Batch      bool   // Exit after the script instead of going interactive
}

// Console owns the run loop and the command registry.
type Console struct {
	cfg    *config.Config
	editor *core.Editor
	events *event.Manager

	in     io.Reader
	out    io.Writer
	script string
	batch  bool

	commands map[string]*Command
	order    []string // Registration order, for help
	quit     bool
}

// New creates a console wired to a fresh editor.
func New(cfg *config.Config, opts Options) *Console {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	eventManager := event.NewManager()
	editor := core.NewEditor(cfg.Editor)
	editor.SetEventManager(eventManager)

	c := &Console{
		cfg:      cfg,
		editor:   editor,
		events:   eventManager,
		in:       opts.Input,
		out:      opts.Output,
		script:   opts.ScriptPath,
		batch:    opts.Batch,
		commands: make(map[string]*Command),
	}
	registerBuiltinCommands(c)
	c.subscribeEvents()
	return c
}

// Editor exposes the underlying editor, mainly for tests.
func (c *Console) Editor() *core.Editor { return c.editor }

// Register adds a command to the registry. Re-registering a name replaces
// the previous command.
func (c *Console) Register(cmd *Command) {
	if _, exists := c.commands[cmd.Name]; !exists {
		c.order = append(c.order, cmd.Name)
	}
	c.commands[cmd.Name] = cmd
}

// Run executes the script file, if any, then reads commands interactively
// until quit or EOF.
func (c *Console) Run() error {
	c.events.Dispatch(event.TypeAppReady, event.AppReadyData{})

	if c.script != "" {
		if err := c.runScript(c.script); err != nil {
			return err
		}
		if c.batch || c.quit {
			c.events.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			return nil
		}
	}

	scanner := bufio.NewScanner(c.in)
	for !c.quit {
		fmt.Fprint(c.out, prompt)
		if !scanner.Scan() {
			break
		}
		c.Execute(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	c.events.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	return nil
}

// runScript feeds each non-empty, non-comment line of the file through the
// dispatcher.
func (c *Console) runScript(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	logger.InfoTagf("console", "Console: running script %s", path)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() && !c.quit {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c.Execute(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

// Execute parses one input line and dispatches it. Command errors are
// printed, not returned: the loop keeps running.
func (c *Console) Execute(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name, args := fields[0], fields[1:]

	cmd, ok := c.commands[name]
	if !ok {
		fmt.Fprintf(c.out, "unknown command %q (try 'help')\n", name)
		return
	}
	if err := cmd.Run(c, args); err != nil {
		fmt.Fprintf(c.out, "%s: %v\n", name, err)
		logger.DebugTagf("console", "Console: command %q failed: %v", name, err)
	}
}

// printf writes a formatted line to the console output.
func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// subscribeEvents prints notices for bus events, the status-bar analog of
// a GUI host.
func (c *Console) subscribeEvents() {
	c.events.Subscribe(event.TypeObjectAdded, func(e event.Event) bool {
		data := e.Data.(event.ObjectAddedData)
		c.printf("+ %s #%d", data.Kind, data.ID)
		return false
	})
	c.events.Subscribe(event.TypeObjectRemoved, func(e event.Event) bool {
		data := e.Data.(event.ObjectRemovedData)
		c.printf("- object #%d", data.ID)
		return false
	})
	c.events.Subscribe(event.TypeSelectionChanged, func(e event.Event) bool {
		data := e.Data.(event.SelectionChangedData)
		c.printf("selected %v", data.IDs)
		return false
	})
	c.events.Subscribe(event.TypeSelectionCleared, func(e event.Event) bool {
		c.printf("selection cleared")
		return false
	})
	c.events.Subscribe(event.TypeHistoryChanged, func(e event.Event) bool {
		data := e.Data.(event.HistoryChangedData)
		logger.DebugTagf("console", "Console: history %q undo=%v redo=%v", data.Label, data.CanUndo, data.CanRedo)
		return false
	})
}
