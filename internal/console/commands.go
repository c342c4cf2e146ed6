package console

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tovenaar/easel/internal/scene"
)

// Command is one console command: name, argument usage, help line, body.
type Command struct {
	Name string
	Args string
	Help string
	Run  func(c *Console, args []string) error
}

var errUsage = errors.New("wrong arguments")

func usage(cmd *Command) error {
	return fmt.Errorf("%w: usage: %s %s", errUsage, cmd.Name, cmd.Args)
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
		out[i] = f
	}
	return out, nil
}

func parseIDs(args []string) ([]int64, error) {
	out := make([]int64, len(args))
	for i, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an object id", a)
		}
		out[i] = id
	}
	return out, nil
}

// registerBuiltinCommands fills the registry. Kept as one function so the
// help output lists commands in a deliberate order.
func registerBuiltinCommands(c *Console) {
	var cmds []*Command

	add := &Command{
		Name: "add", Args: "<rect|ellipse|line> <left> <top> <width> <height> [fill]",
		Help: "add a shape to the scene",
	}
	add.Run = func(c *Console, args []string) error {
		if len(args) < 5 || len(args) > 6 {
			return usage(add)
		}
		nums, err := parseFloats(args[1:5])
		if err != nil {
			return err
		}
		fill := "#000000"
		if len(args) == 6 {
			fill = args[5]
		}
		_, err = c.editor.AddShape(args[0], fill, scene.Transform{
			Left: nums[0], Top: nums[1], Width: nums[2], Height: nums[3],
		})
		return err
	}
	cmds = append(cmds, add)

	text := &Command{
		Name: "text", Args: "<left> <top> <content...>",
		Help: "add a text object (size derives from content)",
	}
	text.Run = func(c *Console, args []string) error {
		if len(args) < 3 {
			return usage(text)
		}
		nums, err := parseFloats(args[:2])
		if err != nil {
			return err
		}
		content := joinWords(args[2:])
		_, err = c.editor.AddText(content, nums[0], nums[1], c.cfg.Editor.DefaultFontSize)
		return err
	}
	cmds = append(cmds, text)

	list := &Command{Name: "list", Args: "", Help: "list scene objects"}
	list.Run = func(c *Console, args []string) error {
		sc := c.editor.Scene()
		if sc.Len() == 0 {
			c.printf("scene is empty")
			return nil
		}
		for _, id := range sc.IDs() {
			obj, _ := sc.Object(id)
			t := obj.Transform()
			marker := " "
			if c.editor.SelectionManager().Contains(id) {
				marker = "*"
			}
			c.printf("%s#%-3d %-5s at (%g, %g) size %gx%g angle %g",
				marker, id, obj.Kind(), t.Left, t.Top, t.Width, t.Height, t.Angle)
		}
		return nil
	}
	cmds = append(cmds, list)

	state := &Command{Name: "state", Args: "<id>", Help: "print an object's full state"}
	state.Run = func(c *Console, args []string) error {
		if len(args) != 1 {
			return usage(state)
		}
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		obj, ok := c.editor.ObjectByID(ids[0])
		if !ok {
			return fmt.Errorf("object %d: %w", ids[0], scene.ErrUnknownObject)
		}
		props := obj.State()
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			c.printf("  %s = %v", k, props[k])
		}
		return nil
	}
	cmds = append(cmds, state)

	sel := &Command{Name: "select", Args: "<id> [id...]", Help: "select objects (2+ ids form a group)"}
	sel.Run = func(c *Console, args []string) error {
		if len(args) == 0 {
			return usage(sel)
		}
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		return c.editor.SelectionManager().Select(ids...)
	}
	cmds = append(cmds, sel)

	cmds = append(cmds, &Command{
		Name: "deselect", Args: "", Help: "clear the selection",
		Run: func(c *Console, args []string) error {
			c.editor.SelectionManager().ClearSelection()
			return nil
		},
	})

	move := &Command{Name: "move", Args: "<dx> <dy>", Help: "translate the selection"}
	move.Run = func(c *Console, args []string) error {
		if len(args) != 2 {
			return usage(move)
		}
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		return c.editor.Translate(nums[0], nums[1])
	}
	cmds = append(cmds, move)

	scale := &Command{Name: "scale", Args: "<sx> [sy]", Help: "scale the selection"}
	scale.Run = func(c *Console, args []string) error {
		if len(args) < 1 || len(args) > 2 {
			return usage(scale)
		}
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		sy := nums[0]
		if len(nums) == 2 {
			sy = nums[1]
		}
		return c.editor.Scale(nums[0], sy)
	}
	cmds = append(cmds, scale)

	rotate := &Command{Name: "rotate", Args: "<degrees>", Help: "rotate the selection"}
	rotate.Run = func(c *Console, args []string) error {
		if len(args) != 1 {
			return usage(rotate)
		}
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		return c.editor.Rotate(nums[0])
	}
	cmds = append(cmds, rotate)

	resize := &Command{Name: "resize", Args: "<width> <height>", Help: "set the selection's dimensions"}
	resize.Run = func(c *Console, args []string) error {
		if len(args) != 2 {
			return usage(resize)
		}
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		return c.editor.SetDimensions(nums[0], nums[1])
	}
	cmds = append(cmds, resize)

	// grab/drag/release expose the dimension gesture the way a GUI host
	// streams a resize drag.
	cmds = append(cmds, &Command{
		Name: "grab", Args: "", Help: "begin a resize gesture on the selection",
		Run: func(c *Console, args []string) error {
			return c.editor.BeginDimensionChange()
		},
	})

	drag := &Command{Name: "drag", Args: "<width> <height>", Help: "stream an intermediate size (not recorded)"}
	drag.Run = func(c *Console, args []string) error {
		if len(args) != 2 {
			return usage(drag)
		}
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		return c.editor.UpdateDimension(nums[0], nums[1])
	}
	cmds = append(cmds, drag)

	cmds = append(cmds, &Command{
		Name: "release", Args: "", Help: "commit the resize gesture as one undoable change",
		Run: func(c *Console, args []string) error {
			return c.editor.CommitDimensionChange()
		},
	})

	settext := &Command{Name: "settext", Args: "<id> <content...>", Help: "change a text object's content"}
	settext.Run = func(c *Console, args []string) error {
		if len(args) < 2 {
			return usage(settext)
		}
		ids, err := parseIDs(args[:1])
		if err != nil {
			return err
		}
		return c.editor.SetText(ids[0], joinWords(args[1:]))
	}
	cmds = append(cmds, settext)

	del := &Command{Name: "del", Args: "<id> [id...]", Help: "remove objects from the scene"}
	del.Run = func(c *Console, args []string) error {
		if len(args) == 0 {
			return usage(del)
		}
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := c.editor.RemoveObject(id); err != nil {
				return err
			}
		}
		return nil
	}
	cmds = append(cmds, del)

	cmds = append(cmds, &Command{
		Name: "copy", Args: "", Help: "copy the selection to the clipboard",
		Run: func(c *Console, args []string) error {
			n, err := c.editor.ClipboardManager().CopySelection()
			if err != nil {
				return err
			}
			if n == 0 {
				c.printf("nothing selected")
				return nil
			}
			c.printf("copied %d object(s)", n)
			return nil
		},
	})

	cmds = append(cmds, &Command{
		Name: "paste", Args: "", Help: "paste clipboard objects into the scene",
		Run: func(c *Console, args []string) error {
			_, err := c.editor.ClipboardManager().Paste()
			return err
		},
	})

	cmds = append(cmds, &Command{
		Name: "undo", Args: "", Help: "revert the last change",
		Run: func(c *Console, args []string) error {
			if _, err := c.editor.Undo(); err != nil {
				return err
			}
			c.printf("undone")
			return nil
		},
	})

	cmds = append(cmds, &Command{
		Name: "redo", Args: "", Help: "reapply the last undone change",
		Run: func(c *Console, args []string) error {
			if _, err := c.editor.Redo(); err != nil {
				return err
			}
			c.printf("redone")
			return nil
		},
	})

	cmds = append(cmds, &Command{
		Name: "history", Args: "", Help: "show the undo stack",
		Run: func(c *Console, args []string) error {
			entries := c.editor.HistoryManager().Entries()
			if len(entries) == 0 {
				c.printf("history is empty")
				return nil
			}
			for i, entry := range entries {
				marker := " "
				if !entry.Applied {
					marker = "^" // On the redo side
				}
				c.printf("%s%2d %-9s %s", marker, i+1, entry.Op, entry.Label)
			}
			return nil
		},
	})

	cmds = append(cmds, &Command{
		Name: "help", Args: "[command]", Help: "show command help",
		Run: func(c *Console, args []string) error {
			if len(args) == 1 {
				cmd, ok := c.commands[args[0]]
				if !ok {
					return fmt.Errorf("unknown command %q", args[0])
				}
				c.printf("%s %s\n  %s", cmd.Name, cmd.Args, cmd.Help)
				return nil
			}
			for _, name := range c.order {
				cmd := c.commands[name]
				c.printf("%-9s %s", cmd.Name, cmd.Help)
			}
			return nil
		},
	})

	cmds = append(cmds, &Command{
		Name: "quit", Args: "", Help: "exit the console",
		Run: func(c *Console, args []string) error {
			c.quit = true
			return nil
		},
	})

	for _, cmd := range cmds {
		c.Register(cmd)
	}
}

// joinWords reassembles whitespace-split words into content. Consecutive
// whitespace in the original input collapses, which is acceptable for a
// debugging console.
func joinWords(words []string) string {
	return strings.Join(words, " ")
}
