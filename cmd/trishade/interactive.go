package main

import (
	"bufio"
	"flag"
	"fmt"
	"strings"

	"github.com/example/trishade/internal/clipboard"
	"github.com/example/trishade/internal/export"
	"github.com/example/trishade/internal/scene"
)

// commandList collects repeated -e flags.
type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, "; ")
}

func (c *commandList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

type interactiveCmd struct {
	*root
	fs      *flag.FlagSet
	execs   commandList
	output  string
	surface surfaceFlags

	session *headless
}

func (c *interactiveCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	c := &interactiveCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.Var(&c.execs, "e", "execute a command without reading stdin (may be specified multiple times)")
	fs.StringVar(&c.output, "output", r.config.Output, "default file for the save command")
	c.surface.register(fs, r.config)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *interactiveCmd) Run() error {
	settings, err := c.surface.resolve()
	if err != nil {
		return err
	}
	c.session = newHeadless(settings, nil)

	if len(c.execs) > 0 {
		for _, line := range c.execs {
			done, err := c.executeLine(line)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}

	fmt.Fprintln(c.stdout, "Enter commands (type 'help' for a list, 'exit' to quit)")
	scanner := bufio.NewScanner(c.stdin)
	for {
		fmt.Fprint(c.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		done, err := c.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(c.stderr, err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}

// executeLine runs one line and reports whether the session should end.
func (c *interactiveCmd) executeLine(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "exit", "quit":
		return true, nil
	case "help":
		c.printHelp()
		return false, nil
	case "list":
		c.printList()
		return false, nil
	case "dump":
		return false, scene.WriteScript(c.stdout, c.session.scene.Triangles())
	case "save":
		path := c.output
		if len(fields) > 1 {
			path = fields[1]
		}
		if path == "" {
			return false, fmt.Errorf("save requires a file name")
		}
		if err := export.Save(path, c.session.canvas.Clone()); err != nil {
			return false, fmt.Errorf("failed to save %s: %w", path, err)
		}
		fmt.Fprintf(c.stdout, "saved %s\n", path)
		c.notifySave(path)
		return false, nil
	case "copy":
		img := c.session.canvas.Clone()
		if err := clipboard.WriteImage(img); err != nil {
			return false, fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(c.stdout, "image copied to clipboard")
		c.notifyCopy("scene", img)
		return false, nil
	}

	cmd, err := scene.ParseCommand(line)
	if err != nil {
		return false, err
	}
	before := c.session.scene.Len()
	if err := c.session.scene.Dispatch(cmd); err != nil {
		return false, err
	}
	if _, ok := cmd.(scene.AddPoint); ok {
		if n := c.session.scene.Len(); n > before {
			fmt.Fprintf(c.stdout, "committed triangle %d\n", n-1)
		} else {
			fmt.Fprintf(c.stdout, "point %d of 3\n", len(c.session.scene.Pending()))
		}
	}
	return false, nil
}

func (c *interactiveCmd) printList() {
	snap := c.session.scene.Snapshot()
	if len(snap.Triangles) == 0 {
		fmt.Fprintln(c.stdout, "no triangles")
	}
	for i, t := range snap.Triangles {
		marker := " "
		if i == snap.Selected {
			marker = "*"
		}
		fmt.Fprintf(c.stdout, "%s %2d:", marker, i)
		for _, v := range t.Vertices {
			fmt.Fprintf(c.stdout, " (%g,%g %s)", v.X, v.Y, v.Color.Hex())
		}
		if t.EdgeSet {
			fmt.Fprintf(c.stdout, " edge %s", t.Edge.Hex())
		}
		fmt.Fprintln(c.stdout)
	}
	if len(snap.Pending) > 0 {
		fmt.Fprintf(c.stdout, "pending: %d of 3 points\n", len(snap.Pending))
	}
}

func (c *interactiveCmd) printHelp() {
	fmt.Fprint(c.stdout, `commands:
  point X Y            add a point; every third point commits a triangle
  vertex T V #RRGGBB   recolor vertex V (0-2) of triangle T
  edge T #RRGGBB       recolor the edges of triangle T
  delete T             remove triangle T
  select T|none        change the selection
  clear                remove everything
  list                 show the triangles
  dump                 print a script that rebuilds the scene
  save [FILE]          write the surface (.png or .pdf)
  copy                 copy the surface to the clipboard
  exit                 leave
`)
}
