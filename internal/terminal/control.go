package terminal

import (
	"fmt"
	"os"
)

// Control rewrites a small block of status lines in place using ANSI escape
// sequences. It tracks how many lines the previous render emitted so callers
// just hand it the current block.
type Control struct {
	lastLines int
}

func NewControl() *Control {
	return &Control{}
}

// IsTerminal reports whether stdout is a terminal.
func (c *Control) IsTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	// Character device means an interactive terminal on every platform we run on.
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

func (c *Control) moveCursorUp(lines int) {
	if lines <= 0 {
		return
	}
	fmt.Printf("\033[%dA", lines)
}

func (c *Control) clearLine() {
	fmt.Print("\033[2K\r")
}

// Render prints the lines, overwriting the block from the previous Render
// call. When output is piped the lines are printed normally instead.
func (c *Control) Render(lines []string) {
	if !c.IsTerminal() {
		for _, line := range lines {
			fmt.Println(line)
		}
		return
	}

	c.moveCursorUp(c.lastLines)
	for _, line := range lines {
		c.clearLine()
		fmt.Println(line)
	}

	// A shrinking block leaves stale lines behind; blank them out and
	// reposition so the next render starts at the right row.
	if extra := c.lastLines - len(lines); extra > 0 {
		for i := 0; i < extra; i++ {
			c.clearLine()
			fmt.Println()
		}
		c.moveCursorUp(extra)
	}

	c.lastLines = len(lines)
}

// Done finalizes the current block so the next Render starts fresh below it.
func (c *Control) Done() {
	c.lastLines = 0
}
