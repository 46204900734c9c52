package main

import (
	"fmt"
	"io"
)

// Run executes the sanitize command.
func (c *SanitizeCmd) Run(deps *Dependencies) error {
	data, err := io.ReadAll(deps.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	if c.Text {
		fmt.Fprintln(deps.Stdout, deps.Sanitizer.Text(string(data)))
		return nil
	}
	fmt.Fprintln(deps.Stdout, deps.Sanitizer.Sanitize(string(data)))
	return nil
}
