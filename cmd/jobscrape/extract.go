package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/jobscrape"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.File, err)
	}

	p, err := deps.Builder.BuildPayload(c.URL, string(data))
	if werr := writeResult(deps, c.URL, jobscrape.NewScrapeResponse(p, err)); werr != nil {
		return werr
	}
	return err
}
