package main

import (
	"fmt"

	"github.com/fwojciec/jobscrape"
)

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	for _, u := range c.URLs {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", jobscrape.DetectSite(u), u)
	}
	return nil
}
