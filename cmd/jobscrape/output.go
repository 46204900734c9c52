package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/fs"
	"github.com/fwojciec/jobscrape/gemini"
)

// writeResult prints one scrape outcome in the configured format.
// JSON output prints the response envelope as is; the other formats
// report failures on stderr.
func writeResult(deps *Dependencies, url string, resp *jobscrape.ScrapeResponse) error {
	format := deps.Settings.Format

	if !resp.Success {
		if format == FormatJSON {
			return json.NewEncoder(deps.Stdout).Encode(resp)
		}
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", url, resp.Error)
		return nil
	}

	p := resp.Payload
	var md string
	var err error
	if format != FormatJSON || deps.Tokens != nil {
		if md, err = deps.Converter.Convert(p.JobDescriptionHTML); err != nil {
			return fmt.Errorf("convert %s: %w", url, err)
		}
	}

	switch format {
	case FormatMarkdown:
		content, err := fs.FormatPosting(p, md, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, content)
	case FormatPrompt:
		fmt.Fprintln(deps.Stdout, jobscrape.FormatPosting(p, md))
	default:
		if err := json.NewEncoder(deps.Stdout).Encode(resp); err != nil {
			return err
		}
	}

	if deps.Tokens != nil {
		n, err := gemini.CountPrompt(deps.Ctx, deps.Tokens, p, md)
		if err != nil {
			return fmt.Errorf("count tokens %s: %w", url, err)
		}
		fmt.Fprintf(deps.Stderr, "%s: %d tokens\n", url, n)
	}
	return nil
}
