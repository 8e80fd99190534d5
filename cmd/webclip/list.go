package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/webclip"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, webclip.DocumentFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webclip.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", d.ID, d.CapturedAt.Format(time.RFC3339), d.Title)
		if c.Full && d.Summary != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", d.Summary)
		}
	}

	return nil
}
