package main

import (
	"fmt"

	"github.com/fwojciec/webclip"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return webclip.Errorf(webclip.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Documents.DeleteDocument(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %q\n", c.ID)
	return nil
}
