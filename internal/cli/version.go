package cli

import (
	"fmt"

	"shaengine/internal/buildinfo"
)

type versionCmd struct{}

func (r *RootCommand) runVersion() error {
	if _, err := fmt.Fprintln(r.out, buildinfo.Get().String()); err != nil {
		return fmt.Errorf("write version output: %w", err)
	}
	return nil
}
