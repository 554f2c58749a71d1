package cli

import (
	"fmt"

	apperrors "shaengine/internal/errors"
	"shaengine/internal/vectors"
)

type selftestCmd struct {
	Vectors string `name:"vectors" placeholder:"FILE" help:"Additional YAML vector file to run after the built-in set."`
}

func (r *RootCommand) runSelftest(cmd selftestCmd) error {
	vs := vectors.Default()
	if path := cmd.Vectors; path != "" {
		extra, err := vectors.Load(path)
		if err != nil {
			return fmt.Errorf("load vectors: %w", err)
		}
		r.logger.Info("loaded vector file", "path", path, "count", len(extra))
		vs = append(vs, extra...)
	}

	results, err := vectors.RunAll(vs)
	if err != nil {
		return fmt.Errorf("run vectors: %w", err)
	}

	failed := 0
	for _, res := range results {
		if res.OK() {
			r.logger.Debug("vector passed", "name", res.Name, "digest", res.Got.String())
			if _, err := fmt.Fprintf(r.out, "ok    %s\n", res.Name); err != nil {
				return fmt.Errorf("write selftest output: %w", err)
			}
			continue
		}
		failed++
		r.logger.Error("vector mismatch", "name", res.Name, "got", res.Got.String(), "want", res.Want.String())
		if _, err := fmt.Fprintf(r.out, "FAIL  %s: got %s want %s\n", res.Name, res.Got, res.Want); err != nil {
			return fmt.Errorf("write selftest output: %w", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d vectors failed: %w", failed, len(results), apperrors.ErrSelfTest)
	}
	if _, err := fmt.Fprintf(r.out, "%d vectors passed\n", len(results)); err != nil {
		return fmt.Errorf("write selftest output: %w", err)
	}
	return nil
}
