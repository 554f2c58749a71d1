package cli

import (
	"encoding/hex"
	"fmt"

	apperrors "shaengine/internal/errors"
	"shaengine/internal/hash"
	"shaengine/internal/vectors"
)

type sumCmd struct {
	Hex   bool     `name:"hex" help:"Treat arguments as hex-encoded bytes."`
	Split int      `name:"split" default:"0" help:"Feed each message in updates of N bytes (0 feeds it at once)."`
	Text  []string `arg:"" optional:"" name:"text" help:"Messages to hash. With none, the empty message is hashed."`
}

func (r *RootCommand) runSum(cmd sumCmd) error {
	if cmd.Split < 0 {
		return fmt.Errorf("--split must not be negative: %w", apperrors.ErrUsage)
	}
	inputs := cmd.Text
	if len(inputs) == 0 {
		inputs = []string{""}
	}

	for _, text := range inputs {
		msg := []byte(text)
		if cmd.Hex {
			decoded, err := hex.DecodeString(text)
			if err != nil {
				return fmt.Errorf("decode hex argument %q: %v: %w", text, err, apperrors.ErrUsage)
			}
			msg = decoded
		}

		d, err := vectors.Compute(msg, cmd.Split)
		if err != nil {
			return fmt.Errorf("hash %q: %w", text, err)
		}
		r.logger.Debug("hashed message", "bytes", len(msg), "split", cmd.Split)

		if _, err := fmt.Fprintf(r.out, "%s  %q\n", hash.ToString(d), text); err != nil {
			return fmt.Errorf("write sum output: %w", err)
		}
	}
	return nil
}
