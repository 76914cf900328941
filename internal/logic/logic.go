// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/idelchi/cryptkit/internal/config"
	"github.com/idelchi/cryptkit/internal/encryption"
)

// Streams are the writers a command reports to.
type Streams struct {
	// Out receives results.
	Out io.Writer
	// Err receives diagnostics and stats.
	Err io.Writer
}

// Run is the main logic of the encrypt and decrypt commands.
func Run(cfg *config.Transform, logger *logrus.Logger, streams Streams) error {
	start := time.Now()

	proc, err := encryption.NewProcessor(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	proc.SetOutput(streams.Out)

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(streams.Err, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

func printStats(w io.Writer, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Processed: %d\n", processed)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
