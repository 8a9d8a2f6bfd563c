package cmd

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zeebo/pcg"

	"github.com/zeebo/sha512block"
	"github.com/zeebo/sha512block/internal/utils"
	"github.com/zeebo/sha512block/lanes"
)

const (
	minMessage = 112
	maxMessage = 239
)

var runFlags struct {
	lanes   int
	workers int
	chunk   int
	verify  bool
}

func init() {
	runCmd.Flags().IntVar(&runFlags.lanes, "lanes", 1<<16, "number of independent messages to hash")
	runCmd.Flags().IntVar(&runFlags.workers, "workers", 0, "worker goroutines (0 for one per CPU)")
	runCmd.Flags().IntVar(&runFlags.chunk, "chunk", lanes.DefaultChunk, "lanes claimed by a worker at a time")
	runCmd.Flags().BoolVar(&runFlags.verify, "verify", true, "check every digest against crypto/sha512")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Hashes random two-block messages across parallel lanes.",
	Long: "Hashes random messages of 112 to 239 bytes, which pad to exactly two\n" +
		"blocks, one message per lane, and reports throughput.\n",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if runFlags.lanes < 0 {
			return errors.Errorf("lanes must be non-negative: %d", runFlags.lanes)
		}

		msgs, ls := generate(runFlags.lanes)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		start := time.Now()
		stats, err := lanes.Run(ctx, ls, lanes.Options{
			Workers: runFlags.workers,
			Chunk:   runFlags.chunk,
		})
		elapsed := time.Since(start)
		if err != nil {
			logrus.WithFields(logrus.Fields{"err": err, "completed": stats.Lanes}).Error("run failed")
			return err
		}

		bytes := float64(stats.Lanes) * 2 * sha512block.BlockSize
		logrus.WithFields(logrus.Fields{
			"lanes":   stats.Lanes,
			"workers": stats.Workers,
			"elapsed": elapsed,
			"MB/s":    bytes / elapsed.Seconds() / 1e6,
		}).Info("run done")

		for i, n := range stats.PerWorker {
			logrus.WithFields(logrus.Fields{"worker": i, "lanes": n}).Debug("worker stats")
		}

		if runFlags.verify {
			return verify(ctx, msgs, ls)
		}
		return nil
	},
}

func generate(n int) ([][]byte, []lanes.Lane) {
	msgs := make([][]byte, n)
	ls := make([]lanes.Lane, n)
	for i := range msgs {
		msgs[i] = make([]byte, minMessage+int(pcg.Uint32()%(maxMessage-minMessage+1)))
		for j := range msgs[i] {
			msgs[i][j] = byte(pcg.Uint32())
		}
		utils.PadTwoBlock(msgs[i], &ls[i].Blocks)
	}
	return msgs, ls
}

func verify(ctx context.Context, msgs [][]byte, ls []lanes.Lane) error {
	var got [sha512block.Size]byte
	for i := range ls {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return errors.Wrap(err, "verify")
			}
		}

		utils.WordsToBytes(&ls[i].Digest, &got)
		if exp := sha512.Sum512(msgs[i]); got != exp {
			logrus.WithFields(logrus.Fields{
				"lane": i,
				"got":  hex.EncodeToString(got[:]),
				"exp":  hex.EncodeToString(exp[:]),
			}).Error("digest mismatch")
			return errors.Errorf("lane %d: digest mismatch", i)
		}
	}

	logrus.WithField("lanes", len(ls)).Info("verify done")
	return nil
}
