// Package lanes runs many independent two-block compressions in parallel.
// Every lane owns its input and output; workers share nothing but a counter
// handing out work.
package lanes

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"

	"github.com/zeebo/sha512block"
)

// DefaultChunk is the number of lanes a worker claims at a time.
const DefaultChunk = 64

// ErrInvalidOptions is returned for negative worker or chunk counts.
var ErrInvalidOptions = errors.New("lanes: invalid options")

// Lane is one unit of work: two padded blocks in and a hash state out.
type Lane struct {
	Blocks [32]uint64
	Digest [8]uint64
}

// Options controls how lanes are spread across goroutines. The zero value
// uses one worker per CPU and DefaultChunk.
type Options struct {
	Workers int
	Chunk   int
}

// Stats reports how the lanes were processed.
type Stats struct {
	Lanes     int
	Workers   int
	PerWorker []uint64
}

// counter is padded so workers bumping their own counts do not share a
// cache line.
type counter struct {
	_ cpu.CacheLinePad
	n uint64
	_ cpu.CacheLinePad
}

func (o Options) normalize(n int) (workers, chunk int, err error) {
	if o.Workers < 0 {
		return 0, 0, errors.Wrapf(ErrInvalidOptions, "workers: %d", o.Workers)
	}
	if o.Chunk < 0 {
		return 0, 0, errors.Wrapf(ErrInvalidOptions, "chunk: %d", o.Chunk)
	}

	workers, chunk = o.Workers, o.Chunk
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if chunk == 0 {
		chunk = DefaultChunk
	}
	if jobs := (n + chunk - 1) / chunk; workers > jobs {
		workers = jobs
	}
	if workers == 0 {
		workers = 1
	}
	return workers, chunk, nil
}

// Run sets the Digest of every lane to sha512block.CompressTwoBlock of its
// Blocks. The context is checked between chunks: a chunk that has started
// always finishes, and lanes in chunks never started are left untouched.
func Run(ctx context.Context, ls []Lane, opts Options) (Stats, error) {
	workers, chunk, err := opts.normalize(len(ls))
	if err != nil {
		return Stats{}, err
	}

	var next uint64
	counts := make([]counter, workers)
	eg, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		c := &counts[w]
		eg.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				start := int(atomic.AddUint64(&next, uint64(chunk))) - chunk
				if start >= len(ls) {
					return nil
				}
				end := start + chunk
				if end > len(ls) {
					end = len(ls)
				}

				for i := start; i < end; i++ {
					ls[i].Digest = sha512block.CompressTwoBlock(&ls[i].Blocks)
				}
				c.n += uint64(end - start)
			}
		})
	}

	err = eg.Wait()

	stats := Stats{Workers: workers, PerWorker: make([]uint64, workers)}
	for i := range counts {
		stats.PerWorker[i] = counts[i].n
		stats.Lanes += int(counts[i].n)
	}

	if err != nil {
		return stats, errors.Wrapf(err, "lanes: stopped after %d of %d", stats.Lanes, len(ls))
	}
	return stats, nil
}
