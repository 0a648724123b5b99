package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hobbie/hobbie-backend/internal/api/metrics"
	"github.com/hobbie/hobbie-backend/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	deleteTimeout  = 30 * time.Second
)

// CleanupDispatcher wraps a FileStore so that deletions run in the
// background. Store and Open pass straight through. Deletes are sharded on
// the object key, so repeated deletes of one key are handled in order by a
// single worker.
type CleanupDispatcher struct {
	ports.FileStore

	workers []chan string
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewCleanupDispatcher creates a CleanupDispatcher with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewCleanupDispatcher(store ports.FileStore, numWorkers int, log zerolog.Logger) *CleanupDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &CleanupDispatcher{
		FileStore: store,
		workers:   make([]chan string, numWorkers),
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches the worker goroutines. Workers drain their queues and exit
// once Close is called.
func (d *CleanupDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Close stops accepting work and waits for pending deletions to finish.
func (d *CleanupDispatcher) Close() {
	for _, ch := range d.workers {
		close(ch)
	}
	d.wg.Wait()
}

// Delete queues key for removal and returns immediately. It blocks only when
// the responsible worker's buffer is full.
func (d *CleanupDispatcher) Delete(ctx context.Context, key string) error {
	idx := d.shardIndex(key)
	select {
	case d.workers[idx] <- key:
		metrics.CleanupQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *CleanupDispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *CleanupDispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for key := range ch {
		metrics.CleanupQueueDepth.WithLabelValues(label).Dec()

		// Detached from request cancellation; ctx only carries values.
		delCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), deleteTimeout)
		err := d.FileStore.Delete(delCtx, key)
		cancel()
		if err != nil {
			metrics.CleanupFailuresTotal.Inc()
			d.log.Error().Err(err).
				Str("key", key).
				Int("worker_id", id).
				Msg("object cleanup failed")
		}
	}
}
