package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/gammazero/workerpool"

	"apt-be-svc/pkg/apperror"
)

// FailedWrite is one write of a batch that did not go through.
type FailedWrite struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// batchResult collects the outcome of independent per-record writes.
type batchResult struct {
	Succeeded []string
	Failed    []FailedWrite
}

// err returns a TRANSIENT error listing the failed ids, or nil when every write succeeded.
func (r batchResult) err(message string) error {
	if len(r.Failed) == 0 {
		return nil
	}
	ids := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		ids = append(ids, f.ID)
	}
	return apperror.WithMetadata(apperror.KindTransient, message, map[string]string{
		"failed_ids": strings.Join(ids, ","),
		"succeeded":  strings.Join(r.Succeeded, ","),
	})
}

// batchWriter runs the writes of a multi-record operation on a bounded worker
// pool. Each write is atomic on its own; there is no rollback across records.
type batchWriter struct {
	pool *workerpool.WorkerPool
}

func newBatchWriter(workers int) *batchWriter {
	if workers < 1 {
		workers = 1
	}
	return &batchWriter{pool: workerpool.New(workers)}
}

// run calls write once per id and waits for all of them. Writes are detached
// from ctx cancellation so a batch always runs to completion or failure.
func (b *batchWriter) run(ctx context.Context, ids []string, write func(ctx context.Context, id string) error) batchResult {
	ctx = context.WithoutCancel(ctx)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		res batchResult
	)
	for _, id := range ids {
		id := id
		wg.Add(1)
		b.pool.Submit(func() {
			defer wg.Done()
			err := write(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Failed = append(res.Failed, FailedWrite{ID: id, Error: err.Error()})
				return
			}
			res.Succeeded = append(res.Succeeded, id)
		})
	}
	wg.Wait()

	sort.Strings(res.Succeeded)
	sort.Slice(res.Failed, func(i, j int) bool { return res.Failed[i].ID < res.Failed[j].ID })
	return res
}

func (b *batchWriter) close() {
	b.pool.StopWait()
}

// uniqueIDs trims ids and drops blanks and duplicates, keeping first-seen order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
