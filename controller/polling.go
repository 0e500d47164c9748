package controller

import (
	"context"
	"iter"
	"time"

	"github.com/samber/lo"
	"github.com/subquery/cli/entity"
)

func pollInterval(opts entity.PollOptions) time.Duration {
	if opts.Interval <= 0 {
		return entity.DefaultPollInterval
	}
	return opts.Interval
}

// WatchSyncStatus yields the sync status of a deployment. It yields once
// unless opts.Rolling is set, in which case it keeps polling until the
// consumer stops or ctx is done.
func (c *Controller) WatchSyncStatus(ctx context.Context, key string, id uint64, opts entity.PollOptions) iter.Seq2[*entity.SyncSnapshot, error] {
	return func(yield func(*entity.SyncSnapshot, error) bool) {
		for i := 1; ; i++ {
			status, err := c.backend.GetSyncStatus(ctx, key, id)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(&entity.SyncSnapshot{SyncStatus: status, Iteration: i}, nil) || !opts.Rolling {
				return
			}
			if err := c.sleep(ctx, pollInterval(opts)); err != nil {
				return
			}
		}
	}
}

// WatchLogs yields log entries not seen before in this loop, keyed by their
// millisecond timestamp.
func (c *Controller) WatchLogs(ctx context.Context, key string, req entity.LogsRequest, opts entity.PollOptions) iter.Seq2[[]*entity.LogEntry, error] {
	return func(yield func([]*entity.LogEntry, error) bool) {
		seen := map[int64]struct{}{}
		for {
			entries, err := c.backend.SearchLogs(ctx, key, &req)
			if err != nil {
				yield(nil, err)
				return
			}
			fresh := lo.Filter(entries, func(e *entity.LogEntry, _ int) bool {
				ts := e.Timestamp.UnixMilli()
				if _, ok := seen[ts]; ok {
					return false
				}
				seen[ts] = struct{}{}
				return true
			})
			if !yield(fresh, nil) || !opts.Rolling {
				return
			}
			if err := c.sleep(ctx, pollInterval(opts)); err != nil {
				return
			}
		}
	}
}
