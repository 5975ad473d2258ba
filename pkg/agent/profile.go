package agent

import (
	"context"
	"time"

	"github.com/cuemby/flowsched/pkg/client"
	"github.com/cuemby/flowsched/pkg/log"
	"github.com/cuemby/flowsched/pkg/metrics"
	"github.com/cuemby/flowsched/pkg/types"
)

type profileTarget struct {
	rt  *runningTask
	pid uint32
}

// profileLoop samples every profiled task each ProfileInterval and streams
// the samples to the scheduler. A broken stream is reopened on the next
// tick.
func (a *Agent) profileLoop(ctx context.Context) error {
	ticker := time.NewTicker(a.cfg.ProfileInterval)
	defer ticker.Stop()

	var stream *client.ProfileStream
	defer func() {
		if stream != nil {
			if n, err := stream.Close(); err == nil {
				a.logger.Debug().Int64("received", n).Msg("Profile stream closed")
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		samples := a.collect(ctx)
		if len(samples) == 0 {
			continue
		}

		if stream == nil {
			var err error
			if stream, err = a.client.StreamTaskProfiles(ctx, a.cfg.ServerID); err != nil {
				a.logger.Warn().Err(err).Msg("Failed to open profile stream")
				continue
			}
		}
		for _, s := range samples {
			if err := stream.Send(s.task.ID, s.profile); err != nil {
				a.logger.Warn().Err(err).Msg("Profile stream broken")
				_, _ = stream.Close()
				stream = nil
				break
			}
			metrics.AgentProfilesSent.Inc()
		}
	}
}

type taskSample struct {
	task    *types.Task
	profile types.ResourceProfile
}

func (a *Agent) collect(ctx context.Context) []taskSample {
	a.mu.Lock()
	targets := make([]profileTarget, 0, len(a.running))
	for _, rt := range a.running {
		if rt.task.IsProfiled() {
			targets = append(targets, profileTarget{rt: rt, pid: rt.pid})
		}
	}
	a.mu.Unlock()

	var out []taskSample
	for _, t := range targets {
		logger := log.WithTaskID(t.rt.task.ID.String())
		pid := t.pid
		if pid == 0 {
			var err error
			if pid, err = a.runtime.Pid(ctx, t.rt.task.ID); err != nil {
				logger.Debug().Err(err).Msg("No process to sample")
				continue
			}
			a.mu.Lock()
			t.rt.pid = pid
			a.mu.Unlock()
		}

		p, ok, err := a.sampler.Sample(pid)
		if err != nil {
			logger.Debug().Err(err).Uint32("pid", pid).Msg("Failed to sample task")
			continue
		}
		if ok {
			out = append(out, taskSample{task: t.rt.task, profile: p})
		}
	}
	return out
}
