/*
Package agent runs on every server and executes the commands the
scheduler sends for it.

A session subscribes to the server's command stream, registers the
server and submits a benchmark when the scheduler asks for one. Run
commands start the task through a Runtime; Remove commands stop it. When
a task exits on its own the agent reports it with FinishTask.

Tasks without a request that are not realtime are profiled: every
ProfileInterval the Sampler measures the task's process and the sample is
streamed to the scheduler, which uses the running average to place the
task. ProcSampler reads the samples from procfs with goprocinfo.

A failed session is retried after RetryInterval. The scheduler replays
the Run commands of the server on every new subscription, and tasks that
are already running are left alone.
*/
package agent
