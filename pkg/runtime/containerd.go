package runtime

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"time"

	"github.com/containerd/containerd"
	"github.com/containerd/containerd/cio"
	"github.com/containerd/containerd/containers"
	"github.com/containerd/containerd/errdefs"
	"github.com/containerd/containerd/namespaces"
	"github.com/containerd/containerd/oci"
	"github.com/cuemby/flowsched/pkg/log"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
	specs "github.com/opencontainers/runtime-spec/specs-go"
	"github.com/rs/zerolog"
)

const (
	// DefaultNamespace is the containerd namespace for flowsched tasks
	DefaultNamespace = "flowsched"

	// DefaultSocketPath is the default containerd socket
	DefaultSocketPath = "/run/containerd/containerd.sock"

	// StopTimeout is how long a task gets between SIGTERM and SIGKILL
	StopTimeout = 10 * time.Second

	labelTaskName = "io.flowsched.task.name"
	labelTaskID   = "io.flowsched.task.id"
)

// ErrNotRunning is returned when a task has no running process.
var ErrNotRunning = errors.New("task is not running")

// ContainerdRuntime runs tasks as containerd containers. The container ID
// is the task ID.
type ContainerdRuntime struct {
	client    *containerd.Client
	namespace string
	logger    zerolog.Logger
}

// NewContainerdRuntime creates a new containerd runtime client
func NewContainerdRuntime(socketPath, namespace string) (*ContainerdRuntime, error) {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	client, err := containerd.New(socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to containerd: %w", err)
	}

	return &ContainerdRuntime{
		client:    client,
		namespace: namespace,
		logger:    log.WithComponent("runtime"),
	}, nil
}

// Close closes the containerd client connection
func (r *ContainerdRuntime) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// Start pulls the task image, creates its container and starts it. The
// returned channel receives the exit code once the process ends. A stale
// container left by an earlier agent is replaced.
func (r *ContainerdRuntime) Start(ctx context.Context, task *types.Task) (<-chan uint32, error) {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	if err := r.PullImage(ctx, task.Image); err != nil {
		return nil, err
	}
	if err := r.DeleteContainer(ctx, task.ID); err != nil {
		return nil, err
	}
	if err := r.CreateContainer(ctx, task); err != nil {
		return nil, err
	}
	return r.StartContainer(ctx, task.ID)
}

// Stop stops the task and removes its container
func (r *ContainerdRuntime) Stop(ctx context.Context, taskID uuid.UUID) error {
	return r.DeleteContainer(namespaces.WithNamespace(ctx, r.namespace), taskID)
}

// PullImage pulls a container image from a registry
func (r *ContainerdRuntime) PullImage(ctx context.Context, imageRef string) error {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	if _, err := r.client.GetImage(ctx, imageRef); err == nil {
		return nil
	}

	if _, err := r.client.Pull(ctx, imageRef, containerd.WithPullUnpack); err != nil {
		return fmt.Errorf("failed to pull image %s: %w", imageRef, err)
	}
	return nil
}

// CreateContainer creates the container of a task
func (r *ContainerdRuntime) CreateContainer(ctx context.Context, task *types.Task) error {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	image, err := r.client.GetImage(ctx, task.Image)
	if err != nil {
		return fmt.Errorf("failed to get image %s: %w", task.Image, err)
	}

	opts := []oci.SpecOpts{
		oci.WithImageConfig(image),
		withTaskAnnotations(task),
	}
	if task.Command != "" {
		opts = append(opts, oci.WithProcessArgs("/bin/sh", "-c", task.Command))
	}
	if task.Request != nil && task.Request.Memory > 0 {
		opts = append(opts, withMemoryReservation(task.Request.Memory))
	}

	id := task.ID.String()
	_, err = r.client.NewContainer(
		ctx,
		id,
		containerd.WithImage(image),
		containerd.WithNewSnapshot(id+"-snapshot", image),
		containerd.WithNewSpec(opts...),
		containerd.WithContainerLabels(map[string]string{
			labelTaskID:   id,
			labelTaskName: task.Name,
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create container: %w", err)
	}
	return nil
}

// StartContainer starts the container process
func (r *ContainerdRuntime) StartContainer(ctx context.Context, taskID uuid.UUID) (<-chan uint32, error) {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	container, err := r.client.LoadContainer(ctx, taskID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load container %s: %w", taskID, err)
	}

	task, err := container.NewTask(ctx, cio.NullIO)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	// Wait must be set up before Start or a fast exit is missed.
	statusC, err := task.Wait(context.WithoutCancel(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to wait for task: %w", err)
	}

	if err := task.Start(ctx); err != nil {
		_, _ = task.Delete(ctx)
		return nil, fmt.Errorf("failed to start task: %w", err)
	}

	exitC := make(chan uint32, 1)
	go func() {
		status := <-statusC
		exitC <- status.ExitCode()
		close(exitC)
	}()
	return exitC, nil
}

// StopContainer stops a running container
func (r *ContainerdRuntime) StopContainer(ctx context.Context, taskID uuid.UUID, timeout time.Duration) error {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	container, err := r.client.LoadContainer(ctx, taskID.String())
	if err != nil {
		return fmt.Errorf("failed to load container %s: %w", taskID, err)
	}

	task, err := container.Task(ctx, nil)
	if err != nil {
		// Container not running
		return nil
	}

	stopCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	statusC, err := task.Wait(stopCtx)
	if err != nil {
		return fmt.Errorf("failed to wait for task: %w", err)
	}

	if err := task.Kill(stopCtx, syscall.SIGTERM); err != nil && !errdefs.IsNotFound(err) {
		return fmt.Errorf("failed to kill task: %w", err)
	}

	select {
	case <-statusC:
	case <-stopCtx.Done():
		if err := task.Kill(ctx, syscall.SIGKILL); err != nil && !errdefs.IsNotFound(err) {
			return fmt.Errorf("failed to force kill task: %w", err)
		}
	}

	if _, err := task.Delete(ctx, containerd.WithProcessKill); err != nil && !errdefs.IsNotFound(err) {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// DeleteContainer stops a container if needed and removes it with its
// snapshot. A missing container is not an error.
func (r *ContainerdRuntime) DeleteContainer(ctx context.Context, taskID uuid.UUID) error {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	container, err := r.client.LoadContainer(ctx, taskID.String())
	if err != nil {
		return nil
	}

	if err := r.StopContainer(ctx, taskID, StopTimeout); err != nil {
		r.logger.Warn().Err(err).Str("task_id", taskID.String()).Msg("Failed to stop container before delete")
	}

	if err := container.Delete(ctx, containerd.WithSnapshotCleanup); err != nil && !errdefs.IsNotFound(err) {
		return fmt.Errorf("failed to delete container: %w", err)
	}
	return nil
}

// Pid returns the host PID of the task's init process
func (r *ContainerdRuntime) Pid(ctx context.Context, taskID uuid.UUID) (uint32, error) {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	container, err := r.client.LoadContainer(ctx, taskID.String())
	if err != nil {
		return 0, fmt.Errorf("failed to load container %s: %w", taskID, err)
	}
	task, err := container.Task(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrNotRunning, taskID)
	}
	return task.Pid(), nil
}

// ListTasks returns the IDs of every flowsched container in the namespace
func (r *ContainerdRuntime) ListTasks(ctx context.Context) ([]uuid.UUID, error) {
	ctx = namespaces.WithNamespace(ctx, r.namespace)

	list, err := r.client.Containers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(list))
	for _, c := range list {
		id, err := uuid.Parse(c.ID())
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func withTaskAnnotations(task *types.Task) oci.SpecOpts {
	return func(_ context.Context, _ oci.Client, _ *containers.Container, s *specs.Spec) error {
		if s.Annotations == nil {
			s.Annotations = make(map[string]string)
		}
		s.Annotations[labelTaskID] = task.ID.String()
		s.Annotations[labelTaskName] = task.Name
		return nil
	}
}

// withMemoryReservation sets the cgroup soft limit to the requested memory.
func withMemoryReservation(bytes uint64) oci.SpecOpts {
	return func(_ context.Context, _ oci.Client, _ *containers.Container, s *specs.Spec) error {
		if s.Linux == nil {
			s.Linux = &specs.Linux{}
		}
		if s.Linux.Resources == nil {
			s.Linux.Resources = &specs.LinuxResources{}
		}
		if s.Linux.Resources.Memory == nil {
			s.Linux.Resources.Memory = &specs.LinuxMemory{}
		}
		v := int64(bytes)
		s.Linux.Resources.Memory.Reservation = &v
		return nil
	}
}
