/*
Package runtime runs flowsched tasks as containerd containers.

Every task gets one container in the flowsched namespace whose ID is the
task ID. Start pulls the image, replaces a stale container of the same
task, applies the task command and memory request to the OCI spec and
returns a channel that receives the exit code. Stop sends SIGTERM, falls
back to SIGKILL after StopTimeout and removes the container with its
snapshot.
*/
package runtime
