package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cuemby/flowsched/api/proto"
	"github.com/cuemby/flowsched/pkg/client"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Submit tasks from a manifest",
	Long: `Submit the tasks described in a YAML manifest. A file may hold
several documents separated by '---'.

Example manifest:

  kind: Task
  name: encoder
  image: docker.io/library/ffmpeg:latest
  command: ffmpeg -i /in.mp4 /out.webm
  request:
    ipc: "2"
    memory: 1073741824`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringP("file", "f", "", "YAML file to apply (required)")
	_ = applyCmd.MarkFlagRequired("file")
	addSchedulerFlag(applyCmd)

	rootCmd.AddCommand(applyCmd)
}

// TaskManifest is one task document of a manifest
type TaskManifest struct {
	Kind     string           `yaml:"kind"`
	Name     string           `yaml:"name"`
	Image    string           `yaml:"image"`
	Command  string           `yaml:"command"`
	Realtime bool             `yaml:"realtime"`
	Request  *RequestManifest `yaml:"request"`
}

// RequestManifest is the resource request of a task
type RequestManifest struct {
	IPC     string `yaml:"ipc"`
	Memory  uint64 `yaml:"memory"`
	Network uint64 `yaml:"network"`
	Disk    uint64 `yaml:"disk"`
}

// parseManifests decodes every document of data
func parseManifests(data []byte) ([]TaskManifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []TaskManifest
	for {
		var m TaskManifest
		err := dec.Decode(&m)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if m.Kind != "" && m.Kind != "Task" {
			return nil, fmt.Errorf("unsupported resource kind: %s", m.Kind)
		}
		if m.Name == "" || m.Image == "" {
			return nil, fmt.Errorf("task name and image are required")
		}
		out = append(out, m)
	}
	return out, nil
}

func (m TaskManifest) request() *proto.SubmitTaskRequest {
	req := &proto.SubmitTaskRequest{
		Name:     m.Name,
		Image:    m.Image,
		Command:  m.Command,
		Realtime: m.Realtime,
	}
	if m.Request != nil {
		ipc := m.Request.IPC
		if ipc == "" {
			ipc = "0"
		}
		req.Request = &proto.Profile{
			Ipc:     ipc,
			Memory:  m.Request.Memory,
			Network: m.Request.Network,
			Disk:    m.Request.Disk,
		}
	}
	return req
}

func runApply(cmd *cobra.Command, args []string) error {
	filename, _ := cmd.Flags().GetString("file")

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	manifests, err := parseManifests(data)
	if err != nil {
		return err
	}

	c, err := dialScheduler(cmd)
	if err != nil {
		return err
	}
	defer c.Close()

	return applyTasks(c, manifests)
}

func applyTasks(c *client.Client, manifests []TaskManifest) error {
	for _, m := range manifests {
		task, err := c.SubmitTask(m.request())
		if err != nil {
			return fmt.Errorf("failed to submit task %s: %w", m.Name, err)
		}
		placement := "unscheduled"
		if task.ServerId != "" {
			placement = "server " + task.ServerId
		}
		fmt.Printf("✓ Task submitted: %s (ID: %s, %s)\n", task.Name, task.Id, placement)
	}
	return nil
}
