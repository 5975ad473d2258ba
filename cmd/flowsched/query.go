package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cuemby/flowsched/api/proto"
	"github.com/cuemby/flowsched/pkg/client"
	"github.com/spf13/cobra"
)

func addSchedulerFlag(cmd *cobra.Command) {
	cmd.Flags().String("scheduler", "localhost:7070", "Scheduler gRPC address")
}

func dialScheduler(cmd *cobra.Command) (*client.Client, error) {
	addr, _ := cmd.Flags().GetString("scheduler")
	c, err := client.NewClient(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to scheduler: %w", err)
	}
	return c, nil
}

// Task commands
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Inspect tasks",
}

var taskListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks and their placement",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := dialScheduler(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		tasks, err := c.ListTasks()
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}
		return printTasks(os.Stdout, tasks)
	},
}

// Server commands
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Inspect and remove servers",
}

var serverListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := dialScheduler(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		servers, err := c.ListServers()
		if err != nil {
			return fmt.Errorf("failed to list servers: %w", err)
		}
		return printServers(os.Stdout, servers)
	},
}

var serverRemoveCmd = &cobra.Command{
	Use:     "rm MACHINE_ID",
	Aliases: []string{"remove"},
	Short:   "Remove a server and reschedule its tasks",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := dialScheduler(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.RemoveServer(args[0]); err != nil {
			return fmt.Errorf("failed to remove server: %w", err)
		}
		fmt.Printf("✓ Server removed: %s\n", args[0])
		return nil
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Show the flow graph of the last scheduling pass",
	Long: `Show the flow graph solved by the last scheduling pass.

Examples:
  # Render the graph with graphviz
  flowsched graph --dot | dot -Tsvg > graph.svg

  # Dump nodes and edges as JSON
  flowsched graph --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dot, _ := cmd.Flags().GetBool("dot")
		asJSON, _ := cmd.Flags().GetBool("json")

		c, err := dialScheduler(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		g, err := c.GetGraph()
		if err != nil {
			return fmt.Errorf("failed to get graph: %w", err)
		}

		switch {
		case dot:
			_, err = fmt.Fprint(os.Stdout, g.Dot)
			return err
		case asJSON:
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(g)
		default:
			return printGraph(os.Stdout, g)
		}
	},
}

func init() {
	for _, cmd := range []*cobra.Command{taskListCmd, serverListCmd, serverRemoveCmd, graphCmd} {
		addSchedulerFlag(cmd)
	}
	graphCmd.Flags().Bool("dot", false, "Print the graph in DOT format")
	graphCmd.Flags().Bool("json", false, "Print the graph as JSON")

	taskCmd.AddCommand(taskListCmd)
	serverCmd.AddCommand(serverListCmd)
	serverCmd.AddCommand(serverRemoveCmd)

	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(graphCmd)
}

func printTasks(out io.Writer, tasks []*proto.Task) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tIMAGE\tSTATE\tSERVER\tSAMPLES")
	for _, t := range tasks {
		state := "unscheduled"
		switch {
		case !t.Schedulable:
			state = "finished"
		case t.ServerId != "":
			state = "placed"
		}
		server := t.ServerId
		if server == "" {
			server = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n", t.Id, t.Name, t.Image, state, server, t.ProfileCount)
	}
	return w.Flush()
}

func printServers(out io.Writer, servers []*proto.Server) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tHOSTNAME\tIPC\tMEMORY\tNETWORK\tDISK\tSUBSCRIBED")
	for _, s := range servers {
		if s.Profile == nil {
			fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\t%t\n", s.Id, s.Hostname, s.Subscribed)
			continue
		}
		p := s.Profile
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%t\n", s.Id, s.Hostname, p.Ipc, p.Memory, p.Network, p.Disk, s.Subscribed)
	}
	return w.Flush()
}

func printGraph(out io.Writer, g *proto.GetGraphResponse) error {
	fmt.Fprintf(out, "Pass %d: %d nodes, %d edges, flow %d, cost %s\n\n", g.Pass, len(g.Nodes), len(g.Edges), g.Flow, g.Cost)

	labels := make(map[int64]string, len(g.Nodes))
	for _, n := range g.Nodes {
		labels[n.Id] = n.Label
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FROM\tTO\tFLOW\tCAPACITY\tCOST")
	for _, e := range g.Edges {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", labels[e.From], labels[e.To], e.Flow, e.Capacity, e.Cost)
	}
	return w.Flush()
}
