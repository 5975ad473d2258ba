/*
Package client provides a Go client for the flowsched scheduler API.

Client wraps the generated-style stub in api/proto with typed helpers.
Methods used by the CLI (SubmitTask, ListTasks, ListServers, GetGraph,
RemoveServer) apply a 10 second timeout of their own. Methods used by the
agent take a context, since they either block on long-lived streams or
run inside the agent's own lifecycle.

	c, err := client.NewClient("127.0.0.1:7070")
	if err != nil {
		return err
	}
	defer c.Close()

	tasks, err := c.ListTasks()

The connection uses plaintext gRPC; transport security is expected from
the network the cluster runs on.
*/
package client
