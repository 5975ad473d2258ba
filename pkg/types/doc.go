/*
Package types defines the data model shared by the scheduler, the agents
and the API.

# Resource profiles

A ResourceProfile is an absolute measurement of four dimensions:

  - IPC: instructions per cycle, a decimal
  - Memory: bytes
  - Network: bytes per second
  - Disk: bytes per second

Servers submit one profile as their benchmark; agents submit profiles of
the tasks they run as samples. Profiles are compared only after
normalization: Normalize divides every dimension by the cluster maximum,
producing a NormalizedResourceProfile in [0, 1] per dimension. All
arithmetic is exact through github.com/shopspring/decimal, so repeated
additions and subtractions never drift.

Cost lowers a normalized profile to the integer cost used by the flow
network: the sum of its dimensions times 100, rounded half away from zero.
MaxProfile therefore costs 400.

# Tasks and servers

A Task carries an optional Request. Tasks with a request may only be
placed on a server whose free capacity dominates the request; tasks
without one are placed by their measured average profile. Profiles are
kept per server because the same task behaves differently on different
hardware.

	task := types.NewTask("encoder", "ffmpeg:latest", "", nil, false)
	task.InsertProfile(serverID, sample)
	avg, ok := task.AvgProfile(serverID, clusterMax)

A Server stays unprofiled until its benchmark arrives. Unprofiled servers
are never considered for requests.

TaskCommand is what the scheduler sends to an agent: Run or Remove for one
task.
*/
package types
