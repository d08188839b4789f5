/*
Package domain contains the core models of the Frontier engine.

It describes a search run as data: the request sent to a solver, the result it
returns, the step-by-step Trace reconstructed from that result and the render
Instructions a playback emits. This package is kept pure and free of I/O so the
same types flow through the CLI, the HTTP server and the MCP server.

# Key Entities

  - Algorithm: One of bfs, dfs or astar.
  - FrontierItem: An entry of the queue, stack or priority queue.
  - Step: A narrated action with the frontier snapshot taken after it.
  - Trace: The ordered Steps for one search, plus the explored order and path.
  - Session: A named trace with its playback status, persisted by a SessionStore.
  - Instruction: A single render command emitted during playback.
*/
package domain
