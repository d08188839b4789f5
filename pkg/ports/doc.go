/*
Package ports defines the driven ports (interfaces) of the Frontier engine.

These interfaces decouple the simulator and the playback scheduler from the
outside world, so the same engine can be fed by an in-process or a remote
solver, persist sessions in memory, on disk or in Redis, and draw on a
terminal or over Server-Sent Events.

# Key Interfaces

  - Solver: Produces the explored order and the path for a solve request.
  - Renderer: Receives the five playback instructions.
  - SessionStore: Persists sessions.
  - DistributedLocker: Serializes access to a session across replicas.
*/
package ports
