/*
Package frontier replays a maze search as a narrated, tick-by-tick animation.

A solver (in-process or remote) returns the explored order and the final path
for BFS, DFS or A*. The engine reconstructs the frontier evolution that
explains that order, step by step, and a playback scheduler turns the trace
into rendering instructions at a fixed tick interval.

# Usage

	package main

	import (
		"context"
		"log"
		"time"

		"github.com/aretw0/frontier"
		"github.com/aretw0/frontier/pkg/adapters/memory"
		"github.com/aretw0/frontier/pkg/domain"
	)

	func main() {
		// Default classroom maze, local solver, in-memory sessions
		eng, err := frontier.New(nil)
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		if _, err := eng.SolveSession(ctx, "demo", domain.SolveRequest{Algorithm: domain.AlgorithmAStar}); err != nil {
			log.Fatal(err)
		}

		rec := memory.NewRecorder()
		player, err := eng.Play(ctx, "demo", rec, 10*time.Millisecond)
		if err != nil {
			log.Fatal(err)
		}
		_ = player.Wait(ctx)
		log.Println(len(rec.Instructions()), "instructions")
	}
*/
package frontier
