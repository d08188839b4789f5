/*
Package playback replays a domain.Trace as a timed animation.

A Scheduler walks the trace one tick at a time: first one tick per explored
node (highlight it, show that tick's narration, show the frontier), then one
tick per path node (highlight it and move the robot token there). Every tick
turns into calls on a ports.Renderer.

Timing comes from a Clock. SystemClock uses a time.Ticker; ManualClock fires
only when the caller advances it, which makes playback deterministic in tests
and lets a front-end step through a trace by hand.

	sched := playback.NewScheduler(renderer)
	sched.Start(tr, playback.Interval(500))
	<-sched.Done()
*/
package playback
