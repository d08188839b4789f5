/*
Package observability turns engine lifecycle hooks into Prometheus metrics and
structured log lines.

Both are plain domain.LifecycleHooks values, so they can be combined with
domain.MergeHooks and handed to the engine with frontier.WithLifecycleHooks.
*/
package observability
