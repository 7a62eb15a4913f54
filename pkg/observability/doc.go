/*
Package observability provides tools for monitoring the Ribbon engine.

It turns engine lifecycle hooks into Prometheus metrics and structured log records.
Both return domain.LifecycleHooks, which can be combined with LifecycleHooks.Merge.
*/
package observability
