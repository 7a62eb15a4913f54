/*
Package ports defines the driven ports (interfaces) for the Ribbon engine.

These interfaces decouple the machine from external implementations, allowing
traces to be kept in various storage backends and graphs to come from various sources.

# Key Interfaces

  - TraceStore: Responsible for persisting and loading run traces.
  - GraphSource: Responsible for producing a machine graph (e.g., from a YAML definition).
*/
package ports
