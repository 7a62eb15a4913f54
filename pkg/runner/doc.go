/*
Package runner implements the execution loop and I/O orchestration around a Machine.

It acts as the bridge between the machine and the outside world: it validates the
input word, streams steps through a pluggable handler, stops cleanly on interrupt
signals and persists the resulting trace.

# Key Components

  - Runner: The orchestrator. Run validates, executes, reports and saves.
  - OutputHandler: Decouples how steps are reported (text, JSON lines, nothing).
  - TextHandler: One line per step, for terminals and logs.
  - JSONHandler: JSON-Lines events for programmatic consumers.

# Usage

	r := runner.NewRunner(
		runner.WithHandler(runner.NewTextHandler(os.Stdout)),
		runner.WithStore(file.New("")),
	)

	trace, err := r.Run(ctx, machine, "0110")
*/
package runner
