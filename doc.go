/*
Package ribbon simulates multi-tape Turing machines, including non-deterministic ones.

A machine is a graph of states joined by guarded transitions. Every machine has one
bounded input tape and k unbounded writing tapes. Running a word produces a sequence of
Steps; when several transitions match, the engine saves a checkpoint and explores the
first one, backtracking to the saved alternatives whenever a branch dead-ends.

# Usage

	m, err := ribbon.New(1)
	if err != nil {
		log.Fatal(err)
	}

	entry, _ := domain.ParseTransition([]string{"ç", "ç"}, []string{"ç"}, []string{"R", "R"})
	_ = m.AppendTransition("i", entry, "q")
	done, _ := domain.ParseTransition([]string{"$", "_"}, []string{"_"}, []string{"N", "N"})
	_ = m.AppendTransition("q", done, "a")

	eng, err := m.Start("0110")
	...
	for step, err := range eng.Steps() {
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(step)
	}
	fmt.Println(eng.Status())

Run wraps this loop with a step cap and context cancellation and returns a Trace.
*/
package ribbon
