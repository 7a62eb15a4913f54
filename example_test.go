package ribbon_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/ribbon"
	"github.com/aretw0/ribbon/pkg/domain"
)

// ExampleMachine_Run guesses which 'x' to copy. Skipping every letter dead-ends
// on the end marker, so the engine backtracks and copies the last one instead.
func ExampleMachine_Run() {
	m, err := ribbon.New(1)
	if err != nil {
		log.Fatal(err)
	}

	add := func(from string, reads, writes, moves []string, to string) {
		t, err := domain.ParseTransition(reads, writes, moves)
		if err != nil {
			log.Fatal(err)
		}
		if err := m.AppendTransition(from, t, to); err != nil {
			log.Fatal(err)
		}
	}
	add("i", []string{"ç", "ç"}, []string{"ç"}, []string{"R", "R"}, "guess")
	add("guess", []string{"x", "_"}, []string{"_"}, []string{"R", "N"}, "guess")
	add("guess", []string{"x", "_"}, []string{"x"}, []string{"R", "R"}, "done")
	add("done", []string{"$", "_"}, []string{"_"}, []string{"N", "N"}, "a")

	trace, err := m.Run(context.Background(), "xx")
	if err != nil {
		log.Fatal(err)
	}
	for _, step := range trace.Steps {
		fmt.Println(step.String())
	}
	fmt.Println(trace.Status)
	// Output:
	// i | [ç]xx$ | [ç]_
	// 0 --(ç,ç -> R,ç,R)--> guess | ç[x]x$ | ç[_]
	// 3 --(x,_ -> R,_,N)--> guess | çx[x]$ | ç[_]
	// 3 --(x,_ -> R,_,N)--> guess | çxx[$] | ç[_]
	// <backtrack to 3> 3 --(x,_ -> R,x,R)--> done | çxx[$] | çx[_]
	// 4 --($,_ -> N,_,N)--> a | çxx[$] | çx[_]
	// accepted
}
