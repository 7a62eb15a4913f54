/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing Ribbon machines.

It allows developers to define machines using a fluent builder pattern instead of relying on
external YAML files. This is particularly useful for generated machines, unit testing, and
leveraging IDE autocompletion/type-checking.

Example usage:

	b := dsl.New(1)

	b.State("i").
		On("ç", "ç").Move("R").Write("ç", "R").Go("q1")

	b.State("q1").
		On("a", "_").Move("R").Write("a", "R").Go("q1").
		Rule("$,_ -> N,_,N", "a")

	g, err := b.Build()
	// ... pass g to ribbon.FromGraph(...)
*/
package dsl
