/*
Package definition reads and writes machine definitions in YAML.

A definition lists the number of writing tapes, optional extra states and the
transitions between states. States named in transitions are created on demand;
the reserved states i, a and r always exist.

	name: copy
	ribbons: 1
	transitions:
	  - {from: i, to: q1, rule: "ç,ç -> R,ç,R"}
	  - from: q1
	    to: q1
	    read: [a, _]
	    move: R
	    write:
	      - {symbol: a, move: R}
	  - {from: q1, to: a, rule: "$,_ -> N,_,N"}

The compact rule form is "reads -> move,write,move,...,write,move" and cannot
express a literal comma; use the expanded read/move/write form for that.
*/
package definition
