/*
Package domain contains the core model of the Ribbon engine.

It defines the fundamental entities of a multi-tape Turing machine: tape cells
(Symbols), head movements (Directions), the Tapes themselves, guarded Transitions,
States and the Graph that owns them, plus the Step snapshots produced while a
machine runs. This package is kept pure and free of I/O or persistence concerns.

# Key Entities

  - Symbol: a tape cell, either an ordinary letter or one of the Start, End and Blank markers.
  - Tape: the bounded input tape or an unbounded writing tape, with its head.
  - Transition: read guards for every tape, the input move and one (write, move) pair per writing tape.
  - Graph: the ordered States with their outgoing Transitions and a name index.
  - Step: an immutable snapshot returned by the execution engine.
*/
package domain
