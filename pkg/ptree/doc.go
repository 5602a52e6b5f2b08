// Package ptree renders arbitrary nested Go values as tree diagrams.
//
// Maps, slices, arrays, sets (maps with struct{} values), structs and types
// implementing Container become branches. Strings, byte slices, errors,
// fmt.Stringer implementations and every other scalar become leaves.
//
//	ptree.Print(map[string]any{"A": []int{3, 1}, "B": "x\ny"}, ptree.WithStyle(ptree.ASCII()))
//
//	`- . [items=2]
//	   |- A [items=2]
//	   |  |- 0: 3
//	   |  `- 1: 1
//	   `- B: x
//	         y
//
// # Cycles
//
// Every call keeps its own set of visited maps, slices and pointers. A value
// seen earlier in the same call is rendered as a recursion marker leaf
// instead of being expanded again, so self-referential values terminate.
// Calls never share state and may run concurrently.
//
// # Ordering
//
// Keyed children are sorted when all keys are mutually comparable (numbers,
// strings or bools). Otherwise Container entries keep the order they were
// returned in and Go maps fall back to ordering by type name and display
// form. Sequences and struct fields always keep their natural order.
//
// # Options
//
// WithStyle selects the glyph set (Unicode by default, ASCII available),
// WithDepth stops expansion at a nesting level, and WithAnnotations adds the
// runtime type to every branch row.
package ptree
