// Package indexer assigns dense variable slots to ast.Var nodes and flags
// reads that precede any assignment.
//
// Variables live in one flat namespace spanning every event of a product,
// in ascending event-date order: the first time a name is seen (whether in
// a binding or a read position) it is given the next free slot, and that
// slot is reused for every later occurrence of the same name. A read seen
// before the name has ever been bound (an Assign/Pays lhs or a For loop
// variable) is logged once per name, since its value at evaluation time
// will be whatever zero-initialized default the evaluator assigns.
package indexer
