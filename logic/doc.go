// Package logic defines the formulas handed to the translation backends.
//
// A formula is a tree of immutable nodes. Each node has a Kind, taken from a
// closed enumeration, and a Logic tag telling which formalism it belongs to:
// LTLf, PLTLf, LDLf, PLDLf, FOL or MSO. All the nodes of a tree share the same
// tag, and each kind can only appear in the logics that define it.
//
// For example, the LTLf formula
//
// G(request -> F(grant))
//
// is built with the following code:
//
// f := Always(Implies(Atom(LTL, "request"), Eventually(Atom(LTL, "grant"))))
//
// or, equivalently, parsed from its textual form:
//
// f, err := Parse(LTL, "G(request -> F(grant))")
//
// The textual form returned by String is the default syntax shared by every
// backend; backends override parts of it for their own tools.
package logic
