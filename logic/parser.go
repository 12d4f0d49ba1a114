package logic

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar below accepts the default syntax, from lowest to highest priority:
//
// - for an equivalence, the "<->" operator (right associative),
// - for an implication, the "->" operator (right associative),
// - for a disjunction, the "|" operator,
// - for a conjunction, the "&" operator,
// - for binary temporal operators, "U", "W", "R", "M", "S" and "T"
//   (a chain of the same operator is n-ary, mixed chains nest to the right),
// - for unary operators, "~" or "!", "X[!]", "X", "F", "G", "Y", "WY", "O", "H",
//   and the LDLf modalities "<regex>" and "[regex]".
//
// Regular expressions use "+" for union, ";" for sequence, a postfix "*" for the
// Kleene star and a prefix "?" for tests.

type exprEquiv struct {
	Left  *exprImplies `@@`
	Right *exprEquiv   `( "<->" @@ )?`
}

type exprImplies struct {
	Left  *exprOr      `@@`
	Right *exprImplies `( "->" @@ )?`
}

type exprOr struct {
	Operands []*exprAnd `@@ ( "|" @@ )*`
}

type exprAnd struct {
	Operands []*exprTemporal `@@ ( "&" @@ )*`
}

type exprTemporal struct {
	Head *exprUnary    `@@`
	Op   string        `( @( "U" | "W" | "R" | "M" | "S" | "T" )`
	Tail *exprTemporal `  @@ )?`
}

type exprUnary struct {
	Op       string     `  ( @( "~" | "!" | StrongNext | "X" | "WX" | "F" | "G" | "Y" | "WY" | "O" | "H" )`
	Operand  *exprUnary `    @@ )`
	Modality *modality  `| @@`
	Primary  *primary   `| @@`
}

type modality struct {
	Diamond *regexUnion `(   "<" @@ ">"`
	Box     *regexUnion `  | "[" @@ "]" )`
	Tail    *exprUnary  `@@`
}

type primary struct {
	Const string     `  @( "true" | "false" | "tt" | "ff" )`
	Atom  string     `| @Ident`
	Sub   *exprEquiv `| "(" @@ ")"`
}

type regexUnion struct {
	Operands []*regexSeq `@@ ( "+" @@ )*`
}

type regexSeq struct {
	Operands []*regexStar `@@ ( ";" @@ )*`
}

type regexStar struct {
	Base  *regexBase `@@`
	Stars []string   `@"*"*`
}

type regexBase struct {
	Test  *exprUnary  `  "?" @@`
	Group *regexUnion `| "(" @@ ")"`
	Prop  *exprEquiv  `| @@`
}

var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "StrongNext", Pattern: `X\[!\]`},
	{Name: "Keyword", Pattern: `(WX|WY|X|F|G|U|W|R|M|Y|O|H|S|T|true|false|tt|ff)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `<->|->|[~!&|()<>\[\];+*?]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var formulaParser = participle.MustBuild[exprEquiv](
	participle.Lexer(formulaLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(256),
)

// Parse parses a formula of logic l written in the default syntax.
// Parse(l, f.String()) is structurally equal to f for every formula f whose
// implication and equivalence chains are binary.
func Parse(l Logic, text string) (f *Formula, err error) {
	ast, err := formulaParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("could not parse %v formula %q: %w", l, text, err)
	}
	// Constructors panic on operators that do not belong to l.
	defer func() {
		if r := recover(); r != nil {
			f = nil
			err = fmt.Errorf("invalid %v formula %q: %v", l, text, r)
		}
	}()
	b := builder{logic: l}
	return b.equiv(ast), nil
}

type builder struct {
	logic Logic
}

func (b builder) equiv(e *exprEquiv) *Formula {
	left := b.implies(e.Left)
	if e.Right == nil {
		return left
	}
	return Equivalence(left, b.equiv(e.Right))
}

func (b builder) implies(e *exprImplies) *Formula {
	left := b.or(e.Left)
	if e.Right == nil {
		return left
	}
	return Implies(left, b.implies(e.Right))
}

func (b builder) or(e *exprOr) *Formula {
	if len(e.Operands) == 1 {
		return b.and(e.Operands[0])
	}
	subs := make([]*Formula, len(e.Operands))
	for i, op := range e.Operands {
		subs[i] = b.and(op)
	}
	return Or(subs...)
}

func (b builder) and(e *exprAnd) *Formula {
	if len(e.Operands) == 1 {
		return b.temporal(e.Operands[0])
	}
	subs := make([]*Formula, len(e.Operands))
	for i, op := range e.Operands {
		subs[i] = b.temporal(op)
	}
	return And(subs...)
}

var binaryTemporal = map[string]func(...*Formula) *Formula{
	"U": Until,
	"W": WeakUntil,
	"R": Release,
	"M": StrongRelease,
	"S": Since,
	"T": Triggers,
}

// temporal flattens a chain of the same operator into a single n-ary node.
func (b builder) temporal(e *exprTemporal) *Formula {
	if e.Tail == nil {
		return b.unary(e.Head)
	}
	subs := []*Formula{b.unary(e.Head)}
	cur := e.Tail
	for cur.Tail != nil && cur.Op == e.Op {
		subs = append(subs, b.unary(cur.Head))
		cur = cur.Tail
	}
	subs = append(subs, b.temporal(cur))
	return binaryTemporal[e.Op](subs...)
}

var unaryOps = map[string]func(*Formula) *Formula{
	"~":    Not,
	"!":    Not,
	"X[!]": Next,
	"X":    WeakNext,
	"WX":   WeakNext,
	"F":    Eventually,
	"G":    Always,
	"Y":    Before,
	"WY":   WeakBefore,
	"O":    Once,
	"H":    Historically,
}

func (b builder) unary(e *exprUnary) *Formula {
	switch {
	case e.Operand != nil:
		return unaryOps[e.Op](b.unary(e.Operand))
	case e.Modality != nil:
		tail := b.unary(e.Modality.Tail)
		if e.Modality.Diamond != nil {
			return Diamond(b.regex(e.Modality.Diamond), tail)
		}
		return Box(b.regex(e.Modality.Box), tail)
	default:
		return b.primary(e.Primary)
	}
}

func (b builder) primary(e *primary) *Formula {
	switch {
	case e.Sub != nil:
		return b.equiv(e.Sub)
	case e.Atom != "":
		return Atom(b.logic, e.Atom)
	}
	switch e.Const {
	case "true":
		return True(b.logic)
	case "false":
		return False(b.logic)
	case "tt":
		return TT(b.logic)
	default:
		return FF(b.logic)
	}
}

func (b builder) regex(e *regexUnion) *Formula {
	seqs := make([]*Formula, len(e.Operands))
	for i, seq := range e.Operands {
		stars := make([]*Formula, len(seq.Operands))
		for j, star := range seq.Operands {
			r := b.regexBase(star.Base)
			for range star.Stars {
				r = Star(r)
			}
			stars[j] = r
		}
		if len(stars) == 1 {
			seqs[i] = stars[0]
		} else {
			seqs[i] = Seq(stars...)
		}
	}
	if len(seqs) == 1 {
		return seqs[0]
	}
	return Union(seqs...)
}

func (b builder) regexBase(e *regexBase) *Formula {
	switch {
	case e.Test != nil:
		return Test(b.unary(e.Test))
	case e.Group != nil:
		return b.regex(e.Group)
	default:
		return Prop(b.equiv(e.Prop))
	}
}
