package concrete

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	colorReset = "\033[0m"
	colorBlue  = "\033[34m"
	colorGreen = "\033[32m"
)

// Renders concrete syntax as source text. The printer never adds or removes
// parentheses: whatever Parens nodes are in the tree are what gets printed.
// With Color set, keywords and literals are highlighted for a terminal.
type Printer struct {
	Color bool
	buf   strings.Builder
}

func Print(t Term) string {
	var p Printer
	return p.Term(t)
}

func PrintDeclaration(d Declaration) string {
	var p Printer
	return p.Declaration(d)
}

func PrintModule(m Module) string {
	var p Printer
	return p.Module(m)
}

func (p *Printer) Term(t Term) string {
	p.buf.Reset()
	p.term(t)
	return p.buf.String()
}

func (p *Printer) Declaration(d Declaration) string {
	p.buf.Reset()
	p.declaration(d)
	return p.buf.String()
}

func (p *Printer) Module(m Module) string {
	p.buf.Reset()
	if m.Name.Name != "" {
		p.keyword("module")
		p.write(" " + m.Name.Name + ";\n\n")
	}
	for _, d := range m.Declarations {
		p.declaration(d)
		p.write("\n")
		if _, ok := d.(Definition); ok {
			p.write("\n")
		}
	}
	return strings.TrimRight(p.buf.String(), "\n") + "\n"
}

func (p *Printer) write(s string) { p.buf.WriteString(s) }

func (p *Printer) colorize(s, c string) {
	if p.Color {
		p.write(c + s + colorReset)
	} else {
		p.write(s)
	}
}

func (p *Printer) keyword(s string) { p.colorize(s, colorBlue) }
func (p *Printer) literal(s string) { p.colorize(s, colorGreen) }

func (p *Printer) declaration(d Declaration) {
	switch d := d.(type) {
	case Claim:
		p.write(d.Name.Name + " : ")
		p.term(d.Ann)
		p.write(";")
	case Definition:
		p.write(d.Name)
		for _, param := range d.Params {
			p.write(" ")
			p.lamParam(param)
		}
		p.write(" = ")
		p.term(d.Body)
		if len(d.Wheres) > 0 {
			p.write(" ")
			p.keyword("where")
			p.write(" { ")
			for i, w := range d.Wheres {
				if i > 0 {
					p.write(" ")
				}
				p.declaration(w)
			}
			p.write(" }")
		}
		p.write(";")
	default:
		panic(fmt.Sprintf("concrete: unknown declaration %T", d))
	}
}

func (p *Printer) term(t Term) {
	switch t := t.(type) {
	case Parens:
		p.write("(")
		p.term(t.Term)
		p.write(")")
	case Ann:
		p.term(t.Term)
		p.write(" : ")
		p.term(t.Type)
	case Universe:
		p.keyword("Type")
		if t.Level != nil {
			p.write(" ")
			p.literal(strconv.FormatUint(uint64(*t.Level), 10))
		}
	case Var:
		p.write(t.Name)
	case Literal:
		p.literal(FormatLit(t.Value))
	case Pi:
		for _, param := range t.Params {
			p.write("(" + names(param) + " : ")
			p.term(param.Ann)
			p.write(") ")
		}
		p.write("-> ")
		p.term(t.Body)
	case Arrow:
		p.term(t.Ann)
		p.write(" -> ")
		p.term(t.Body)
	case Lam:
		p.write("\\")
		for i, param := range t.Params {
			if i > 0 {
				p.write(" ")
			}
			p.lamParam(param)
		}
		p.write(" => ")
		p.term(t.Body)
	case App:
		p.term(t.Fn)
		for _, arg := range t.Args {
			p.write(" ")
			p.term(arg)
		}
	case If:
		p.keyword("if")
		p.write(" ")
		p.term(t.Cond)
		p.write(" ")
		p.keyword("then")
		p.write(" ")
		p.term(t.Then)
		p.write(" ")
		p.keyword("else")
		p.write(" ")
		p.term(t.Else)
	case RecordType:
		p.keyword("Record")
		p.fields(t.Fields, ":")
	case Record:
		p.keyword("record")
		p.fields(t.Fields, "=")
	case Proj:
		p.term(t.Expr)
		p.write("." + t.Label)
	default:
		panic(fmt.Sprintf("concrete: unknown term %T", t))
	}
}

func (p *Printer) lamParam(param Param) {
	if param.Ann == nil {
		p.write(names(param))
		return
	}
	p.write("(" + names(param) + " : ")
	p.term(param.Ann)
	p.write(")")
}

func (p *Printer) fields(fields []Field, sep string) {
	if len(fields) == 0 {
		p.write(" {}")
		return
	}
	p.write(" { ")
	for i, f := range fields {
		if i > 0 {
			p.write("; ")
		}
		p.write(f.Label + " " + sep + " ")
		p.term(f.Term)
	}
	p.write(" }")
}

func names(param Param) string {
	return strings.Join(lo.Map(param.Names, func(id Ident, _ int) string { return id.Name }), " ")
}

// Format a literal as it would be written in source.
func FormatLit(l Lit) string {
	switch l := l.(type) {
	case StringLit:
		return strconv.Quote(string(l))
	case CharLit:
		return strconv.QuoteRune(rune(l))
	case IntLit:
		return strconv.FormatUint(uint64(l), 10)
	case FloatLit:
		s := strconv.FormatFloat(float64(l), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEIN") {
			s += ".0"
		}
		return s
	default:
		panic(fmt.Sprintf("concrete: unknown literal %T", l))
	}
}
