package core

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Core modules can be written as YAML documents, which is how they are handed
// to the command line tools. Terms use names for variables; binders close over
// them as the document is decoded, so the result is locally closed.
//
//	name: prelude
//	definitions:
//	  - name: id
//	    type: {pi: {name: a, type: Type, body: {arrow: [a, a]}}}
//	    term: {lam: {name: a, type: Type, body: {lam: {name: x, type: a, body: x}}}}
//
// A bare scalar is a variable, except for `Type`, `true`, `false` and the
// primitive type names. Every other term is a mapping with a single key naming
// its form: ann, universe, var, bool, string, char, u8..u64, i8..i64, f32,
// f64, prim, pi, lam, arrow, app, if, record_type, record, proj.
type DecodeError struct {
	Line   int
	Column int
	Msg    string
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("core: line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

func decodeErr(node *yaml.Node, format string, args ...any) error {
	return DecodeError{node.Line, node.Column, fmt.Sprintf(format, args...)}
}

func DecodeModule(data []byte) (Module, error) {
	node, err := documentRoot(data)
	if err != nil {
		return Module{}, err
	}
	fields, err := mappingFields(node)
	if err != nil {
		return Module{}, err
	}

	mod := Module{}
	if n, ok := fields["name"]; ok {
		if err := n.Decode(&mod.Name); err != nil {
			return Module{}, decodeErr(n, "module name: %v", err)
		}
	}
	defs, ok := fields["definitions"]
	if !ok {
		return mod, nil
	}
	if defs.Kind != yaml.SequenceNode {
		return Module{}, decodeErr(defs, "definitions must be a sequence")
	}
	for _, d := range defs.Content {
		def, err := decodeDefinition(d)
		if err != nil {
			return Module{}, err
		}
		mod.Definitions = append(mod.Definitions, def)
	}
	return mod, nil
}

func DecodeTerm(data []byte) (Term, error) {
	node, err := documentRoot(data)
	if err != nil {
		return nil, err
	}
	return decodeTerm(node)
}

func documentRoot(data []byte) (*yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("core: decoding document: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("core: empty document")
	}
	return root.Content[0], nil
}

func mappingFields(node *yaml.Node) (map[string]*yaml.Node, error) {
	if node.Kind != yaml.MappingNode {
		return nil, decodeErr(node, "expected a mapping")
	}
	fields := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		fields[node.Content[i].Value] = node.Content[i+1]
	}
	return fields, nil
}

func decodeDefinition(node *yaml.Node) (Definition, error) {
	fields, err := mappingFields(node)
	if err != nil {
		return Definition{}, err
	}
	def := Definition{}
	name, ok := fields["name"]
	if !ok {
		return Definition{}, decodeErr(node, "definition without a name")
	}
	def.Name = name.Value

	ty, ok := fields["type"]
	if !ok {
		return Definition{}, decodeErr(node, "definition %s has no type", def.Name)
	}
	if def.Ann, err = decodeTerm(ty); err != nil {
		return Definition{}, err
	}
	term, ok := fields["term"]
	if !ok {
		return Definition{}, decodeErr(node, "definition %s has no term", def.Name)
	}
	if def.Term, err = decodeTerm(term); err != nil {
		return Definition{}, err
	}
	return def, nil
}

func decodeTerm(node *yaml.Node) (Term, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return decodeScalar(node), nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return nil, decodeErr(node, "a term must have exactly one form, found %d", len(node.Content)/2)
		}
		return decodeForm(node.Content[0].Value, node.Content[1])
	default:
		return nil, decodeErr(node, "expected a term")
	}
}

func decodeScalar(node *yaml.Node) Term {
	switch node.Value {
	case "Type":
		return Universe{0}
	case "true":
		return Const{Bool(true)}
	case "false":
		return Const{Bool(false)}
	}
	if p, ok := PrimTypeByName(node.Value); ok {
		return Const{p}
	}
	return FreeVar{UserName(node.Value)}
}

func decodeForm(form string, node *yaml.Node) (Term, error) {
	switch form {
	case "ann":
		args, err := decodeTerms(node, 2)
		if err != nil {
			return nil, err
		}
		return Ann{args[0], args[1]}, nil
	case "universe":
		var level Level
		if err := node.Decode(&level); err != nil {
			return nil, decodeErr(node, "universe level: %v", err)
		}
		return Universe{level}, nil
	case "var":
		return FreeVar{UserName(node.Value)}, nil
	case "prim":
		p, ok := PrimTypeByName(node.Value)
		if !ok {
			return nil, decodeErr(node, "unknown primitive type %q", node.Value)
		}
		return Const{p}, nil
	case "pi", "lam":
		return decodeBinder(form, node)
	case "arrow":
		args, err := decodeTerms(node, 2)
		if err != nil {
			return nil, err
		}
		return Pi{Scope{Hint: "_", Ann: args[0], Body: args[1]}}, nil
	case "app":
		if node.Kind != yaml.SequenceNode || len(node.Content) < 2 {
			return nil, decodeErr(node, "app needs a function and at least one argument")
		}
		args, err := decodeTerms(node, len(node.Content))
		if err != nil {
			return nil, err
		}
		res := args[0]
		for _, arg := range args[1:] {
			res = App{res, arg}
		}
		return res, nil
	case "if":
		args, err := decodeTerms(node, 3)
		if err != nil {
			return nil, err
		}
		return If{args[0], args[1], args[2]}, nil
	case "record_type", "record":
		fields, err := decodeFields(node)
		if err != nil {
			return nil, err
		}
		if form == "record_type" {
			return NewRecordType(fields...), nil
		}
		return NewRecord(fields...), nil
	case "proj":
		if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
			return nil, decodeErr(node, "proj needs a term and a label")
		}
		expr, err := decodeTerm(node.Content[0])
		if err != nil {
			return nil, err
		}
		return Proj{expr, node.Content[1].Value}, nil
	default:
		return decodeConstant(form, node)
	}
}

func decodeBinder(form string, node *yaml.Node) (Term, error) {
	fields, err := mappingFields(node)
	if err != nil {
		return nil, err
	}
	name, okName := fields["name"]
	ty, okType := fields["type"]
	body, okBody := fields["body"]
	if !okName || !okType || !okBody {
		return nil, decodeErr(node, "%s needs a name, a type and a body", form)
	}
	ann, err := decodeTerm(ty)
	if err != nil {
		return nil, err
	}
	inner, err := decodeTerm(body)
	if err != nil {
		return nil, err
	}
	scope := Bind(UserName(name.Value), ann, inner)
	if form == "pi" {
		return Pi{scope}, nil
	}
	return Lam{scope}, nil
}

func decodeTerms(node *yaml.Node, n int) ([]Term, error) {
	if node.Kind != yaml.SequenceNode || len(node.Content) != n {
		return nil, decodeErr(node, "expected a sequence of %d terms", n)
	}
	res := make([]Term, n)
	for i, c := range node.Content {
		t, err := decodeTerm(c)
		if err != nil {
			return nil, err
		}
		res[i] = t
	}
	return res, nil
}

func decodeFields(node *yaml.Node) ([]Field, error) {
	if node.Kind != yaml.MappingNode {
		return nil, decodeErr(node, "record fields must be a mapping")
	}
	res := []Field{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		t, err := decodeTerm(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		res = append(res, Field{node.Content[i].Value, t})
	}
	return res, nil
}

func decodeConstant(form string, node *yaml.Node) (Term, error) {
	var c Constant
	var err error
	switch form {
	case "bool":
		var v bool
		err = node.Decode(&v)
		c = Bool(v)
	case "string":
		var v string
		err = node.Decode(&v)
		c = String(v)
	case "char":
		r, size := utf8.DecodeRuneInString(node.Value)
		if size == 0 || size != len(node.Value) {
			return nil, decodeErr(node, "char must be exactly one character, got %q", node.Value)
		}
		c = Char(r)
	case "u8":
		var v uint8
		err = node.Decode(&v)
		c = U8(v)
	case "u16":
		var v uint16
		err = node.Decode(&v)
		c = U16(v)
	case "u32":
		var v uint32
		err = node.Decode(&v)
		c = U32(v)
	case "u64":
		var v uint64
		err = node.Decode(&v)
		c = U64(v)
	case "i8":
		var v int8
		err = node.Decode(&v)
		c = I8(v)
	case "i16":
		var v int16
		err = node.Decode(&v)
		c = I16(v)
	case "i32":
		var v int32
		err = node.Decode(&v)
		c = I32(v)
	case "i64":
		var v int64
		err = node.Decode(&v)
		c = I64(v)
	case "f32":
		var v float32
		err = node.Decode(&v)
		c = F32(v)
	case "f64":
		var v float64
		err = node.Decode(&v)
		c = F64(v)
	default:
		return nil, decodeErr(node, "unknown term form %q", form)
	}
	if err != nil {
		return nil, decodeErr(node, "%s literal: %v", form, err)
	}
	return Const{c}, nil
}
