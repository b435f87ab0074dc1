package core

// A top level definition: a name, the type it is claimed to have, and its body.
type Definition struct {
	Name string
	Ann  Term
	Term Term
}

type Module struct {
	Name        string
	Definitions []Definition
}

// A labelled field, used to build record chains from flat lists.
type Field struct {
	Label string
	Term  Term
}

// Build the right-nested chain for a record type with the given fields.
func NewRecordType(fields ...Field) Term {
	var res Term = EmptyRecordType{}
	for i := len(fields) - 1; i >= 0; i-- {
		res = RecordType{fields[i].Label, fields[i].Term, res}
	}
	return res
}

// Build the right-nested chain for a record value with the given fields.
func NewRecord(fields ...Field) Term {
	var res Term = EmptyRecord{}
	for i := len(fields) - 1; i >= 0; i-- {
		res = Record{fields[i].Label, fields[i].Term, res}
	}
	return res
}
