package core

import (
	"fmt"
	"strconv"
)

// A primitive literal or primitive type. The set of variants is closed.
type Constant interface {
	fmt.Stringer
	isConstant()
}

type (
	Bool   bool
	String string
	Char   rune
	U8     uint8
	U16    uint16
	U32    uint32
	U64    uint64
	I8     int8
	I16    int16
	I32    int32
	I64    int64
	F32    float32
	F64    float64
)

// The built-in primitive types.
type PrimType uint8

const (
	BoolType PrimType = iota + 1
	StringType
	CharType
	U8Type
	U16Type
	U32Type
	U64Type
	I8Type
	I16Type
	I32Type
	I64Type
	F32Type
	F64Type
)

// All primitive types, in declaration order.
var PrimTypes = []PrimType{
	BoolType, StringType, CharType,
	U8Type, U16Type, U32Type, U64Type,
	I8Type, I16Type, I32Type, I64Type,
	F32Type, F64Type,
}

func (Bool) isConstant()     {}
func (String) isConstant()   {}
func (Char) isConstant()     {}
func (U8) isConstant()       {}
func (U16) isConstant()      {}
func (U32) isConstant()      {}
func (U64) isConstant()      {}
func (I8) isConstant()       {}
func (I16) isConstant()      {}
func (I32) isConstant()      {}
func (I64) isConstant()      {}
func (F32) isConstant()      {}
func (F64) isConstant()      {}
func (PrimType) isConstant() {}

func (c Bool) String() string   { return strconv.FormatBool(bool(c)) }
func (c String) String() string { return strconv.Quote(string(c)) }
func (c Char) String() string   { return strconv.QuoteRune(rune(c)) }
func (c U8) String() string     { return strconv.FormatUint(uint64(c), 10) + "u8" }
func (c U16) String() string    { return strconv.FormatUint(uint64(c), 10) + "u16" }
func (c U32) String() string    { return strconv.FormatUint(uint64(c), 10) + "u32" }
func (c U64) String() string    { return strconv.FormatUint(uint64(c), 10) + "u64" }
func (c I8) String() string     { return strconv.FormatInt(int64(c), 10) + "i8" }
func (c I16) String() string    { return strconv.FormatInt(int64(c), 10) + "i16" }
func (c I32) String() string    { return strconv.FormatInt(int64(c), 10) + "i32" }
func (c I64) String() string    { return strconv.FormatInt(int64(c), 10) + "i64" }
func (c F32) String() string    { return strconv.FormatFloat(float64(c), 'g', -1, 32) + "f32" }
func (c F64) String() string    { return strconv.FormatFloat(float64(c), 'g', -1, 64) + "f64" }

func (p PrimType) String() string {
	switch p {
	case BoolType:
		return "Bool"
	case StringType:
		return "String"
	case CharType:
		return "Char"
	case U8Type:
		return "U8"
	case U16Type:
		return "U16"
	case U32Type:
		return "U32"
	case U64Type:
		return "U64"
	case I8Type:
		return "I8"
	case I16Type:
		return "I16"
	case I32Type:
		return "I32"
	case I64Type:
		return "I64"
	case F32Type:
		return "F32"
	case F64Type:
		return "F64"
	default:
		panic("core: invalid primitive type encountered")
	}
}

// Look up a primitive type by its surface name.
func PrimTypeByName(name string) (PrimType, bool) {
	for _, p := range PrimTypes {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}
