package ast

import "fmt"

// Type is any AST type-expression node: a primitive name, or a compound
// form built out of one.
type Type interface {
	Node
	isType()
	String() string
}

// Primitive is one of the Language's built-in scalar types.
type Primitive int

const (
	U8 Primitive = iota
	U16
	U32
	U64
	U128
	Usize
	I8
	I16
	I32
	I64
	I128
	Isize
	F16
	F32
	F64
	F128
	Bool
	Char
	Void
)

var primitiveNames = map[Primitive]string{
	U8: "u8", U16: "u16", U32: "u32", U64: "u64", U128: "u128", Usize: "usize",
	I8: "i8", I16: "i16", I32: "i32", I64: "i64", I128: "i128", Isize: "isize",
	F16: "f16", F32: "f32", F64: "f64", F128: "f128",
	Bool: "bool", Char: "char", Void: "void",
}

func (p Primitive) String() string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// primitivesByName maps surface identifiers to their Primitive, used by
// the parser to resolve a type-position identifier.
var primitivesByName = map[string]Primitive{
	"u8": U8, "u16": U16, "u32": U32, "u64": U64, "u128": U128, "usize": Usize,
	"i8": I8, "i16": I16, "i32": I32, "i64": I64, "i128": I128, "isize": Isize,
	"f16": F16, "f32": F32, "f64": F64, "f128": F128,
	"bool": Bool, "char": Char, "void": Void,
}

// LookupPrimitive resolves name to a Primitive, reporting whether it is
// one of the Language's built-in type names.
func LookupPrimitive(name string) (Primitive, bool) {
	p, ok := primitivesByName[name]
	return p, ok
}

// PrimitiveType wraps a Primitive as a Type.
type PrimitiveType struct {
	baseNode
	Kind Primitive
}

func (*PrimitiveType) isType()         {}
func (t *PrimitiveType) String() string { return t.Kind.String() }

// PointerType is `*Inner`.
type PointerType struct {
	baseNode
	Inner Type
}

func (*PointerType) isType() {}
func (t *PointerType) String() string {
	return "*" + t.Inner.String()
}

// ConstType is `const Inner`.
type ConstType struct {
	baseNode
	Inner Type
}

func (*ConstType) isType() {}
func (t *ConstType) String() string {
	return "const " + t.Inner.String()
}

// VolatileType is `volatile Inner`.
type VolatileType struct {
	baseNode
	Inner Type
}

func (*VolatileType) isType() {}
func (t *VolatileType) String() string {
	return "volatile " + t.Inner.String()
}

// FunctionType is a function pointer/signature type: `fn(Params) -> Ret`.
type FunctionType struct {
	baseNode
	Params []Type
	Ret    Type
}

func (*FunctionType) isType() {}
func (t *FunctionType) String() string {
	s := "fn("
	for i, p := range t.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	s += "): " + t.Ret.String()
	return s
}
