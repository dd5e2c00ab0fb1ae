package ast

// TypeKind identifies a C type constructor
type TypeKind int

const (
	TVoid TypeKind = iota
	TChar
	TInt
	TPtr
	TArray
	TStruct
)

var typeKindNames = map[TypeKind]string{
	TVoid:   "void",
	TChar:   "char",
	TInt:    "int",
	TPtr:    "ptr",
	TArray:  "array",
	TStruct: "struct",
}

func (k TypeKind) String() string {
	if name, ok := typeKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Type is a C type with its size and alignment in bytes. The zero
// value is the empty placeholder carried by nodes whose type is left
// for a later pass.
type Type struct {
	Kind  TypeKind
	Size  int
	Align int

	Base *Type // TPtr: pointee; TArray: element

	Len int // TArray: element count

	Members []*Node // TStruct: ordered member declarations
}

func newType(kind TypeKind, size int) *Type {
	return &Type{Kind: kind, Size: size, Align: size}
}

// VoidType returns the void type (size 0, align 0).
func VoidType() *Type {
	return newType(TVoid, 0)
}

// CharType returns the char type (size 1, align 1).
func CharType() *Type {
	return newType(TChar, 1)
}

// IntType returns the int type (size 4, align 4).
func IntType() *Type {
	return newType(TInt, 4)
}

// PtrTo returns a pointer to base (size 8, align 8).
func PtrTo(base *Type) *Type {
	ty := newType(TPtr, 8)
	ty.Base = base
	return ty
}

// ArrayOf returns an array of n elements of base. Its size is the
// element size times the length; its alignment is the element's.
func ArrayOf(base *Type, n int) *Type {
	ty := newType(TArray, base.Size*n)
	ty.Align = base.Align
	ty.Base = base
	ty.Len = n
	return ty
}

// StructOf lays out the given members in declaration order and returns
// the struct type. Each member gets its byte offset assigned in place;
// the struct's alignment is the largest member alignment and its size
// is the total rounded up to that alignment. Members must be local
// variable definitions with unassigned offsets; anything else is a bug
// in the caller, not in the input.
func StructOf(members []*Node) *Type {
	off := 0
	align := 0
	for _, m := range members {
		if m.Kind != NVardef || m.Scope.Kind != Local {
			panic("ast: struct member is not a local variable definition")
		}
		off = alignUp(off, m.Ty.Align)
		m.Scope.Offset = off
		off += m.Ty.Size

		if align < m.Ty.Align {
			align = m.Ty.Align
		}
	}
	ty := newType(TStruct, alignUp(off, align))
	ty.Align = align
	ty.Members = members
	return ty
}

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}
