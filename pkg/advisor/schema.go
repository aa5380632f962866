package advisor

// FieldType enumerates the value kinds the reply shapes use.
type FieldType int

const (
	TypeString FieldType = iota
	TypeNumber
	TypeBoolean
	TypeStringArray
	TypeObjectArray
	TypeObject
)

// Field is one property of a declared reply shape.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	// Items describes element fields for TypeObjectArray, and nested
	// fields for TypeObject.
	Items []Field
}

// Schema is a provider-neutral description of a JSON object reply. Each
// provider renders it into its own schema dialect.
type Schema struct {
	Fields []Field
}

// Object builds a schema from its fields.
func Object(fields ...Field) *Schema {
	return &Schema{Fields: fields}
}

func Str(name string) Field        { return Field{Name: name, Type: TypeString} }
func Num(name string) Field        { return Field{Name: name, Type: TypeNumber} }
func Bool(name string) Field       { return Field{Name: name, Type: TypeBoolean} }
func StrArray(name string) Field   { return Field{Name: name, Type: TypeStringArray} }

func ObjArray(name string, items ...Field) Field {
	return Field{Name: name, Type: TypeObjectArray, Items: items}
}

func Obj(name string, fields ...Field) Field {
	return Field{Name: name, Type: TypeObject, Items: fields}
}

// Require marks a field as required.
func Require(f Field) Field {
	f.Required = true
	return f
}
