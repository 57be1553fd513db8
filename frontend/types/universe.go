package types

// The builtin scalar types. Each is pre-interned, so it compares
// reference-identical to NewPrimitive of the same name, including after
// ClearCaches.
var (
	Int     = NewPrimitive("Int")
	Long    = NewPrimitive("Long")
	Float   = NewPrimitive("Float")
	Double  = NewPrimitive("Double")
	Boolean = NewPrimitive("Boolean")
	String  = NewPrimitive("String")
	Unit    = NewPrimitive("Unit")
)

var builtinScalars = []*Primitive{Int, Long, Float, Double, Boolean, String, Unit}

// Builtins returns the builtin scalar bindings by source-level type name.
func Builtins() map[string]Type {
	return map[string]Type{
		"Int":     Int,
		"Long":    Long,
		"Float":   Float,
		"Double":  Double,
		"Boolean": Boolean,
		"String":  String,
		"Unit":    Unit,
	}
}
