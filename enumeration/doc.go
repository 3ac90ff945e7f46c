// Package enumeration builds value enumerations on top of multiton
// registries: every member carries a scalar value and can be looked up by it.
//
//	type Method struct{ enumeration.Member[int] }
//
//	var methods = enumeration.Declare("Method", []enumeration.Pair[int]{
//	    enumeration.NewPair("GET", 1),
//	    enumeration.NewPair("POST", 2),
//	}, func(m enumeration.Member[int]) *Method { return &Method{m} })
//
//	func GET() *Method { return methods.MustByKey("GET") }
//
// ByValue compares with ==, so lookups are strict: with V = any, "1" does
// not match 1, and false does not match 0.
package enumeration
