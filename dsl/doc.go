// Package dsl provides the constructor surface for building schemas:
// primitives (String/Number/Int/Bool/Literal/Enum/Time), collections
// (Array/Tuple/Record/Map/Set), objects with unknown-key policies, modifiers
// (Optional/Nullable/Default/Catch) and combinators (Refine/Transform/Pipe/
// Union/DiscriminatedUnion/Intersection/Lazy).
//
// Typical usage:
//
//	user := dsl.Object().
//		Field("name", dsl.String().Min(1)).
//		Field("email", dsl.String().Email()).
//		Strict()
//	v, err := vld.ParseFrom(ctx, user, vld.JSONBytes(data))
package dsl
