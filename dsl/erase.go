package dsl

import "context"

// Every schema in this package also implements vld.AnySchema so it can be
// used directly as an object field, union branch or tuple position without
// an explicit erasure step. Pointer-typed outputs keep their concrete type
// inside the returned any.

func parseAnyVia[T any](ctx context.Context, parse func(context.Context, any) (T, error), v any) (any, error) {
	out, err := parse(ctx, v)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *StringSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *NumberSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *IntSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *BoolSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *LiteralSchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *EnumSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *AnySchemaNode) ParseAny(ctx context.Context, v any) (any, error) {
	return s.Parse(ctx, v)
}

func (s *NullSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return s.Parse(ctx, v)
}

func (s *NeverSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return s.Parse(ctx, v)
}

func (s *TimeSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *DateSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *ArraySchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *TupleSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *RecordSchema[V]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *MapSchema[K, V]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *SetSchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *ObjectSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *OptionalSchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	out, err := s.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return out, nil
}

func (s *NullableSchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	out, err := s.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return out, nil
}

func (s *NullishSchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	out, err := s.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return out, nil
}

func (s *DefaultSchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *CatchSchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *RefineSchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *SuperRefineSchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *TransformSchema[A, B]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *PipeSchema[A, B]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *PreprocessSchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *CustomSchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *MessageSchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *DescribeSchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}

func (s *UnionSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return s.Parse(ctx, v)
}

func (s *DiscriminatedUnionSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return s.Parse(ctx, v)
}

func (s *IntersectionSchema) ParseAny(ctx context.Context, v any) (any, error) {
	return s.Parse(ctx, v)
}

func (s *LazySchema[T]) ParseAny(ctx context.Context, v any) (any, error) {
	return parseAnyVia(ctx, s.Parse, v)
}
