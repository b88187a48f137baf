package tenant

import "context"

type ctxKey struct{}

// WithRecord returns a derived context carrying the resolved tenant record.
// It is attached by the resolver middleware once per request; exactly one
// record is in scope for any handler running below it.
func WithRecord(ctx context.Context, record Record) context.Context {
	return context.WithValue(ctx, ctxKey{}, record)
}

// FromContext extracts the tenant record and a boolean indicating presence.
func FromContext(ctx context.Context) (Record, bool) {
	record, ok := ctx.Value(ctxKey{}).(Record)
	return record, ok
}

// MustFromContext extracts the tenant record and panics when none is in
// scope. Reading tenant content outside a resolved tenant scope is a
// composition bug, not a user-input condition, and must fail loudly rather
// than render with absent data.
func MustFromContext(ctx context.Context) Record {
	record, ok := FromContext(ctx)
	if !ok {
		panic("tenant: no record in context; handler mounted outside a resolved tenant scope")
	}
	return record
}
