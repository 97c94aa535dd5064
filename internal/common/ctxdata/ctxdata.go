package ctxdata

import "context"

type correlationIdKey struct{}
type hostKey struct{}

type Setter func(ctx context.Context) context.Context

// Sets applies multiple setters on the same context.
func Sets(ctx context.Context, setters ...Setter) context.Context {
	for _, set := range setters {
		ctx = set(ctx)
	}
	return ctx
}

func SetCorrelationId(correlationId string) Setter {
	return func(ctx context.Context) context.Context {
		return context.WithValue(ctx, correlationIdKey{}, correlationId)
	}
}

func SetHost(host string) Setter {
	return func(ctx context.Context) context.Context {
		return context.WithValue(ctx, hostKey{}, host)
	}
}

func GetCorrelationId(ctx context.Context) string {
	if v, ok := ctx.Value(correlationIdKey{}).(string); ok {
		return v
	}
	return ""
}

func GetHost(ctx context.Context) string {
	if v, ok := ctx.Value(hostKey{}).(string); ok {
		return v
	}
	return ""
}
