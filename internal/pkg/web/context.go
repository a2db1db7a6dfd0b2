package web

import (
	"context"
	"fmt"
)

type ctxKey int

const payloadCtxKey ctxKey = iota

// NewContextWithParams stores a decoded request payload in ctx.
//
//nolint:ireturn //This function needs to return a context.
func NewContextWithParams(baseCtx context.Context, params any) context.Context {
	return context.WithValue(baseCtx, payloadCtxKey, params)
}

// ParamsFromContext returns the payload stored by NewContextWithParams when it is a T.
//
//nolint:ireturn //This is a generic function.
func ParamsFromContext[T any](ctx context.Context) (T, error) {
	val := ctx.Value(payloadCtxKey)
	params, ok := val.(T)
	if !ok {
		var t T
		return t, fmt.Errorf("request payload: %v is not a %T", val, t)
	}
	return params, nil
}
