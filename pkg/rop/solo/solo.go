package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropsplit/pkg/rop"
)

func Succeed[S, E any](input S) rop.Outcome[S, E] {
	return rop.Success[S, E](input)
}

func Fail[S, E any](err E) rop.Outcome[S, E] {
	return rop.Failure[S](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Outcome[T, error] {

	if isValid, errMsg := validate(ctx, input); !isValid {
		return rop.Failure[T](errors.New(errMsg))
	}
	return rop.Success[T, error](input)
}

func Try[In, Out any](ctx context.Context, input In,
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Outcome[Out, error] {

	out, err := onTryExecute(ctx, input)
	if err != nil {
		return rop.Failure[Out](err)
	}
	return rop.Success[Out, error](out)
}

func DoubleTee[S, E any](ctx context.Context, input rop.Outcome[S, E],
	onSuccess func(ctx context.Context, r S),
	onFailure func(ctx context.Context, err E)) rop.Outcome[S, E] {

	var s func(S)
	var f func(E)
	if onSuccess != nil {
		s = func(r S) { onSuccess(ctx, r) }
	}
	if onFailure != nil {
		f = func(err E) { onFailure(ctx, err) }
	}
	input.Switch(s, f)

	return input
}

func Finally[S, E, Out any](ctx context.Context, input rop.Outcome[S, E],
	onSuccess func(ctx context.Context, r S) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	var s func(S) Out
	var f func(E) Out
	if onSuccess != nil {
		s = func(r S) Out { return onSuccess(ctx, r) }
	}
	if onFailure != nil {
		f = func(err E) Out { return onFailure(ctx, err) }
	}
	return rop.Match(input, s, f)
}

func FinallyVoid[E, Out any](ctx context.Context, input rop.VoidOutcome[E],
	onSuccess func(ctx context.Context) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	var s func() Out
	var f func(E) Out
	if onSuccess != nil {
		s = func() Out { return onSuccess(ctx) }
	}
	if onFailure != nil {
		f = func(err E) Out { return onFailure(ctx, err) }
	}
	return rop.MatchVoid(input, s, f)
}
