package filter

import (
	"iter"
	"slices"
	"testing"

	"github.com/ib-77/ropsplit/pkg/rop"
	"github.com/stretchr/testify/assert"
)

func mixed() []rop.Outcome[int, string] {
	return []rop.Outcome[int, string]{
		rop.Success[int, string](1),
		rop.Failure[int]("a"),
		rop.Success[int, string](2),
		rop.Failure[int]("b"),
	}
}

// countingSeq counts how many elements the consumer pulled.
func countingSeq[T any](values []T, pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2}, slices.Collect(Success(slices.Values(mixed()))))
}

func TestFailure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b"}, slices.Collect(Failure(slices.Values(mixed()))))
}

func TestSuccessWith_CallbackBeforeNextSuccess(t *testing.T) {
	t.Parallel()

	var events []string
	for v := range SuccessWith(slices.Values(mixed()), func(err string) {
		events = append(events, "failure:"+err)
	}) {
		events = append(events, "success:"+string(rune('0'+v)))
	}

	assert.Equal(t, []string{"success:1", "failure:a", "success:2", "failure:b"}, events)
}

func TestFailureWith_CallbackPerSuccess(t *testing.T) {
	t.Parallel()

	var successes []int
	failures := slices.Collect(FailureWith(slices.Values(mixed()), func(v int) {
		successes = append(successes, v)
	}))

	assert.Equal(t, []string{"a", "b"}, failures)
	assert.Equal(t, []int{1, 2}, successes)
}

func TestSuccess_StopsPullingOnBreak(t *testing.T) {
	t.Parallel()

	pulled := 0
	for v := range Success(countingSeq(mixed(), &pulled)) {
		assert.Equal(t, 1, v)
		break
	}
	assert.Equal(t, 1, pulled)
}

func TestSuccess_EmptyAndSingleVariant(t *testing.T) {
	t.Parallel()

	assert.Empty(t, slices.Collect(Success(slices.Values([]rop.Outcome[int, string]{}))))

	onlyFailures := []rop.Outcome[int, string]{rop.Failure[int]("x")}
	assert.Empty(t, slices.Collect(Success(slices.Values(onlyFailures))))
	assert.Equal(t, []string{"x"}, slices.Collect(Failure(slices.Values(onlyFailures))))
}

func TestFailed_AnyOutcomeShape(t *testing.T) {
	t.Parallel()

	voids := []rop.VoidOutcome[string]{
		rop.VoidFailure("Too high"),
		rop.VoidSuccess[string](),
		rop.VoidFailure("Too low"),
	}
	assert.Equal(t, []string{"Too high", "Too low"},
		slices.Collect(Failed[rop.VoidOutcome[string], string](slices.Values(voids))))
	assert.Equal(t, []string{"a", "b"},
		slices.Collect(Failed[rop.Outcome[int, string], string](slices.Values(mixed()))))
}

func TestVoidFailure_CountsSuccesses(t *testing.T) {
	t.Parallel()

	voids := []rop.VoidOutcome[string]{
		rop.VoidSuccess[string](),
		rop.VoidFailure("bad"),
		rop.VoidSuccess[string](),
	}

	ok := 0
	failures := slices.Collect(VoidFailure(slices.Values(voids), func() { ok++ }))
	assert.Equal(t, []string{"bad"}, failures)
	assert.Equal(t, 2, ok)

	assert.Equal(t, []string{"bad"}, slices.Collect(VoidFailure(slices.Values(voids), nil)))
}
