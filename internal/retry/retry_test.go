package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("HTTP 502")

func noDelay(int) time.Duration { return 0 }

func TestDo(t *testing.T) {
	cases := []struct {
		name          string
		policy        Policy
		failures      int
		failWith      error
		expectedCalls int
		expectedErr   error
	}{
		{
			name:          "success on first attempt",
			policy:        Policy{Attempts: 3, Delay: noDelay},
			expectedCalls: 1,
		},
		{
			name:          "success after retries",
			policy:        Policy{Attempts: 3, Delay: noDelay},
			failures:      2,
			failWith:      errTransient,
			expectedCalls: 3,
		},
		{
			name:          "attempts exhausted",
			policy:        Policy{Attempts: 3, Delay: noDelay},
			failures:      5,
			failWith:      errTransient,
			expectedCalls: 3,
			expectedErr:   errTransient,
		},
		{
			name: "error not retriable",
			policy: Policy{
				Attempts:  3,
				Delay:     noDelay,
				Retriable: func(err error) bool { return errors.Is(err, errTransient) },
			},
			failures:      5,
			failWith:      errors.New("not found"),
			expectedCalls: 1,
			expectedErr:   errors.New("not found"),
		},
		{
			name:          "zero attempts still calls once",
			policy:        Policy{},
			failures:      5,
			failWith:      errTransient,
			expectedCalls: 1,
			expectedErr:   errTransient,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			result, err := Do(context.Background(), tc.policy, func() (int, error) {
				calls++
				if calls <= tc.failures {
					return 0, tc.failWith
				}
				return calls, nil
			})

			require.Equal(t, tc.expectedCalls, calls)
			if tc.expectedErr != nil {
				require.EqualError(t, err, tc.expectedErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedCalls, result)
		})
	}
}

func TestDoNotifiesRetries(t *testing.T) {
	var delays []time.Duration
	policy := Policy{
		Attempts: 3,
		Delay:    func(attempt int) time.Duration { return time.Duration(attempt) * time.Millisecond },
		OnRetry:  func(err error, delay time.Duration) { delays = append(delays, delay) },
	}

	_, err := Do(context.Background(), policy, func() (string, error) { return "", errTransient })
	require.ErrorIs(t, err, errTransient)
	require.Equal(t, []time.Duration{0, time.Millisecond}, delays)
}

func TestDoStopsWhenContextIsDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	policy := Policy{Attempts: 5, Delay: func(int) time.Duration { return time.Hour }}
	_, err := Do(ctx, policy, func() (string, error) {
		calls++
		return "", errTransient
	})

	require.Equal(t, 1, calls)
	require.ErrorIs(t, err, errTransient)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDefaultDelays(t *testing.T) {
	require.Equal(t, 2*time.Second, Default.Delay(0))
	require.Equal(t, 5*time.Second, Default.Delay(3))
}
