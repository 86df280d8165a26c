package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcomeFailedAndPropagated(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	cases := []struct {
		name           string
		outcome        Outcome
		wantFailed     bool
		wantPropagated error
	}{
		{name: "succeeded", outcome: Outcome{Status: StatusSucceeded}},
		{name: "soft failure keeps error but does not propagate", outcome: Outcome{Status: StatusFailedSoft, Err: boom}, wantFailed: true},
		{name: "hard failure propagates", outcome: Outcome{Status: StatusFailedHard, Err: boom}, wantFailed: true, wantPropagated: boom},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.wantFailed, tc.outcome.Failed())
			require.Equal(t, tc.wantPropagated, tc.outcome.Propagated())
		})
	}
}
