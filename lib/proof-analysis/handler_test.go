package proofanalysis

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStubAnalyze(t *testing.T) {
	stub := stubImpl{}

	t.Run(`the same proof always gets the same verdict`, func(t *testing.T) {
		first, err := stub.Analyze(context.Background(), 3, "proof-image-payload")
		require.NoError(t, err)
		second, err := stub.Analyze(context.Background(), 3, "proof-image-payload")
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run(`detected hours stay within half an hour of the declaration`, func(t *testing.T) {
		for _, image := range []string{"a", "b", "c", "d", "e"} {
			result, err := stub.Analyze(context.Background(), 4, image)
			require.NoError(t, err)
			require.LessOrEqual(t, math.Abs(result.DetectedHours-4), 0.5)
		}
	})

	t.Run(`confidence is always within bounds`, func(t *testing.T) {
		for _, image := range []string{"x", "y", "z"} {
			result, err := stub.Analyze(context.Background(), 2, image)
			require.NoError(t, err)
			require.GreaterOrEqual(t, result.Confidence, 60)
			require.Less(t, result.Confidence, 100)
			require.NotEmpty(t, result.Reason)
		}
	})

	t.Run(`detected hours never drop below half an hour`, func(t *testing.T) {
		result, err := stub.Analyze(context.Background(), 0.5, "tiny")
		require.NoError(t, err)
		require.GreaterOrEqual(t, result.DetectedHours, 0.5)
	})
}

func TestParseVerdict(t *testing.T) {
	t.Run(`extracts the JSON object from surrounding prose`, func(t *testing.T) {
		answer := "Here is my verdict:\n```json\n{\"approved\": true, \"detected_hours\": 2.5, \"confidence\": 88, \"reason\": \"timesheet matches\"}\n```"
		result, err := parseVerdict(answer)
		require.NoError(t, err)
		require.True(t, result.Approved)
		require.Equal(t, 2.5, result.DetectedHours)
		require.Equal(t, 88, result.Confidence)
	})

	t.Run(`clamps confidence into 0..100`, func(t *testing.T) {
		result, err := parseVerdict(`{"approved": false, "detected_hours": 1, "confidence": 140, "reason": "r"}`)
		require.NoError(t, err)
		require.Equal(t, 100, result.Confidence)
	})

	t.Run(`fails without a JSON object`, func(t *testing.T) {
		_, err := parseVerdict("no verdict here")
		require.Error(t, err)
	})
}
