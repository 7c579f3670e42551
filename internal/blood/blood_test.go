package blood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "bloodlink/pkg/domain-errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Type
	}{
		{"canonical", "O-", ONeg},
		{"lowercase", "ab+", ABPos},
		{"surrounding whitespace", "  B- ", BNeg},
		{"inner space", "A B +", ABPos},
		{"url escaped plus", "O%2B", OPos},
		{"url escaped space", "AB%20-", ABNeg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeInvalid(t *testing.T) {
	for _, raw := range []string{"", "C+", "O", "AB", "A+-", "bloody"} {
		_, err := Normalize(raw)
		require.Error(t, err, "input %q", raw)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidBloodType))
	}
}

// Every patient type accepts O- and has a non-empty donor set.
func TestUniversalDonorClosure(t *testing.T) {
	for _, patient := range All {
		types, err := CompatibleDonorTypes(patient)
		require.NoError(t, err)
		require.NotEmpty(t, types)
		assert.Contains(t, types, ONeg, "patient %s must accept O-", patient)
	}
}

func TestCompatibilityIsDirected(t *testing.T) {
	// AB+ receives from everyone; O- receives only from O-.
	abPos, err := CompatibleDonorTypes(ABPos)
	require.NoError(t, err)
	assert.Len(t, abPos, 8)

	oNeg, err := CompatibleDonorTypes(ONeg)
	require.NoError(t, err)
	assert.Equal(t, []Type{ONeg}, oNeg)

	// A+ accepts A-/O types but not B or AB donors.
	aPos, err := CompatibleDonorTypes(APos)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Type{ONeg, OPos, ANeg, APos}, aPos)
	assert.NotContains(t, aPos, BNeg)
	assert.NotContains(t, aPos, ABPos)
}

func TestCompatibleDonorTypesUnknown(t *testing.T) {
	_, err := CompatibleDonorTypes(Type("X+"))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidBloodType))
}
