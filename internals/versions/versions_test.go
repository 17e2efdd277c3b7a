package versions

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		version string
		part    Part
		want    string
	}{
		{"1.2.3-beta+001", PartDefault, "1.2.3"},
		{"1.2.3-beta+001", PartFull, "1.2.3-beta+001"},
		{"1.2.3-beta+001", PartPretty, "v1.2.3"},
		{"1.2.3-beta+001", PartMajor, "1"},
		{"1.2.3-beta+001", PartMinor, "2"},
		{"1.2.3-beta+001", PartPatch, "3"},
		{"1.2.3-beta+001", PartPre, "beta"},
		{"1.2.3-beta+001", PartBuild, "001"},
		{"0.9.0", PartBuild, ""},
		{"0.9.0", PartPre, ""},
		{"0.9.0", PartPretty, "v0.9.0"},
		{"10.20.30-rc.1", PartPre, "rc.1"},
		{"10.20.30+build.5", PartBuild, "build.5"},
		{"10.20.30+build.5", PartFull, "10.20.30+build.5"},
	}

	for _, tt := range tests {
		t.Run(tt.version+"/"+tt.part.String(), func(t *testing.T) {
			got, err := Render(tt.version, tt.part)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecompose_fullAndPrettyRoundTrip(t *testing.T) {
	for _, v := range []string{"0.0.0", "1.0.0-alpha", "1.0.0+20130313144700", "1.0.0-x.7.z.92+exp.sha.5114f85"} {
		c, err := Decompose(v)
		require.NoError(t, err, v)
		assert.Equal(t, v, c.Full())
		assert.Equal(t, "v"+c.Core(), c.Pretty())
		assert.NotContains(t, c.Pretty(), "-")
		assert.NotContains(t, c.Pretty(), "+")
	}
}

func TestDecompose_invalid(t *testing.T) {
	for _, v := range []string{"1.2", "abc", "", "v1.2.3", "1.2.3.4", "01.2.3"} {
		t.Run(v, func(t *testing.T) {
			c, err := Decompose(v)
			require.Error(t, err)
			assert.Nil(t, c)

			var invalid *InvalidSemverError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, v, invalid.Version)
			assert.NotNil(t, invalid.Err)
		})
	}
}

func TestDecompose_wrapsParserError(t *testing.T) {
	_, err := Decompose("1.2")
	assert.ErrorIs(t, err, semver.ErrInvalidSemVer)
}
