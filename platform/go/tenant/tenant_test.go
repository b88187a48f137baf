package tenant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIDExactMatch(t *testing.T) {
	t.Parallel()

	for _, id := range All() {
		parsed, ok := ParseID(string(id))
		require.True(t, ok)
		require.Equal(t, id, parsed)
	}
}

func TestParseIDRejectsNonMembers(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		" ",
		"aisf/",
		"/aisf",
		"aisf2",
		"ais",
		"AISF",
		"Aiyf",
		"aisf aiyf",
		"unknown",
	}

	for _, segment := range cases {
		_, ok := ParseID(segment)
		require.False(t, ok, "segment %q must not resolve", segment)
	}
}

func TestBasePath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/aisf", AISF.BasePath())
	require.Equal(t, "/aiyf", AIYF.BasePath())
}
