package tenant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRegistryLoadsAllTenants(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry()
	require.NoError(t, err)

	for _, id := range All() {
		record := registry.Lookup(id)
		require.Equal(t, id, record.ID)
		require.NotEmpty(t, record.Name)
		require.NotEmpty(t, record.ShortName)
		require.NotEmpty(t, record.Leaders)
		require.NotEmpty(t, record.Campaigns)
		require.NotEmpty(t, record.Highlights)

		for _, c := range record.Campaigns {
			require.Contains(t,
				[]CampaignStatus{CampaignOngoing, CampaignVictory, CampaignCompleted},
				c.Status,
			)
		}
	}
}

func TestLookupIsPure(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry()
	require.NoError(t, err)

	first := registry.Lookup(AISF)
	second := registry.Lookup(AISF)
	require.Equal(t, first, second)
}

func TestResolveKnownSegments(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry()
	require.NoError(t, err)

	for _, segment := range []string{"aisf", "aiyf"} {
		record, ok := registry.Resolve(segment)
		require.True(t, ok)
		require.Equal(t, segment, record.ID.String())
	}
}

func TestResolveRejectsNonMembers(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry()
	require.NoError(t, err)

	for _, segment := range []string{"", "aisf/", "aisf2", "AISF", "bogus"} {
		_, ok := registry.Resolve(segment)
		require.False(t, ok, "segment %q must not resolve", segment)
	}
}

func TestCheckUniqueIDs(t *testing.T) {
	t.Parallel()

	record := Record{
		Leaders: []Leader{{ID: 1}, {ID: 2}},
		Campaigns: []Campaign{
			{ID: 1, Status: CampaignOngoing},
			{ID: 1, Status: CampaignVictory},
		},
	}

	err := checkUniqueIDs(record)
	require.Error(t, err)
	require.Contains(t, err.Error(), "campaign")
}
