package matrimony

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mm-server/normalizer"
)

func newMock(t *testing.T) *MatrimonyApiClientMock {
	t.Helper()
	t.Setenv("PROJECT_ROOT", "../..")
	return NewMatrimonyApiClientMock()
}

func TestMockLoginFixture(t *testing.T) {
	mock := newMock(t)

	response, err := mock.Login("anyone@example.com", "anything")
	require.NoError(t, err)
	assert.True(t, response.Status)

	user := normalizer.DecodeRecord(response.Data)
	require.NotNil(t, user)
	assert.Equal(t, "NM1042", user.Field("tamil_client_id"))
}

func TestMockSearchFixtureNormalizes(t *testing.T) {
	mock := newMock(t)

	response, err := mock.SearchProfiles(url.Values{})
	require.NoError(t, err)
	require.True(t, response.Status)

	raw := normalizer.DecodeList(response.Data)
	require.Len(t, raw, 4)

	profiles := normalizer.NormalizeList(raw, 0)
	require.Len(t, profiles, 4)

	// The fixture deliberately mixes record shapes; all must normalize.
	assert.Equal(t, "NM2001", profiles[0].ID)
	assert.Equal(t, "158 cm", profiles[0].Height)
	assert.Equal(t, "2002", profiles[1].ID)
	assert.Equal(t, "5ft 4in", profiles[1].Height)
	assert.Equal(t, "NM2003", profiles[2].ID)
	assert.True(t, profiles[2].Verified)
	assert.Equal(t, "Unknown", profiles[3].Name)
}

func TestMockDashboardStatsFixture(t *testing.T) {
	mock := newMock(t)

	response, err := mock.GetDashboardStats("NM1042")
	require.NoError(t, err)
	require.True(t, response.Status)

	stats := normalizer.NormalizeStats(normalizer.DecodeRecord(response.Data))
	assert.Equal(t, 120, stats.UserPoints)
	assert.Equal(t, 14, stats.ViewedProfiles)
	assert.Equal(t, 50, stats.ViewsLimit)
	assert.Equal(t, 3, stats.SelectedCount)
	assert.Equal(t, 2, stats.ConnectRequests)
}

func TestMockSelectedProfilesFixture(t *testing.T) {
	mock := newMock(t)

	response, err := mock.GetSelectedProfiles("NM1042")
	require.NoError(t, err)
	require.True(t, response.Status)

	raw := normalizer.DecodeList(response.Data)
	assert.Len(t, raw, 2)
}
