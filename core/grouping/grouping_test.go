package grouping

import (
	"testing"

	"github.com/folioworks/gitfolio/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoFixture() []schema.RepoRecord {
	return []schema.RepoRecord{
		{Name: "alpha", Private: false, LicenseName: "MIT License"},
		{Name: "beta", Private: false, LicenseName: schema.NoLicense},
		{Name: "gamma", Private: true, LicenseName: "MIT License"},
		{Name: "delta", Private: false, LicenseName: "Apache License 2.0", Archived: true},
	}
}

func TestByTopicOrdersByDisplayLabel(t *testing.T) {
	topics := []schema.TopicRecord{
		{RepoName: "alpha", Topic: "cli"},
		{RepoName: "alpha", Topic: "cli"}, // duplicate row
		{RepoName: "beta", Topic: "web"},
	}
	altNames := []schema.AltName{{TopicName: "web", AltName: "Web Apps"}}

	groups := ByTopic(topics, repoFixture(), altNames)
	require.Len(t, groups, 3)

	// Archived group always leads.
	assert.Equal(t, ArchivedLabel, groups[0].Label)

	// Case-insensitive label ordering: "cli" < "Web Apps".
	assert.Equal(t, "cli", groups[1].Label)
	assert.Equal(t, "Web Apps", groups[2].Label)
	assert.Equal(t, "web", groups[2].Key)

	// Duplicate topic rows produce one member.
	require.Len(t, groups[1].Members, 1)
	assert.Equal(t, "alpha", groups[1].Members[0].Name)
}

func TestByTopicExcludesPrivateRepos(t *testing.T) {
	topics := []schema.TopicRecord{
		{RepoName: "gamma", Topic: "cli"},
		{RepoName: "alpha", Topic: "cli"},
	}

	groups := ByTopic(topics, repoFixture(), nil)
	require.Len(t, groups, 2)
	require.Len(t, groups[1].Members, 1)
	assert.Equal(t, "alpha", groups[1].Members[0].Name)
}

func TestByTopicArchivedStaysInTopicGroups(t *testing.T) {
	topics := []schema.TopicRecord{{RepoName: "delta", Topic: "cli"}}

	groups := ByTopic(topics, repoFixture(), nil)
	require.Len(t, groups, 2)

	archived := groups[0]
	assert.Equal(t, ArchivedKey, archived.Key)
	require.Len(t, archived.Members, 1)
	assert.Equal(t, "delta", archived.Members[0].Name)

	// Archival annotates membership, it does not replace it.
	require.Len(t, groups[1].Members, 1)
	assert.Equal(t, "delta", groups[1].Members[0].Name)
}

func TestByTopicArchivedGroupPresentWhenEmpty(t *testing.T) {
	repos := []schema.RepoRecord{{Name: "alpha", Private: false}}
	topics := []schema.TopicRecord{{RepoName: "alpha", Topic: "cli"}}

	groups := ByTopic(topics, repos, nil)
	require.NotEmpty(t, groups)
	assert.Equal(t, ArchivedKey, groups[0].Key)
	assert.Empty(t, groups[0].Members)
}

func TestByTopicOmitsTopicsWithoutPublicMembers(t *testing.T) {
	topics := []schema.TopicRecord{
		{RepoName: "gamma", Topic: "internal"}, // private only
		{RepoName: "unknown", Topic: "ghost"},  // no such repo
		{RepoName: "alpha", Topic: "cli"},
	}

	groups := ByTopic(topics, repoFixture(), nil)
	require.Len(t, groups, 2)
	assert.Equal(t, "cli", groups[1].Key)
}

func TestByTopicMembersInScanOrder(t *testing.T) {
	repos := []schema.RepoRecord{
		{Name: "alpha", Private: false},
		{Name: "beta", Private: false},
	}
	topics := []schema.TopicRecord{
		{RepoName: "beta", Topic: "cli"},
		{RepoName: "alpha", Topic: "cli"},
	}

	groups := ByTopic(topics, repos, nil)
	require.Len(t, groups, 2)
	require.Len(t, groups[1].Members, 2)
	assert.Equal(t, "beta", groups[1].Members[0].Name)
	assert.Equal(t, "alpha", groups[1].Members[1].Name)
}

func TestByLicense(t *testing.T) {
	groups := ByLicense(repoFixture())
	require.Len(t, groups, 3)

	// Alphabetical by license name; "(none)" sorts as a plain string.
	assert.Equal(t, schema.NoLicense, groups[0].Key)
	assert.Equal(t, "Apache License 2.0", groups[1].Key)
	assert.Equal(t, "MIT License", groups[2].Key)

	require.Len(t, groups[2].Members, 1)
	assert.Equal(t, "alpha", groups[2].Members[0].Name)
}

func TestByLicenseEmptyInput(t *testing.T) {
	assert.Empty(t, ByLicense(nil))
}
