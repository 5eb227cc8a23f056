package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolLiterals(t *testing.T) {
	assert.Equal(t, "True", FormatBool(true))
	assert.Equal(t, "False", FormatBool(false))

	assert.True(t, ParseBool("True"))
	assert.False(t, ParseBool("False"))
	assert.False(t, ParseBool("true"))
	assert.False(t, ParseBool(""))
}

func TestVisibilityPartitions(t *testing.T) {
	repos := []RepoRecord{
		{Name: "a", Private: false},
		{Name: "b", Private: true},
		{Name: "c", Private: false},
	}

	pub := PublicOf(repos)
	assert.Equal(t, []string{"a", "c"}, names(pub))

	prv := PrivateOf(repos)
	assert.Equal(t, []string{"b"}, names(prv))
}

func TestLicenseFor(t *testing.T) {
	repos := []RepoRecord{
		{Name: "a", LicenseName: "MIT License"},
		{Name: "b", LicenseName: NoLicense},
	}

	assert.Equal(t, "MIT License", LicenseFor("a", repos))
	assert.Equal(t, NoLicense, LicenseFor("b", repos))
	assert.Empty(t, LicenseFor("ghost", repos))
}

func names(repos []RepoRecord) []string {
	result := make([]string, 0, len(repos))
	for _, r := range repos {
		result = append(result, r.Name)
	}
	return result
}
