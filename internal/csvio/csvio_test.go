package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/folioworks/gitfolio/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWriteFileQuotesEveryField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := WriteFile(path,
		[]string{"name", "private"},
		[][]string{
			{"alpha", "False"},
			{`says "hi"`, "True"},
		})
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "\"name\",\"private\"\r\n" +
		"\"alpha\",\"False\"\r\n" +
		"\"says \"\"hi\"\"\",\"True\"\r\n"
	assert.Equal(t, want, string(got))
}

func TestReadReposRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), schema.ReposCSV)
	header := []string{"name", "private", "description", "full_name", "html_url", "license_name", "fork", "fork_parent", "archived"}
	rows := [][]string{
		{"alpha", "False", "A tool, with commas.", "u/alpha", "https://github.com/u/alpha", "MIT License", "False", "", "False"},
		{"beta", "True", "", "u/beta", "https://github.com/u/beta", "(none)", "True", "https://github.com/x/beta", "True"},
	}
	require.NoError(t, WriteFile(path, header, rows))

	repos, err := ReadRepos(path)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, schema.RepoRecord{
		Name:        "alpha",
		Description: "A tool, with commas.",
		FullName:    "u/alpha",
		HTMLURL:     "https://github.com/u/alpha",
		LicenseName: "MIT License",
	}, repos[0])
	assert.True(t, repos[1].Private)
	assert.True(t, repos[1].Fork)
	assert.True(t, repos[1].Archived)
	assert.Equal(t, "https://github.com/x/beta", repos[1].ForkParent)
}

func TestReadReposArchivedColumnOptional(t *testing.T) {
	path := writeTemp(t, "repos.csv",
		"\"name\",\"private\",\"description\",\"full_name\",\"html_url\",\"license_name\",\"fork\",\"fork_parent\"\r\n"+
			"\"alpha\",\"False\",\"Old export.\",\"u/alpha\",\"https://github.com/u/alpha\",\"(none)\",\"False\",\"\"\r\n")

	repos, err := ReadRepos(path)
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.False(t, repos[0].Archived)
}

func TestReadLangs(t *testing.T) {
	path := writeTemp(t, "langs.csv",
		"\"repo_name\",\"lang_name\",\"code_bytes\"\r\n"+
			"\"alpha\",\"Go\",\"300\"\r\n"+
			"\"alpha\",\"Python\",\"100\"\r\n")

	langs, err := ReadLangs(path)
	require.NoError(t, err)
	assert.Equal(t, []schema.LangRecord{
		{RepoName: "alpha", LangName: "Go", CodeBytes: 300},
		{RepoName: "alpha", LangName: "Python", CodeBytes: 100},
	}, langs)
}

func TestReadLangsBadByteCount(t *testing.T) {
	path := writeTemp(t, "langs.csv",
		"\"repo_name\",\"lang_name\",\"code_bytes\"\r\n"+
			"\"alpha\",\"Go\",\"lots\"\r\n")

	_, err := ReadLangs(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad code_bytes")
}

func TestReadTopicsAndAltNames(t *testing.T) {
	topicsPath := writeTemp(t, "topics.csv",
		"\"repo_name\",\"topic\"\r\n\"alpha\",\"cli\"\r\n")
	topics, err := ReadTopics(topicsPath)
	require.NoError(t, err)
	assert.Equal(t, []schema.TopicRecord{{RepoName: "alpha", Topic: "cli"}}, topics)

	altPath := writeTemp(t, "alt.csv",
		"\"topic_name\",\"alt_name\"\r\n\"web\",\"Web Apps\"\r\n")
	altNames, err := ReadAltNames(altPath)
	require.NoError(t, err)
	assert.Equal(t, []schema.AltName{{TopicName: "web", AltName: "Web Apps"}}, altNames)
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadRepos(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestReadEmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")
	_, err := ReadTopics(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, WriteLines(path, []string{"# Title", "", "body"}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nbody\n", string(got))
}

func TestWriteSnapshotPair(t *testing.T) {
	dir := t.TempDir()
	header := []string{"repo_name", "topic"}
	rows := [][]string{{"alpha", "cli"}}

	snapshot, copied, err := WriteSnapshotPair(dir, "20260314_092600", "topics.csv", header, rows)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "20260314_092600", "topics.csv"), snapshot)
	assert.Equal(t, filepath.Join(dir, "topics.csv"), copied)

	snapBytes, err := os.ReadFile(snapshot)
	require.NoError(t, err)
	copyBytes, err := os.ReadFile(copied)
	require.NoError(t, err)
	assert.Equal(t, snapBytes, copyBytes)
	assert.Equal(t, "\"repo_name\",\"topic\"\r\n\"alpha\",\"cli\"\r\n", string(copyBytes))
}
