// Package csvio reads and writes the delimited record files that make up
// the record store contract: a header row, every field quoted, booleans as
// the literal strings "True"/"False".
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/folioworks/gitfolio/schema"
)

// headerIndex maps column names to their positions in the header row.
type headerIndex map[string]int

func (h headerIndex) field(row []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// readFile reads a whole delimited file, returning the header index and the
// data rows. A missing file surfaces as-is so callers can treat it as fatal.
func readFile(path string) (headerIndex, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot parse '%s': %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("'%s' has no header row", path)
	}

	index := make(headerIndex, len(records[0]))
	for i, name := range records[0] {
		index[name] = i
	}
	return index, records[1:], nil
}

// ReadRepos reads repository records. The archived column is optional in
// older snapshots and defaults to false.
func ReadRepos(path string) ([]schema.RepoRecord, error) {
	index, rows, err := readFile(path)
	if err != nil {
		return nil, err
	}
	repos := make([]schema.RepoRecord, 0, len(rows))
	for _, row := range rows {
		repos = append(repos, schema.RepoRecord{
			Name:        index.field(row, "name"),
			Private:     schema.ParseBool(index.field(row, "private")),
			Description: index.field(row, "description"),
			FullName:    index.field(row, "full_name"),
			HTMLURL:     index.field(row, "html_url"),
			LicenseName: index.field(row, "license_name"),
			Fork:        schema.ParseBool(index.field(row, "fork")),
			ForkParent:  index.field(row, "fork_parent"),
			Archived:    schema.ParseBool(index.field(row, "archived")),
		})
	}
	return repos, nil
}

// ReadLangs reads language byte records.
func ReadLangs(path string) ([]schema.LangRecord, error) {
	index, rows, err := readFile(path)
	if err != nil {
		return nil, err
	}
	langs := make([]schema.LangRecord, 0, len(rows))
	for _, row := range rows {
		codeBytes, err := strconv.ParseInt(index.field(row, "code_bytes"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad code_bytes in '%s': %w", path, err)
		}
		langs = append(langs, schema.LangRecord{
			RepoName:  index.field(row, "repo_name"),
			LangName:  index.field(row, "lang_name"),
			CodeBytes: codeBytes,
		})
	}
	return langs, nil
}

// ReadTopics reads topic records.
func ReadTopics(path string) ([]schema.TopicRecord, error) {
	index, rows, err := readFile(path)
	if err != nil {
		return nil, err
	}
	topics := make([]schema.TopicRecord, 0, len(rows))
	for _, row := range rows {
		topics = append(topics, schema.TopicRecord{
			RepoName: index.field(row, "repo_name"),
			Topic:    index.field(row, "topic"),
		})
	}
	return topics, nil
}

// ReadAltNames reads the optional topic alt-name overlay.
func ReadAltNames(path string) ([]schema.AltName, error) {
	index, rows, err := readFile(path)
	if err != nil {
		return nil, err
	}
	altNames := make([]schema.AltName, 0, len(rows))
	for _, row := range rows {
		altNames = append(altNames, schema.AltName{
			TopicName: index.field(row, "topic_name"),
			AltName:   index.field(row, "alt_name"),
		})
	}
	return altNames, nil
}
