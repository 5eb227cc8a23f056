// Package core orchestrates the gitfolio pipeline: fetching records,
// deriving tabular reports, and rendering markdown sections. Fatal
// conditions surface as errors before any output is written; degenerate
// data conditions are absorbed by the leaf packages and never abort a run.
package core

import (
	"path/filepath"

	"github.com/folioworks/gitfolio/internal/contract"
	"github.com/folioworks/gitfolio/internal/csvio"
	"github.com/folioworks/gitfolio/schema"
)

// readRecords reads the three required record files from the data
// directory. Any missing file is fatal and nothing is written afterwards.
func readRecords(dataDir string) ([]schema.RepoRecord, []schema.LangRecord, []schema.TopicRecord, error) {
	reposPath := filepath.Join(dataDir, schema.ReposCSV)
	contract.StatusReading(reposPath)
	repos, err := csvio.ReadRepos(reposPath)
	if err != nil {
		return nil, nil, nil, err
	}

	langsPath := filepath.Join(dataDir, schema.LangsCSV)
	contract.StatusReading(langsPath)
	langs, err := csvio.ReadLangs(langsPath)
	if err != nil {
		return nil, nil, nil, err
	}

	topicsPath := filepath.Join(dataDir, schema.TopicsCSV)
	contract.StatusReading(topicsPath)
	topics, err := csvio.ReadTopics(topicsPath)
	if err != nil {
		return nil, nil, nil, err
	}

	return repos, langs, topics, nil
}
