package core

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/folioworks/gitfolio/internal/contract"
	"github.com/folioworks/gitfolio/internal/csvio"
	"github.com/folioworks/gitfolio/internal/gitclient"
	"github.com/folioworks/gitfolio/internal/outwriter"
	"github.com/folioworks/gitfolio/internal/runstore"
	"github.com/folioworks/gitfolio/schema"
)

// ExecuteFetch queries the GitHub API for the authenticated user's
// repository metadata and writes the three raw record files as snapshot +
// current pairs under the data directory. The session is recorded in the
// run store afterwards.
func ExecuteFetch(ctx context.Context, cfg *contract.Config, run *contract.RunContext) error {
	token, err := gitclient.ReadToken(cfg.KeyFile)
	if err != nil {
		return err
	}

	client := gitclient.New(ctx, token, cfg.Workers)
	userURL, err := client.UserURL(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Accessing %s.\n", contract.PathColor.Sprintf("'%s'", userURL))

	fmt.Println("Reading GitHub API.")
	ds, err := client.FetchAll(ctx)
	if err != nil {
		return err
	}

	stamp := run.Stamp()
	if err := writeRawRecords(cfg.DataDir, stamp, ds); err != nil {
		return err
	}

	return recordSession(ctx, cfg, run, ds)
}

// writeRawRecords serializes the fetched collections in the record store
// format.
func writeRawRecords(dataDir, stamp string, ds schema.Dataset) error {
	repoHeader := []string{
		"name", "private", "description", "full_name", "html_url",
		"license_name", "fork", "fork_parent", "archived",
	}
	repoRows := make([][]string, 0, len(ds.Repos))
	for _, r := range ds.Repos {
		repoRows = append(repoRows, []string{
			r.Name,
			schema.FormatBool(r.Private),
			r.Description,
			r.FullName,
			r.HTMLURL,
			r.LicenseName,
			schema.FormatBool(r.Fork),
			r.ForkParent,
			schema.FormatBool(r.Archived),
		})
	}
	if err := writeRawPair(dataDir, stamp, schema.ReposCSV, repoHeader, repoRows); err != nil {
		return err
	}

	langRows := make([][]string, 0, len(ds.Langs))
	for _, l := range ds.Langs {
		langRows = append(langRows, []string{l.RepoName, l.LangName, strconv.FormatInt(l.CodeBytes, 10)})
	}
	if err := writeRawPair(dataDir, stamp, schema.LangsCSV, []string{"repo_name", "lang_name", "code_bytes"}, langRows); err != nil {
		return err
	}

	topicRows := make([][]string, 0, len(ds.Topics))
	for _, t := range ds.Topics {
		topicRows = append(topicRows, []string{t.RepoName, t.Topic})
	}
	return writeRawPair(dataDir, stamp, schema.TopicsCSV, []string{"repo_name", "topic"}, topicRows)
}

func writeRawPair(dir, stamp, name string, header []string, rows [][]string) error {
	snapshot, copied, err := csvio.WriteSnapshotPair(dir, stamp, name, header, rows)
	if err != nil {
		return err
	}
	contract.StatusWriting(snapshot)
	contract.StatusCopying(copied)
	return nil
}

// recordSession stores the run in the configured run store. Recording
// failures do not undo a successful fetch; they surface as warnings.
func recordSession(ctx context.Context, cfg *contract.Config, run *contract.RunContext, ds schema.Dataset) error {
	store, err := runstore.Open(cfg.RunsBackend, cfg.RunsDBConnect)
	if err != nil {
		contract.LogWarn("cannot open run store", err)
		return nil
	}
	defer func() { _ = store.Close() }()

	record := schema.RunRecord{
		Stamp:      run.Stamp(),
		AppTitle:   run.Title(),
		RepoCount:  len(ds.Repos),
		LangCount:  len(ds.Langs),
		TopicCount: len(ds.Topics),
		CreatedAt:  run.RunTime,
	}
	if err := store.InsertRun(ctx, record); err != nil {
		contract.LogWarn("cannot record fetch session", err)
	}
	return nil
}

// ExecuteRuns lists recorded fetch sessions as a console table.
func ExecuteRuns(ctx context.Context, cfg *contract.Config) error {
	if cfg.RunsBackend == schema.NoneBackend {
		fmt.Println("Run tracking is disabled.")
		return nil
	}

	store, err := runstore.Open(cfg.RunsBackend, cfg.RunsDBConnect)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.ListRuns(ctx, cfg.RunsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded fetch sessions.")
		return nil
	}
	return outwriter.PrintRunsTable(os.Stdout, runs)
}
