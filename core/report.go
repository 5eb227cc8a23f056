package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/folioworks/gitfolio/core/langstat"
	"github.com/folioworks/gitfolio/internal/contract"
	"github.com/folioworks/gitfolio/internal/outwriter"
	"github.com/folioworks/gitfolio/internal/parquet"
	"github.com/folioworks/gitfolio/schema"
)

// ExecuteReport derives the five tabular reports from the raw record files
// and prints the aggregate language table to the console. Each report is
// written as a timestamped snapshot plus a stable current copy.
func ExecuteReport(cfg *contract.Config, run *contract.RunContext, prompter contract.Prompter) error {
	if err := contract.EnsureOutputDir(cfg, prompter); err != nil {
		return err
	}

	repos, langs, topics, err := readRecords(cfg.DataDir)
	if err != nil {
		return err
	}

	pubRows := outwriter.BuildRepoRows(schema.PublicOf(repos), langs)
	prvRows := outwriter.BuildRepoRows(schema.PrivateOf(repos), langs)
	stats := langstat.AggregateStats(repos, langs)
	topicRows := outwriter.BuildTopicLicenseRows(topics, repos)

	stamp := run.Stamp()
	if err := outwriter.WriteRepoReport(cfg.OutputDir, stamp, schema.ReposPublicCSV, pubRows); err != nil {
		return err
	}
	if err := outwriter.WriteRepoMdReport(cfg.OutputDir, stamp, pubRows); err != nil {
		return err
	}
	if err := outwriter.WriteRepoReport(cfg.OutputDir, stamp, schema.ReposPrivateCSV, prvRows); err != nil {
		return err
	}
	if err := outwriter.WriteLangStatsReport(cfg.OutputDir, stamp, stats); err != nil {
		return err
	}
	if err := outwriter.WriteTopicLicenseReport(cfg.OutputDir, stamp, topicRows); err != nil {
		return err
	}

	if cfg.Format == schema.ParquetFormat {
		if err := exportParquet(cfg.OutputDir, pubRows, prvRows, stats, topicRows); err != nil {
			return err
		}
	}

	return outwriter.PrintLangStatsTable(os.Stdout, stats)
}

// exportParquet duplicates the derived reports as Parquet files next to the
// current CSV copies.
func exportParquet(outputDir string, pubRows, prvRows []outwriter.RepoRow, stats []schema.LangStat, topicRows []outwriter.TopicLicenseRow) error {
	if err := parquet.WriteRepoReportParquet(toParquetRepoRows(pubRows), parquetPath(outputDir, schema.ReposPublicCSV)); err != nil {
		return err
	}
	if err := parquet.WriteRepoReportParquet(toParquetRepoRows(prvRows), parquetPath(outputDir, schema.ReposPrivateCSV)); err != nil {
		return err
	}

	langRows := make([]parquet.LangStatRow, 0, len(stats))
	for _, s := range stats {
		langRows = append(langRows, parquet.LangStatRow{
			ProgLang:     s.LangName,
			PublicCount:  int32(s.PublicCount),
			PublicPct:    s.PublicPct,
			PrivateCount: int32(s.PrivateCount),
			PrivatePct:   s.PrivatePct,
		})
	}
	if err := parquet.WriteLangStatsParquet(langRows, parquetPath(outputDir, schema.ReposLangsCSV)); err != nil {
		return err
	}

	tlRows := make([]parquet.TopicLicenseRow, 0, len(topicRows))
	for _, r := range topicRows {
		tlRows = append(tlRows, parquet.TopicLicenseRow{
			RepoName:    r.RepoName,
			Topic:       r.Topic,
			LicenseName: r.LicenseName,
		})
	}
	return parquet.WriteTopicLicenseParquet(tlRows, parquetPath(outputDir, schema.ReposTopicsCSV))
}

func toParquetRepoRows(rows []outwriter.RepoRow) []parquet.RepoReportRow {
	result := make([]parquet.RepoReportRow, 0, len(rows))
	for _, r := range rows {
		result = append(result, parquet.RepoReportRow{
			Name:        r.Name,
			Private:     r.Private,
			Description: r.Description,
			HTMLURL:     r.HTMLURL,
			ProgLangs:   r.ProgLangs,
			LicenseName: r.LicenseName,
			Fork:        r.Fork,
			ForkParent:  r.ForkParent,
			Archived:    r.Archived,
		})
	}
	return result
}

func parquetPath(outputDir, csvName string) string {
	name := strings.TrimSuffix(csvName, ".csv") + ".parquet"
	path := filepath.Join(outputDir, name)
	contract.StatusWriting(path)
	return path
}
