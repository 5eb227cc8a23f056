// Package parquet exports derived gitfolio report rows to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// RepoReportRow mirrors one line of the repository reports.
type RepoReportRow struct {
	// Name is the repository name, unique within a run
	Name string `parquet:"name,snappy"`

	// Private is the visibility flag
	Private bool `parquet:"private,snappy"`

	// Description is the free-text repository description
	Description string `parquet:"description,snappy"`

	// HTMLURL is the canonical browser URL
	HTMLURL string `parquet:"html_url,snappy"`

	// ProgLangs is the computed language summary string
	ProgLangs string `parquet:"prog_langs,snappy"`

	// LicenseName is the license display name, "(none)" when absent
	LicenseName string `parquet:"license_name,snappy"`

	// Fork reports whether the repository is a fork
	Fork bool `parquet:"fork,snappy"`

	// ForkParent is the parent repository URL, empty when not a fork
	ForkParent string `parquet:"fork_parent,snappy"`

	// Archived reports whether the repository is archived
	Archived bool `parquet:"archived,snappy"`
}

// LangStatRow mirrors one line of the aggregate language report.
type LangStatRow struct {
	// ProgLang is the language name
	ProgLang string `parquet:"prog_lang,snappy"`

	// PublicCount is the number of public repositories using the language
	PublicCount int32 `parquet:"public_count,snappy"`

	// PublicPct is the normalized public share
	PublicPct float64 `parquet:"public_pct,snappy"`

	// PrivateCount is the number of private repositories using the language
	PrivateCount int32 `parquet:"private_count,snappy"`

	// PrivatePct is the normalized private share
	PrivatePct float64 `parquet:"private_pct,snappy"`
}

// TopicLicenseRow mirrors one line of the topic/license cross-reference.
type TopicLicenseRow struct {
	// RepoName is the repository name
	RepoName string `parquet:"repo_name,snappy"`

	// Topic is the raw topic tag
	Topic string `parquet:"topic,snappy"`

	// LicenseName is the repository's license display name
	LicenseName string `parquet:"license_name,snappy"`
}

// WriteRepoReportParquet writes repository report rows to a Parquet file.
func WriteRepoReportParquet(data []RepoReportRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteLangStatsParquet writes aggregate language rows to a Parquet file.
func WriteLangStatsParquet(data []LangStatRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteTopicLicenseParquet writes topic/license rows to a Parquet file.
func WriteTopicLicenseParquet(data []TopicLicenseRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes any row type to outputPath using struct schema
// inference from the parquet tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
