// Package schema has models and shared constants for all parts of gitfolio.
package schema

import "time"

// RepoRecord represents the metadata snapshot of a single repository.
// Records are produced by the record store (GitHub exporter or raw CSV files)
// and are read-only for the duration of a pipeline run.
type RepoRecord struct {
	Name        string // Repository name, unique within a run
	Private     bool   // Visibility flag (false means public)
	Description string // Free-text description, may be empty
	FullName    string // owner/name form used for markdown links
	HTMLURL     string // Canonical browser URL
	LicenseName string // License display name, NoLicense when absent
	Fork        bool   // True when the repository is a fork
	ForkParent  string // Parent repository URL, empty when not a fork
	Archived    bool   // True when the repository is archived
}

// LangRecord is one (repository, language, byte count) observation
// contributing to that repository's language mix.
type LangRecord struct {
	RepoName  string
	LangName  string
	CodeBytes int64
}

// TopicRecord links a repository to one free-text topic tag.
type TopicRecord struct {
	RepoName string
	Topic    string
}

// AltName maps a raw topic tag to a display-friendly name.
// Tags without an alt-name fall back to the raw tag for display.
type AltName struct {
	TopicName string
	AltName   string
}

// LangPercent is a per-repository language share derived from byte counts.
type LangPercent struct {
	RepoName  string
	LangName  string
	CodeBytes int64
	Percent   float64 // Share of the repository total, rounded to 2 decimals
}

// LangStat aggregates one language across all repositories, split by
// visibility. The Pct fields are normalized shares summing to 1.0 within
// each visibility class.
type LangStat struct {
	LangName     string
	PublicCount  int
	PublicPct    float64
	PrivateCount int
	PrivatePct   float64
}

// Group is an ordered set of repositories sharing a topic or license.
type Group struct {
	Key     string       // Raw topic tag or license name
	Label   string       // Display label (alt-name or raw key)
	Members []RepoRecord // Qualifying repositories in scan order
}

// RunRecord is one recorded fetch session in the run store.
type RunRecord struct {
	ID         int64
	Stamp      string // Snapshot directory name, e.g. 20240115_083000
	AppTitle   string // Generator identity at fetch time
	RepoCount  int
	LangCount  int
	TopicCount int
	CreatedAt  time.Time
}

// Dataset bundles the record collections read from the record store.
type Dataset struct {
	Repos    []RepoRecord
	Langs    []LangRecord
	Topics   []TopicRecord
	AltNames []AltName
}
