package schema

// Custom string types for type safety.
type (
	// OutputFormat represents the serialization format for derived reports.
	OutputFormat string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All output formats supported.
const (
	CSVFormat     OutputFormat = "csv" // default
	ParquetFormat OutputFormat = "parquet"
)

// All run store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputFormats lists all valid output formats.
var ValidOutputFormats = map[OutputFormat]struct{}{
	CSVFormat:     {},
	ParquetFormat: {},
}

// ValidDatabaseBackends lists all valid run store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// NoLicense is the sentinel license display name for repositories without one.
const NoLicense = "(none)"

// Raw record file names under the data directory.
const (
	ReposCSV    = "github-repos.csv"
	LangsCSV    = "github-langs.csv"
	TopicsCSV   = "github-topics.csv"
	AltNamesCSV = "topics_altnames.csv"
)

// Derived report file names under the output directory.
const (
	ReposPublicCSV   = "repos-public.csv"
	ReposPublicMdCSV = "repos-public-md.csv"
	ReposPrivateCSV  = "repos-private.csv"
	ReposLangsCSV    = "repos-langs.csv"
	ReposTopicsCSV   = "repos-topics.csv"
	ReposByTopicMD   = "repos-by-topic.md"
	ReposByLicenseMD = "repos-by-license.md"
)

// Section marker tags matched line-by-line (post-trim) when splicing
// rendered sections into an existing document.
const (
	BeginTopicTag   = "<!-- Begin_Repositories_by_Topic -->"
	EndTopicTag     = "<!-- End_Repositories_by_Topic -->"
	BeginLicenseTag = "<!-- Begin_Repositories_by_License -->"
	EndLicenseTag   = "<!-- End_Repositories_by_License -->"
)
