package schema

// Boolean fields serialize as "True"/"False" in every record file, matching
// the format produced by the upstream exporter.
const (
	trueLiteral  = "True"
	falseLiteral = "False"
)

// FormatBool serializes a boolean the way the record files expect.
func FormatBool(v bool) string {
	if v {
		return trueLiteral
	}
	return falseLiteral
}

// ParseBool reads a record-file boolean. Anything other than the exact
// "True" literal is treated as false.
func ParseBool(s string) bool {
	return s == trueLiteral
}

// PublicOf returns the public repositories in their original order.
func PublicOf(repos []RepoRecord) []RepoRecord {
	var result []RepoRecord
	for _, r := range repos {
		if !r.Private {
			result = append(result, r)
		}
	}
	return result
}

// PrivateOf returns the private repositories in their original order.
func PrivateOf(repos []RepoRecord) []RepoRecord {
	var result []RepoRecord
	for _, r := range repos {
		if r.Private {
			result = append(result, r)
		}
	}
	return result
}

// LicenseFor returns the license display name recorded for the named
// repository, or an empty string when the repository is unknown.
func LicenseFor(repoName string, repos []RepoRecord) string {
	for _, r := range repos {
		if r.Name == repoName {
			return r.LicenseName
		}
	}
	return ""
}
