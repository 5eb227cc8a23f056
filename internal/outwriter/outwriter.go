// Package outwriter serializes derived report rows to delimited files and
// renders console summaries.
package outwriter

import (
	"strconv"

	"github.com/folioworks/gitfolio/core/langstat"
	"github.com/folioworks/gitfolio/internal/contract"
	"github.com/folioworks/gitfolio/internal/csvio"
	"github.com/folioworks/gitfolio/schema"
)

// RepoRow is one derived repository report line: the repository record
// augmented with its computed language summary string.
type RepoRow struct {
	schema.RepoRecord
	ProgLangs string
}

// TopicLicenseRow cross-references one topic record with the repository's
// license display name.
type TopicLicenseRow struct {
	RepoName    string
	Topic       string
	LicenseName string
}

// BuildRepoRows augments each repository with its language summary string,
// preserving the input order.
func BuildRepoRows(repos []schema.RepoRecord, langs []schema.LangRecord) []RepoRow {
	rows := make([]RepoRow, 0, len(repos))
	for _, r := range repos {
		percents := langstat.ComputeRepoPercents(r.Name, langs)
		rows = append(rows, RepoRow{
			RepoRecord: r,
			ProgLangs:  langstat.SummaryString(percents),
		})
	}
	return rows
}

// BuildTopicLicenseRows joins each topic record with its repository's
// license. Unknown repositories yield an empty license field.
func BuildTopicLicenseRows(topics []schema.TopicRecord, repos []schema.RepoRecord) []TopicLicenseRow {
	rows := make([]TopicLicenseRow, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, TopicLicenseRow{
			RepoName:    t.RepoName,
			Topic:       t.Topic,
			LicenseName: schema.LicenseFor(t.RepoName, repos),
		})
	}
	return rows
}

// WriteRepoReport writes the full repository report (public or private
// variant) as a snapshot + current pair. full_name is dropped in favor of
// the computed prog_langs column.
func WriteRepoReport(dir, stamp, name string, rows []RepoRow) error {
	header := []string{
		"name", "private", "description", "html_url",
		"prog_langs", "license_name", "fork", "fork_parent", "archived",
	}
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			r.Name,
			schema.FormatBool(r.Private),
			r.Description,
			r.HTMLURL,
			r.ProgLangs,
			r.LicenseName,
			schema.FormatBool(r.Fork),
			r.ForkParent,
			schema.FormatBool(r.Archived),
		})
	}
	return writePair(dir, stamp, name, header, data)
}

// WriteRepoMdReport writes the markdown-link variant of the public report.
// The md_link column replaces full_name and html_url; the fork columns stay
// in the header for schema stability but are left empty.
func WriteRepoMdReport(dir, stamp string, rows []RepoRow) error {
	header := []string{
		"name", "private", "description", "md_link",
		"prog_langs", "license_name", "fork", "fork_parent",
	}
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			r.Name,
			schema.FormatBool(r.Private),
			r.Description,
			"[" + r.FullName + "](" + r.HTMLURL + ")",
			r.ProgLangs,
			r.LicenseName,
			"",
			"",
		})
	}
	return writePair(dir, stamp, schema.ReposPublicMdCSV, header, data)
}

// WriteLangStatsReport writes the aggregate language usage report.
func WriteLangStatsReport(dir, stamp string, stats []schema.LangStat) error {
	header := []string{"prog_lang", "public_count", "public_pct", "private_count", "private_pct"}
	data := make([][]string, 0, len(stats))
	for _, s := range stats {
		data = append(data, []string{
			s.LangName,
			strconv.Itoa(s.PublicCount),
			formatShare(s.PublicPct),
			strconv.Itoa(s.PrivateCount),
			formatShare(s.PrivatePct),
		})
	}
	return writePair(dir, stamp, schema.ReposLangsCSV, header, data)
}

// WriteTopicLicenseReport writes the topic/license cross-reference report.
func WriteTopicLicenseReport(dir, stamp string, rows []TopicLicenseRow) error {
	header := []string{"repo_name", "topic", "license_name"}
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{r.RepoName, r.Topic, r.LicenseName})
	}
	return writePair(dir, stamp, schema.ReposTopicsCSV, header, data)
}

// writePair wraps the snapshot + current write with status output.
func writePair(dir, stamp, name string, header []string, rows [][]string) error {
	snapshot, copied, err := csvio.WriteSnapshotPair(dir, stamp, name, header, rows)
	if err != nil {
		return err
	}
	contract.StatusWriting(snapshot)
	contract.StatusCopying(copied)
	return nil
}

// formatShare renders a normalized share with the shortest representation
// that round-trips, the way the report consumers expect raw floats.
func formatShare(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
