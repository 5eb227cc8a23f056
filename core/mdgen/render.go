// Package mdgen renders grouped repositories as nested collapsible markdown
// sections and splices them into existing documents.
package mdgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/folioworks/gitfolio/core/grouping"
	"github.com/folioworks/gitfolio/schema"
)

// RenderTopicSections renders the Repositories-by-Topic document as ordered
// lines. Every group from grouping.ByTopic becomes an inner collapsible
// block; the Archived group is rendered even when empty so readers can see
// that nothing is archived.
func RenderTopicSections(groups []schema.Group, runTime time.Time, appTitle string) []string {
	md := []string{
		"<details>",
		"<summary><b>Repositories by Topic</b></summary>",
		"",
		fmt.Sprintf(
			"*The list below was generated based on the Topics assigned to "+
				"each public repository as of %s. "+
				"Any repository may be under multiple topics.*",
			runTime.Local().Format("2006-01-02"),
		),
		"",
	}

	for _, g := range groups {
		if len(g.Members) == 0 && g.Key != grouping.ArchivedKey {
			continue
		}
		md = append(md, groupHeader(g))
		for _, r := range g.Members {
			md = append(md, memberLine(r, true))
		}
		md = append(md, "</ul>\n</details>")
	}

	md = append(md, "</details>")
	md = append(md, generatedComment(runTime, appTitle))
	return md
}

// RenderLicenseSections renders the Repositories-by-License document as
// ordered lines. The license is the grouping key, so member lines omit the
// license suffix.
func RenderLicenseSections(groups []schema.Group, runTime time.Time, appTitle string) []string {
	md := []string{
		"<details>",
		"<summary><b>Repositories by License</b></summary>",
		"",
		fmt.Sprintf(
			"*The list below was generated based on the License assigned to "+
				"each public repository as of %s.*",
			runTime.Local().Format("2006-01-02"),
		),
		"",
		"Repositories with no license may be:",
		"- A work-in-progress, which may be given a license when more complete.",
		"- A demo or experiment, available for reference, but not usable as a library or application.",
		"- An infrastructure item (GitHub pages, or this README).",
		"",
	}

	for _, g := range groups {
		if len(g.Members) == 0 {
			continue
		}
		md = append(md, groupHeader(g))
		for _, r := range g.Members {
			md = append(md, memberLine(r, false))
		}
		md = append(md, "</ul>\n</details>")
	}

	md = append(md, "</details>")
	md = append(md, generatedComment(runTime, appTitle))
	return md
}

// groupHeader opens one collapsible block titled with the display label and
// the member count.
func groupHeader(g schema.Group) string {
	return fmt.Sprintf("<details>\n<summary>%s <sup>(%d)</sup></summary>\n<ul>", g.Label, len(g.Members))
}

// memberLine formats one repository list item: hyperlink, optional archived
// and fork annotations (archived first), separator, description, and an
// optional license suffix. The "(none)" sentinel never appears as a suffix.
func memberLine(r schema.RepoRecord, withLicense bool) string {
	var marks strings.Builder
	if r.Archived {
		marks.WriteString("(archived) ")
	}
	if r.Fork {
		marks.WriteString("(fork) ")
	}

	var lic string
	if withLicense && r.LicenseName != "" && r.LicenseName != schema.NoLicense {
		lic = fmt.Sprintf(" (%s)", r.LicenseName)
	}

	anchor := fmt.Sprintf("<a href=%q>%s</a>", r.HTMLURL, r.Name)
	return fmt.Sprintf("<li>%s %s- %s%s</li>", anchor, marks.String(), r.Description, lic)
}

// generatedComment records the generation timestamp and generator identity
// in a machine-readable trailing comment.
func generatedComment(runTime time.Time, appTitle string) string {
	return fmt.Sprintf("<!-- Generated %s by %s -->", runTime.Format("2006-01-02 15:04 MST"), appTitle)
}
