package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/folioworks/gitfolio/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintLangStatsTable renders the aggregate language usage as a
// human-readable console table. Shares are shown as percentages with one
// decimal place.
func PrintLangStatsTable(w io.Writer, stats []schema.LangStat) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Language", "Public", "Public %", "Private", "Private %"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(stats))
	for _, s := range stats {
		data = append(data, []string{
			s.LangName,
			strconv.Itoa(s.PublicCount),
			fmt.Sprintf("%.1f", s.PublicPct*100),
			strconv.Itoa(s.PrivateCount),
			fmt.Sprintf("%.1f", s.PrivatePct*100),
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to add language rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render language table: %w", err)
	}
	return nil
}

// PrintRunsTable renders recorded fetch sessions as a console table, most
// recent first as returned by the run store.
func PrintRunsTable(w io.Writer, runs []schema.RunRecord) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Stamp", "Generator", "Repos", "Langs", "Topics", "Recorded"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(runs))
	for _, r := range runs {
		data = append(data, []string{
			strconv.FormatInt(r.ID, 10),
			r.Stamp,
			r.AppTitle,
			strconv.Itoa(r.RepoCount),
			strconv.Itoa(r.LangCount),
			strconv.Itoa(r.TopicCount),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to add run rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render runs table: %w", err)
	}
	return nil
}
