// Package langstat computes per-repository language percentage breakdowns
// and visibility-partitioned aggregate language usage.
package langstat

import (
	"fmt"
	"math"
	"strings"

	"github.com/folioworks/gitfolio/schema"
)

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// ComputeRepoPercents filters the language records down to the named
// repository and derives each language's percentage of the repository total,
// rounded to 2 decimal places.
//
// A repository whose language rows sum to zero bytes has no usable mix and
// yields nil rather than a division failure.
func ComputeRepoPercents(repoName string, langs []schema.LangRecord) []schema.LangPercent {
	var rows []schema.LangRecord
	var totalBytes int64
	for _, l := range langs {
		if l.RepoName == repoName {
			rows = append(rows, l)
			totalBytes += l.CodeBytes
		}
	}
	if totalBytes == 0 {
		return nil
	}

	result := make([]schema.LangPercent, 0, len(rows))
	for _, l := range rows {
		result = append(result, schema.LangPercent{
			RepoName:  l.RepoName,
			LangName:  l.LangName,
			CodeBytes: l.CodeBytes,
			Percent:   roundTo(float64(l.CodeBytes)/float64(totalBytes)*100, 2),
		})
	}
	return result
}

// SummaryString builds the compact display string for a repository's
// language mix, e.g. "Go 75.0%, Python 25.0%".
//
// Entries are taken in their given order and rounded to 1 decimal place.
// Entries below 1% are skipped; when the kept shares sum to 99% or less the
// remainder is reported as an "Other" bucket. The summary is intentionally
// lossy: it is a human-oriented view, not a round-trippable encoding.
func SummaryString(percents []schema.LangPercent) string {
	var b strings.Builder
	var pctSum float64
	for _, p := range percents {
		pct := roundTo(p.Percent, 1)
		if pct >= 1 {
			pctSum += pct
			fmt.Fprintf(&b, "%s %.1f%%, ", p.LangName, pct)
		}
	}
	s := b.String()
	if s == "" {
		return ""
	}
	if pctSum <= 99 {
		return s + fmt.Sprintf("Other %.1f%%", roundTo(100-pctSum, 1))
	}
	return strings.TrimSuffix(s, ", ")
}

// AggregateStats computes per-language usage counts and normalized shares,
// split by repository visibility, over the whole record set.
//
// Pass 1 sums the per-repository percentages into a public and a private
// total; pass 2 folds every (repository, language) pair into an ordered
// result keyed by first-seen language. A visibility class whose total is
// zero contributes nothing, so an all-public or all-private record set
// never divides by zero.
func AggregateStats(repos []schema.RepoRecord, langs []schema.LangRecord) []schema.LangStat {
	var totalPctPublic, totalPctPrivate float64
	for _, repo := range repos {
		for _, p := range ComputeRepoPercents(repo.Name, langs) {
			if repo.Private {
				totalPctPrivate += p.Percent
			} else {
				totalPctPublic += p.Percent
			}
		}
	}

	index := make(map[string]int)
	var stats []schema.LangStat
	for _, repo := range repos {
		for _, p := range ComputeRepoPercents(repo.Name, langs) {
			i, ok := index[p.LangName]
			if !ok {
				i = len(stats)
				index[p.LangName] = i
				stats = append(stats, schema.LangStat{LangName: p.LangName})
			}
			if repo.Private {
				if totalPctPrivate == 0 {
					continue
				}
				stats[i].PrivateCount++
				stats[i].PrivatePct += p.Percent / totalPctPrivate
			} else {
				if totalPctPublic == 0 {
					continue
				}
				stats[i].PublicCount++
				stats[i].PublicPct += p.Percent / totalPctPublic
			}
		}
	}
	return stats
}
