// Package grouping partitions public repositories into ordered groups keyed
// by topic or by license.
package grouping

import (
	"sort"
	"strings"

	"github.com/folioworks/gitfolio/schema"
)

// Key and label for the synthetic group holding archived repositories.
// The group always leads the topic view, even when it has no members.
const (
	ArchivedKey   = "archived"
	ArchivedLabel = "Archived"
)

// ByTopic groups public repositories by topic tag.
//
// Distinct tags are collected in first-seen order, resolved to display
// labels through the alt-name overlay, and ordered case-insensitively by
// label with the raw tag as tie-break. Each group's members are the public
// repositories linked by that tag, in topic scan order, one entry per
// repository even when duplicate topic rows exist. Tags with no qualifying
// repositories are omitted.
//
// Archived public repositories additionally form the leading Archived
// group; archival annotates a repository, it does not remove it from its
// topic groups.
func ByTopic(topics []schema.TopicRecord, repos []schema.RepoRecord, altNames []schema.AltName) []schema.Group {
	pub := schema.PublicOf(repos)

	seen := make(map[string]bool)
	var tags []string
	for _, t := range topics {
		if !seen[t.Topic] {
			seen[t.Topic] = true
			tags = append(tags, t.Topic)
		}
	}
	sort.Strings(tags)

	type labeledTag struct {
		tag   string
		label string
	}
	pairs := make([]labeledTag, 0, len(tags))
	for _, tag := range tags {
		label := tag
		for _, alt := range altNames {
			if alt.TopicName == tag {
				label = alt.AltName
				break
			}
		}
		pairs = append(pairs, labeledTag{tag: tag, label: label})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		li, lj := strings.ToLower(pairs[i].label), strings.ToLower(pairs[j].label)
		if li != lj {
			return li < lj
		}
		return pairs[i].tag < pairs[j].tag
	})

	groups := []schema.Group{archivedGroup(pub)}
	for _, p := range pairs {
		members := reposWithTopic(p.tag, topics, pub)
		if len(members) == 0 {
			continue
		}
		groups = append(groups, schema.Group{Key: p.tag, Label: p.label, Members: members})
	}
	return groups
}

// ByLicense groups public repositories by license display name.
// License names, including the "(none)" sentinel, sort as plain strings.
func ByLicense(repos []schema.RepoRecord) []schema.Group {
	pub := schema.PublicOf(repos)

	seen := make(map[string]bool)
	var names []string
	for _, r := range pub {
		if !seen[r.LicenseName] {
			seen[r.LicenseName] = true
			names = append(names, r.LicenseName)
		}
	}
	sort.Strings(names)

	groups := make([]schema.Group, 0, len(names))
	for _, name := range names {
		g := schema.Group{Key: name, Label: name}
		for _, r := range pub {
			if r.LicenseName == name {
				g.Members = append(g.Members, r)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// reposWithTopic returns the repositories linked by the given tag, in topic
// scan order, deduplicated by repository name.
func reposWithTopic(tag string, topics []schema.TopicRecord, repos []schema.RepoRecord) []schema.RepoRecord {
	added := make(map[string]bool)
	var members []schema.RepoRecord
	for _, t := range topics {
		if t.Topic != tag || added[t.RepoName] {
			continue
		}
		for _, r := range repos {
			if r.Name == t.RepoName {
				members = append(members, r)
				added[t.RepoName] = true
				break
			}
		}
	}
	return members
}

func archivedGroup(pub []schema.RepoRecord) schema.Group {
	g := schema.Group{Key: ArchivedKey, Label: ArchivedLabel}
	for _, r := range pub {
		if r.Archived {
			g.Members = append(g.Members, r)
		}
	}
	return g
}
