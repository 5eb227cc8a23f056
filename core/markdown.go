package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/folioworks/gitfolio/core/grouping"
	"github.com/folioworks/gitfolio/core/mdgen"
	"github.com/folioworks/gitfolio/internal/contract"
	"github.com/folioworks/gitfolio/internal/csvio"
	"github.com/folioworks/gitfolio/schema"
)

// ExecuteMarkdown renders the by-topic and by-license documents and, when a
// target document is configured, splices them between the marker tags.
func ExecuteMarkdown(cfg *contract.Config, run *contract.RunContext, prompter contract.Prompter) error {
	if err := contract.EnsureOutputDir(cfg, prompter); err != nil {
		return err
	}
	if err := contract.EnsureIntoFile(cfg); err != nil {
		return err
	}

	reposPath := filepath.Join(cfg.DataDir, schema.ReposCSV)
	contract.StatusReading(reposPath)
	repos, err := csvio.ReadRepos(reposPath)
	if err != nil {
		return err
	}

	topicsPath := filepath.Join(cfg.DataDir, schema.TopicsCSV)
	contract.StatusReading(topicsPath)
	topics, err := csvio.ReadTopics(topicsPath)
	if err != nil {
		return err
	}

	altNames := readAltNames(cfg.AltNamesFile)

	topicMD := mdgen.RenderTopicSections(grouping.ByTopic(topics, repos, altNames), run.RunTime, run.Title())
	licenseMD := mdgen.RenderLicenseSections(grouping.ByLicense(repos), run.RunTime, run.Title())

	topicPath := filepath.Join(cfg.OutputDir, schema.ReposByTopicMD)
	contract.StatusWriting(topicPath)
	if err := csvio.WriteLines(topicPath, topicMD); err != nil {
		return err
	}

	licensePath := filepath.Join(cfg.OutputDir, schema.ReposByLicenseMD)
	contract.StatusWriting(licensePath)
	if err := csvio.WriteLines(licensePath, licenseMD); err != nil {
		return err
	}

	if cfg.IntoFile != "" {
		return spliceIntoDocument(cfg.IntoFile, topicMD, licenseMD)
	}
	return nil
}

// readAltNames loads the optional alt-name overlay. A missing or unreadable
// overlay degrades to raw tags with a warning.
func readAltNames(path string) []schema.AltName {
	contract.StatusReading(path)
	altNames, err := csvio.ReadAltNames(path)
	if err != nil {
		contract.LogWarn("cannot read topic alt-names, using raw tags", err)
		return nil
	}
	return altNames
}

// spliceIntoDocument replaces both tagged sections of the target document.
// Missing tags skip that section with a diagnostic; a malformed tag range
// aborts before the document is touched.
func spliceIntoDocument(intoFile string, topicMD, licenseMD []string) error {
	fmt.Printf("Updating %s.\n", contract.PathColor.Sprintf("'%s'", intoFile))

	data, err := os.ReadFile(intoFile)
	if err != nil {
		return err
	}
	lines := splitLines(string(data))

	lines, err = spliceSection(lines, schema.BeginTopicTag, schema.EndTopicTag, topicMD)
	if err != nil {
		return err
	}
	lines, err = spliceSection(lines, schema.BeginLicenseTag, schema.EndLicenseTag, licenseMD)
	if err != nil {
		return err
	}

	return os.WriteFile(intoFile, []byte(strings.Join(lines, "\n")), 0o644)
}

// spliceSection applies one tagged replacement, absorbing missing-tag
// conditions and propagating everything else.
func spliceSection(lines []string, beginTag, endTag string, content []string) ([]string, error) {
	result, err := mdgen.Splice(lines, beginTag, endTag, content)
	if err != nil {
		var tagErr *mdgen.TagError
		if errors.As(err, &tagErr) {
			contract.LogWarn("cannot update section", tagErr)
			return lines, nil
		}
		return nil, err
	}
	return result, nil
}

// splitLines splits a document into right-trimmed lines, dropping the
// artifact of a trailing newline.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
