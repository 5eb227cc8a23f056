// Package gitclient fetches repository metadata, language byte counts, and
// topic tags from the GitHub API. It is the external record store side of
// the pipeline; the core packages only consume its output collections.
package gitclient

import (
	"context"
	"fmt"
	"sort"

	"github.com/folioworks/gitfolio/schema"
	"github.com/google/go-github/v72/github"
	"github.com/remeh/sizedwaitgroup"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// apiRatePerSecond keeps language listing comfortably inside the
// authenticated API budget of 5000 calls per hour.
const apiRatePerSecond = 1

// Client wraps an authenticated GitHub API client.
type Client struct {
	gh      *github.Client
	limiter *rate.Limiter
	workers int
}

// New builds a Client from a personal access token.
func New(ctx context.Context, token string, workers int) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &Client{
		gh:      github.NewClient(tc),
		limiter: rate.NewLimiter(rate.Limit(apiRatePerSecond), 5),
		workers: workers,
	}
}

// UserURL returns the authenticated user's profile URL, verifying the
// credentials in the process.
func (c *Client) UserURL(ctx context.Context) (string, error) {
	user, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("credentials not accepted, the personal access token may have expired: %w", err)
	}
	return user.GetHTMLURL(), nil
}

// FetchAll lists every repository of the authenticated user and assembles
// the three record collections: repositories, language bytes, and topics.
// Record order is deterministic: repositories in API order, language and
// topic rows grouped per repository in that same order.
func (c *Client) FetchAll(ctx context.Context) (schema.Dataset, error) {
	var ds schema.Dataset

	repos, err := c.listRepos(ctx)
	if err != nil {
		return ds, err
	}

	for _, repo := range repos {
		ds.Repos = append(ds.Repos, toRecord(repo))
		for _, topic := range repo.Topics {
			ds.Topics = append(ds.Topics, schema.TopicRecord{
				RepoName: repo.GetName(),
				Topic:    topic,
			})
		}
	}

	langsByRepo, err := c.fetchLanguages(ctx, repos)
	if err != nil {
		return ds, err
	}
	for _, repo := range repos {
		ds.Langs = append(ds.Langs, langsByRepo[repo.GetName()]...)
	}

	return ds, nil
}

// listRepos pages through the authenticated user's repositories.
func (c *Client) listRepos(ctx context.Context) ([]*github.Repository, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []*github.Repository
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		repos, resp, err := c.gh.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("cannot list repositories: %w", err)
		}
		all = append(all, repos...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// fetchLanguages lists language byte counts for every repository, a few in
// flight at a time, and returns them keyed by repository name with each
// repository's languages sorted for stable output.
func (c *Client) fetchLanguages(ctx context.Context, repos []*github.Repository) (map[string][]schema.LangRecord, error) {
	type langResult struct {
		repoName string
		langs    map[string]int
		err      error
	}

	swg := sizedwaitgroup.New(c.workers)
	results := make(chan langResult, len(repos))

	for _, repo := range repos {
		swg.Add()
		go func(repo *github.Repository) {
			defer swg.Done()
			if err := c.limiter.Wait(ctx); err != nil {
				results <- langResult{repoName: repo.GetName(), err: err}
				return
			}
			langs, _, err := c.gh.Repositories.ListLanguages(ctx, repo.GetOwner().GetLogin(), repo.GetName())
			if err != nil {
				err = fmt.Errorf("cannot list languages for %s: %w", repo.GetName(), err)
			}
			results <- langResult{repoName: repo.GetName(), langs: langs, err: err}
		}(repo)
	}

	swg.Wait()
	close(results)

	byRepo := make(map[string][]schema.LangRecord, len(repos))
	for result := range results {
		if result.err != nil {
			return nil, result.err
		}

		names := make([]string, 0, len(result.langs))
		for name := range result.langs {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			byRepo[result.repoName] = append(byRepo[result.repoName], schema.LangRecord{
				RepoName:  result.repoName,
				LangName:  name,
				CodeBytes: int64(result.langs[name]),
			})
		}
	}
	return byRepo, nil
}

// toRecord converts an API repository to the snapshot record shape.
func toRecord(repo *github.Repository) schema.RepoRecord {
	licenseName := schema.NoLicense
	if name := repo.GetLicense().GetName(); name != "" {
		licenseName = name
	}

	forkParent := ""
	if repo.GetFork() {
		forkParent = repo.GetParent().GetHTMLURL()
	}

	return schema.RepoRecord{
		Name:        repo.GetName(),
		Private:     repo.GetPrivate(),
		Description: repo.GetDescription(),
		FullName:    repo.GetFullName(),
		HTMLURL:     repo.GetHTMLURL(),
		LicenseName: licenseName,
		Fork:        repo.GetFork(),
		ForkParent:  forkParent,
		Archived:    repo.GetArchived(),
	}
}
