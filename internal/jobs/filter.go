package jobs

import (
	"github.com/sahilm/fuzzy"
)

// jobSource implements fuzzy.Source over job names.
type jobSource []*Job

func (s jobSource) String(i int) string { return s[i].JobName }
func (s jobSource) Len() int            { return len(s) }

// Filter returns the jobs whose names fuzzy-match query, best match first.
// An empty query returns jobs unchanged.
func Filter(jobs []*Job, query string) []*Job {
	if query == "" {
		return jobs
	}
	matches := fuzzy.FindFrom(query, jobSource(jobs))
	filtered := make([]*Job, len(matches))
	for i, m := range matches {
		filtered[i] = jobs[m.Index]
	}
	return filtered
}
