package jobs

import (
	"testing"
)

func names(jobs []*Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Name()
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Parallel()

	all := []*Job{
		{JobName: "backend-build"},
		{JobName: "frontend-build"},
		{JobName: "deploy-prod"},
	}

	t.Run("empty query returns all", func(t *testing.T) {
		t.Parallel()
		got := Filter(all, "")
		if len(got) != len(all) {
			t.Errorf("Filter(\"\") = %v, want all jobs", names(got))
		}
	})

	t.Run("matches subsequence", func(t *testing.T) {
		t.Parallel()
		got := Filter(all, "dpl")
		if len(got) != 1 || got[0].Name() != "deploy-prod" {
			t.Errorf("Filter(dpl) = %v, want [deploy-prod]", names(got))
		}
	})

	t.Run("matches several", func(t *testing.T) {
		t.Parallel()
		got := Filter(all, "build")
		if len(got) != 2 {
			t.Errorf("Filter(build) = %v, want two build jobs", names(got))
		}
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		if got := Filter(all, "zzz"); len(got) != 0 {
			t.Errorf("Filter(zzz) = %v, want none", names(got))
		}
	})
}
