package story

import (
	"sort"

	"launchstories/internal/model"
)

// BuildLeaderboard counts rows per consultant. Ties share a rank and the next
// distinct count continues at its position, so counts 5,5,3 rank 1,1,3.
func BuildLeaderboard(rows [][]string) []model.Contributor {
	counts := make(map[string]int)
	for _, row := range rows {
		if len(row) <= consultantColumn {
			continue
		}
		name := NormalizeName(row[consultantColumn])
		if name == "" {
			continue
		}
		counts[name]++
	}

	contributors := make([]model.Contributor, 0, len(counts))
	for name, n := range counts {
		contributors = append(contributors, model.Contributor{Name: name, Submissions: n})
	}

	sort.Slice(contributors, func(i, j int) bool {
		if contributors[i].Submissions != contributors[j].Submissions {
			return contributors[i].Submissions > contributors[j].Submissions
		}
		return contributors[i].Name < contributors[j].Name
	})

	for i := range contributors {
		if i > 0 && contributors[i].Submissions == contributors[i-1].Submissions {
			contributors[i].Rank = contributors[i-1].Rank
			continue
		}
		contributors[i].Rank = i + 1
	}

	return contributors
}
