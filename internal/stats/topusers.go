package stats

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/tgstats/tgstats/internal/chat"
)

type UserCount struct {
	Name  string
	Count int
}

// TopRepliers ranks users by how often they replied to a question.
// Replies pointing at ids that are not questions (or not in the export
// at all) are ignored. Ties keep the order in which the users first
// replied, the result never exceeds topN entries.
func TopRepliers(messages []*chat.Message, topN int) []UserCount {
	if topN < 0 {
		topN = 0
	}
	questions := QuestionIds(messages)
	log.Infof("Found %v questions among %v messages", len(questions), len(messages))

	counts := make(map[string]int)
	order := make([]string, 0, 16)
	for _, msg := range messages {
		if msg.ReplyTo == 0 || !questions[msg.ReplyTo] {
			continue
		}
		if msg.From == "" { // exports null the name of deleted accounts
			continue
		}
		if _, seen := counts[msg.From]; !seen {
			order = append(order, msg.From)
		}
		counts[msg.From]++
	}

	ranking := make([]UserCount, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, UserCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	if len(ranking) > topN {
		ranking = ranking[:topN]
	}
	return ranking
}
