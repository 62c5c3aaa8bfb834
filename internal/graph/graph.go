package graph

import (
	log "github.com/sirupsen/logrus"

	"github.com/tgstats/tgstats/internal/chat"
	"github.com/tgstats/tgstats/internal/textprocessor"
)

// Edge is an ordered responder -> author pair.
type Edge struct {
	From string
	To   string
}

// ReplyGraph aggregates who replied to whom. Users are keyed by their
// export id and kept in the order they first appeared.
type ReplyGraph struct {
	userIds []string
	names   map[string]string

	Edges        map[Edge]int
	Interactions map[string]int
}

// Build runs a single pass over the messages, registering users and
// counting reply edges. Service entries are skipped and replies whose
// target id has no known author are ignored.
func Build(messages []*chat.Message) *ReplyGraph {
	g := &ReplyGraph{
		names:        make(map[string]string),
		Edges:        make(map[Edge]int),
		Interactions: make(map[string]int),
	}
	authors := make(map[int64]string) // message id -> author id
	for _, msg := range messages {
		if !msg.IsMessage() {
			continue
		}
		if _, known := g.names[msg.FromId]; !known && msg.From != "" {
			g.userIds = append(g.userIds, msg.FromId)
			g.names[msg.FromId] = textprocessor.CleanName(msg.From)
		}
		authors[msg.Id] = msg.FromId

		if msg.ReplyTo == 0 {
			continue
		}
		target, known := authors[msg.ReplyTo]
		if !known {
			continue // reply to something outside the export
		}
		g.Edges[Edge{From: msg.FromId, To: target}]++
		g.Interactions[msg.FromId]++
		g.Interactions[target]++
	}
	log.Infof("Found %v users and %v reply edges", len(g.userIds), len(g.Edges))
	return g
}

// Users returns the user ids in first-seen order.
func (g *ReplyGraph) Users() []string {
	return g.userIds
}

// Name returns the cleaned display name for a user id.
func (g *ReplyGraph) Name(id string) string {
	return g.names[id]
}

// Value is a user's node weight, reply interactions plus one.
func (g *ReplyGraph) Value(id string) int {
	return g.Interactions[id] + 1
}
