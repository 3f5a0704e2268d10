package workflow

import (
	"sort"

	"github.com/aretw0/espalier/pkg/domain"
)

// Adjacency is the traversal view of a workflow: role id -> ordered set of
// neighbor role ids. Edges keep insertion order (transitions pre-sorted by
// SortOrder), which makes BFS and any rendering of the graph deterministic.
type Adjacency struct {
	Outgoing map[string][]string
	Incoming map[string][]string

	edgeCount int
}

// BuildAdjacency flattens every role's originating statuses and their
// transitions into the two maps. No validation happens here: a transition
// whose target is not a known role is simply not recorded, so the malformed
// edge surfaces later as an ordinary unreachable/orphan finding.
func BuildAdjacency(roles []domain.Role) *Adjacency {
	adj := &Adjacency{
		Outgoing: make(map[string][]string, len(roles)),
		Incoming: make(map[string][]string, len(roles)),
	}

	known := make(map[string]bool, len(roles))
	for _, r := range roles {
		known[r.ID] = true
		adj.Outgoing[r.ID] = nil
		adj.Incoming[r.ID] = nil
	}

	outSeen := make(map[string]map[string]bool)
	inSeen := make(map[string]map[string]bool)

	for _, role := range roles {
		for _, status := range role.Statuses {
			if !status.Code.Originates() {
				continue
			}

			transitions := make([]domain.Transition, len(status.Transitions))
			copy(transitions, status.Transitions)
			sort.SliceStable(transitions, func(i, j int) bool {
				return transitions[i].SortOrder < transitions[j].SortOrder
			})

			for _, t := range transitions {
				if !known[t.TargetRoleID] {
					continue
				}
				if addEdge(adj.Outgoing, outSeen, role.ID, t.TargetRoleID) {
					adj.edgeCount++
				}
				addEdge(adj.Incoming, inSeen, t.TargetRoleID, role.ID)
			}
		}
	}

	return adj
}

// EdgeCount returns the number of distinct edges in the view.
func (a *Adjacency) EdgeCount() int {
	return a.edgeCount
}

// ReachableFrom runs a breadth-first traversal over the outgoing view.
// This is an unweighted connectivity check: visited-set membership decides
// reachability, and traversal order follows edge insertion order.
func (a *Adjacency) ReachableFrom(startID string) map[string]bool {
	visited := make(map[string]bool)
	if _, ok := a.Outgoing[startID]; !ok {
		return visited
	}

	queue := []string{startID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, next := range a.Outgoing[current] {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	return visited
}

func addEdge(edges map[string][]string, seen map[string]map[string]bool, from, to string) bool {
	if seen[from] == nil {
		seen[from] = make(map[string]bool)
	}
	if seen[from][to] {
		return false
	}
	seen[from][to] = true
	edges[from] = append(edges[from], to)
	return true
}
