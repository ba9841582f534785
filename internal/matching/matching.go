// Package matching implements the two deferred-acceptance
// (Gale–Shapley) variants the pairing engine is built on: a
// capacitated bipartite form used for adjudicator-to-square
// assignment, and a symmetric form used for team-versus-team draws.
//
// The package performs no ranking logic of its own: preference lists
// are assumed to already be total orders over the eligible opposite
// set, produced by the ranker chain. Both variants are deterministic:
// proposal order follows input order and no map iteration influences
// the result.
package matching

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the matching engine.
var (
	// ErrInsufficientReceivers is returned when the proposers cannot
	// all be covered by the receivers' aggregate capacity. This is a
	// caller precondition, not a soft case: no matching is attempted.
	ErrInsufficientReceivers = errors.New("not enough receivers for proposers")

	// ErrNegativeCapacity is returned for a capacity below zero.
	ErrNegativeCapacity = errors.New("capacity must be non-negative")
)

// Bipartite runs capacitated deferred acceptance between proposers and
// receivers. Each proposer ends matched to at most one receiver; each
// receiver holds at most capacity proposers, keeping the ones it ranks
// best and displacing the worst when a better proposal arrives. A
// displaced proposer resumes proposing from its next preference.
//
// proposerRanks orders receivers per proposer; receiverRanks orders
// proposers per receiver. A proposer absent from a receiver's rank list
// is never accepted over a ranked one.
//
// The result maps every proposer to its matched receivers (zero or one
// entries). With capacity zero every proposer maps to the empty set
// without iterating. The call fails with ErrInsufficientReceivers when
// the receivers' aggregate capacity cannot cover the proposers.
func Bipartite(
	proposers, receivers []string,
	proposerRanks, receiverRanks map[string][]string,
	capacity int,
) (map[string][]string, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity=%d", ErrNegativeCapacity, capacity)
	}

	matches := make(map[string][]string, len(proposers))
	for _, p := range proposers {
		matches[p] = []string{}
	}
	if capacity == 0 {
		return matches, nil
	}

	if len(proposers) > len(receivers)*capacity {
		return nil, fmt.Errorf("%w: proposers=%d, receivers=%d, capacity=%d",
			ErrInsufficientReceivers, len(proposers), len(receivers), capacity)
	}

	// Receiver-side preference positions; unlisted proposers rank last.
	position := make(map[string]map[string]int, len(receivers))
	for _, r := range receivers {
		pos := make(map[string]int, len(receiverRanks[r]))
		for i, p := range receiverRanks[r] {
			pos[p] = i
		}
		position[r] = pos
	}
	rankOf := func(r, p string) int {
		if i, ok := position[r][p]; ok {
			return i
		}
		return len(position[r]) + len(proposers)
	}

	held := make(map[string][]string, len(receivers))
	next := make(map[string]int, len(proposers))

	queue := make([]string, len(proposers))
	copy(queue, proposers)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		prefs := proposerRanks[p]
		for next[p] < len(prefs) {
			r := prefs[next[p]]
			next[p]++

			cur := held[r]
			if len(cur) < capacity {
				held[r] = append(cur, p)
				matches[p] = []string{r}
				break
			}

			// Receiver is full: displace its worst-held proposer when
			// the new one ranks strictly better.
			worst := 0
			for i := 1; i < len(cur); i++ {
				if rankOf(r, cur[i]) > rankOf(r, cur[worst]) {
					worst = i
				}
			}
			if rankOf(r, p) < rankOf(r, cur[worst]) {
				displaced := cur[worst]
				cur[worst] = p
				matches[p] = []string{r}
				matches[displaced] = []string{}
				queue = append(queue, displaced)
				break
			}
		}
	}

	return matches, nil
}

// Symmetric runs deferred acceptance over a single pool where every
// member is both proposer and candidate, with a mutual capacity. A
// successful proposal updates both members' match lists; displacing a
// previously accepted partner forces that partner back into the pool,
// resuming from its next preference. The run ends when every member is
// at capacity or has exhausted its preference list.
//
// The result is symmetric: b appears in matches[a] exactly when a
// appears in matches[b].
func Symmetric(
	members []string,
	ranks map[string][]string,
	capacity int,
) (map[string][]string, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity=%d", ErrNegativeCapacity, capacity)
	}

	matches := make(map[string][]string, len(members))
	for _, m := range members {
		matches[m] = []string{}
	}
	if capacity == 0 {
		return matches, nil
	}

	position := make(map[string]map[string]int, len(members))
	for _, m := range members {
		pos := make(map[string]int, len(ranks[m]))
		for i, c := range ranks[m] {
			pos[c] = i
		}
		position[m] = pos
	}
	rankOf := func(m, c string) int {
		if i, ok := position[m][c]; ok {
			return i
		}
		return len(position[m]) + len(members)
	}

	contains := func(xs []string, x string) bool {
		for _, v := range xs {
			if v == x {
				return true
			}
		}
		return false
	}
	remove := func(xs []string, x string) []string {
		out := xs[:0]
		for _, v := range xs {
			if v != x {
				out = append(out, v)
			}
		}
		return out
	}

	next := make(map[string]int, len(members))
	queue := make([]string, len(members))
	copy(queue, members)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		prefs := ranks[p]
		for len(matches[p]) < capacity && next[p] < len(prefs) {
			c := prefs[next[p]]
			next[p]++

			if c == p || contains(matches[p], c) {
				continue
			}

			if len(matches[c]) < capacity {
				matches[p] = append(matches[p], c)
				matches[c] = append(matches[c], p)
				continue
			}

			// Candidate is full: keep proposing only if it prefers the
			// proposer to its worst current partner, evicting that one.
			cur := matches[c]
			worst := cur[0]
			for _, m := range cur[1:] {
				if rankOf(c, m) > rankOf(c, worst) {
					worst = m
				}
			}
			if rankOf(c, p) < rankOf(c, worst) {
				matches[c] = remove(matches[c], worst)
				matches[worst] = remove(matches[worst], c)
				matches[p] = append(matches[p], c)
				matches[c] = append(matches[c], p)
				queue = append(queue, worst)
			}
		}
	}

	return matches, nil
}

// Invert flips a proposer-keyed bipartite result into a receiver-keyed
// view, preserving acceptance order within each receiver.
func Invert(matches map[string][]string, proposers []string) map[string][]string {
	out := make(map[string][]string)
	for _, p := range proposers {
		for _, r := range matches[p] {
			out[r] = append(out[r], p)
		}
	}
	return out
}
