// Package offline answers common farmer questions without touching the
// network. Matching is an ordered table of keyword predicates over the
// lowercased query; the first matching rule wins and returns its canned
// reply in the requested language, falling back to English. A miss tells
// the caller to escalate to the advisory gateway.
package offline

import "strings"

// Rule pairs a query predicate with its per-language replies.
type Rule struct {
	Name    string
	Match   func(q string) bool
	Replies map[string]string
}

type Responder struct {
	rules []Rule
}

func New() *Responder {
	return &Responder{rules: defaultRules}
}

// Resolve returns the canned reply for query in lang. The boolean is false
// when no rule matches and the caller should go to the network.
func (r *Responder) Resolve(query, lang string) (string, bool) {
	q := strings.ToLower(query)
	for _, rule := range r.rules {
		if rule.Match(q) {
			if reply, ok := rule.Replies[lang]; ok {
				return reply, true
			}
			return rule.Replies["en"], true
		}
	}
	return "", false
}

// Rules exposes the table in evaluation order so coverage can be audited.
func (r *Responder) Rules() []Rule {
	return r.rules
}

func anyOf(subs ...string) func(string) bool {
	return func(q string) bool {
		for _, s := range subs {
			if strings.Contains(q, s) {
				return true
			}
		}
		return false
	}
}

func exactOr(exact []string, subs ...string) func(string) bool {
	contains := anyOf(subs...)
	return func(q string) bool {
		for _, e := range exact {
			if q == e {
				return true
			}
		}
		return contains(q)
	}
}

func allOf(preds ...func(string) bool) func(string) bool {
	return func(q string) bool {
		for _, p := range preds {
			if !p(q) {
				return false
			}
		}
		return true
	}
}
