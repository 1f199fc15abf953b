// Package advisor selects canned farming advice for a user's message.
// Selection is a pure function of the farm profile and the text.
package advisor

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"farm-advisor/domain"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

type Reply struct {
	Rule string
	Text string
}

type Responder struct {
	matcher *goahocorasick.Machine
	rules   []Rule
	// priority maps a normalized keyword to the index of the first rule declaring it.
	priority map[string]int
}

// NewResponder builds one automaton over every rule keyword.
func NewResponder(rules []Rule) (*Responder, error) {
	priority := make(map[string]int)
	for i, rule := range rules {
		if rule.Render == nil {
			return nil, fmt.Errorf("rule %q has no template", rule.Name)
		}
		for _, keyword := range rule.Keywords {
			k := string(normalize(keyword))
			if k == "" {
				continue
			}
			if _, seen := priority[k]; !seen {
				priority[k] = i
			}
		}
	}

	r := &Responder{rules: rules, priority: priority}
	if len(priority) == 0 {
		return r, nil
	}

	keywords := lo.Keys(priority)
	slices.Sort(keywords)
	patterns := lo.Map(keywords, func(k string, _ int) []rune { return []rune(k) })

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	r.matcher = m
	return r, nil
}

// Respond returns the advice of the highest priority rule whose keyword occurs
// in text, or the general fallback when nothing matches.
func (r *Responder) Respond(profile domain.FarmProfile, text string) Reply {
	if idx, ok := r.Match(text); ok {
		rule := r.rules[idx]
		return Reply{Rule: rule.Name, Text: rule.Render(profile)}
	}
	return Reply{Rule: FallbackRule, Text: fallback(profile)}
}

// Match returns the index of the winning rule, independent of where in the
// text each keyword appears.
func (r *Responder) Match(text string) (int, bool) {
	content := normalize(text)
	if r.matcher == nil || len(content) == 0 {
		return 0, false
	}
	terms := r.matcher.MultiPatternSearch(content, false)
	if len(terms) == 0 {
		return 0, false
	}
	best := len(r.rules)
	for _, term := range terms {
		if idx, ok := r.priority[string(term.Word)]; ok && idx < best {
			best = idx
		}
	}
	return best, best < len(r.rules)
}

func (r *Responder) Rules() []string {
	return lo.Map(r.rules, func(rule Rule, _ int) string { return rule.Name })
}

func normalize(input string) []rune {
	return []rune(strings.Map(unicode.ToLower, input))
}
