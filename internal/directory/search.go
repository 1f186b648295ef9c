package directory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"

	"empdir/internal/domain"
)

const maxSuggestions = 3

// SetQuery updates the pending search text
func (s *Session) SetQuery(query string) {
	s.query = query
}

// Search replaces the search projection with the directory records whose
// name contains query, ignoring case, in directory order. The projection is
// a copy: later deletes do not touch it. The pending query is cleared.
func (s *Session) Search(query string) []domain.Employee {
	fold := cases.Fold()
	needle := fold.String(query)

	results := make([]domain.Employee, 0)
	for _, e := range s.employees {
		if strings.Contains(fold.String(e.Name), needle) {
			results = append(results, e)
		}
	}
	s.results = results
	s.query = ""

	log.WithFields(log.Fields{"query": query, "matches": len(results)}).Debug("Search completed")

	if len(results) == 0 {
		s.notify(s.noResultMessage(query))
	}
	s.publish(domain.SearchCompletedEvent{Query: query, Matches: len(results)})
	s.render()
	return s.Results()
}

// SearchPending runs Search with the pending query text
func (s *Session) SearchPending() []domain.Employee {
	return s.Search(s.query)
}

// ClearSearch empties the search projection and the pending query
func (s *Session) ClearSearch() {
	s.results = nil
	s.query = ""
	s.publish(domain.SearchClearedEvent{})
	s.render()
}

func (s *Session) noResultMessage(query string) string {
	suggestions := s.suggest(query)
	if len(suggestions) == 0 {
		return MsgNoSearchResults
	}
	return fmt.Sprintf("%s. Did you mean: %s?", MsgNoSearchResults, strings.Join(suggestions, ", "))
}

// suggest returns up to maxSuggestions names that fuzzily match query
func (s *Session) suggest(query string) []string {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	names := make([]string, len(s.employees))
	for i, e := range s.employees {
		names[i] = e.Name
	}
	ranks := fuzzy.RankFindFold(query, names)
	sort.Sort(ranks)

	out := make([]string, 0, maxSuggestions)
	for _, r := range ranks {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, r.Target)
	}
	return out
}
