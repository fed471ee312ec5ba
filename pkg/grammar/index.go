package grammar

import (
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// SentenceIndex accumulates generated sentences in a patricia trie so a
// produced corpus can be queried by prefix. Safe for concurrent use.
type SentenceIndex struct {
	trie  *patricia.Trie
	count int
	mu    sync.RWMutex
}

// NewSentenceIndex returns an empty index.
func NewSentenceIndex() *SentenceIndex {
	return &SentenceIndex{
		trie: patricia.NewTrie(),
	}
}

// Add inserts sentences under the given language identifier. Sentences
// already present keep their original language item.
func (ix *SentenceIndex) Add(languageID string, sentences []string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	added := 0
	for _, sentence := range sentences {
		if sentence == "" {
			continue
		}
		if ix.trie.Insert(patricia.Prefix(sentence), languageID) {
			added++
		}
	}
	ix.count += added
	log.Debugf("Indexed %d new sentence(s) for %q", added, languageID)
}

// Search returns up to limit indexed sentences starting with prefix, in
// lexicographic order. A non-positive limit returns every match.
func (ix *SentenceIndex) Search(prefix string, limit int) []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var results []string
	err := ix.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		results = append(results, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error searching sentence index: %v", err)
		return nil
	}

	sort.Strings(results)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Language returns the language identifier a sentence was indexed under.
func (ix *SentenceIndex) Language(sentence string) (string, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	item := ix.trie.Get(patricia.Prefix(sentence))
	if item == nil {
		return "", false
	}
	return item.(string), true
}

// Len returns the number of distinct sentences held by the index.
func (ix *SentenceIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.count
}

// Stats reports basic counters for diagnostics.
func (ix *SentenceIndex) Stats() map[string]int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return map[string]int{
		"sentences": ix.count,
	}
}
