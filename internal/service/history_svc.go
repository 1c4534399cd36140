package service

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/tenthin/youtube-analyzer/internal/model"
	"github.com/tenthin/youtube-analyzer/internal/store"
)

const (
	// cacheKey is the single store key holding the whole cache document.
	cacheKey = "yt:analysis-cache"
	// cacheTTL is the freshness window; older entries are treated as
	// misses but left in place until overwritten.
	cacheTTL = 24 * time.Hour
)

// cacheDocument is the persisted shape: normalized URL → entry.
type cacheDocument map[string]model.CacheEntry

// HistoryService manages the TTL-bounded result cache and its derived
// history view over an opaque key-value store.
//
// Every mutation is a whole-document read-modify-write. The store's
// individual operations are atomic but the compound update is not, so
// two writers racing on the same document lose one update (last writer
// wins). That is an accepted property of the design, matching the
// original single-client assumption, not a bug to paper over here.
type HistoryService struct {
	store store.Store
	now   func() time.Time
}

func NewHistoryService(st store.Store) *HistoryService {
	return &HistoryService{store: st, now: time.Now}
}

// Lookup returns the fresh cache entry for a normalized URL, or nil on
// a miss. A stale entry is reported as a miss but not deleted; the
// next successful analysis overwrites it.
func (s *HistoryService) Lookup(ctx context.Context, url string) (*model.CacheEntry, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	entry, ok := doc[url]
	if !ok {
		return nil, nil
	}
	if s.now().UnixMilli()-entry.Timestamp > cacheTTL.Milliseconds() {
		return nil, nil
	}
	return &entry, nil
}

// Put inserts or overwrites the entry for a normalized URL with a
// fresh timestamp.
func (s *HistoryService) Put(ctx context.Context, url string, result model.AnalysisResult, meta model.EntryMeta) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	doc[url] = model.CacheEntry{
		Result:    result,
		Timestamp: s.now().UnixMilli(),
		Meta:      meta,
	}
	return s.save(ctx, doc)
}

// Remove deletes one entry. Removing an absent key is a no-op.
func (s *HistoryService) Remove(ctx context.Context, url string) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := doc[url]; !ok {
		return nil
	}
	delete(doc, url)
	return s.save(ctx, doc)
}

// Clear empties the cache document.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.store.Remove(ctx, cacheKey)
}

// History projects the cache document into the ordered history view,
// newest first. Ties on equal timestamps break by URL so the order is
// deterministic. The view is recomputed from the document on every
// call; it is never stored.
func (s *HistoryService) History(ctx context.Context) ([]model.HistoryEntry, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]model.HistoryEntry, 0, len(doc))
	for url, e := range doc {
		entries = append(entries, model.HistoryEntry{
			URL:       url,
			Title:     e.Meta.Title,
			Thumbnail: e.Meta.Thumbnail,
			Type:      e.Meta.Type,
			Timestamp: e.Timestamp,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Timestamp != entries[j].Timestamp {
			return entries[i].Timestamp > entries[j].Timestamp
		}
		return entries[i].URL < entries[j].URL
	})
	return entries, nil
}

func (s *HistoryService) load(ctx context.Context) (cacheDocument, error) {
	raw, ok, err := s.store.Get(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return cacheDocument{}, nil
	}
	var doc cacheDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		// A corrupt document would otherwise wedge every request;
		// start over and let analyses repopulate it.
		log.Printf("history: corrupt cache document, resetting: %v", err)
		return cacheDocument{}, nil
	}
	return doc, nil
}

func (s *HistoryService) save(ctx context.Context, doc cacheDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, cacheKey, string(raw))
}
