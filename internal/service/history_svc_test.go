package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tenthin/youtube-analyzer/internal/model"
	"github.com/tenthin/youtube-analyzer/internal/store"
)

func newTestHistory(t *testing.T) (*HistoryService, *store.MemoryStore, *time.Time) {
	t.Helper()
	st := store.NewMemoryStore()
	svc := NewHistoryService(st)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, st, &now
}

func videoResult(title string) model.AnalysisResult {
	return model.AnalysisResult{
		Type:          model.ResultTypeVideo,
		Video:         &model.VideoEvidence{Title: title},
		VideoAnalysis: &model.VideoJudgment{Summary: "ok"},
	}
}

func TestHistory_PutAndLookup(t *testing.T) {
	svc, _, _ := newTestHistory(t)
	ctx := context.Background()

	url := "https://www.youtube.com/watch?v=abc"
	if err := svc.Put(ctx, url, videoResult("t"), model.EntryMeta{Title: "t", Type: model.ResultTypeVideo}); err != nil {
		t.Fatalf("put: %v", err)
	}

	entry, err := svc.Lookup(ctx, url)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if entry == nil {
		t.Fatal("expected a cache hit")
	}
	if entry.Result.Video.Title != "t" {
		t.Errorf("title = %q, want t", entry.Result.Video.Title)
	}
}

func TestHistory_LookupMiss(t *testing.T) {
	svc, _, _ := newTestHistory(t)

	entry, err := svc.Lookup(context.Background(), "https://www.youtube.com/watch?v=nope")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if entry != nil {
		t.Errorf("expected a miss, got %+v", entry)
	}
}

// An entry older than the freshness window is a miss, but it stays in
// the stored document until overwritten.
func TestHistory_StaleEntryIsMissButKept(t *testing.T) {
	svc, st, now := newTestHistory(t)
	ctx := context.Background()

	url := "https://www.youtube.com/watch?v=abc"
	if err := svc.Put(ctx, url, videoResult("t"), model.EntryMeta{}); err != nil {
		t.Fatalf("put: %v", err)
	}

	*now = now.Add(cacheTTL + time.Minute)

	entry, err := svc.Lookup(ctx, url)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if entry != nil {
		t.Error("stale entry should be a miss")
	}

	raw, ok, _ := st.Get(ctx, cacheKey)
	if !ok || !strings.Contains(raw, url) {
		t.Error("stale entry should remain in the stored document")
	}
}

func TestHistory_EntryFreshAtExactTTL(t *testing.T) {
	svc, _, now := newTestHistory(t)
	ctx := context.Background()

	url := "https://www.youtube.com/watch?v=abc"
	if err := svc.Put(ctx, url, videoResult("t"), model.EntryMeta{}); err != nil {
		t.Fatalf("put: %v", err)
	}

	*now = now.Add(cacheTTL)

	entry, err := svc.Lookup(ctx, url)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if entry == nil {
		t.Error("entry aged exactly to the window boundary should still hit")
	}
}

func TestHistory_PutOverwritesAndRefreshes(t *testing.T) {
	svc, _, now := newTestHistory(t)
	ctx := context.Background()

	url := "https://www.youtube.com/watch?v=abc"
	if err := svc.Put(ctx, url, videoResult("old"), model.EntryMeta{}); err != nil {
		t.Fatalf("put: %v", err)
	}

	*now = now.Add(2 * time.Hour)
	if err := svc.Put(ctx, url, videoResult("new"), model.EntryMeta{}); err != nil {
		t.Fatalf("put: %v", err)
	}

	entry, _ := svc.Lookup(ctx, url)
	if entry == nil || entry.Result.Video.Title != "new" {
		t.Fatalf("entry = %+v, want the overwritten result", entry)
	}
	if entry.Timestamp != now.UnixMilli() {
		t.Errorf("timestamp = %d, want refreshed to %d", entry.Timestamp, now.UnixMilli())
	}
}

func TestHistory_RemoveAbsentIsNoop(t *testing.T) {
	svc, _, _ := newTestHistory(t)
	if err := svc.Remove(context.Background(), "https://www.youtube.com/watch?v=ghost"); err != nil {
		t.Errorf("remove of absent key: %v", err)
	}
}

func TestHistory_RemoveThenLookupMisses(t *testing.T) {
	svc, _, _ := newTestHistory(t)
	ctx := context.Background()

	url := "https://www.youtube.com/watch?v=abc"
	svc.Put(ctx, url, videoResult("t"), model.EntryMeta{})
	if err := svc.Remove(ctx, url); err != nil {
		t.Fatalf("remove: %v", err)
	}

	entry, _ := svc.Lookup(ctx, url)
	if entry != nil {
		t.Error("removed entry should not hit")
	}
}

func TestHistory_Clear(t *testing.T) {
	svc, _, _ := newTestHistory(t)
	ctx := context.Background()

	svc.Put(ctx, "https://www.youtube.com/watch?v=a", videoResult("a"), model.EntryMeta{})
	svc.Put(ctx, "https://www.youtube.com/watch?v=b", videoResult("b"), model.EntryMeta{})
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	entries, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("history after clear = %v, want empty", entries)
	}
}

func TestHistory_OrderedNewestFirst(t *testing.T) {
	svc, _, now := newTestHistory(t)
	ctx := context.Background()

	svc.Put(ctx, "https://www.youtube.com/watch?v=old", videoResult("old"), model.EntryMeta{Title: "old"})
	*now = now.Add(time.Hour)
	svc.Put(ctx, "https://www.youtube.com/watch?v=new", videoResult("new"), model.EntryMeta{Title: "new"})

	entries, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Title != "new" || entries[1].Title != "old" {
		t.Errorf("order = [%s %s], want newest first", entries[0].Title, entries[1].Title)
	}
}

func TestHistory_TiesBreakByURL(t *testing.T) {
	svc, _, _ := newTestHistory(t)
	ctx := context.Background()

	// Same frozen clock for both puts: identical timestamps.
	svc.Put(ctx, "https://www.youtube.com/watch?v=zzz", videoResult("z"), model.EntryMeta{})
	svc.Put(ctx, "https://www.youtube.com/watch?v=aaa", videoResult("a"), model.EntryMeta{})

	entries, _ := svc.History(ctx)
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].URL >= entries[1].URL {
		t.Errorf("equal timestamps should order by URL ascending, got [%s %s]", entries[0].URL, entries[1].URL)
	}
}

// A corrupt document must not wedge the service; it reads as empty and
// the next write starts a fresh document.
func TestHistory_CorruptDocumentResets(t *testing.T) {
	svc, st, _ := newTestHistory(t)
	ctx := context.Background()

	st.Set(ctx, cacheKey, "{not valid json")

	entries, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("history over corrupt doc: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %v, want empty", entries)
	}

	if err := svc.Put(ctx, "https://www.youtube.com/watch?v=abc", videoResult("t"), model.EntryMeta{}); err != nil {
		t.Fatalf("put after corruption: %v", err)
	}
	entry, _ := svc.Lookup(ctx, "https://www.youtube.com/watch?v=abc")
	if entry == nil {
		t.Error("put after corruption should repopulate the document")
	}
}
