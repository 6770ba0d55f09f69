package hype

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func testRanker(baseURL string) *Ranker {
	r := NewRanker("test-key")
	r.baseURL = baseURL
	r.rng = rand.New(rand.NewSource(1))
	return r
}

func TestRankReturnsFallbackOnFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cards, source := testRanker(server.URL).Rank(10)

	if source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", source)
	}
	if len(cards) != 10 {
		t.Fatalf("expected 10 fallback entries, got %d", len(cards))
	}
	if cards[0].ID != "sv3-125" || cards[0].HypeScore != 97 {
		t.Fatalf("fallback list should be the baked-in dataset, got first entry %+v", cards[0])
	}
}

func TestRankReturnsFallbackOnMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, source := testRanker(server.URL).Rank(10)
	if source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", source)
	}
}

func TestRankSortsAndTruncates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "test-key" {
			t.Errorf("missing API key header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [
			{"id": "a-1", "name": "Bulbasaur", "rarity": "Common", "set": {"name": "Base", "releaseDate": "2020/01/01"}},
			{"id": "a-2", "name": "Charizard ex", "rarity": "Special Art Rare", "set": {"name": "Obsidian Flames", "releaseDate": "2025/01/01"},
			 "tcgplayer": {"url": "http://example.com", "prices": {"holofoil": {"market": 150}}}},
			{"id": "a-3", "name": "Squirtle", "rarity": "Common", "set": {"name": "Base", "releaseDate": "2020/01/01"}},
			{"id": "a-4", "name": "Mewtwo", "rarity": "Rare Holo", "set": {"name": "Base", "releaseDate": "2020/01/01"}}
		]}`))
	}))
	defer server.Close()

	cards, source := testRanker(server.URL).Rank(3)

	if source != SourceAPI {
		t.Fatalf("expected api source, got %q", source)
	}
	if len(cards) != 3 {
		t.Fatalf("expected limit of 3 entries, got %d", len(cards))
	}
	for i := 1; i < len(cards); i++ {
		if cards[i].HypeScore > cards[i-1].HypeScore {
			t.Fatalf("output not sorted descending at index %d: %d > %d", i, cards[i].HypeScore, cards[i-1].HypeScore)
		}
	}
	if cards[0].ID != "a-2" {
		t.Fatalf("expected Charizard ranked first, got %s", cards[0].ID)
	}
}

func TestRankKeepsFetchOrderOnTies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [
			{"id": "tie-1", "name": "Bulbasaur", "rarity": "Common", "set": {"name": "Base", "releaseDate": "2020/01/01"}},
			{"id": "tie-2", "name": "Squirtle", "rarity": "Common", "set": {"name": "Base", "releaseDate": "2020/01/01"}},
			{"id": "tie-3", "name": "Caterpie", "rarity": "Common", "set": {"name": "Base", "releaseDate": "2020/01/01"}}
		]}`))
	}))
	defer server.Close()

	cards, _ := testRanker(server.URL).Rank(10)

	want := []string{"tie-1", "tie-2", "tie-3"}
	for i, id := range want {
		if cards[i].ID != id {
			t.Fatalf("tie order not stable: position %d got %s, want %s", i, cards[i].ID, id)
		}
	}
}

func TestRankEmptyUpstreamListStaysLive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	cards, source := testRanker(server.URL).Rank(10)

	if source != SourceAPI {
		t.Fatalf("an empty candidate list is live data, got source %q", source)
	}
	if len(cards) != 0 {
		t.Fatalf("expected empty ranking, got %d cards", len(cards))
	}
}

func TestRankSharedAcrossGoroutines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [
			{"id": "a-1", "name": "Eevee", "rarity": "Common", "set": {"name": "Base", "releaseDate": "2020/01/01"}}
		]}`))
	}))
	defer server.Close()

	// One Ranker serves all request goroutines; run under -race.
	r := testRanker(server.URL)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cards, source := r.Rank(10)
			if source != SourceAPI || len(cards) != 1 {
				t.Errorf("concurrent rank returned source %q with %d cards", source, len(cards))
			}
		}()
	}
	wg.Wait()
}

func TestScoreCardPriceChangeRange(t *testing.T) {
	r := testRanker("http://unused")

	for i := 0; i < 100; i++ {
		card := r.scoreCard(makeCard("Eevee", "Common", "2020/01/01", 0, 0))
		pc := card.PriceChange
		if len(pc) < 3 || pc[0] != '+' || pc[len(pc)-1] != '%' {
			t.Fatalf("malformed price change %q", pc)
		}
	}
}
