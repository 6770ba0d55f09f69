package dashboard

import (
	"context"
	"errors"
	"testing"

	"dropradar-backend/drops"
	"dropradar-backend/hype"
	"dropradar-backend/prefs"
)

type fakeHype struct {
	cards  []hype.ScoredCard
	source hype.Source
}

func (f fakeHype) Rank(limit int) ([]hype.ScoredCard, hype.Source) {
	if len(f.cards) > limit {
		return f.cards[:limit], f.source
	}
	return f.cards, f.source
}

type fakeDrops struct {
	entries []drops.Entry
	err     error
}

func (f fakeDrops) List(days int, category, region string) ([]drops.Entry, error) {
	return f.entries, f.err
}

type fakeIdentity struct {
	signedIn bool
}

func (f *fakeIdentity) Current() (Identity, bool) {
	if !f.signedIn {
		return Identity{}, false
	}
	return Identity{DisplayName: "Ash Ketchum", Handle: "ash"}, true
}

func newTestController(store prefs.Store, identity *fakeIdentity) *Controller {
	hypeSrc := fakeHype{
		cards:  []hype.ScoredCard{{ID: "sv3-125", Name: "Charizard ex", HypeScore: 97}},
		source: hype.SourceAPI,
	}
	dropSrc := fakeDrops{
		entries: []drops.Entry{{ID: "sv-151-restock", Title: "151 Restock", Date: "2025-06-05"}},
	}
	return New(hypeSrc, dropSrc, store, identity, 7)
}

func TestInitializeMergesAllSections(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemoryStore()
	store.Set(ctx, 7, prefs.KeyKeywords, []string{"Charizard"})
	store.Set(ctx, 7, prefs.KeyNotified, []string{"sv-151-restock"})

	ctrl := newTestController(store, &fakeIdentity{signedIn: true})
	state := ctrl.Initialize(ctx)

	if len(state.HypeCards) != 1 || state.HypeSource != hype.SourceAPI {
		t.Fatalf("hype section not populated: %+v", state)
	}
	if len(state.Drops) != 1 {
		t.Fatalf("drop section not populated: %+v", state)
	}
	if len(state.Keywords) != 1 || state.Keywords[0] != "Charizard" {
		t.Fatalf("watchlist not loaded: %v", state.Keywords)
	}
	if !ctrl.IsNotified("sv-151-restock") {
		t.Fatal("notify set not loaded")
	}
}

func TestInitializeDropFailureLeavesSectionEmpty(t *testing.T) {
	hypeSrc := fakeHype{cards: hype.FallbackCards(), source: hype.SourceFallback}
	dropSrc := fakeDrops{err: errors.New("calendar unreachable")}
	ctrl := New(hypeSrc, dropSrc, prefs.NewMemoryStore(), &fakeIdentity{}, 7)

	state := ctrl.Initialize(context.Background())

	if len(state.Drops) != 0 {
		t.Fatalf("expected empty drop section, got %d entries", len(state.Drops))
	}
	if len(state.HypeCards) != 10 || state.HypeSource != hype.SourceFallback {
		t.Fatal("drop failure must not affect the hype section")
	}
}

func TestAddKeywordTrimsAndDedupes(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemoryStore()
	ctrl := newTestController(store, &fakeIdentity{signedIn: true})

	ctrl.AddKeyword(ctx, "  Charizard  ")
	ctrl.AddKeyword(ctx, "Charizard")
	ctrl.AddKeyword(ctx, "   ")

	if got := ctrl.State().Keywords; len(got) != 1 || got[0] != "Charizard" {
		t.Fatalf("expected exactly one keyword Charizard, got %v", got)
	}

	saved, _ := store.Get(ctx, 7, prefs.KeyKeywords)
	if len(saved) != 1 || saved[0] != "Charizard" {
		t.Fatalf("expected persisted watchlist [Charizard], got %v", saved)
	}
}

func TestAddKeywordIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	ctrl := newTestController(prefs.NewMemoryStore(), &fakeIdentity{signedIn: true})

	ctrl.AddKeyword(ctx, "Charizard")
	ctrl.AddKeyword(ctx, "charizard")

	if got := ctrl.State().Keywords; len(got) != 2 {
		t.Fatalf("case-different keywords are distinct, got %v", got)
	}
}

func TestRemoveKeyword(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemoryStore()
	ctrl := newTestController(store, &fakeIdentity{signedIn: true})

	ctrl.AddKeyword(ctx, "Charizard")
	ctrl.AddKeyword(ctx, "Pikachu")
	ctrl.RemoveKeyword(ctx, "Charizard")

	if got := ctrl.State().Keywords; len(got) != 1 || got[0] != "Pikachu" {
		t.Fatalf("expected [Pikachu], got %v", got)
	}

	saved, _ := store.Get(ctx, 7, prefs.KeyKeywords)
	if len(saved) != 1 || saved[0] != "Pikachu" {
		t.Fatalf("expected persisted watchlist [Pikachu], got %v", saved)
	}
}

func TestToggleNotifySignedInFlipsImmediately(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemoryStore()
	ctrl := newTestController(store, &fakeIdentity{signedIn: true})

	if !ctrl.ToggleNotify(ctx, "sv-151-restock") {
		t.Fatal("signed-in toggle should apply immediately")
	}
	if !ctrl.IsNotified("sv-151-restock") {
		t.Fatal("drop should be in the notify set")
	}

	// Second toggle reverses the first.
	if !ctrl.ToggleNotify(ctx, "sv-151-restock") {
		t.Fatal("second toggle should apply immediately")
	}
	if ctrl.IsNotified("sv-151-restock") {
		t.Fatal("drop should be out of the notify set again")
	}

	saved, _ := store.Get(ctx, 7, prefs.KeyNotified)
	if len(saved) != 0 {
		t.Fatalf("expected empty persisted notify set, got %v", saved)
	}
}

func TestToggleNotifySignedOutParksUntilAuth(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemoryStore()
	identity := &fakeIdentity{signedIn: false}
	ctrl := newTestController(store, identity)

	if ctrl.ToggleNotify(ctx, "sv-151-restock") {
		t.Fatal("signed-out toggle must not apply")
	}
	if ctrl.Phase() != NotifyAwaitingAuth {
		t.Fatalf("expected AwaitingAuth phase, got %v", ctrl.Phase())
	}
	if ctrl.IsNotified("sv-151-restock") {
		t.Fatal("notify set must not change before sign-in")
	}
	if saved, _ := store.Get(ctx, 7, prefs.KeyNotified); len(saved) != 0 {
		t.Fatalf("nothing should persist before sign-in, got %v", saved)
	}

	// Sign-in completes and the parked toggle resumes.
	identity.signedIn = true
	if !ctrl.CompleteAuth(ctx) {
		t.Fatal("expected parked toggle to apply after sign-in")
	}
	if ctrl.Phase() != NotifyIdle {
		t.Fatal("phase should return to idle")
	}
	if !ctrl.IsNotified("sv-151-restock") {
		t.Fatal("parked toggle should now be applied")
	}
}

func TestToggleNotifyNewerToggleReplacesParked(t *testing.T) {
	ctx := context.Background()
	identity := &fakeIdentity{signedIn: false}
	ctrl := newTestController(prefs.NewMemoryStore(), identity)

	ctrl.ToggleNotify(ctx, "first-drop")
	ctrl.ToggleNotify(ctx, "second-drop")

	identity.signedIn = true
	ctrl.CompleteAuth(ctx)

	if ctrl.IsNotified("first-drop") {
		t.Fatal("replaced toggle must not apply")
	}
	if !ctrl.IsNotified("second-drop") {
		t.Fatal("latest parked toggle should apply")
	}
}

func TestAbandonAuthDiscardsParkedToggle(t *testing.T) {
	ctx := context.Background()
	identity := &fakeIdentity{signedIn: false}
	ctrl := newTestController(prefs.NewMemoryStore(), identity)

	ctrl.ToggleNotify(ctx, "sv-151-restock")
	ctrl.AbandonAuth()

	identity.signedIn = true
	if ctrl.CompleteAuth(ctx) {
		t.Fatal("abandoned toggle must not resume")
	}
	if ctrl.IsNotified("sv-151-restock") {
		t.Fatal("abandoned toggle must not apply")
	}
	if ctrl.Phase() != NotifyIdle {
		t.Fatal("phase should be idle after abandonment")
	}
}

func TestCompleteAuthWithoutIdentityStaysParked(t *testing.T) {
	ctx := context.Background()
	identity := &fakeIdentity{signedIn: false}
	ctrl := newTestController(prefs.NewMemoryStore(), identity)

	ctrl.ToggleNotify(ctx, "sv-151-restock")

	if ctrl.CompleteAuth(ctx) {
		t.Fatal("auth completion without an identity must not apply the toggle")
	}
	if ctrl.Phase() != NotifyAwaitingAuth {
		t.Fatal("toggle should stay parked")
	}
}
