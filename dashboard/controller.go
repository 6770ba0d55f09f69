package dashboard

import (
	"context"
	"log"
	"strings"
	"sync"

	"dropradar-backend/drops"
	"dropradar-backend/hype"
	"dropradar-backend/prefs"
)

// Identity is what the external identity provider hands us for a signed-in
// caller.
type Identity struct {
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// IdentityProvider reports the current caller's identity, if any. Its absence
// is the only gate checked before a notify toggle.
type IdentityProvider interface {
	Current() (Identity, bool)
}

type HypeSource interface {
	Rank(limit int) ([]hype.ScoredCard, hype.Source)
}

type DropSource interface {
	List(days int, category, region string) ([]drops.Entry, error)
}

// NotifyPhase tracks a notify toggle that is waiting on sign-in.
type NotifyPhase int

const (
	NotifyIdle NotifyPhase = iota
	NotifyAwaitingAuth
)

const initialDropWindowDays = 14

// State is the merged working state of one dashboard session.
type State struct {
	HypeCards  []hype.ScoredCard `json:"hypeCards"`
	HypeSource hype.Source       `json:"hypeSource"`
	Drops      []drops.Entry     `json:"drops"`
	Keywords   []string          `json:"keywords"`
	Notified   []string          `json:"notified"`
}

// Controller re-derives a session's dashboard from the preference store and
// fresh fetches. It holds no state that outlives the session, and all
// preference writes are fire-and-forget.
type Controller struct {
	hype     HypeSource
	drops    DropSource
	store    prefs.Store
	identity IdentityProvider
	userID   int

	state         State
	prefsLoaded   bool
	phase         NotifyPhase
	pendingDropID string
}

func New(hypeSrc HypeSource, dropSrc DropSource, store prefs.Store, identity IdentityProvider, userID int) *Controller {
	return &Controller{
		hype:     hypeSrc,
		drops:    dropSrc,
		store:    store,
		identity: identity,
		userID:   userID,
	}
}

// Initialize loads the hype list and drop calendar concurrently, then merges
// in persisted preferences. A failed drop fetch leaves that section empty
// without touching the other; the hype source degrades internally and never
// fails.
func (c *Controller) Initialize(ctx context.Context) State {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		c.state.HypeCards, c.state.HypeSource = c.hype.Rank(hype.DefaultLimit)
	}()

	go func() {
		defer wg.Done()
		entries, err := c.drops.List(initialDropWindowDays, "all", "all")
		if err != nil {
			log.Println("drop calendar load failed:", err)
			return
		}
		c.state.Drops = entries
	}()

	wg.Wait()
	c.loadPreferences(ctx)
	return c.state
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Phase() NotifyPhase {
	return c.phase
}

// AddKeyword appends a trimmed keyword to the watchlist and persists it.
// Empty input and exact duplicates are no-ops.
func (c *Controller) AddKeyword(ctx context.Context, keyword string) {
	c.loadPreferences(ctx)

	keyword = strings.TrimSpace(keyword)
	if keyword == "" || containsString(c.state.Keywords, keyword) {
		return
	}

	c.state.Keywords = append(c.state.Keywords, keyword)
	c.persist(ctx, prefs.KeyKeywords, c.state.Keywords)
}

// RemoveKeyword drops an exact-match keyword from the watchlist and persists.
func (c *Controller) RemoveKeyword(ctx context.Context, keyword string) {
	c.loadPreferences(ctx)

	kept := c.state.Keywords[:0]
	for _, kw := range c.state.Keywords {
		if kw != keyword {
			kept = append(kept, kw)
		}
	}
	c.state.Keywords = kept
	c.persist(ctx, prefs.KeyKeywords, c.state.Keywords)
}

// ToggleNotify flips notify membership for a drop. When the caller is not
// signed in, the toggle is parked and the caller must surface a sign-in
// prompt; the returned bool reports whether the toggle was applied.
func (c *Controller) ToggleNotify(ctx context.Context, dropID string) bool {
	c.loadPreferences(ctx)

	if _, ok := c.identity.Current(); !ok {
		// A newer toggle replaces any earlier parked one.
		c.pendingDropID = dropID
		c.phase = NotifyAwaitingAuth
		return false
	}

	c.applyToggle(ctx, dropID)
	return true
}

// CompleteAuth resumes a parked notify toggle after sign-in finished. It
// reports whether the pending toggle was applied; if the provider still has
// no identity the toggle stays parked.
func (c *Controller) CompleteAuth(ctx context.Context) bool {
	if c.phase != NotifyAwaitingAuth {
		return false
	}
	if _, ok := c.identity.Current(); !ok {
		return false
	}

	c.applyToggle(ctx, c.pendingDropID)
	c.pendingDropID = ""
	c.phase = NotifyIdle
	return true
}

// AbandonAuth discards a parked toggle when the sign-in prompt is dismissed.
func (c *Controller) AbandonAuth() {
	c.pendingDropID = ""
	c.phase = NotifyIdle
}

// IsNotified reports notify membership for a drop id.
func (c *Controller) IsNotified(dropID string) bool {
	return containsString(c.state.Notified, dropID)
}

func (c *Controller) applyToggle(ctx context.Context, dropID string) {
	if containsString(c.state.Notified, dropID) {
		kept := c.state.Notified[:0]
		for _, id := range c.state.Notified {
			if id != dropID {
				kept = append(kept, id)
			}
		}
		c.state.Notified = kept
	} else {
		c.state.Notified = append(c.state.Notified, dropID)
	}
	c.persist(ctx, prefs.KeyNotified, c.state.Notified)
}

func (c *Controller) loadPreferences(ctx context.Context) {
	if c.prefsLoaded {
		return
	}
	c.prefsLoaded = true

	keywords, err := c.store.Get(ctx, c.userID, prefs.KeyKeywords)
	if err != nil {
		log.Println("loading watchlist failed, starting empty:", err)
		keywords = nil
	}
	notified, err := c.store.Get(ctx, c.userID, prefs.KeyNotified)
	if err != nil {
		log.Println("loading notify list failed, starting empty:", err)
		notified = nil
	}

	c.state.Keywords = keywords
	c.state.Notified = notified
}

// Preference writes are last-writer-wins; a failed write is logged and the
// in-memory state stands.
func (c *Controller) persist(ctx context.Context, key string, values []string) {
	if err := c.store.Set(ctx, c.userID, key, values); err != nil {
		log.Printf("persisting %s failed: %v", key, err)
	}
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
