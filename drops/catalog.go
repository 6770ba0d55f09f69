package drops

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Entry is one scheduled release on the drop calendar. Region "Global"
// matches any requested region filter.
type Entry struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Title     string `json:"title"`
	Platform  string `json:"platform"`
	Type      string `json:"type"` // "New Set", "Limited", "Restock", "Regular"
	Hot       bool   `json:"hot"`
	Category  string `json:"category"`
	Region    string `json:"region"`
	MSRP      string `json:"msrp,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Catalog serves the seeded release schedule. Seed dates are fixed offsets
// from the current day, so the calendar always looks a couple weeks ahead.
type Catalog struct {
	now  func() time.Time
	seed func(today time.Time) []Entry
}

func NewCatalog() *Catalog {
	return &Catalog{now: time.Now, seed: seedEntries}
}

// List returns entries whose date falls within [today, today+days], both ends
// inclusive, optionally narrowed by category and region, sorted by date
// ascending. Pass "all" to skip a filter.
func (c *Catalog) List(days int, category, region string) ([]Entry, error) {
	now := c.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today.AddDate(0, 0, days)

	var out []Entry
	for _, entry := range c.seed(today) {
		date, err := time.Parse(dateLayout, entry.Date)
		if err != nil {
			return nil, fmt.Errorf("entry %s has invalid date %q: %w", entry.ID, entry.Date, err)
		}
		if date.Before(today) || date.After(end) {
			continue
		}
		if category != "all" && entry.Category != category {
			continue
		}
		if region != "all" && entry.Region != region && entry.Region != "Global" {
			continue
		}
		out = append(out, entry)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// Create assigns a fresh id and creation timestamp to a submitted entry and
// returns it. Persisting the entry is an administrative concern handled
// elsewhere; created entries do not join the queryable catalog.
func (c *Catalog) Create(partial Entry) Entry {
	partial.ID = uuid.NewString()
	partial.CreatedAt = c.now().UTC().Format(time.RFC3339)
	return partial
}

func seedEntries(today time.Time) []Entry {
	date := func(daysFromNow int) string {
		return today.AddDate(0, 0, daysFromNow).Format(dateLayout)
	}

	return []Entry{
		{
			ID:       "prismatic-evolutions",
			Date:     date(2),
			Title:    "Pokemon TCG: Prismatic Evolutions",
			Platform: "Pokemon Center",
			Type:     "New Set",
			Hot:      true,
			Category: "pokemon",
			Region:   "Global",
		},
		{
			ID:       "charizard-premium-collection",
			Date:     date(4),
			Title:    "Charizard ex Premium Collection",
			Platform: "Target / Walmart / Amazon",
			Type:     "Limited",
			Hot:      true,
			Category: "pokemon",
			Region:   "NA",
			MSRP:     "$49.99",
		},
		{
			ID:       "journey-together-booster",
			Date:     date(5),
			Title:    "Journey Together Booster Box",
			Platform: "Pokemon Center Japan",
			Type:     "New Set",
			Hot:      false,
			Category: "pokemon",
			Region:   "JP",
			MSRP:     "¥5,400",
		},
		{
			ID:       "sv-151-restock",
			Date:     date(7),
			Title:    "Scarlet & Violet 151 Restock",
			Platform: "Amazon / GameStop",
			Type:     "Restock",
			Hot:      true,
			Category: "pokemon",
			Region:   "Global",
			Notes:    "ETB, Booster Bundle included",
		},
		{
			ID:       "crown-zenith-etb",
			Date:     date(9),
			Title:    "Crown Zenith Elite Trainer Box",
			Platform: "Best Buy",
			Type:     "Restock",
			Hot:      false,
			Category: "pokemon",
			Region:   "NA",
		},
		{
			ID:       "pikachu-vmax-figure",
			Date:     date(10),
			Title:    "Pikachu VMAX Figure Collection",
			Platform: "Pokemon Center",
			Type:     "Limited",
			Hot:      true,
			Category: "pokemon",
			Region:   "Global",
			MSRP:     "$34.99",
		},
		{
			ID:       "temporal-forces-booster",
			Date:     date(12),
			Title:    "Temporal Forces Booster Box",
			Platform: "Multiple Retailers",
			Type:     "Regular",
			Hot:      false,
			Category: "pokemon",
			Region:   "Global",
		},
		{
			ID:       "paldean-fates-restock",
			Date:     date(14),
			Title:    "Paldean Fates ETB Restock",
			Platform: "Costco / Sam's Club",
			Type:     "Restock",
			Hot:      true,
			Category: "pokemon",
			Region:   "NA",
			Notes:    "Mass restock expected",
		},
	}
}
