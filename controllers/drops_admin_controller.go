package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"dropradar-backend/drops"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
)

type releaseCacheEntry struct {
	FetchedAt  time.Time
	Candidates []drops.Entry
}

var (
	relCacheMu sync.Mutex
	relCache   releaseCacheEntry
)

const relCacheTTL = 10 * time.Minute

var (
	reSetSlug     = regexp.MustCompile(`/sets/([A-Za-z0-9-]+)`)
	reReleaseDate = regexp.MustCompile(`([A-Z][a-z]+ \d{1,2},? \d{4})`)
)

// GET /api/admin/drops/candidates?days=60
// Scrapes the upstream set-release calendar into candidate drop entries for
// admin review. No DB writes; publishing goes through the CSV importer.
func GetDropCandidates(c *fiber.Ctx) error {
	days := 60
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "days must be a positive integer"})
		}
		days = parsed
	}

	candidates, err := getOrFetchReleaseCandidates()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch release calendar"})
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today.AddDate(0, 0, days)

	out := make([]drops.Entry, 0, len(candidates))
	for _, cand := range candidates {
		date, err := time.Parse("2006-01-02", cand.Date)
		if err != nil {
			continue
		}
		if date.Before(today) || date.After(end) {
			continue
		}
		out = append(out, cand)
	}

	return c.JSON(fiber.Map{
		"candidates": out,
		"totalCount": len(out),
		"windowDays": days,
	})
}

func getOrFetchReleaseCandidates() ([]drops.Entry, error) {
	relCacheMu.Lock()
	defer relCacheMu.Unlock()

	if time.Since(relCache.FetchedAt) < relCacheTTL && len(relCache.Candidates) > 0 {
		return relCache.Candidates, nil
	}

	candidates, err := scrapeUpcomingSets()
	if err != nil {
		return nil, err
	}

	relCache = releaseCacheEntry{FetchedAt: time.Now(), Candidates: candidates}
	return candidates, nil
}

func scrapeUpcomingSets() ([]drops.Entry, error) {
	url := "https://www.pokellector.com/sets"

	client := &http.Client{Timeout: 12 * time.Second}
	req, _ := http.NewRequest("GET", url, nil)
	req.Header.Set("User-Agent", "dropradar-admin-resolver/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("non-200 from release calendar")
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	out := make([]drops.Entry, 0, 32)
	seen := map[string]bool{}

	// Set links look like: /sets/phantasmal-flames
	doc.Find(`a[href*="/sets/"]`).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		m := reSetSlug.FindStringSubmatch(href)
		if len(m) != 2 {
			return
		}
		slug := m[1]
		if seen[slug] {
			return
		}

		title := strings.TrimSpace(a.Text())
		if title == "" {
			return
		}

		date := findReleaseDateNearAnchor(a)
		if date == "" {
			return
		}

		seen[slug] = true
		out = append(out, drops.Entry{
			ID:       slug,
			Date:     date,
			Title:    title,
			Platform: "Multiple Retailers",
			Type:     "New Set",
			Category: "pokemon",
			Region:   "Global",
		})
	})

	if len(out) == 0 {
		return nil, errors.New("no upcoming sets parsed from release calendar")
	}

	return out, nil
}

// The release date usually sits in a sibling or parent block next to the set
// link. Returns YYYY-MM-DD, or "" if nothing nearby parses as a date.
func findReleaseDateNearAnchor(a *goquery.Selection) string {
	if d := parseReleaseDate(a.Parent().Text()); d != "" {
		return d
	}

	next := a
	for i := 0; i < 4; i++ {
		next = next.Next()
		if next == nil || next.Length() == 0 {
			break
		}
		if d := parseReleaseDate(next.Text()); d != "" {
			return d
		}
	}

	if gp := a.Parent().Parent(); gp != nil {
		if d := parseReleaseDate(gp.Text()); d != "" {
			return d
		}
	}

	return ""
}

func parseReleaseDate(text string) string {
	m := reReleaseDate.FindString(text)
	if m == "" {
		return ""
	}
	for _, layout := range []string{"January 2, 2006", "January 2 2006", "Jan 2, 2006", "Jan 2 2006"} {
		if date, err := time.Parse(layout, m); err == nil {
			return date.Format("2006-01-02")
		}
	}
	return ""
}
