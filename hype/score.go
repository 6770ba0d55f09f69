package hype

import (
	"strconv"
	"strings"
)

// Pokemon that reliably move the market. The reason generator uses a shorter
// roster on purpose; keep the two lists separate.
var scoringRoster = []string{"charizard", "pikachu", "mewtwo", "mew", "rayquaza", "umbreon", "gengar"}

var reasonRoster = []string{"charizard", "pikachu", "mewtwo", "mew", "rayquaza"}

// CalculateHypeScore derives a 0-100 hype score for one card from its market
// price, rarity, set recency, and name. Missing fields degrade to neutral
// defaults; this never fails.
func CalculateHypeScore(card CardRecord) int {
	score := 50

	price := card.MarketPrice()
	switch {
	case price > 100:
		score += 30
	case price > 50:
		score += 20
	case price > 20:
		score += 15
	case price > 10:
		score += 10
	}

	rarity := strings.ToLower(card.Rarity)
	switch {
	case strings.Contains(rarity, "special art") || strings.Contains(rarity, "hyper"):
		score += 15
	case strings.Contains(rarity, "illustration") || strings.Contains(rarity, "full art"):
		score += 12
	case strings.Contains(rarity, "ultra") || strings.Contains(rarity, "secret"):
		score += 10
	case strings.Contains(rarity, "holo"):
		score += 5
	}

	if year := releaseYear(card); year >= 2024 {
		score += 10
	} else if year >= 2023 {
		score += 5
	}

	if nameMatchesRoster(card.Name, scoringRoster) {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// GenerateReason builds the comma-joined explanation shown under each card.
func GenerateReason(card CardRecord) string {
	var reasons []string

	rarity := strings.ToLower(card.Rarity)
	if strings.Contains(rarity, "special art") {
		reasons = append(reasons, "Special Art rarity")
	}
	if strings.Contains(rarity, "illustration") {
		reasons = append(reasons, "Illustration Rare")
	}

	if card.MarketPrice() > 50 {
		reasons = append(reasons, "High trading volume")
	}

	if nameMatchesRoster(card.Name, reasonRoster) {
		reasons = append(reasons, "Popular Pokemon demand")
	}

	if card.Set.Name != "" {
		reasons = append(reasons, card.Set.Name+" set")
	}

	if len(reasons) == 0 {
		return "Rising collector interest"
	}
	return strings.Join(reasons, ", ")
}

// releaseYear parses the leading year of the set release date, defaulting to
// 2020 when the field is missing or malformed.
func releaseYear(card CardRecord) int {
	date := card.Set.ReleaseDate
	if len(date) < 4 {
		return 2020
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 2020
	}
	return year
}

func nameMatchesRoster(name string, roster []string) bool {
	lower := strings.ToLower(name)
	for _, p := range roster {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
