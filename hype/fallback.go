package hype

// FallbackCards returns the degraded-mode top 10 served when the upstream
// card API is unreachable. Scores and price changes are baked in, not
// recomputed; the list is intentionally static.
func FallbackCards() []ScoredCard {
	return []ScoredCard{
		{
			ID:          "sv3-125",
			Name:        "Charizard ex",
			Set:         "Obsidian Flames",
			Image:       "https://images.pokemontcg.io/sv3/125_hires.png",
			HypeScore:   97,
			Price:       "89.99",
			PriceChange: "+42%",
			Reason:      "Worlds 2025 meta entry, Japan Nationals winning deck",
			Sources:     []SourceLink{{Name: "TCGPlayer", URL: "#"}, {Name: "Limitless", URL: "#"}},
			Rarity:      "Special Art Rare",
		},
		{
			ID:          "swsh11-131",
			Name:        "Giratina VSTAR",
			Set:         "Lost Origin",
			Image:       "https://images.pokemontcg.io/swsh11/131_hires.png",
			HypeScore:   94,
			Price:       "45.50",
			PriceChange: "+28%",
			Reason:      "Lost Zone deck resurgence, EU Regionals Top 8",
			Sources:     []SourceLink{{Name: "TCGPlayer", URL: "#"}},
			Rarity:      "Ultra Rare",
		},
		{
			ID:          "sv1-81",
			Name:        "Miraidon ex",
			Set:         "Scarlet & Violet",
			Image:       "https://images.pokemontcg.io/sv1/81_hires.png",
			HypeScore:   91,
			Price:       "32.00",
			PriceChange: "+19%",
			Reason:      "New Electric deck support announced",
			Sources:     []SourceLink{{Name: "PokeBeach", URL: "#"}},
			Rarity:      "Ultra Rare",
		},
		{
			ID:          "sv2-185",
			Name:        "Iono",
			Set:         "Paldea Evolved",
			Image:       "https://images.pokemontcg.io/sv2/185_hires.png",
			HypeScore:   88,
			Price:       "28.99",
			PriceChange: "+15%",
			Reason:      "Universal supporter demand, Full Art scarcity",
			Sources:     []SourceLink{{Name: "CardMarket", URL: "#"}},
			Rarity:      "Special Art Rare",
		},
		{
			ID:          "swsh9-123",
			Name:        "Arceus VSTAR",
			Set:         "Brilliant Stars",
			Image:       "https://images.pokemontcg.io/swsh9/123_hires.png",
			HypeScore:   85,
			Price:       "22.50",
			PriceChange: "+12%",
			Reason:      "Expanded format staple re-evaluation",
			Sources:     []SourceLink{{Name: "Limitless", URL: "#"}},
			Rarity:      "Ultra Rare",
		},
		{
			ID:          "sv4-109",
			Name:        "Roaring Moon ex",
			Set:         "Paradox Rift",
			Image:       "https://images.pokemontcg.io/sv4/109_hires.png",
			HypeScore:   82,
			Price:       "35.00",
			PriceChange: "+23%",
			Reason:      "Dark type meta boost, new combo discovered",
			Sources:     []SourceLink{{Name: "Reddit", URL: "#"}},
			Rarity:      "Ultra Rare",
		},
		{
			ID:          "sv2-61",
			Name:        "Chien-Pao ex",
			Set:         "Paldea Evolved",
			Image:       "https://images.pokemontcg.io/sv2/61_hires.png",
			HypeScore:   79,
			Price:       "18.99",
			PriceChange: "+11%",
			Reason:      "Water deck meta rising",
			Sources:     []SourceLink{{Name: "PokeBeach", URL: "#"}},
			Rarity:      "Double Rare",
		},
		{
			ID:          "swsh8-114",
			Name:        "Mew VMAX",
			Set:         "Fusion Strike",
			Image:       "https://images.pokemontcg.io/swsh8/114_hires.png",
			HypeScore:   76,
			Price:       "24.00",
			PriceChange: "+8%",
			Reason:      "Fusion Strike energy re-evaluation",
			Sources:     []SourceLink{{Name: "TCGPlayer", URL: "#"}},
			Rarity:      "Ultra Rare",
		},
		{
			ID:          "sv4-70",
			Name:        "Iron Hands ex",
			Set:         "Paradox Rift",
			Image:       "https://images.pokemontcg.io/sv4/70_hires.png",
			HypeScore:   73,
			Price:       "15.50",
			PriceChange: "+14%",
			Reason:      "Electric meta synergy",
			Sources:     []SourceLink{{Name: "CardMarket", URL: "#"}},
			Rarity:      "Double Rare",
		},
		{
			ID:          "sv1-86",
			Name:        "Gardevoir ex",
			Set:         "Scarlet & Violet",
			Image:       "https://images.pokemontcg.io/sv1/86_hires.png",
			HypeScore:   71,
			Price:       "12.99",
			PriceChange: "+9%",
			Reason:      "Consistent Psychic deck demand",
			Sources:     []SourceLink{{Name: "Limitless", URL: "#"}},
			Rarity:      "Double Rare",
		},
	}
}
