package hype

// CardRecord is one card as returned by the pokemontcg.io v2 API. Fields we
// never read are omitted; the payload is much larger than this.
type CardRecord struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Rarity    string     `json:"rarity"`
	Set       CardSet    `json:"set"`
	Images    CardImages `json:"images"`
	TCGPlayer TCGPlayer  `json:"tcgplayer"`
}

type CardSet struct {
	Name        string `json:"name"`
	ReleaseDate string `json:"releaseDate"` // "2023/06/09"
}

type CardImages struct {
	Small string `json:"small"`
	Large string `json:"large"`
}

type TCGPlayer struct {
	URL    string               `json:"url"`
	Prices map[string]PriceBand `json:"prices"`
}

type PriceBand struct {
	Market float64 `json:"market"`
}

// MarketPrice prefers the holofoil market price, falls back to normal, and
// degrades to 0 when neither is present.
func (c CardRecord) MarketPrice() float64 {
	if p := c.TCGPlayer.Prices["holofoil"].Market; p > 0 {
		return p
	}
	return c.TCGPlayer.Prices["normal"].Market
}

type SourceLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ScoredCard is the derived, display-ready card. Instances are rebuilt on
// every ranking pass and never mutated afterwards.
type ScoredCard struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Set         string       `json:"set"`
	Image       string       `json:"image"`
	HypeScore   int          `json:"hypeScore"`
	Price       string       `json:"price"`
	PriceChange string       `json:"priceChange"`
	Reason      string       `json:"reason"`
	Sources     []SourceLink `json:"sources"`
	Rarity      string       `json:"rarity"`
}

// Source tells the caller where a ranking came from.
type Source string

const (
	SourceAPI      Source = "api"
	SourceFallback Source = "fallback"
)
