package game

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-letter suit token used on the wire
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Rank represents a card rank. Aces are high (14).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank token
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + int(r)))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two-character token for the card (e.g. "AS", "TD")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a two-character token like "AS" or "TD" into a Card.
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("invalid card token %q", token)
	}

	var rank Rank
	switch token[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(token[0] - '0')
	case 'T':
		rank = Ten
	case 'J':
		rank = Jack
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	case 'A':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank in card token %q", token)
	}

	var suit Suit
	switch token[1] {
	case 'C':
		suit = Clubs
	case 'D':
		suit = Diamonds
	case 'H':
		suit = Hearts
	case 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in card token %q", token)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard parses a card token and panics on failure. Test helper.
func MustParseCard(token string) Card {
	c, err := ParseCard(token)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses a slice of card tokens.
func ParseCards(tokens []string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	for _, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// CardTokens converts cards to their wire tokens.
func CardTokens(cards []Card) []string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return tokens
}
