package engine

// Card is a Chance or Community Chest card.
type Card struct {
	Description string
	Action      CardAction
	Square      int // CardMovement target
	Offset      int // CardRelativeMovement steps forward; BoardSize-n moves back n
	Amount      int // CardPayment; negative means the player receives cash
	PerHouse    int // CardRepairs
	PerHotel    int // CardRepairs
}

func moveTo(desc string, square int) Card {
	return Card{Description: desc, Action: CardMovement, Square: square}
}
func moveBy(desc string, offset int) Card {
	return Card{Description: desc, Action: CardRelativeMovement, Offset: offset}
}
func pay(desc string, amount int) Card {
	return Card{Description: desc, Action: CardPayment, Amount: amount}
}
func repairs(desc string, perHouse, perHotel int) Card {
	return Card{Description: desc, Action: CardRepairs, PerHouse: perHouse, PerHotel: perHotel}
}

var (
	goToJail     = Card{Description: "GO TO JAIL", Action: CardJail}
	getOutOfJail = Card{Description: "GET OUT OF JAIL FREE", Action: CardJailRelease}
)

// ChanceCards is the 16-card Chance deck in load order.
var ChanceCards = [16]Card{
	goToJail,
	moveTo("Advance to St. Charles Place", 11),
	repairs("Make general repairs on all your property. House, $25 each; Hotel, $100 each", 25, 100),
	moveTo("Take a trip to Reading Railroad", 5),
	pay("You have been elected chairman of the board. Pay $50", 50),
	moveTo("Advance to Pennsylvania Railroad", 15),
	pay("Speeding fine. Pay $15", 15),
	pay("Your building loan matures. Receive $150", -150),
	moveTo("Advance to Boardwalk", 39),
	moveBy("Go back three spaces", BoardSize-3),
	moveTo("Advance to Illinois Avenue", 24),
	moveTo("Advance to GO. Collect $200", GoIndex),
	getOutOfJail,
	pay("Bank pays you dividend of $50", -50),
	moveTo("Advance to Short Line", 35),
	pay("Crossword competition winnings. Collect $100", -100),
}

// CommunityChestCards is the 16-card Community Chest deck in load order.
var CommunityChestCards = [16]Card{
	repairs("You are assessed for Street repairs: $40 per House, $115 per Hotel", 40, 115),
	getOutOfJail,
	pay("You have won second prize in a beauty contest. Collect $10", -10),
	pay("Life insurance matures. Collect $100", -100),
	pay("It's your birthday. Collect $10", -10),
	moveTo("Advance to GO. Collect $200", GoIndex),
	pay("You inherit $100", -100),
	pay("Bank error in your favor. Collect $200", -200),
	pay("From sale of stock, you get $50", -50),
	pay("Collect $25 consultancy fee", -25),
	pay("Holiday fund matures. Collect $100", -100),
	pay("Doctor's fees. Pay $50", 50),
	pay("Hospital fees. Pay $100", 100),
	goToJail,
	pay("School fees. Pay $50", 50),
	pay("Income tax refund. Collect $20", -20),
}

// Permuter supplies random permutations for shuffling. *rand.Rand from
// math/rand/v2 satisfies it.
type Permuter interface {
	Perm(n int) []int
}

// Deck is a circular queue of cards. The top card is cards[0].
type Deck struct {
	Name  string
	cards []Card
}

// NewDeck returns a deck holding cards shuffled by perm. A nil perm keeps load order.
func NewDeck(name string, cards []Card, perm Permuter) *Deck {
	d := &Deck{Name: name, cards: make([]Card, len(cards))}
	if perm == nil {
		copy(d.cards, cards)
		return d
	}
	for i, j := range perm.Perm(len(cards)) {
		d.cards[i] = cards[j]
	}
	return d
}

// Len returns the number of cards currently in the deck.
func (d *Deck) Len() int { return len(d.cards) }

// Peek returns the top card without removing it.
func (d *Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[0], true
}

// Draw removes and returns the top card. It panics on an empty deck; every
// drawn card is pushed back before the next draw.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		panic("engine: draw from empty deck " + d.Name)
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c
}

// PushBottom appends c to the bottom of the deck.
func (d *Deck) PushBottom(c Card) {
	d.cards = append(d.cards, c)
}

// PushTop re-inserts c on top of the deck so it is drawn next.
func (d *Deck) PushTop(c Card) {
	d.cards = append([]Card{c}, d.cards...)
}

// Cards returns a copy of the deck in draw order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// cycleTop moves the top card to the bottom.
func (d *Deck) cycleTop() {
	if len(d.cards) > 0 {
		d.PushBottom(d.Draw())
	}
}
