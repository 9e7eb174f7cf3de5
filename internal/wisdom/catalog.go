package wisdom

// SentinelIndex marks truths that live outside the catalog, such as the
// dream truths the night planes whisper. Codex tracking ignores them.
const SentinelIndex = -1

// Truth is a single generated truth: flavor text plus its catalog index
// (SentinelIndex for non-catalog truths).
type Truth struct {
	Text  string
	Index int
}

// Category groups catalog truths for codex progress tracking.
type Category int

const (
	OriginalTruths Category = iota
	CosmicMusings
	OrbPhilosophy
	ArcaneObservations
	ExistentialWisdom
	AcolyteWisdom
	NatureAndElements
	TimeAndPatience
	FoodForThought
	DeepNonsense
	PhilosophicalMusings
	TowerAndSanctum
	CatsAndFamiliars
	CandlesAndLight
	SoundsAndSilence
	BooksAndKnowledge
	DreamsAndSleep

	categoryCount
)

// Categories lists every catalog category in index order.
func Categories() []Category {
	out := make([]Category, categoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

func (c Category) Name() string {
	switch c {
	case OriginalTruths:
		return "Original Truths"
	case CosmicMusings:
		return "Cosmic Musings"
	case OrbPhilosophy:
		return "Orb Philosophy"
	case ArcaneObservations:
		return "Arcane Observations"
	case ExistentialWisdom:
		return "Existential Wisdom"
	case AcolyteWisdom:
		return "Acolyte Wisdom"
	case NatureAndElements:
		return "Nature & Elements"
	case TimeAndPatience:
		return "Time & Patience"
	case FoodForThought:
		return "Food for Thought"
	case DeepNonsense:
		return "Deep Nonsense"
	case PhilosophicalMusings:
		return "Philosophical Musings"
	case TowerAndSanctum:
		return "Tower & Sanctum"
	case CatsAndFamiliars:
		return "Cats & Familiars"
	case CandlesAndLight:
		return "Candles & Light"
	case SoundsAndSilence:
		return "Sounds & Silence"
	case BooksAndKnowledge:
		return "Books & Knowledge"
	case DreamsAndSleep:
		return "Dreams & Sleep"
	}
	return "Unknown"
}

// catalogTexts holds the truth flavor texts per category. The flat
// global index of a truth is its position in category order — ranges
// are derived from this table, never hard-coded.
var catalogTexts = [categoryCount][]string{
	OriginalTruths: {
		"The orb has been pondering you all along.",
		"Wisdom is not found. It accumulates, like dust on a windowsill.",
		"Every truth was once a question too stubborn to leave.",
		"The tower has no top floor. That is the point.",
		"You cannot step into the same thought twice.",
		"The first truth is that there will be another.",
	},
	CosmicMusings: {
		"Somewhere, a star is pondering an orb of its own.",
		"The universe expands to make room for new mistakes.",
		"Gravity is just the cosmos refusing to let go.",
		"Every constellation is a rough draft.",
		"The void between stars is not empty. It is listening.",
		"Light travels so far only to end as a glint on the orb.",
	},
	OrbPhilosophy: {
		"The orb is round so that no thought can corner it.",
		"To gaze into the orb is to be gazed into, politely.",
		"The orb reflects everything except its own opinion.",
		"A perfectly smooth surface hides infinite depth.",
		"The orb does not answer questions. It dissolves them.",
		"What the orb knows, it knows sphericially.",
	},
	ArcaneObservations: {
		"Ley lines hum at the frequency of unfinished sentences.",
		"All magic is borrowed. The interest is steep.",
		"A sigil is a thought that refused to stop being drawn.",
		"Enchantments fade. Their paperwork does not.",
		"The arcane current flows uphill, out of spite.",
		"Every spell is a favor asked of the universe, nicely.",
	},
	ExistentialWisdom: {
		"You are the only witness to most of your life.",
		"Being is a habit the universe picked up and cannot quit.",
		"The self is a committee that rarely reaches quorum.",
		"To exist is to be mid-sentence forever.",
		"Meaning is homemade. The ingredients are everywhere.",
		"Even nothing is something, when observed long enough.",
	},
	AcolyteWisdom: {
		"The acolytes say the stairs are a metaphor. They still climb them.",
		"An acolyte's first lesson: the broom is also a wand.",
		"Two acolytes pondering together still count as one silence.",
		"The youngest acolyte asked why. The tower is still answering.",
		"Acolytes sweep the floors so that thoughts may fall freely.",
		"Devotion is attention that learned to stay.",
	},
	NatureAndElements: {
		"Rain is the sky thinking out loud.",
		"Stone remembers everything and mentions none of it.",
		"Fire is curiosity with no sense of boundaries.",
		"The wind files no reports, yet everything is noted.",
		"Rivers are patient arguments with geography.",
		"Even the mountain was once in a hurry.",
	},
	TimeAndPatience: {
		"A moment is as long as you are willing to stand inside it.",
		"Patience is time on your side of the table.",
		"The hourglass does not measure time. It demonstrates it.",
		"Later is a place. Few arrive there on purpose.",
		"Every clock is wrong eventually. Every sundial, humble always.",
		"Waiting is the slowest form of magic, and the most reliable.",
	},
	FoodForThought: {
		"A biscuit eaten while pondering counts as research.",
		"Tea is just leaf wisdom, steeped.",
		"The pretzel proves that a twist can be a destination.",
		"Hunger sharpens the mind; supper forgives it.",
		"No great truth has ever been found on an empty teapot.",
		"Crumbs in the codex are a form of annotation.",
	},
	DeepNonsense: {
		"The opposite of a sock is still a sock, emotionally.",
		"Seven is simply six that kept going.",
		"If a ladder dreams, it dreams of being a bridge.",
		"The moon is a coin the night refuses to spend.",
		"Backwards is just forwards with commitment issues.",
		"A door ajar is a wall having doubts.",
	},
	PhilosophicalMusings: {
		"Doubt is the respectful form of belief.",
		"An argument won alone is merely rehearsal.",
		"The examined life keeps excellent notes and loses them.",
		"Wisdom begins where confidence takes a seat.",
		"Logic is a lantern, not a landscape.",
		"The question mark is the strongest hook in language.",
	},
	TowerAndSanctum: {
		"The tower leans toward questions the way plants lean toward light.",
		"Every floor of the tower was once the top one.",
		"The sanctum is quiet because it has heard everything.",
		"Stairs teach what ladders never will: arrival is gradual.",
		"The tower's shadow ponders the ground all day.",
		"A sanctum is a room that keeps your silences for you.",
	},
	CatsAndFamiliars: {
		"The familiar knows the answer and declines to share.",
		"A cat asleep on the codex is a second opinion.",
		"Purring is wisdom at a frequency words cannot reach.",
		"The familiar attends every ritual and ratifies none.",
		"Nine lives, one nap schedule.",
		"Whiskers measure doorways; intuition measures everything else.",
	},
	CandlesAndLight: {
		"A candle spends itself to make the dark negotiable.",
		"The flame does not fight the dark. It simply disagrees.",
		"Wax remembers the shape of every evening.",
		"Two candles light a room; one lights a thought.",
		"Every shadow is proof that light showed up.",
		"The wick's whole career is a single bright sentence.",
	},
	SoundsAndSilence: {
		"Silence is sound taking notes.",
		"An echo is a sound's second thought.",
		"The quietest hour of the tower holds the loudest truths.",
		"Bells do not end silence. They frame it.",
		"A whisper travels further than a shout, given years.",
		"Listening is the only instrument that never needs tuning.",
	},
	BooksAndKnowledge: {
		"A book is a conversation that waited for you.",
		"Margins exist because no truth arrives finished.",
		"The library's dust is composed of retired arguments.",
		"An unread book is a held breath.",
		"Ink dries. Meaning does not.",
		"Every index is an act of optimism.",
	},
	DreamsAndSleep: {
		"Sleep is the mind's way of filing without supervision.",
		"Dreams are truths wearing borrowed clothes.",
		"The pillow hears more philosophy than the lectern.",
		"To wake is to close a book mid-chapter, every morning.",
		"Night does not fall. It settles, like a cat.",
		"The dream you forget still remembers you.",
	},
}

// dreamTruths are the non-catalog truths emitted by the dream plane at
// night. They carry SentinelIndex and never count toward the codex.
var dreamTruths = []string{
	"In the dream, the orb spoke your name backwards.",
	"The sleeping mind walks paths the waking mind cannot see.",
	"Between one dream and the next, a truth slipped through.",
	"The moon whispered a secret the sun would never tell.",
	"In the dream realm, every thought has weight and color.",
	"You dreamed of an orb dreaming of you.",
	"The night sky opened like a book written in starlight.",
	"A truth arrived wrapped in sleep, addressed to no one.",
	"The dream orb pulses with truths that dissolve at dawn.",
	"In the space between waking and sleep, wisdom accumulates like dew.",
}

// categoryOffsets[i] is the flat index of category i's first truth.
var categoryOffsets = func() [categoryCount]int {
	var offs [categoryCount]int
	total := 0
	for i := range catalogTexts {
		offs[i] = total
		total += len(catalogTexts[i])
	}
	return offs
}()

// CatalogSize is the total number of catalog truths.
var CatalogSize = func() int {
	total := 0
	for _, texts := range catalogTexts {
		total += len(texts)
	}
	return total
}()

// IndexRange returns the inclusive [start, end] flat-index range of a
// category's truths.
func (c Category) IndexRange() (int, int) {
	start := categoryOffsets[c]
	return start, start + len(catalogTexts[c]) - 1
}

// Size is the number of truths in the category.
func (c Category) Size() int {
	return len(catalogTexts[c])
}

// CategoryForIndex maps a flat catalog index to its category. The
// second return is false for out-of-range or sentinel indices.
func CategoryForIndex(index int) (Category, bool) {
	if index < 0 || index >= CatalogSize {
		return 0, false
	}
	for c := categoryCount - 1; c >= 0; c-- {
		if index >= categoryOffsets[c] {
			return Category(c), true
		}
	}
	return 0, false
}

// CatalogTruth returns the truth at a flat catalog index.
func CatalogTruth(index int) Truth {
	if c, ok := CategoryForIndex(index); ok {
		return Truth{Text: catalogTexts[c][index-categoryOffsets[c]], Index: index}
	}
	return Truth{Text: "", Index: SentinelIndex}
}

// DreamTruth returns the n-th dream truth (wrapping), carrying the
// sentinel index.
func DreamTruth(n int) Truth {
	if n < 0 {
		n = -n
	}
	return Truth{Text: dreamTruths[n%len(dreamTruths)], Index: SentinelIndex}
}
