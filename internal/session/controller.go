package session

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmoretti/wordflow/internal/srs"
	"github.com/dmoretti/wordflow/internal/store"
	"github.com/dmoretti/wordflow/internal/vocab"
)

// AllDecks and AllLevels are the sentinel filter values meaning "no
// filter". Filters are held in memory only and never persisted.
const (
	AllDecks  = ""
	AllLevels = ""
)

// Display labels for the sentinel filters.
const (
	AllDecksLabel  = "All decks"
	AllLevelsLabel = "All levels"
)

// Deck describes one deck available as a filter, with its card count.
type Deck struct {
	ID          string
	Name        string
	Description string
	CardCount   int
}

// ProgressStore is the durable card-id to Progress mapping.
type ProgressStore interface {
	Load(ctx context.Context) (map[string]srs.Progress, error)
	Save(ctx context.Context, progress map[string]srs.Progress) error
	Reset(ctx context.Context) error
}

// ReviewLogger records committed reviews. Optional; appends are
// best-effort.
type ReviewLogger interface {
	Append(ctx context.Context, ev store.ReviewEvent) error
}

// Controller drives one study session: it holds the filter selection,
// re-derives the ordered queue whenever catalog, filters, or progress
// change, and exposes the current card plus aggregate counts.
//
// All methods must be called from a single logical sequence (the TUI
// update loop), so no locking is done here. Blocking work runs off that
// sequence through the StartLoad/FinishLoad and StartReset/FinishReset
// pairs: Start* hands back a closure over the immutable dependencies for
// a background goroutine, and Finish* installs the result back on the
// loop.
type Controller struct {
	loadCards func() ([]vocab.Card, error)
	progress  ProgressStore
	log       ReviewLogger

	allCards     []vocab.Card
	progressByID map[string]srs.Progress

	deckID string
	level  string

	availableDecks  []Deck
	availableLevels []string
	ordered         []vocab.Card
	current         *vocab.Card

	hasLoaded bool
	loading   bool
	errMsg    string

	// Transient per-card presentation state. Cleared whenever a queue
	// re-derivation yields a current card.
	draft    string
	checked  bool
	revealed bool
}

// NewController builds a controller with explicit dependencies. log may be
// nil.
func NewController(loadCards func() ([]vocab.Card, error), progress ProgressStore, log ReviewLogger) *Controller {
	return &Controller{
		loadCards:    loadCards,
		progress:     progress,
		log:          log,
		progressByID: make(map[string]srs.Progress),
	}
}

// Phase returns the controller's observable state.
func (c *Controller) Phase() Phase {
	if c.loading {
		return PhaseLoading
	}
	if c.errMsg != "" {
		return PhaseFailed
	}
	if !c.hasLoaded {
		return PhaseLoading
	}
	if c.current != nil {
		return PhaseReady
	}
	return PhaseCompleted
}

// FailureMessage returns the load error message when in PhaseFailed.
func (c *Controller) FailureMessage() string {
	return c.errMsg
}

// LoadResult carries a fetched catalog and stored progress from a
// background fetch back to the update loop.
type LoadResult struct {
	Cards    []vocab.Card
	Progress map[string]srs.Progress
	Err      error
}

// StartLoad marks a load as in flight and returns the fetch to run in a
// background goroutine, or nil when a load is already in flight or the
// catalog is already loaded. The returned closure touches only the
// controller's immutable dependencies, never its state; hand its result
// to FinishLoad on the update loop.
func (c *Controller) StartLoad() func(ctx context.Context) LoadResult {
	return c.startLoad(false)
}

func (c *Controller) startLoad(force bool) func(ctx context.Context) LoadResult {
	if c.loading || (!force && c.hasLoaded) {
		return nil
	}
	c.loading = true
	c.errMsg = ""

	loadCards, progress := c.loadCards, c.progress
	return func(ctx context.Context) LoadResult {
		cards, err := loadCards()
		if err != nil {
			return LoadResult{Err: err}
		}

		// A progress read failure is recoverable: the session simply
		// starts from empty progress.
		stored, err := progress.Load(ctx)
		if err != nil {
			stored = map[string]srs.Progress{}
		}
		return LoadResult{Cards: cards, Progress: stored}
	}
}

// FinishLoad installs a fetch result and derives the queue.
func (c *Controller) FinishLoad(res LoadResult, now time.Time) {
	c.loading = false
	if res.Err != nil {
		c.errMsg = res.Err.Error()
		return
	}

	c.errMsg = ""
	c.configure(res.Cards, res.Progress, now)
	c.hasLoaded = true
}

// Load fetches and installs the catalog synchronously, reloading even
// when one was already loaded. Entry point for the command-line surface;
// the TUI splits the same work across StartLoad and FinishLoad so the
// fetch runs off the update loop. A load requested while one is in
// flight is a no-op.
func (c *Controller) Load(ctx context.Context, now time.Time) {
	fetch := c.startLoad(true)
	if fetch == nil {
		return
	}
	c.FinishLoad(fetch(ctx), now)
}

// LoadIfNeeded loads the catalog synchronously unless it has already
// been loaded.
func (c *Controller) LoadIfNeeded(ctx context.Context, now time.Time) {
	fetch := c.startLoad(false)
	if fetch == nil {
		return
	}
	c.FinishLoad(fetch(ctx), now)
}

// SetDeck changes the deck filter (AllDecks clears it) and re-derives the
// queue.
func (c *Controller) SetDeck(id string, now time.Time) {
	if c.deckID == id {
		return
	}
	c.deckID = id
	c.refreshQueue(now)
}

// SetLevel changes the level filter (AllLevels clears it) and re-derives
// the queue.
func (c *Controller) SetLevel(level string, now time.Time) {
	if c.level == level {
		return
	}
	c.level = level
	c.refreshQueue(now)
}

// SetDraft stores the learner's draft translation for the current card.
func (c *Controller) SetDraft(text string) {
	if c.current == nil {
		return
	}
	c.draft = text
}

// Reveal flips the card to its back. Revealing is one-way within a
// card; the flag clears when the next card is presented.
func (c *Controller) Reveal() {
	if c.current == nil {
		return
	}
	c.revealed = true
}

// SubmitAnswerCheck marks the draft as checked and reveals the back.
func (c *Controller) SubmitAnswerCheck() {
	if c.current == nil {
		return
	}
	c.checked = true
	c.revealed = true
}

// CanReview reports whether an outcome may be committed for the current
// card: the back must be visible and the answer checked.
func (c *Controller) CanReview() bool {
	return c.current != nil && c.revealed && c.checked
}

// DraftMatches reports whether the checked draft counts as a correct
// translation. Containment either way is accepted — "to analyse" matches
// "analizzare, esaminare".
func (c *Controller) DraftMatches() bool {
	if c.current == nil || !c.checked {
		return false
	}
	got := strings.ToLower(strings.TrimSpace(c.draft))
	want := strings.ToLower(strings.TrimSpace(c.current.Translation))
	if got == "" || want == "" {
		return false
	}
	return got == want || strings.Contains(got, want) || strings.Contains(want, got)
}

// Review commits an outcome for the current card: computes the next
// schedule state, persists it, records the review event, and re-derives
// the queue using the same now for every comparison within the commit.
// No-op when there is no current card.
func (c *Controller) Review(ctx context.Context, outcome srs.Outcome, now time.Time) {
	if c.current == nil {
		return
	}
	card := *c.current

	current, ok := c.progressByID[card.ID()]
	if !ok {
		current = srs.NewProgress(now)
	}
	updated := srs.Reviewed(current, outcome, now)
	c.progressByID[card.ID()] = updated

	// Best-effort persistence: the in-memory state stays authoritative
	// for the rest of the session if the write fails.
	_ = c.progress.Save(ctx, c.progressByID)

	if c.log != nil {
		_ = c.log.Append(ctx, store.ReviewEvent{
			CardID:     card.ID(),
			Outcome:    outcome,
			Ease:       updated.Ease,
			Interval:   updated.Interval,
			Due:        updated.Due,
			ReviewedAt: now,
		})
	}

	c.clearTransient()
	c.refreshQueue(now)
}

// StartReset returns the durable reset to run in a background goroutine.
// The backing entry is removed entirely rather than overwritten with an
// empty mapping. Follow up with FinishReset on the update loop.
func (c *Controller) StartReset() func(ctx context.Context) error {
	progress := c.progress
	return func(ctx context.Context) error {
		return progress.Reset(ctx)
	}
}

// FinishReset clears the in-memory progress after the durable reset and
// re-derives the queue.
func (c *Controller) FinishReset(now time.Time) {
	c.progressByID = make(map[string]srs.Progress)
	c.clearTransient()
	c.refreshQueue(now)
}

// ResetAll clears every card's progress synchronously, durably and in
// memory. Entry point for the command-line surface.
func (c *Controller) ResetAll(ctx context.Context, now time.Time) error {
	err := c.StartReset()(ctx)
	c.FinishReset(now)
	return err
}

// Current returns the card to present, or nil.
func (c *Controller) Current() *vocab.Card {
	return c.current
}

// Ordered returns the filtered queue in scheduling order.
func (c *Controller) Ordered() []vocab.Card {
	return c.ordered
}

// TotalCount returns the number of cards in the filtered queue.
func (c *Controller) TotalCount() int {
	return len(c.ordered)
}

// DueCount returns how many queued cards are due at now. Cards without
// progress count as due.
func (c *Controller) DueCount(now time.Time) int {
	count := 0
	for _, card := range c.ordered {
		if c.isDue(card, now) {
			count++
		}
	}
	return count
}

// Position returns the current card's 1-based position in the queue, or 0
// when there is no current card.
func (c *Controller) Position() int {
	if c.current == nil {
		return 0
	}
	for i, card := range c.ordered {
		if card.ID() == c.current.ID() {
			return i + 1
		}
	}
	return 0
}

// AvailableDecks returns the decks present in the catalog, default deck
// first, then by name.
func (c *Controller) AvailableDecks() []Deck {
	return c.availableDecks
}

// AvailableLevels returns the levels present in the deck-filtered subset,
// sorted. The AllLevels sentinel is not included.
func (c *Controller) AvailableLevels() []string {
	return c.availableLevels
}

// SelectedDeck returns the active deck filter (AllDecks when unset).
func (c *Controller) SelectedDeck() string {
	return c.deckID
}

// SelectedLevel returns the active level filter (AllLevels when unset).
func (c *Controller) SelectedLevel() string {
	return c.level
}

// SelectedDeckTitle returns the display name of the active deck filter.
func (c *Controller) SelectedDeckTitle() string {
	if c.deckID == AllDecks {
		return AllDecksLabel
	}
	for _, d := range c.availableDecks {
		if d.ID == c.deckID {
			return d.Name
		}
	}
	return AllDecksLabel
}

// SelectedLevelTitle returns the display name of the active level filter.
func (c *Controller) SelectedLevelTitle() string {
	if c.level == AllLevels {
		return AllLevelsLabel
	}
	return c.level
}

// Draft returns the learner's draft translation.
func (c *Controller) Draft() string { return c.draft }

// Checked reports whether the draft has been checked.
func (c *Controller) Checked() bool { return c.checked }

// Revealed reports whether the card back is visible.
func (c *Controller) Revealed() bool { return c.revealed }

// Progress returns the schedule state for a card, or a fresh one when the
// card has never been reviewed. The fresh state is not persisted.
func (c *Controller) Progress(card vocab.Card, now time.Time) srs.Progress {
	if p, ok := c.progressByID[card.ID()]; ok {
		return p
	}
	return srs.NewProgress(now)
}

// configure installs a freshly loaded catalog and stored progress,
// migrating legacy-identity records forward.
func (c *Controller) configure(cards []vocab.Card, stored map[string]srs.Progress, now time.Time) {
	c.allCards = cards
	c.availableDecks = buildDecks(cards)

	if c.deckID != AllDecks && !deckExists(c.availableDecks, c.deckID) {
		c.deckID = AllDecks
	}

	known := make(map[string]bool, len(cards))
	for _, card := range cards {
		known[card.ID()] = true
	}

	// Keep only records for cards that still exist under the current
	// identity scheme.
	c.progressByID = make(map[string]srs.Progress, len(stored))
	for id, p := range stored {
		if known[id] {
			c.progressByID[id] = p
		}
	}

	// Legacy-identity fallback: a card whose current identity has no
	// stored state adopts the record keyed by its word alone. Cards in
	// different decks sharing a word each adopt the same record
	// independently; runs once per load.
	for _, card := range cards {
		if _, ok := c.progressByID[card.ID()]; ok {
			continue
		}
		if legacy, ok := stored[card.LegacyID()]; ok {
			c.progressByID[card.ID()] = legacy
		}
	}

	c.refreshQueue(now)
}

// refreshQueue re-derives the filtered, ordered queue and the current
// card. Triggered by load, filter change, reset, and review commits.
func (c *Controller) refreshQueue(now time.Time) {
	if len(c.allCards) == 0 {
		c.ordered = nil
		c.current = nil
		return
	}

	deckFiltered := c.allCards
	if c.deckID != AllDecks {
		deckFiltered = filterCards(c.allCards, func(card vocab.Card) bool {
			return card.DeckKey() == strings.ToLower(c.deckID)
		})
	}

	// Levels are scoped to the active deck, not global. If the selected
	// level vanished from the scope, fall back to all levels.
	c.availableLevels = collectLevels(deckFiltered)
	if c.level != AllLevels && !levelExists(c.availableLevels, c.level) {
		c.level = AllLevels
	}

	filtered := deckFiltered
	if c.level != AllLevels {
		filtered = filterCards(deckFiltered, func(card vocab.Card) bool {
			return strings.EqualFold(card.NormalizedLevel(), c.level)
		})
	}

	c.ordered = srs.Reorder(filtered, c.progressByID)

	c.current = nil
	for i := range c.ordered {
		if c.isDue(c.ordered[i], now) {
			c.current = &c.ordered[i]
			break
		}
	}
	if c.current == nil && len(c.ordered) > 0 {
		c.current = &c.ordered[0]
	}

	// A new current card always starts in its initial presentation state.
	if c.current != nil {
		c.clearTransient()
	}
}

func (c *Controller) isDue(card vocab.Card, now time.Time) bool {
	p, ok := c.progressByID[card.ID()]
	if !ok {
		return true
	}
	return p.IsDue(now)
}

func (c *Controller) clearTransient() {
	c.draft = ""
	c.checked = false
	c.revealed = false
}

func filterCards(cards []vocab.Card, keep func(vocab.Card) bool) []vocab.Card {
	var out []vocab.Card
	for _, card := range cards {
		if keep(card) {
			out = append(out, card)
		}
	}
	return out
}

func buildDecks(cards []vocab.Card) []Deck {
	byID := make(map[string]*Deck)
	var order []string
	for _, card := range cards {
		key := card.DeckKey()
		if d, ok := byID[key]; ok {
			d.CardCount++
			continue
		}
		byID[key] = &Deck{
			ID:          key,
			Name:        card.DeckName,
			Description: card.DeckDescription,
			CardCount:   1,
		}
		order = append(order, key)
	}

	decks := make([]Deck, 0, len(order))
	for _, key := range order {
		decks = append(decks, *byID[key])
	}

	coll := collate.New(language.English, collate.Loose)
	// The default deck sorts first, remaining decks by display name.
	sort.SliceStable(decks, func(i, j int) bool {
		return deckLess(decks[i], decks[j], coll)
	})
	return decks
}

func deckLess(a, b Deck, coll *collate.Collator) bool {
	ap, bp := deckPriority(a.ID), deckPriority(b.ID)
	if ap != bp {
		return ap < bp
	}
	return coll.CompareString(a.Name, b.Name) < 0
}

func deckPriority(id string) int {
	if id == vocab.DefaultDeckID {
		return 0
	}
	return 1
}

func deckExists(decks []Deck, id string) bool {
	for _, d := range decks {
		if strings.EqualFold(d.ID, id) {
			return true
		}
	}
	return false
}

func collectLevels(cards []vocab.Card) []string {
	seen := make(map[string]string)
	for _, card := range cards {
		key := strings.ToLower(card.NormalizedLevel())
		if _, ok := seen[key]; !ok {
			seen[key] = card.NormalizedLevel()
		}
	}

	levels := make([]string, 0, len(seen))
	for _, lvl := range seen {
		levels = append(levels, lvl)
	}

	coll := collate.New(language.English, collate.Loose)
	sort.SliceStable(levels, func(i, j int) bool {
		return coll.CompareString(levels[i], levels[j]) < 0
	})
	return levels
}

func levelExists(levels []string, level string) bool {
	for _, l := range levels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}
