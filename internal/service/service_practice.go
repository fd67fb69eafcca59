package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/store"
	"github.com/asalimova/word-inventory/models"
)

// Practice game identifiers.
const (
	GameFlashcards = "flashcards"
	GameArticles   = "articles"
	GameRecall     = "recall"
)

// defaultDeckSize bounds how many cards one practice round contains when
// the caller does not ask for a specific size. Smaller vocabularies simply
// yield smaller decks.
const defaultDeckSize = 10

// recallSecondsPerCard is the timer hint sent with the timed recall game.
const recallSecondsPerCard = 10

// articleChoices is the fixed answer set of the article game.
var articleChoices = []string{"der", "die", "das"}

// practiceService builds practice decks from the owner's word entries.
// Decks are assembled on the fly and results are never persisted; score
// keeping is a client concern.
type practiceService struct {
	entryRepository store.EntryRepository
	logger          *logger.Logger
}

// NewPracticeService constructs a PracticeService wired to the given
// repository.
func NewPracticeService(entryRepository store.EntryRepository, logger *logger.Logger) PracticeService {
	return &practiceService{
		entryRepository: entryRepository,
		logger:          logger,
	}
}

// BuildDeck assembles a shuffled deck for one of the known games:
//
//   - flashcards: foreign word front, translation back;
//   - articles: guess the der/die/das article of a German-style noun; only
//     entries whose text starts with an article qualify;
//   - recall: translation front, foreign word back, with a per-card timer.
//
// An unknown game name yields ErrUnknownGame. An owner with no qualifying
// entries receives an empty deck, not an error. A non-positive size falls
// back to the default deck size.
func (s *practiceService) BuildDeck(ctx context.Context, userID int64, game string, size int) (models.PracticeDeck, error) {
	log := logger.FromContext(ctx)

	switch game {
	case GameFlashcards, GameArticles, GameRecall:
	default:
		return models.PracticeDeck{}, ErrUnknownGame
	}

	if size <= 0 {
		size = defaultDeckSize
	}

	entries, err := s.entryRepository.ListEntries(ctx, userID,
		models.EntryFilter{Kind: models.EntryKindWord}, models.SortDateDesc)
	if err != nil {
		log.Err(err).Str("game", game).Msg("practice listing ended with error")
		return models.PracticeDeck{}, fmt.Errorf("practice listing ended with error: %w", err)
	}

	var cards []models.PracticeCard
	for _, entry := range entries {
		switch game {
		case GameFlashcards:
			cards = append(cards, models.PracticeCard{
				Slug:   entry.Slug,
				Prompt: entry.Text,
				Answer: entry.Translation,
			})
		case GameRecall:
			cards = append(cards, models.PracticeCard{
				Slug:   entry.Slug,
				Prompt: entry.Translation,
				Answer: entry.Text,
			})
		case GameArticles:
			article, noun, ok := splitArticle(entry.Text)
			if !ok {
				continue
			}
			cards = append(cards, models.PracticeCard{
				Slug:    entry.Slug,
				Prompt:  noun,
				Answer:  article,
				Choices: articleChoices,
			})
		}
	}

	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	if len(cards) > size {
		cards = cards[:size]
	}
	if cards == nil {
		cards = []models.PracticeCard{}
	}

	deck := models.PracticeDeck{Game: game, Cards: cards}
	if game == GameRecall {
		deck.SecondsPerCard = recallSecondsPerCard
	}

	return deck, nil
}

// splitArticle splits a word entry text of the form "der Hund" into its
// article and noun. Texts that do not start with a definite article do not
// qualify for the article game.
func splitArticle(text string) (article, noun string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(text), " ", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	candidate := strings.ToLower(parts[0])
	for _, known := range articleChoices {
		if candidate == known {
			return candidate, strings.TrimSpace(parts[1]), true
		}
	}
	return "", "", false
}
