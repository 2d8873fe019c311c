package stores

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"sync"

	"github.com/mrlokans/lexicard/internal/api"
	"github.com/mrlokans/lexicard/internal/entities"
)

const DefaultLanguage = "en"

// WordList is one page of the searchable word list together with the
// parameters it was fetched for.
type WordList struct {
	Items       []entities.Word
	SearchQuery string
	CurrentPage int
	TotalPages  int
	TotalCount  int
}

// WordState is an immutable snapshot of the word store.
type WordState struct {
	Active        *entities.Word
	List          WordList
	Deck          []entities.Word
	Loading       bool
	LoadingList   bool
	LoadingUpdate bool
	Error         string
}

func (s WordState) clone() WordState {
	if s.Active != nil {
		active := s.Active.Clone()
		s.Active = &active
	}
	s.List.Items = cloneWords(s.List.Items)
	s.Deck = cloneWords(s.Deck)
	return s
}

// patchWord merges p into every cached copy of the word with the given id.
func (s *WordState) patchWord(id string, p entities.WordPatch) bool {
	found := false
	for i := range s.List.Items {
		if s.List.Items[i].ID == id {
			s.List.Items[i] = s.List.Items[i].Apply(p)
			found = true
		}
	}
	for i := range s.Deck {
		if s.Deck[i].ID == id {
			s.Deck[i] = s.Deck[i].Apply(p)
			found = true
		}
	}
	if s.Active != nil && s.Active.ID == id {
		patched := s.Active.Apply(p)
		s.Active = &patched
		found = true
	}
	return found
}

func cloneWords(words []entities.Word) []entities.Word {
	if words == nil {
		return nil
	}
	out := make([]entities.Word, len(words))
	for i, w := range words {
		out[i] = w.Clone()
	}
	return out
}

func initialWordState() WordState {
	return WordState{List: WordList{CurrentPage: 1}}
}

// WordStore owns the client side word state: the active word, the paginated
// search list and the review deck. All mutation goes through its actions;
// each state transition is atomic and published to subscribers.
type WordStore struct {
	api      WordAPI
	language string

	mu         sync.Mutex
	state      WordState
	subs       subscribers[WordState]
	generation uint64 // bumped by every FetchWords and by Reset
	epoch      uint64 // bumped by Reset
	loading    int    // requests started in the current epoch
	updating   int

	pending sync.WaitGroup
}

func NewWordStore(client WordAPI, language string) *WordStore {
	if language == "" {
		language = DefaultLanguage
	}
	return &WordStore{
		api:      client,
		language: language,
		state:    initialWordState(),
	}
}

// Snapshot returns a copy of the current state.
func (s *WordStore) Snapshot() WordState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to receive a snapshot after every transition. fn runs
// while the store is locked and must not call back into the store.
func (s *WordStore) Subscribe(fn func(WordState)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.subs.add(fn)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.subs.remove(id)
		s.mu.Unlock()
	}
}

func (s *WordStore) update(fn func(st *WordState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	s.subs.publish(s.state.clone())
}

// Reset drops all cached words and discards responses still in flight.
// Requests started before Reset no longer touch loading flags or Error.
func (s *WordStore) Reset() {
	s.update(func(st *WordState) {
		s.generation++
		s.epoch++
		s.loading = 0
		s.updating = 0
		*st = initialWordState()
	})
}

// Wait blocks until background seen-count increments have finished.
func (s *WordStore) Wait() {
	s.pending.Wait()
}

// SetActiveWord makes w the active word. Activating a word whose id differs
// from the current one bumps its seen count locally and fires exactly one
// increment request; re-activating the same id does not. nil clears.
func (s *WordStore) SetActiveWord(ctx context.Context, w *entities.Word) {
	s.activate(ctx, w, s.currentEpoch())
}

func (s *WordStore) currentEpoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// activate is SetActiveWord for a result fetched in epoch; it is dropped if
// the store was reset meanwhile.
func (s *WordStore) activate(ctx context.Context, w *entities.Word, epoch uint64) {
	if w == nil {
		s.update(func(st *WordState) { st.Active = nil })
		return
	}

	word := w.Clone()
	increment := false
	s.update(func(st *WordState) {
		if epoch != s.epoch {
			return
		}
		if st.Active != nil && st.Active.ID == word.ID {
			// keep the optimistic count until the server catches up
			word.SeenCount = max(word.SeenCount, st.Active.SeenCount)
		} else if word.ID != "" {
			word.SeenCount++
			increment = true
		}
		st.Active = &word
	})

	if increment {
		s.incrementSeen(ctx, word.ID, epoch)
	}
}

func (s *WordStore) incrementSeen(ctx context.Context, id string, epoch uint64) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		patch, err := s.api.IncrementSeenCount(context.WithoutCancel(ctx), id)
		if err != nil {
			log.Printf("[STORE] Failed to increment seen count for word %s: %v", id, err)
			return
		}
		if patch.SeenCount == nil && patch.UpdatedAt == nil {
			return
		}
		s.update(func(st *WordState) {
			if epoch == s.epoch {
				st.patchWord(id, entities.WordPatch{SeenCount: patch.SeenCount, UpdatedAt: patch.UpdatedAt})
			}
		})
	}()
}

func (s *WordStore) startLoading() (epoch uint64) {
	s.update(func(st *WordState) {
		s.loading++
		st.Loading = true
		st.Error = ""
		epoch = s.epoch
	})
	return epoch
}

func (s *WordStore) stopLoading(epoch uint64) {
	s.update(func(st *WordState) {
		if epoch != s.epoch {
			return
		}
		s.loading = max(s.loading-1, 0)
		st.Loading = s.loading > 0
	})
}

// fail records err unless the store was reset after the request started.
func (s *WordStore) fail(action string, err error, epoch uint64) {
	s.update(func(st *WordState) {
		if epoch == s.epoch {
			st.Error = describe(action, err)
		}
	})
}

// LookupWord fetches the word for key and activates it. When the service
// reports the word as missing the active word is cleared so the caller can
// offer to generate it; a transport failure leaves the previous word shown.
func (s *WordStore) LookupWord(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}

	epoch := s.startLoading()
	defer s.stopLoading(epoch)

	word, err := s.api.FetchWordByKey(ctx, key)
	if err != nil {
		var apiErr *api.APIError
		s.update(func(st *WordState) {
			if epoch != s.epoch {
				return
			}
			st.Error = describe("Error fetching word", err)
			if errors.As(err, &apiErr) {
				st.Active = nil
			}
		})
		return err
	}

	s.activate(ctx, word, epoch)
	return nil
}

// GenerateWord asks the AI backend for a new word and activates it. A blank
// prompt does nothing.
func (s *WordStore) GenerateWord(ctx context.Context, prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil
	}

	epoch := s.startLoading()
	defer s.stopLoading(epoch)

	word, err := s.api.GenerateWord(ctx, prompt, s.language)
	if err != nil {
		s.fail("Error generating word", err, epoch)
		return err
	}

	s.activate(ctx, word, epoch)
	return nil
}

// SearchWords sets the search term and rewinds to page 1 in one transition.
// Callers debounce keystrokes and then call FetchWords.
func (s *WordStore) SearchWords(term string) {
	s.update(func(st *WordState) {
		st.List.SearchQuery = term
		st.List.CurrentPage = 1
	})
}

// SetWordsPage moves to page n, clamped to the known page range.
func (s *WordStore) SetWordsPage(n int) {
	s.update(func(st *WordState) {
		st.List.CurrentPage = min(max(n, 1), max(st.List.TotalPages, 1))
	})
}

// FetchWords loads the list for the current search term and page. A response
// is dropped if another fetch was issued meanwhile or the parameters changed.
func (s *WordStore) FetchWords(ctx context.Context) error {
	var (
		gen   uint64
		query string
		page  int
	)
	s.update(func(st *WordState) {
		s.generation++
		gen = s.generation
		query, page = st.List.SearchQuery, st.List.CurrentPage
		st.LoadingList = true
		st.Error = ""
	})

	result, err := s.api.ListWords(ctx, query, page)

	s.update(func(st *WordState) {
		latest := gen == s.generation
		if !latest || query != st.List.SearchQuery || page != st.List.CurrentPage {
			staleResponses.WithLabelValues("words").Inc()
			log.Printf("[STORE] Discarding stale word list response (query=%q page=%d)", query, page)
			if latest {
				st.LoadingList = false
			}
			err = nil
			return
		}

		st.LoadingList = false
		if err != nil {
			st.Error = describe("Error fetching words", err)
			return
		}
		st.List.Items = cloneWords(result.Items)
		st.List.TotalPages = result.TotalPages
		st.List.TotalCount = result.TotalCount
	})
	return err
}

// FetchDeck loads the review deck. A failure keeps the previous deck.
func (s *WordStore) FetchDeck(ctx context.Context) error {
	epoch := s.startLoading()
	defer s.stopLoading(epoch)

	deck, err := s.api.FetchDeck(ctx)
	if err != nil {
		s.fail("Failed to fetch recent hard or medium words", err, epoch)
		return err
	}

	s.update(func(st *WordState) {
		if epoch == s.epoch {
			st.Deck = cloneWords(deck)
		}
	})
	return nil
}

func (s *WordStore) startUpdate() (epoch uint64) {
	s.update(func(st *WordState) {
		s.updating++
		st.LoadingUpdate = true
		st.Error = ""
		epoch = s.epoch
	})
	return epoch
}

func (s *WordStore) stopUpdate(epoch uint64) {
	s.update(func(st *WordState) {
		if epoch != s.epoch {
			return
		}
		s.updating = max(s.updating-1, 0)
		st.LoadingUpdate = s.updating > 0
	})
}

// UpdateWordLevel persists level and only then patches the cached copies.
func (s *WordStore) UpdateWordLevel(ctx context.Context, id string, level entities.Level) error {
	epoch := s.startUpdate()
	defer s.stopUpdate(epoch)

	patch, err := s.api.UpdateWordLevel(ctx, id, level)
	if err != nil {
		s.fail("Error updating word level", err, epoch)
		return err
	}

	s.update(func(st *WordState) {
		if epoch == s.epoch {
			st.patchWord(id, patch)
		}
	})
	return nil
}

func (s *WordStore) UpdateWordExamples(ctx context.Context, id, word, language string, previous []string) error {
	return s.regenerate(ctx, api.FieldRequest{ID: id, Word: word, Language: language, Kind: entities.FieldExamples, Previous: previous})
}

func (s *WordStore) UpdateWordCodeSwitching(ctx context.Context, id, word, language string, previous []string) error {
	return s.regenerate(ctx, api.FieldRequest{ID: id, Word: word, Language: language, Kind: entities.FieldCodeSwitching, Previous: previous})
}

func (s *WordStore) UpdateWordSynonyms(ctx context.Context, id, word, language string, previous []string) error {
	return s.regenerate(ctx, api.FieldRequest{ID: id, Word: word, Language: language, Kind: entities.FieldSynonyms, Previous: previous})
}

func (s *WordStore) UpdateWordTypes(ctx context.Context, id, word, language string, previous []string) error {
	return s.regenerate(ctx, api.FieldRequest{ID: id, Word: word, Language: language, Kind: entities.FieldWordTypes, Previous: previous})
}

func (s *WordStore) UpdateWordImage(ctx context.Context, id, word, previous string) error {
	return s.regenerate(ctx, api.FieldRequest{ID: id, Word: word, Kind: entities.FieldImage, PreviousImage: previous})
}

// UpdateWordField dispatches to the regenerate action for kind, taking the
// previous values from the cached word.
func (s *WordStore) UpdateWordField(ctx context.Context, id string, kind entities.FieldKind) error {
	current, ok := s.cachedWord(id)
	if !ok {
		return errors.New("word is not loaded")
	}

	language := s.language
	switch kind {
	case entities.FieldExamples:
		return s.UpdateWordExamples(ctx, id, current.Word, language, current.Examples)
	case entities.FieldCodeSwitching:
		return s.UpdateWordCodeSwitching(ctx, id, current.Word, language, current.CodeSwitching)
	case entities.FieldSynonyms:
		return s.UpdateWordSynonyms(ctx, id, current.Word, language, current.Synonyms)
	case entities.FieldWordTypes:
		previous := make([]string, len(current.WordTypes))
		for i, t := range current.WordTypes {
			previous[i] = string(t)
		}
		return s.UpdateWordTypes(ctx, id, current.Word, language, previous)
	case entities.FieldImage:
		return s.UpdateWordImage(ctx, id, current.Word, current.Image)
	}
	return errors.New("unknown field " + string(kind))
}

func (s *WordStore) cachedWord(id string) (entities.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Active != nil && s.state.Active.ID == id {
		return s.state.Active.Clone(), true
	}
	for _, words := range [][]entities.Word{s.state.List.Items, s.state.Deck} {
		if i := slices.IndexFunc(words, func(w entities.Word) bool { return w.ID == id }); i >= 0 {
			return words[i].Clone(), true
		}
	}
	return entities.Word{}, false
}

// regenerate merges only the regenerated field and updatedAt. Concurrent
// requests for the same field resolve in completion order.
func (s *WordStore) regenerate(ctx context.Context, req api.FieldRequest) error {
	epoch := s.startUpdate()
	defer s.stopUpdate(epoch)

	patch, err := s.api.RegenerateField(ctx, req)
	if err != nil {
		s.fail("Error updating "+string(req.Kind), err, epoch)
		return err
	}

	s.update(func(st *WordState) {
		if epoch == s.epoch {
			st.patchWord(req.ID, patch.Only(req.Kind))
		}
	})
	return nil
}
