package stores

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/mrlokans/lexicard/internal/api"
	"github.com/mrlokans/lexicard/internal/entities"
	"github.com/mrlokans/lexicard/internal/stores/mocks"
)

type WordStoreTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	api  *mocks.MockWordAPI

	store *WordStore
	ctx   context.Context
}

func (s *WordStoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mocks.NewMockWordAPI(s.ctrl)
	s.store = NewWordStore(s.api, "en")
	s.ctx = context.Background()
}

func (s *WordStoreTestSuite) TearDownTest() {
	s.store.Wait()
	s.ctrl.Finish()
}

func TestWordStoreTestSuite(t *testing.T) {
	suite.Run(t, new(WordStoreTestSuite))
}

var updatedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func testWord(id, word string) *entities.Word {
	return &entities.Word{
		ID:            id,
		Word:          word,
		Definition:    "definition of " + word,
		IPA:           "/" + word + "/",
		Examples:      []string{"an example with " + word},
		CodeSwitching: []string{"hablo de " + word},
		Synonyms:      []string{"synonym of " + word},
		WordTypes:     []entities.WordType{"noun"},
		Level:         entities.LevelMedium,
		SeenCount:     3,
		Image:         "https://img/" + word + ".png",
		Translation:   entities.Translation{Word: word + "-es", Definition: "definición"},
		CreatedAt:     updatedAt.Add(-time.Hour),
		UpdatedAt:     updatedAt.Add(-time.Hour),
	}
}

func wordPage(totalPages int, words ...string) *api.WordPage {
	page := &api.WordPage{Page: 1, TotalPages: totalPages, TotalCount: len(words)}
	for i, w := range words {
		page.Items = append(page.Items, *testWord("id-"+w, words[i]))
	}
	return page
}

func itemWords(items []entities.Word) []string {
	out := make([]string, 0, len(items))
	for _, w := range items {
		out = append(out, w.Word)
	}
	return out
}

// recordStates collects every published snapshot.
func (s *WordStoreTestSuite) recordStates() func() []WordState {
	var mu sync.Mutex
	var states []WordState
	unsubscribe := s.store.Subscribe(func(st WordState) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, st)
	})
	s.T().Cleanup(unsubscribe)
	return func() []WordState {
		mu.Lock()
		defer mu.Unlock()
		return append([]WordState(nil), states...)
	}
}

func (s *WordStoreTestSuite) TestFetchWords_DiscardsSlowerStaleResponse() {
	started := make(chan struct{})
	release := make(chan struct{})

	s.api.EXPECT().ListWords(gomock.Any(), "a", 1).DoAndReturn(
		func(ctx context.Context, search string, page int) (*api.WordPage, error) {
			close(started)
			<-release
			return wordPage(1, "apple", "avocado"), nil
		},
	)
	s.api.EXPECT().ListWords(gomock.Any(), "ab", 1).Return(wordPage(1, "abacus"), nil)

	s.store.SearchWords("a")
	first := make(chan error, 1)
	go func() { first <- s.store.FetchWords(s.ctx) }()
	<-started

	s.store.SearchWords("ab")
	s.Require().NoError(s.store.FetchWords(s.ctx))

	close(release)
	s.Require().NoError(<-first)

	st := s.store.Snapshot()
	s.Equal("ab", st.List.SearchQuery)
	s.Equal([]string{"abacus"}, itemWords(st.List.Items))
	s.False(st.LoadingList)
	s.Empty(st.Error)
}

func (s *WordStoreTestSuite) TestFetchWords_DiscardsStaleFailure() {
	started := make(chan struct{})
	release := make(chan struct{})

	s.api.EXPECT().ListWords(gomock.Any(), "a", 1).DoAndReturn(
		func(ctx context.Context, search string, page int) (*api.WordPage, error) {
			close(started)
			<-release
			return nil, &api.TransportError{Op: "list words", Err: errors.New("timeout")}
		},
	)
	s.api.EXPECT().ListWords(gomock.Any(), "ab", 1).Return(wordPage(1, "abacus"), nil)

	s.store.SearchWords("a")
	first := make(chan error, 1)
	go func() { first <- s.store.FetchWords(s.ctx) }()
	<-started

	s.store.SearchWords("ab")
	s.Require().NoError(s.store.FetchWords(s.ctx))
	close(release)
	s.NoError(<-first)

	st := s.store.Snapshot()
	s.Empty(st.Error)
	s.Equal([]string{"abacus"}, itemWords(st.List.Items))
}

func (s *WordStoreTestSuite) TestFetchWords_ParametersMovedWithoutNewFetch() {
	started := make(chan struct{})
	release := make(chan struct{})

	s.api.EXPECT().ListWords(gomock.Any(), "", 1).DoAndReturn(
		func(ctx context.Context, search string, page int) (*api.WordPage, error) {
			close(started)
			<-release
			return wordPage(1, "apple"), nil
		},
	)

	done := make(chan error, 1)
	go func() { done <- s.store.FetchWords(s.ctx) }()
	<-started
	s.store.SearchWords("zebra")
	close(release)
	s.Require().NoError(<-done)

	st := s.store.Snapshot()
	s.Empty(st.List.Items)
	s.False(st.LoadingList, "nothing else is in flight")
}

func (s *WordStoreTestSuite) TestFetchWords_FailureKeepsItems() {
	s.api.EXPECT().ListWords(gomock.Any(), "", 1).Return(wordPage(2, "apple", "pear"), nil)
	s.api.EXPECT().ListWords(gomock.Any(), "", 2).Return(nil, &api.APIError{Op: "list words", StatusCode: 500, Message: "database down"})

	s.Require().NoError(s.store.FetchWords(s.ctx))
	s.store.SetWordsPage(2)
	err := s.store.FetchWords(s.ctx)

	s.Error(err)
	st := s.store.Snapshot()
	s.Equal([]string{"apple", "pear"}, itemWords(st.List.Items))
	s.Equal("Error fetching words: database down", st.Error)
	s.False(st.LoadingList)
}

func (s *WordStoreTestSuite) TestSearchWords_ResetsPageInOneTransition() {
	s.api.EXPECT().ListWords(gomock.Any(), "", 1).Return(wordPage(6, "apple"), nil)
	s.Require().NoError(s.store.FetchWords(s.ctx))
	s.store.SetWordsPage(5)
	s.Require().Equal(5, s.store.Snapshot().List.CurrentPage)

	states := s.recordStates()
	s.store.SearchWords("cat")

	recorded := states()
	s.Require().Len(recorded, 1)
	s.Equal("cat", recorded[0].List.SearchQuery)
	s.Equal(1, recorded[0].List.CurrentPage)
}

func (s *WordStoreTestSuite) TestSetWordsPage_Clamps() {
	s.api.EXPECT().ListWords(gomock.Any(), "", 1).Return(wordPage(3, "apple"), nil)
	s.Require().NoError(s.store.FetchWords(s.ctx))

	s.store.SetWordsPage(10)
	s.Equal(3, s.store.Snapshot().List.CurrentPage)

	s.store.SetWordsPage(0)
	s.Equal(1, s.store.Snapshot().List.CurrentPage)

	s.store.SetWordsPage(2)
	s.Equal(2, s.store.Snapshot().List.CurrentPage)
}

func (s *WordStoreTestSuite) TestSetWordsPage_NoPagesKnown() {
	s.store.SetWordsPage(4)
	s.Equal(1, s.store.Snapshot().List.CurrentPage)
}

func (s *WordStoreTestSuite) TestSetActiveWord_SameIDIncrementsOnce() {
	word := testWord("w1", "apple")
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), "w1").Return(entities.WordPatch{}, nil).Times(1)

	s.store.SetActiveWord(s.ctx, word)
	s.store.SetActiveWord(s.ctx, word)
	s.store.Wait()

	st := s.store.Snapshot()
	s.Require().NotNil(st.Active)
	s.Equal(4, st.Active.SeenCount)
}

func (s *WordStoreTestSuite) TestSetActiveWord_DifferentIDsIncrementEach() {
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), "w1").Return(entities.WordPatch{}, nil)
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), "w2").Return(entities.WordPatch{}, nil)

	s.store.SetActiveWord(s.ctx, testWord("w1", "apple"))
	s.store.SetActiveWord(s.ctx, testWord("w2", "pear"))
	s.store.Wait()

	s.Equal("w2", s.store.Snapshot().Active.ID)
}

func (s *WordStoreTestSuite) TestSetActiveWord_IncrementFailureIsNotSurfaced() {
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), "w1").
		Return(entities.WordPatch{}, &api.TransportError{Op: "increment seen", Err: errors.New("offline")})

	s.store.SetActiveWord(s.ctx, testWord("w1", "apple"))
	s.store.Wait()

	st := s.store.Snapshot()
	s.Empty(st.Error)
	s.Equal(4, st.Active.SeenCount, "optimistic count is not rolled back")
}

func (s *WordStoreTestSuite) TestSetActiveWord_MergesServerCount() {
	seen := 10
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), "w1").
		Return(entities.WordPatch{SeenCount: &seen, UpdatedAt: &updatedAt}, nil)

	s.store.SetActiveWord(s.ctx, testWord("w1", "apple"))
	s.store.Wait()

	st := s.store.Snapshot()
	s.Equal(10, st.Active.SeenCount)
	s.Equal(updatedAt, st.Active.UpdatedAt)
	s.Equal("definition of apple", st.Active.Definition)
}

func (s *WordStoreTestSuite) TestSetActiveWord_IncrementOutlivesCallerContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	var ctxErr error
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), "w1").DoAndReturn(
		func(ctx context.Context, id string) (entities.WordPatch, error) {
			ctxErr = ctx.Err()
			return entities.WordPatch{}, nil
		},
	)

	s.store.SetActiveWord(ctx, testWord("w1", "apple"))
	cancel()
	s.store.Wait()

	s.NoError(ctxErr)
}

func (s *WordStoreTestSuite) TestSetActiveWord_NilClears() {
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), "w1").Return(entities.WordPatch{}, nil)
	s.store.SetActiveWord(s.ctx, testWord("w1", "apple"))

	s.store.SetActiveWord(s.ctx, nil)
	s.Nil(s.store.Snapshot().Active)
}

func (s *WordStoreTestSuite) TestLookupWord_ActivatesResult() {
	s.api.EXPECT().FetchWordByKey(gomock.Any(), "Apple").Return(testWord("w1", "apple"), nil)
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), "w1").Return(entities.WordPatch{}, nil)
	states := s.recordStates()

	s.Require().NoError(s.store.LookupWord(s.ctx, "Apple"))

	st := s.store.Snapshot()
	s.Equal("w1", st.Active.ID)
	s.False(st.Loading)
	s.True(states()[0].Loading)
}

func (s *WordStoreTestSuite) TestLookupWord_NotFoundClearsActive() {
	s.api.EXPECT().FetchWordByKey(gomock.Any(), "apple").Return(testWord("w1", "apple"), nil)
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), "w1").Return(entities.WordPatch{}, nil)
	s.api.EXPECT().FetchWordByKey(gomock.Any(), "qwzx").
		Return(nil, &api.APIError{Op: "fetch word", StatusCode: 404, Message: "Word not found"})

	s.Require().NoError(s.store.LookupWord(s.ctx, "apple"))
	err := s.store.LookupWord(s.ctx, "qwzx")

	s.ErrorIs(err, api.ErrNotFound)
	st := s.store.Snapshot()
	s.Nil(st.Active)
	s.False(st.Loading)
	s.Equal("Error fetching word: Word not found", st.Error)
}

func (s *WordStoreTestSuite) TestLookupWord_TransportErrorKeepsActive() {
	s.api.EXPECT().FetchWordByKey(gomock.Any(), "apple").Return(testWord("w1", "apple"), nil)
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), "w1").Return(entities.WordPatch{}, nil)
	s.api.EXPECT().FetchWordByKey(gomock.Any(), "pear").
		Return(nil, &api.TransportError{Op: "fetch word", Err: errors.New("connection refused")})

	s.Require().NoError(s.store.LookupWord(s.ctx, "apple"))
	s.Error(s.store.LookupWord(s.ctx, "pear"))

	st := s.store.Snapshot()
	s.Require().NotNil(st.Active)
	s.Equal("w1", st.Active.ID)
	s.False(st.Loading)
	s.NotEmpty(st.Error)
}

func (s *WordStoreTestSuite) TestLookupWord_BlankKeyDoesNothing() {
	states := s.recordStates()
	s.NoError(s.store.LookupWord(s.ctx, "  "))
	s.Empty(states())
}

func (s *WordStoreTestSuite) TestGenerateWord_BlankPromptDoesNothing() {
	states := s.recordStates()

	s.NoError(s.store.GenerateWord(s.ctx, ""))
	s.NoError(s.store.GenerateWord(s.ctx, "   "))

	s.Empty(states(), "no loading toggle")
	s.False(s.store.Snapshot().Loading)
}

func (s *WordStoreTestSuite) TestGenerateWord_ActivatesResult() {
	s.api.EXPECT().GenerateWord(gomock.Any(), "serendipity", "en").Return(testWord("w9", "serendipity"), nil)
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), "w9").Return(entities.WordPatch{}, nil)

	s.Require().NoError(s.store.GenerateWord(s.ctx, "  serendipity "))

	st := s.store.Snapshot()
	s.Equal("serendipity", st.Active.Word)
	s.False(st.Loading)
}

func (s *WordStoreTestSuite) TestGenerateWord_FailureClearsLoading() {
	s.api.EXPECT().GenerateWord(gomock.Any(), "apple", "en").
		Return(nil, &api.APIError{Op: "generate word", StatusCode: 502, Message: "model unavailable"})

	s.Error(s.store.GenerateWord(s.ctx, "apple"))

	st := s.store.Snapshot()
	s.False(st.Loading)
	s.Equal("Error generating word: model unavailable", st.Error)
}

func (s *WordStoreTestSuite) activateWithList(word *entities.Word) {
	s.api.EXPECT().ListWords(gomock.Any(), "", 1).Return(&api.WordPage{Items: []entities.Word{*word}, Page: 1, TotalPages: 1, TotalCount: 1}, nil)
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), word.ID).Return(entities.WordPatch{}, nil)
	s.Require().NoError(s.store.FetchWords(s.ctx))
	s.store.SetActiveWord(s.ctx, word)
	s.store.Wait()
}

func (s *WordStoreTestSuite) TestUpdateWordExamples_MergesOnlyExamples() {
	word := testWord("w1", "apple")
	s.activateWithList(word)
	before := s.store.Snapshot()

	examples := []string{"fresh example"}
	definition := "should be ignored"
	s.api.EXPECT().RegenerateField(gomock.Any(), api.FieldRequest{
		ID: "w1", Word: "apple", Language: "en", Kind: entities.FieldExamples, Previous: word.Examples,
	}).Return(entities.WordPatch{Examples: &examples, Definition: &definition, UpdatedAt: &updatedAt}, nil)

	s.Require().NoError(s.store.UpdateWordExamples(s.ctx, "w1", "apple", "en", word.Examples))

	after := s.store.Snapshot()
	expected := *before.Active
	expected.Examples = examples
	expected.UpdatedAt = updatedAt
	s.Equal(expected, *after.Active)

	expectedItem := before.List.Items[0]
	expectedItem.Examples = examples
	expectedItem.UpdatedAt = updatedAt
	s.Equal(expectedItem, after.List.Items[0])
	s.False(after.LoadingUpdate)
}

func (s *WordStoreTestSuite) TestUpdateWordImage_MergesOnlyImage() {
	word := testWord("w1", "apple")
	s.activateWithList(word)

	img := "https://img/new.png"
	s.api.EXPECT().RegenerateField(gomock.Any(), api.FieldRequest{
		ID: "w1", Word: "apple", Kind: entities.FieldImage, PreviousImage: word.Image,
	}).Return(entities.WordPatch{Image: &img, UpdatedAt: &updatedAt}, nil)

	s.Require().NoError(s.store.UpdateWordImage(s.ctx, "w1", "apple", word.Image))

	st := s.store.Snapshot()
	s.Equal(img, st.Active.Image)
	s.Equal(word.Examples, st.Active.Examples)
	s.Equal(word.Synonyms, st.Active.Synonyms)
	s.Equal(word.Level, st.Active.Level)
}

func (s *WordStoreTestSuite) TestUpdateWordField_UsesCachedPreviousValues() {
	word := testWord("w1", "apple")
	s.activateWithList(word)

	types := []entities.WordType{"verb"}
	s.api.EXPECT().RegenerateField(gomock.Any(), api.FieldRequest{
		ID: "w1", Word: "apple", Language: "en", Kind: entities.FieldWordTypes, Previous: []string{"noun"},
	}).Return(entities.WordPatch{WordTypes: &types}, nil)

	s.Require().NoError(s.store.UpdateWordField(s.ctx, "w1", entities.FieldWordTypes))
	s.Equal(types, s.store.Snapshot().Active.WordTypes)
}

func (s *WordStoreTestSuite) TestUpdateWordField_UnknownWord() {
	s.Error(s.store.UpdateWordField(s.ctx, "missing", entities.FieldExamples))
}

func (s *WordStoreTestSuite) TestUpdateWordSynonyms_LastCompletionWins() {
	word := testWord("w1", "apple")
	s.activateWithList(word)

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	older := []string{"older"}
	newer := []string{"newer"}

	s.api.EXPECT().RegenerateField(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req api.FieldRequest) (entities.WordPatch, error) {
			close(firstStarted)
			<-releaseFirst
			return entities.WordPatch{Synonyms: &older}, nil
		},
	)
	s.api.EXPECT().RegenerateField(gomock.Any(), gomock.Any()).Return(entities.WordPatch{Synonyms: &newer}, nil)

	done := make(chan error, 1)
	go func() { done <- s.store.UpdateWordSynonyms(s.ctx, "w1", "apple", "en", nil) }()
	<-firstStarted
	s.Require().NoError(s.store.UpdateWordSynonyms(s.ctx, "w1", "apple", "en", nil))
	s.True(s.store.Snapshot().LoadingUpdate, "first update still in flight")

	close(releaseFirst)
	s.Require().NoError(<-done)

	st := s.store.Snapshot()
	s.Equal(older, st.Active.Synonyms)
	s.False(st.LoadingUpdate)
}

func (s *WordStoreTestSuite) TestUpdateWordLevel_PatchesAfterSuccess() {
	word := testWord("w1", "apple")
	s.activateWithList(word)
	states := s.recordStates()

	hard := entities.LevelHard
	s.api.EXPECT().UpdateWordLevel(gomock.Any(), "w1", entities.LevelHard).DoAndReturn(
		func(ctx context.Context, id string, level entities.Level) (entities.WordPatch, error) {
			st := s.store.Snapshot()
			s.Equal(entities.LevelMedium, st.Active.Level, "no optimistic update")
			s.True(st.LoadingUpdate)
			return entities.WordPatch{Level: &hard, UpdatedAt: &updatedAt}, nil
		},
	)

	s.Require().NoError(s.store.UpdateWordLevel(s.ctx, "w1", entities.LevelHard))

	st := s.store.Snapshot()
	s.Equal(entities.LevelHard, st.Active.Level)
	s.Equal(entities.LevelHard, st.List.Items[0].Level)
	s.False(st.LoadingUpdate)
	s.NotEmpty(states())
}

func (s *WordStoreTestSuite) TestUpdateWordLevel_FailureKeepsLevel() {
	word := testWord("w1", "apple")
	s.activateWithList(word)

	s.api.EXPECT().UpdateWordLevel(gomock.Any(), "w1", entities.LevelEasy).
		Return(entities.WordPatch{}, &api.APIError{Op: "update level", StatusCode: 500})

	s.Error(s.store.UpdateWordLevel(s.ctx, "w1", entities.LevelEasy))

	st := s.store.Snapshot()
	s.Equal(entities.LevelMedium, st.Active.Level)
	s.Equal(entities.LevelMedium, st.List.Items[0].Level)
	s.False(st.LoadingUpdate)
	s.Contains(st.Error, "Error updating word level")
}

func (s *WordStoreTestSuite) TestFetchDeck() {
	s.api.EXPECT().FetchDeck(gomock.Any()).Return([]entities.Word{*testWord("w1", "apple")}, nil)
	s.api.EXPECT().FetchDeck(gomock.Any()).Return(nil, &api.TransportError{Op: "fetch deck", Err: errors.New("offline")})

	s.Require().NoError(s.store.FetchDeck(s.ctx))
	s.Error(s.store.FetchDeck(s.ctx))

	st := s.store.Snapshot()
	s.Equal([]string{"apple"}, itemWords(st.Deck))
	s.Equal("Failed to fetch recent hard or medium words: fetch deck: request failed: offline", st.Error)
	s.False(st.Loading)
}

func (s *WordStoreTestSuite) TestReset_DropsInFlightLookup() {
	started := make(chan struct{})
	release := make(chan struct{})
	s.api.EXPECT().FetchWordByKey(gomock.Any(), "apple").DoAndReturn(
		func(ctx context.Context, key string) (*entities.Word, error) {
			close(started)
			<-release
			return testWord("w1", "apple"), nil
		},
	)

	done := make(chan error, 1)
	go func() { done <- s.store.LookupWord(s.ctx, "apple") }()
	<-started
	s.store.Reset()
	close(release)
	s.Require().NoError(<-done)

	st := s.store.Snapshot()
	s.Nil(st.Active)
	s.False(st.Loading)
	s.Equal(1, st.List.CurrentPage)
}

func (s *WordStoreTestSuite) TestReset_EarlierFailureLeavesNewLookupAlone() {
	oldStarted, releaseOld := make(chan struct{}), make(chan struct{})
	newStarted, releaseNew := make(chan struct{}), make(chan struct{})
	s.api.EXPECT().FetchWordByKey(gomock.Any(), "old").DoAndReturn(
		func(ctx context.Context, key string) (*entities.Word, error) {
			close(oldStarted)
			<-releaseOld
			return nil, &api.TransportError{Op: "fetch word", Err: errors.New("boom")}
		},
	)
	s.api.EXPECT().FetchWordByKey(gomock.Any(), "new").DoAndReturn(
		func(ctx context.Context, key string) (*entities.Word, error) {
			close(newStarted)
			<-releaseNew
			return testWord("w2", "new"), nil
		},
	)
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), "w2").Return(entities.WordPatch{}, nil)

	oldDone := make(chan error, 1)
	go func() { oldDone <- s.store.LookupWord(s.ctx, "old") }()
	<-oldStarted
	s.store.Reset()

	newDone := make(chan error, 1)
	go func() { newDone <- s.store.LookupWord(s.ctx, "new") }()
	<-newStarted

	close(releaseOld)
	s.Error(<-oldDone)

	st := s.store.Snapshot()
	s.True(st.Loading, "the lookup issued after Reset is still running")
	s.Empty(st.Error)

	close(releaseNew)
	s.Require().NoError(<-newDone)

	st = s.store.Snapshot()
	s.False(st.Loading)
	s.Require().NotNil(st.Active)
	s.Equal("new", st.Active.Word)
}

func (s *WordStoreTestSuite) TestReset_EarlierUpdateKeepsUpdateFlag() {
	word := testWord("w1", "apple")
	oldStarted, releaseOld := make(chan struct{}), make(chan struct{})
	newStarted, releaseNew := make(chan struct{}), make(chan struct{})
	s.api.EXPECT().UpdateWordLevel(gomock.Any(), "w1", entities.LevelHard).DoAndReturn(
		func(ctx context.Context, id string, level entities.Level) (entities.WordPatch, error) {
			close(oldStarted)
			<-releaseOld
			return entities.WordPatch{}, &api.TransportError{Op: "update level", Err: errors.New("boom")}
		},
	)
	s.api.EXPECT().UpdateWordLevel(gomock.Any(), "w1", entities.LevelEasy).DoAndReturn(
		func(ctx context.Context, id string, level entities.Level) (entities.WordPatch, error) {
			close(newStarted)
			<-releaseNew
			return entities.WordPatch{Level: &level}, nil
		},
	)

	oldDone := make(chan error, 1)
	go func() { oldDone <- s.store.UpdateWordLevel(s.ctx, word.ID, entities.LevelHard) }()
	<-oldStarted
	s.store.Reset()

	newDone := make(chan error, 1)
	go func() { newDone <- s.store.UpdateWordLevel(s.ctx, word.ID, entities.LevelEasy) }()
	<-newStarted

	close(releaseOld)
	s.Error(<-oldDone)

	st := s.store.Snapshot()
	s.True(st.LoadingUpdate)
	s.Empty(st.Error)

	close(releaseNew)
	s.Require().NoError(<-newDone)
	s.False(s.store.Snapshot().LoadingUpdate)
}

func (s *WordStoreTestSuite) TestSnapshot_IsIsolated() {
	s.api.EXPECT().IncrementSeenCount(gomock.Any(), "w1").Return(entities.WordPatch{}, nil)
	s.store.SetActiveWord(s.ctx, testWord("w1", "apple"))

	st := s.store.Snapshot()
	st.Active.Examples[0] = "mutated"

	s.Equal("an example with apple", s.store.Snapshot().Active.Examples[0])
}
