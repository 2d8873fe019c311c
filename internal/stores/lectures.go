package stores

import (
	"context"
	"log"
	"slices"
	"sync"

	"github.com/mrlokans/lexicard/internal/entities"
)

const DefaultLecturePageSize = 10

// LectureState is an immutable snapshot of the lecture store. Items grows
// page by page; fetching page 1 starts over.
type LectureState struct {
	Items       []entities.Lecture
	CurrentPage int
	TotalPages  int
	TotalCount  int
	Loading     bool
	Error       string
}

func (s LectureState) clone() LectureState {
	s.Items = slices.Clone(s.Items)
	return s
}

// HasMore reports whether the server holds lectures beyond Items.
func (s LectureState) HasMore() bool {
	return len(s.Items) < s.TotalCount
}

type LectureStore struct {
	api LectureAPI

	mu      sync.Mutex
	state   LectureState
	subs    subscribers[LectureState]
	epoch   uint64 // bumped by page 1 fetches and Reset
	resets  uint64 // bumped by Reset only
	loading int    // requests started since the last Reset
}

func NewLectureStore(client LectureAPI) *LectureStore {
	return &LectureStore{api: client}
}

func (s *LectureStore) Snapshot() LectureState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to receive a snapshot after every transition. fn runs
// while the store is locked and must not call back into the store.
func (s *LectureStore) Subscribe(fn func(LectureState)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.subs.add(fn)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.subs.remove(id)
		s.mu.Unlock()
	}
}

func (s *LectureStore) update(fn func(st *LectureState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	s.subs.publish(s.state.clone())
}

// Reset clears the catalogue. Requests still in flight neither land nor
// touch Loading or Error.
func (s *LectureStore) Reset() {
	s.update(func(st *LectureState) {
		s.epoch++
		s.resets++
		s.loading = 0
		*st = LectureState{}
	})
}

// HasMore reports whether another page can be requested. FetchLectures does
// not check this itself.
func (s *LectureStore) HasMore() bool {
	return s.Snapshot().HasMore()
}

// FetchLectures loads one page. Page 1 replaces Items, later pages are
// appended. Concurrent appends land in completion order, which may leave
// Items misordered, so callers request later pages one at a time.
// On failure Items is left as it was.
func (s *LectureStore) FetchLectures(ctx context.Context, page, pageSize int) error {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultLecturePageSize
	}

	var epoch, resets uint64
	s.update(func(st *LectureState) {
		if page == 1 {
			// a fresh first page invalidates appends still in flight
			s.epoch++
		}
		epoch, resets = s.epoch, s.resets
		s.loading++
		st.Loading = true
		st.Error = ""
	})

	result, err := s.api.ListLectures(ctx, page, pageSize)

	s.update(func(st *LectureState) {
		if resets == s.resets {
			s.loading = max(s.loading-1, 0)
			st.Loading = s.loading > 0
		}

		if epoch != s.epoch {
			staleResponses.WithLabelValues("lectures").Inc()
			log.Printf("[STORE] Discarding stale lecture page %d", page)
			err = nil
			return
		}
		if err != nil {
			st.Error = describe("Failed to fetch lectures", err)
			return
		}

		if page == 1 {
			st.Items = slices.Clone(result.Items)
		} else {
			st.Items = append(slices.Clone(st.Items), result.Items...)
		}
		st.CurrentPage = page
		st.TotalPages = result.TotalPages
		st.TotalCount = result.TotalCount
	})
	return err
}

// GetLectureByID looks among the lectures fetched so far. It never goes to
// the network.
func (s *LectureStore) GetLectureByID(id string) (entities.Lecture, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.state.Items, func(l entities.Lecture) bool { return l.ID == id })
	if i < 0 {
		return entities.Lecture{}, false
	}
	return s.state.Items[i], true
}
