package stores

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/mrlokans/lexicard/internal/api"
	"github.com/mrlokans/lexicard/internal/entities"
)

// WordAPI is the part of the word service the word store talks to.
type WordAPI interface {
	FetchWordByKey(ctx context.Context, key string) (*entities.Word, error)
	ListWords(ctx context.Context, search string, page int) (*api.WordPage, error)
	GenerateWord(ctx context.Context, prompt, language string) (*entities.Word, error)
	UpdateWordLevel(ctx context.Context, id string, level entities.Level) (entities.WordPatch, error)
	RegenerateField(ctx context.Context, req api.FieldRequest) (entities.WordPatch, error)
	IncrementSeenCount(ctx context.Context, id string) (entities.WordPatch, error)
	FetchDeck(ctx context.Context) ([]entities.Word, error)
}

// LectureAPI is the part of the word service the lecture store talks to.
type LectureAPI interface {
	ListLectures(ctx context.Context, page, pageSize int) (*api.LecturePage, error)
}
