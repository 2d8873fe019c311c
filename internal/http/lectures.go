package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lexicard/internal/database"
	"github.com/mrlokans/lexicard/internal/entities"
)

const maxLecturePageSize = 50

type LecturesController struct {
	store LectureStore
}

func NewLecturesController(store LectureStore) *LecturesController {
	return &LecturesController{store: store}
}

// LecturePage nests its pagination inside data.
type LecturePage struct {
	Data  []entities.Lecture `json:"data"`
	Page  int                `json:"page"`
	Pages int                `json:"pages"`
	Total int64              `json:"total"`
}

// ListLectures returns one page of lectures.
// GET /api/lectures?page=n&limit=m
func (lc *LecturesController) ListLectures(c *gin.Context) {
	page := queryInt(c, "page", 1, 0)
	limit := queryInt(c, "limit", database.DefaultLecturePageSize, maxLecturePageSize)

	lectures, total, err := lc.store.ListLectures(page, limit)
	if err != nil {
		respondInternalError(c, err, "list lectures")
		return
	}

	respondData(c, http.StatusOK, LecturePage{
		Data:  lectures,
		Page:  page,
		Pages: database.Pages(total, limit),
		Total: total,
	})
}
