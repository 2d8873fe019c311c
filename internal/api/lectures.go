package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mrlokans/lexicard/internal/entities"
)

const lecturesPath = "/api/lectures"

// LecturePage is one page of the lecture catalogue.
type LecturePage struct {
	Items      []entities.Lecture
	Page       int
	TotalPages int
	TotalCount int
}

// lectureList nests the pagination inside data, unlike the word list.
type lectureList struct {
	Data  []entities.Lecture `json:"data"`
	Page  int                `json:"page"`
	Pages int                `json:"pages"`
	Total int                `json:"total"`
}

// ListLectures fetches one page of lectures.
func (c *Client) ListLectures(ctx context.Context, page, pageSize int) (*LecturePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(pageSize))

	var list lectureList
	_, err := c.do(ctx, request{
		op:     "list lectures",
		method: http.MethodGet,
		url:    c.url(lecturesPath) + "?" + q.Encode(),
		out:    &list,
		validate: func() error {
			if list.Data == nil {
				return shapeError("list lectures", "missing data.data")
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &LecturePage{
		Items:      list.Data,
		Page:       list.Page,
		TotalPages: list.Pages,
		TotalCount: list.Total,
	}, nil
}
