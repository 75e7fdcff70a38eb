package store

import (
	"strings"
	"time"

	"github.com/hmartins/secconsole/internal/model"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// paginate slices the filtered set in insertion order and reports the total
// counted before slicing.
func paginate[T any](items []T, req model.PageRequest) model.Page[T] {
	page := req.CurrentPage
	if page < 1 {
		page = defaultPage
	}
	size := req.PageSize
	if size < 1 {
		size = defaultPageSize
	}

	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return model.Page[T]{
		Items: out,
		Pagination: model.Pagination{
			Total:       len(items),
			CurrentPage: page,
			PageSize:    size,
		},
	}
}

// matchName is the case-insensitive substring match applied to name-like
// filter fields. An empty needle matches everything.
func matchName(value, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}

func timePtr(t time.Time) *time.Time { return &t }
