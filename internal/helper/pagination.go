package helper

import (
	"net/url"
	"strconv"

	"LostFoundAPI/internal/model"
)

const (
	DefaultPage   = 0
	DefaultSize   = 10
	DefaultSortBy = "createdAt"
)

// sortableFields whitelists the fields a client may sort report pages by.
var sortableFields = map[string]bool{
	"createdAt":        true,
	"updatedAt":        true,
	"rewardAmount":     true,
	"incidentDateTime": true,
}

// ParsePageable reads page, size, sortBy and sortDir query parameters.
// Size is clamped to [1, maxSize], negative pages clamp to 0, and an
// unknown sort field is a client error.
func ParsePageable(query url.Values, maxSize int) (model.Pageable, error) {
	p := model.Pageable{
		Page:    DefaultPage,
		Size:    DefaultSize,
		SortBy:  DefaultSortBy,
		SortDir: "desc",
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return p, NewBadRequestError("page must be an integer")
		}
		p.Page = page
	}
	if p.Page < 0 {
		p.Page = 0
	}

	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return p, NewBadRequestError("size must be an integer")
		}
		p.Size = size
	}
	if p.Size < 1 {
		p.Size = 1
	}
	if p.Size > maxSize {
		p.Size = maxSize
	}

	if sortBy := query.Get("sortBy"); sortBy != "" {
		p.SortBy = sortBy
	}
	if !sortableFields[p.SortBy] {
		return p, NewBadRequestError("unknown sort field: " + p.SortBy)
	}

	if sortDir := query.Get("sortDir"); sortDir == "asc" {
		p.SortDir = "asc"
	}

	return p, nil
}

// TotalPages computes the page count for a total element count.
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
