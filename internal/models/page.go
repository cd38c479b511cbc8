package models

import "math"

// ContactPage is the paginated listing envelope.
// Field names are part of the public contract.
// swagger:model ContactPage
type ContactPage struct {
	ItemCount   int64     `json:"itemCount" example:"42"`
	Data        []Contact `json:"data"`
	PerPage     int64     `json:"perPage" example:"10"`
	CurrentPage int64     `json:"currentPage" example:"1"`
	PageCount   int64     `json:"pageCount" example:"5"`
	SlNo        int64     `json:"slNo" example:"1"`
	HasPrevPage bool      `json:"hasPrevPage" example:"false"`
	HasNextPage bool      `json:"hasNextPage" example:"true"`
	Prev        *int64    `json:"prev" example:"1"`
	Next        *int64    `json:"next" example:"2"`
}

// NewContactPage fills the pagination metadata for one page of results.
func NewContactPage(items []Contact, total, page, limit int64) *ContactPage {
	if items == nil {
		items = []Contact{}
	}

	if limit < 1 {
		limit = 1
	}

	pageCount := total / limit
	if total%limit != 0 {
		pageCount++
	}
	if pageCount < 1 {
		pageCount = 1
	}

	p := &ContactPage{
		ItemCount:   total,
		Data:        items,
		PerPage:     limit,
		CurrentPage: page,
		PageCount:   pageCount,
		SlNo:        serialNumber(page, limit),
		HasPrevPage: page > 1,
		HasNextPage: page < pageCount,
	}
	if p.HasPrevPage {
		prev := page - 1
		p.Prev = &prev
	}
	if p.HasNextPage {
		next := page + 1
		p.Next = &next
	}
	return p
}

// serialNumber is (page-1)*limit + 1, saturating at math.MaxInt64.
func serialNumber(page, limit int64) int64 {
	if page < 1 {
		return 1
	}
	if page-1 > (math.MaxInt64-1)/limit {
		return math.MaxInt64
	}
	return (page-1)*limit + 1
}
