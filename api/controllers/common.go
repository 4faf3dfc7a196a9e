package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/stocktrak/stocktrak-backend/api/validators"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

func pageFromQuery(r *http.Request) (pagination.Page, error) {
	number, err := validators.ParseQueryInt(r, "page", 1, 1, 1_000_000)
	if err != nil {
		return pagination.Page{}, err
	}
	size, err := validators.ParseQueryInt(r, "page_size", pagination.DefaultPageSize, 1, pagination.MaxPageSize)
	if err != nil {
		return pagination.Page{}, err
	}
	return pagination.Normalize(number, size), nil
}

// queryID reads an optional positive int64 query parameter.
func queryID(r *http.Request, key string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid "+key)
	}
	return &id, nil
}
