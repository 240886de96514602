package utils

import (
	"net/http"
	"strconv"

	"caremind-service/internal/app/models"
	"caremind-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

func ParseSessionData(sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrParseSessionData(err)
	}
	return session, nil
}

func ParsePaginationQuery(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
