package http

import (
	"net/http"
	"strconv"
)

// monthYearFromQuery reads the month and year query parameters. Missing or
// malformed values come back as zero; services validate the range.
func monthYearFromQuery(r *http.Request) (month, year int) {
	month, _ = strconv.Atoi(r.URL.Query().Get("month"))
	year, _ = strconv.Atoi(r.URL.Query().Get("year"))
	return month, year
}
