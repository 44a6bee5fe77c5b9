package cache

import (
	"strconv"
	"strings"
)

const KeyStations = "stations"

func KeyBoard(station string) string {
	return "board:" + strings.ToUpper(station)
}

// KeyStationSearch folds case and surrounding blanks so equivalent searches
// share an entry.
func KeyStationSearch(query string, limit int) string {
	return "search:" + strings.ToLower(strings.TrimSpace(query)) + ":" + strconv.Itoa(limit)
}
