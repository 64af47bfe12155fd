package seed

import (
	"time"

	"kodevidecamp/internal/models"
)

const (
	openingBanner = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iNDAwIiBoZWlnaHQ9IjMwMCIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj4KICA8ZGVmcz4KICAgIDxsaW5lYXJHcmFkaWVudCBpZD0iZ3JhZGllbnQiIHgxPSIwJSIgeTE9IjAlIiB4Mj0iMTAwJSIgeTI9IjEwMCUiPgogICAgICA8c3RvcCBvZmZzZXQ9IjAlIiBzdHlsZT0ic3RvcC1jb2xvcjojNjY3ZWVhO3N0b3Atb3BhY2l0eToxIiAvPgogICAgICA8c3RvcCBvZmZzZXQ9IjEwMCUiIHN0eWxlPSJzdG9wLWNvbG9yOiM3NjRiYTI7c3RvcC1vcGFjaXR5OjEiIC8+CiAgICA8L2xpbmVhckdyYWRpZW50PgogIDwvZGVmcz4KICA8cmVjdCB3aWR0aD0iNDAwIiBoZWlnaHQ9IjMwMCIgZmlsbD0idXJsKCNncmFkaWVudCkiLz4KICA8dGV4dCB4PSIyMDAiIHk9IjEyMCIgZm9udC1mYW1pbHk9IkFyaWFsLCBzYW5zLXNlcmlmIiBmb250LXNpemU9IjI0IiBmaWxsPSJ3aGl0ZSIgdGV4dC1hbmNob3I9Im1pZGRsZSI+CiAgICA8dHNwYW4geD0iMjAwIiBkeT0iMCI+S29kZVZpZGVvQ2FtcDwvdHNwYW4+CiAgICA8dHNwYW4geD0iMjAwIiBkeT0iNDAiPldlYnNpdGUgT3BlbiE8L3RzcGFuPgogIDwvdGV4dD4KICA8Y2lyY2xlIGN4PSIyMDAiIGN5PSIyMDAiIHI9IjMwIiBmaWxsPSJyZ2JhKDI1NSwyNTUsMjU1LDAuMykiLz4KICA8cG9seWdvbiBwb2ludHM9IjE5MCwyMDAgMjEwLDIwMCAyMDAsMTgwIiBmaWxsPSJ3aGl0ZSIvPgo8L3N2Zz4="
	coursesBanner = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iNDAwIiBoZWlnaHQ9IjMwMCIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj4KICA8ZGVmcz4KICAgIDxsaW5lYXJHcmFkaWVudCBpZD0iZ3JhZGllbnQyIiB4MT0iMCUiIHkxPSIwJSIgeDI9IjEwMCUiIHkyPSIxMDAlIj4KICAgICAgPHN0b3Agb2Zmc2V0PSIwJSIgc3R5bGU9InN0b3AtY29sb3I6I2YwOTNmYjtzdG9wLW9wYWNpdHk6MSIgLz4KICAgICAgPHN0b3Agb2Zmc2V0PSIxMDAlIiBzdHlsZT0ic3RvcC1jb2xvcjojNjY3ZWVhO3N0b3Atb3BhY2l0eToxIiAvPgogICAgPC9saW5lYXJHcmFkaWVudD4KICA8L2RlZnM+CiAgPHJlY3Qgd2lkdGg9IjQwMCIgaGVpZ2h0PSIzMDAiIGZpbGw9InVybCgjZ3JhZGllbnQyKSIvPgogIDx0ZXh0IHg9IjIwMCIgeT0iMTIwIiBmb250LWZhbWlseT0iQXJpYWwsIHNhbnMtc2VyaWYiIGZvbnQtc2l6ZT0iMjAiIGZpbGw9IndoaXRlIiB0ZXh0LWFuY2hvcj0ibWlkZGxlIj4KICAgIDx0c3BhbiB4PSIyMDAiIGR5PSIwIj5OZXcgQ291cnNlczwvdHNwYW4+CiAgICA8dHNwYW4geD0iMjAwIiBkeT0iMzAiPlJlYWN0ICYgVnVlLmpzPC90c3Bhbj4KICAgIDx0c3BhbiB4PSIyMDAiIGR5PSIzMCI+Tm9kZS5qczwvdHNwYW4+CiAgPC90ZXh0PgogIDxyZWN0IHg9IjE3MCIgeT0iMTkwIiB3aWR0aD0iNjAiIGhlaWdodD0iNDAiIGZpbGw9InJnYmEoMjU1LDI1NSwyNTUsMC4zKSIgcng9IjUiLz4KICA8cG9seWdvbiBwb2ludHM9IjE5MCwyMDAgMjEwLDIxMCAxOTAsMjIwIiBmaWxsPSJ3aGl0ZSIvPgo8L3N2Zz4="
)

func builtinNotices(now time.Time) []models.Notice {
	ts := func(daysAgo int) int64 { return now.Add(-time.Duration(daysAgo) * day).UnixMilli() }

	return []models.Notice{
		{
			ID:          1,
			Title:       "KodeVideCamp 웹사이트 오픈!",
			Description: "KodeVideCamp 공식 웹사이트가 오픈되었습니다. 앞으로 다양한 코딩 교육 콘텐츠를 제공할 예정입니다.",
			Images:      []models.NoticeImage{{Src: openingBanner, Alt: "KodeVideCamp 웹사이트 오픈"}},
			Date:        "2025-01-10",
			Timestamp:   ts(1),
		},
		{
			ID:          2,
			Title:       "새로운 강의 시리즈 출시 예정",
			Description: "React, Vue.js, Node.js를 다루는 새로운 강의 시리즈가 곧 출시됩니다. 많은 관심 부탁드립니다!",
			Images:      []models.NoticeImage{{Src: coursesBanner, Alt: "새로운 강의 시리즈"}},
			Date:        "2025-01-08",
			Timestamp:   ts(2),
		},
	}
}
