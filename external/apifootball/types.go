package apifootball

// envelope is the shared response wrapper of every v3 endpoint. Errors come
// back as either an empty list or an object keyed by field, so it stays raw.
type envelope[T any] struct {
	Errors   any `json:"errors"`
	Results  int `json:"results"`
	Response []T `json:"response"`
}

type standingsItem struct {
	League standingsLeague `json:"league"`
}

type standingsLeague struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Country   string          `json:"country"`
	Logo      string          `json:"logo"`
	Season    int             `json:"season"`
	Standings [][]standingRow `json:"standings"`
}

type standingRow struct {
	Rank        int          `json:"rank"`
	Team        teamRef      `json:"team"`
	Points      int          `json:"points"`
	GoalsDiff   int          `json:"goalsDiff"`
	Form        *string      `json:"form"`
	Description *string      `json:"description"`
	All         recordTotals `json:"all"`
	Home        recordTotals `json:"home"`
	Away        recordTotals `json:"away"`
}

type recordTotals struct {
	Played int         `json:"played"`
	Win    int         `json:"win"`
	Draw   int         `json:"draw"`
	Lose   int         `json:"lose"`
	Goals  goalsTotals `json:"goals"`
}

type goalsTotals struct {
	For     int `json:"for"`
	Against int `json:"against"`
}

type teamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type fixtureItem struct {
	Fixture fixtureCore   `json:"fixture"`
	League  fixtureLeague `json:"league"`
	Teams   struct {
		Home teamRef `json:"home"`
		Away teamRef `json:"away"`
	} `json:"teams"`
	Goals scorePair `json:"goals"`
	Score struct {
		Halftime scorePair `json:"halftime"`
		Fulltime scorePair `json:"fulltime"`
	} `json:"score"`
}

type fixtureCore struct {
	ID       int64   `json:"id"`
	Referee  *string `json:"referee"`
	Timezone string  `json:"timezone"`
	Date     string  `json:"date"`
	Venue    struct {
		Name *string `json:"name"`
		City *string `json:"city"`
	} `json:"venue"`
	Status struct {
		Long    string `json:"long"`
		Short   string `json:"short"`
		Elapsed *int   `json:"elapsed"`
	} `json:"status"`
}

type fixtureLeague struct {
	ID     int64  `json:"id"`
	Season int    `json:"season"`
	Round  string `json:"round"`
}

type scorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}
