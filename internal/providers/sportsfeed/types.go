package sportsfeed

const ProviderName = "sportsfeed"

type matchesResponse struct {
	Data []matchRecord `json:"data"`
}

type matchRecord struct {
	ID        string        `json:"id"`
	Sport     string        `json:"sport"`
	League    string        `json:"league"`
	Status    string        `json:"status"`
	Minute    *int          `json:"minute"`
	StartTime string        `json:"start_time"`
	HomeTeam  teamRecord    `json:"home_team"`
	AwayTeam  teamRecord    `json:"away_team"`
	HomeScore *int          `json:"home_score"`
	AwayScore *int          `json:"away_score"`
	Events    []eventRecord `json:"events"`
}

type teamRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type eventRecord struct {
	Kind   string `json:"kind"`
	TeamID string `json:"team_id"`
	Minute int    `json:"minute"`
	Player string `json:"player"`
}
