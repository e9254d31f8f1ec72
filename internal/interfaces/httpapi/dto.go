package httpapi

type seedDraftRatingsResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	BatchID   string `json:"batch_id"`
}

type loadTransactionsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	BatchID string `json:"batch_id"`
}

type loadGamesPlayedResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	BatchID string `json:"batch_id"`
}

type matchingPlayerDTO struct {
	DraftName string `json:"draft_name"`
	DraftID   int64  `json:"draft_id"`
	GP        int    `json:"gp"`
}

type matchingPlayersResponse struct {
	Success bool                `json:"success"`
	Count   int                 `json:"count"`
	Results []matchingPlayerDTO `json:"results"`
}

type healthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
