package models

type AdminStats struct {
	Requests             int `json:"requests"`
	ActiveRequests       int `json:"active_requests"`
	Offers               int `json:"offers"`
	PendingOffers        int `json:"pending_offers"`
	Unlocks              int `json:"unlocks"`
	Messages             int `json:"messages"`
	Companies            int `json:"companies"`
	PendingFraudFlags    int `json:"pending_fraud_flags"`
	PendingVerifications int `json:"pending_verifications"`
}
