package response

import "parkspot/internal/usecase/queries"

type SpotResponse struct {
	ID             string   `json:"id"`
	OwnerID        string   `json:"owner_id"`
	Title          string   `json:"title"`
	Address        string   `json:"address"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	HourlyRate     string   `json:"hourly_rate"`
	OpenTime       string   `json:"open_time"`
	CloseTime      string   `json:"close_time"`
	AvailableDays  []string `json:"available_days"`
	TimeZone       string   `json:"time_zone"`
	TotalSlots     int32    `json:"total_slots"`
	AvailableSlots int32    `json:"available_slots"`
	CreatedAt      int64    `json:"created_at"`
	UpdatedAt      int64    `json:"updated_at"`
}

func FromSpotView(v *queries.SpotView) (*SpotResponse, error) {
	var res SpotResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromSpotList(items []*queries.SpotView) ([]*SpotResponse, error) {
	res := make([]*SpotResponse, 0, len(items))
	for _, it := range items {
		r, err := FromSpotView(it)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

type SpotSearchResponse struct {
	SpotResponse
	DistanceKm float64 `json:"distance_km"`
}

func FromSpotSearch(items []*queries.SpotSearchResult) ([]*SpotSearchResponse, error) {
	res := make([]*SpotSearchResponse, 0, len(items))
	for _, it := range items {
		r, err := FromSpotView(&it.SpotView)
		if err != nil {
			return nil, err
		}
		res = append(res, &SpotSearchResponse{SpotResponse: *r, DistanceKm: it.DistanceKm})
	}
	return res, nil
}

type RecentSearchResponse struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RadiusKm float64 `json:"radius_km"`
}

func FromRecentSearches(items []queries.RecentSearch) []RecentSearchResponse {
	res := make([]RecentSearchResponse, len(items))
	for i, it := range items {
		res[i] = RecentSearchResponse(it)
	}
	return res
}
