package dto

// RateRequest accepts both "stars" and "rating" as the star field, matching
// the public API contract.
type RateRequest struct {
	Stars   *int    `json:"stars"`
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// StarValue resolves the star count, preferring "stars" over "rating".
// Returns 0 when neither was supplied, which fails validation downstream.
func (r RateRequest) StarValue() int {
	if r.Stars != nil {
		return *r.Stars
	}
	if r.Rating != nil {
		return *r.Rating
	}
	return 0
}

type RateResponse struct {
	ID      int64 `json:"id"`
	MediaID int64 `json:"mediaId"`
	Rating  int   `json:"rating"`
	UserID  int64 `json:"userId"`
}

type AverageRatingResponse struct {
	MediaID       int64   `json:"mediaId"`
	AverageRating float64 `json:"averageRating"`
	RatingCount   int64   `json:"ratingCount"`
}
