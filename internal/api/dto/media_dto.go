package dto

// MediaRequest covers both create and update. Pointer fields distinguish
// "absent" from zero values.
type MediaRequest struct {
	Title          string  `json:"title"`
	Rating         *int    `json:"rating"`
	Genre          *string `json:"genre"`
	MediaType      *string `json:"mediaType"`
	AgeRestriction *int    `json:"ageRestriction"`
	ReleaseYear    *int    `json:"releaseYear"`
}
