package video

// Rating is the content classification of a video.
type Rating string

const (
	RatingER    Rating = "ER"
	RatingFree  Rating = "L"
	RatingAge10 Rating = "AGE_10"
	RatingAge12 Rating = "AGE_12"
	RatingAge14 Rating = "AGE_14"
	RatingAge16 Rating = "AGE_16"
	RatingAge18 Rating = "AGE_18"
)

// IsValid reports whether the rating is a known classification
func (r Rating) IsValid() bool {
	switch r {
	case RatingER, RatingFree, RatingAge10, RatingAge12, RatingAge14, RatingAge16, RatingAge18:
		return true
	default:
		return false
	}
}
