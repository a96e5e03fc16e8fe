package video

import (
	"strings"
	"unicode/utf8"

	"github.com/coralstream/catalog/internal/domain/validation"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 4000
)

// Validate checks every metadata invariant of the video, appending one error
// per violated rule. All rules always run; earlier failures never suppress
// later ones.
func (v *Video) Validate(handler validation.Handler) {
	validateTitle(v.title, handler)
	validateDescription(v.description, handler)
	validateLaunchedAt(v.launchedAt, handler)
	validateRating(v.rating, handler)
}

func validateTitle(title string, handler validation.Handler) {
	if strings.TrimSpace(title) == "" {
		handler.AddError(validation.NewError("title", "should not be empty"))
		return
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		handler.AddError(validation.NewError("title", "must be between 1 and 255 characters"))
	}
}

func validateDescription(description string, handler validation.Handler) {
	if strings.TrimSpace(description) == "" {
		handler.AddError(validation.NewError("description", "should not be empty"))
		return
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		handler.AddError(validation.NewError("description", "must be between 1 and 4000 characters"))
	}
}

func validateLaunchedAt(launchedAt int, handler validation.Handler) {
	if launchedAt == 0 {
		handler.AddError(validation.NewError("launchedAt", "should not be empty"))
	}
}

func validateRating(rating Rating, handler validation.Handler) {
	if rating == "" {
		handler.AddError(validation.NewError("rating", "should not be empty"))
		return
	}
	if !rating.IsValid() {
		handler.AddError(validation.NewError("rating", "is not a valid classification"))
	}
}
