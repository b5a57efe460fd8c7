package extract

import (
	"errors"

	"github.com/kkdai/youtube/v2"
	"youtube-downloader-web/apperr"
)

// Classify maps errors returned by the youtube client onto apperr kinds.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var classified *apperr.Error
	if errors.As(err, &classified) {
		return classified
	}

	switch {
	case errors.Is(err, youtube.ErrVideoPrivate),
		errors.Is(err, youtube.ErrLoginRequired),
		errors.Is(err, youtube.ErrNotPlayableInEmbed):
		return apperr.Wrap(apperr.VideoUnavailable, err)
	case errors.Is(err, youtube.ErrInvalidCharactersInVideoID),
		errors.Is(err, youtube.ErrVideoIDMinLength):
		return apperr.Wrap(apperr.InvalidURL, err)
	}

	var status *youtube.ErrPlayabiltyStatus
	if errors.As(err, &status) {
		return apperr.Wrap(apperr.VideoUnavailable, err)
	}
	var statusValue youtube.ErrPlayabiltyStatus
	if errors.As(err, &statusValue) {
		return apperr.Wrap(apperr.VideoUnavailable, err)
	}

	wrapped := apperr.Wrap(apperr.NetworkError, err)
	var code youtube.ErrUnexpectedStatusCode
	if errors.As(err, &code) && int(code) >= 400 {
		wrapped.WithStatus(int(code))
	}
	return wrapped
}
