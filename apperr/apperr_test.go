package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		e := New(InvalidURL)
		So(e.Kind, ShouldEqual, InvalidURL)
		So(e.Message, ShouldEqual, "Please enter a valid YouTube URL")
		So(e.StatusCode, ShouldEqual, http.StatusBadRequest)
		So(New(FormatUnavailable).StatusCode, ShouldEqual, http.StatusBadRequest)
		So(New(NetworkError).StatusCode, ShouldEqual, http.StatusInternalServerError)
	})
}

func TestWrap(t *testing.T) {
	Convey("Wrap", t, func() {
		Convey("Should keep the upstream message", func() {
			upstream := errors.New("connection reset by peer")
			e := Wrap(NetworkError, upstream)
			So(e.Message, ShouldEqual, "connection reset by peer")
			So(errors.Is(e, upstream), ShouldBeTrue)
		})
		Convey("Should fall back to the default message", func() {
			e := Wrap(NetworkError, nil)
			So(e.Message, ShouldEqual, DefaultMessage(NetworkError))
		})
		Convey("Should accept an upstream status", func() {
			e := Wrap(NetworkError, errors.New("gone")).WithStatus(http.StatusGone)
			So(e.StatusCode, ShouldEqual, http.StatusGone)
			So(Wrap(NetworkError, nil).WithStatus(0).StatusCode, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestFrom(t *testing.T) {
	Convey("From", t, func() {
		Convey("Should unwrap classified errors through wrapping", func() {
			err := fmt.Errorf("lookup: %w", New(FormatUnavailable))
			p := From(err)
			So(p.Code, ShouldEqual, FormatUnavailable)
			So(p.StatusCode, ShouldEqual, http.StatusBadRequest)
			So(p.Message, ShouldEqual, "This format is currently unavailable")
			So(Is(err, FormatUnavailable), ShouldBeTrue)
			So(Is(err, InvalidURL), ShouldBeFalse)
		})
		Convey("Should hide raw errors", func() {
			p := From(errors.New("secret internals"))
			So(p.Code, ShouldEqual, UnknownError)
			So(p.StatusCode, ShouldEqual, http.StatusInternalServerError)
			So(p.Message, ShouldNotContainSubstring, "secret")
		})
	})
}
