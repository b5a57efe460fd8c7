package present

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDuration(t *testing.T) {
	Convey("Duration", t, func() {
		Convey("Should use M:SS below an hour", func() {
			So(Duration(125), ShouldEqual, "2:05")
			So(Duration(0), ShouldEqual, "0:00")
			So(Duration(59), ShouldEqual, "0:59")
			So(Duration(3599), ShouldEqual, "59:59")
		})
		Convey("Should use H:MM:SS from an hour", func() {
			So(Duration(3725), ShouldEqual, "1:02:05")
			So(Duration(3600), ShouldEqual, "1:00:00")
			So(Duration(36000+61), ShouldEqual, "10:01:01")
		})
		Convey("Should clamp negative values", func() {
			So(Duration(-5), ShouldEqual, "0:00")
		})
	})
}

func TestViewCount(t *testing.T) {
	Convey("ViewCount", t, func() {
		So(ViewCount("2500000"), ShouldEqual, "2.5M views")
		So(ViewCount("1000000"), ShouldEqual, "1.0M views")
		So(ViewCount("1500"), ShouldEqual, "1.5K views")
		So(ViewCount("999"), ShouldEqual, "999 views")
		So(ViewCount("0"), ShouldEqual, "0 views")

		Convey("Should treat garbage as zero", func() {
			So(ViewCount(""), ShouldEqual, "0 views")
			So(ViewCount("lots"), ShouldEqual, "0 views")
		})
	})
}

func TestByteSize(t *testing.T) {
	Convey("ByteSize", t, func() {
		So(ByteSize(1536), ShouldEqual, "1.5 KB")
		So(ByteSize(512), ShouldEqual, "512.0 B")
		So(ByteSize(1024), ShouldEqual, "1.0 KB")
		So(ByteSize(5*1024*1024), ShouldEqual, "5.0 MB")
		So(ByteSize(3*1024*1024*1024), ShouldEqual, "3.0 GB")

		Convey("Should stay in GB for huge values", func() {
			So(ByteSize(2048*1024*1024*1024), ShouldEqual, "2048.0 GB")
		})
		Convey("Should render unknown sizes as zero", func() {
			So(ByteSize(0), ShouldEqual, "0 B")
			So(ByteSize(-1), ShouldEqual, "0 B")
		})
	})
}

func TestExtensionFromMIME(t *testing.T) {
	Convey("ExtensionFromMIME", t, func() {
		So(ExtensionFromMIME(`video/webm; codecs="vp9"`), ShouldEqual, "webm")
		So(ExtensionFromMIME("audio/mp4"), ShouldEqual, "mp4")
		So(ExtensionFromMIME("video/3gpp"), ShouldEqual, "3gpp")
		So(ExtensionFromMIME(""), ShouldEqual, "mp4")
		So(ExtensionFromMIME("nonsense"), ShouldEqual, "mp4")
	})
}

func TestFilename(t *testing.T) {
	Convey("Filename", t, func() {
		So(Filename("My Video: Part 1", "mp4"), ShouldEqual, "My_Video__Part_1.mp4")
		So(Filename("a/b\\c", "webm"), ShouldEqual, "a_b_c.webm")
		So(Filename("clip", ""), ShouldEqual, "clip.mp4")
	})
}
