package textstat

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCountSyllables(t *testing.T) {
	Convey("Given words with known vowel groups", t, func() {
		Convey("Vowel runs are counted, floored at one", func() {
			So(countSyllables("cat"), ShouldEqual, 1)
			// e, o
			So(countSyllables("hello"), ShouldEqual, 2)
			// eau, i, u
			So(countSyllables("beautiful"), ShouldEqual, 3)
			// no vowels, floored
			So(countSyllables("rhythm"), ShouldEqual, 1)
			// punctuation token, floored
			So(countSyllables("..."), ShouldEqual, 1)
			// one maximal run
			So(countSyllables("AEIOU"), ShouldEqual, 1)
		})
	})
}

func TestCountSentences(t *testing.T) {
	Convey("Given texts with terminal punctuation", t, func() {
		Convey("Runs of terminators form a single boundary", func() {
			So(countSentences("One. Two! Three?"), ShouldEqual, 3)
			So(countSentences("Wait... what?!"), ShouldEqual, 2)
			So(countSentences("no terminator at all"), ShouldEqual, 1)
			So(countSentences("!!!"), ShouldEqual, 0)
			So(countSentences(""), ShouldEqual, 0)
		})

		Convey("Abbreviations split sentences, a documented policy", func() {
			So(countSentences("Mr. Smith arrived."), ShouldEqual, 2)
		})
	})
}

func TestSplitParagraphs(t *testing.T) {
	Convey("Given multi-paragraph text", t, func() {
		Convey("Blank lines separate, whitespace-only blocks drop", func() {
			So(len(splitParagraphs("a\n\nb\n\nc")), ShouldEqual, 3)
			So(len(splitParagraphs("a\nb")), ShouldEqual, 1)
			So(len(splitParagraphs("\n\n\n")), ShouldEqual, 0)
			So(len(splitParagraphs("a\n \nb")), ShouldEqual, 1)
		})
	})
}
