package words_test

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/tuiermo/internal/adapters/words"
	. "github.com/smartystreets/goconvey/convey"
)

func writeList(dir, content string) string {
	path := filepath.Join(dir, "words.txt")
	So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)
	return path
}

func TestFixed(t *testing.T) {
	ctx := context.Background()

	Convey("Given a fixed source", t, func() {
		Convey("When the word has accents", func() {
			w, err := words.Fixed("Áéíóú").Word(ctx)

			Convey("Then it is returned normalized", func() {
				So(err, ShouldBeNil)
				So(w, ShouldEqual, "aeiou")
			})
		})

		Convey("When the default word is used", func() {
			w, err := words.Fixed(words.DefaultWord).Word(ctx)
			So(err, ShouldBeNil)
			So(w, ShouldEqual, "acaso")
		})

		Convey("When the word is blank", func() {
			_, err := words.Fixed("  ").Word(ctx)
			So(errors.Is(err, words.ErrEmptyWord), ShouldBeTrue)
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := words.Fixed("acaso").Word(cctx)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestFromFile(t *testing.T) {
	ctx := context.Background()

	Convey("Given a word list file", t, func() {
		dir := t.TempDir()

		Convey("When it mixes valid and invalid entries", func() {
			path := writeList(dir, "acaso\ncasa\nÁRVORE\n  nuvem fuzil\n4lib1\nlongword\n")
			src, err := words.FromFile(path, 5, words.WithRand(rand.New(rand.NewSource(1))))

			Convey("Then only normalized five-letter words are kept", func() {
				So(err, ShouldBeNil)
				So(src.Len(), ShouldEqual, 3)
			})

			Convey("Then every drawn word comes from the list", func() {
				allowed := map[string]bool{"acaso": true, "nuvem": true, "fuzil": true}
				for i := 0; i < 50; i++ {
					w, err := src.Word(ctx)
					So(err, ShouldBeNil)
					So(allowed[w], ShouldBeTrue)
				}
			})
		})

		Convey("When a six-letter length is configured", func() {
			path := writeList(dir, "acaso\nÁRVORE\n")
			src, err := words.FromFile(path, 6)

			So(err, ShouldBeNil)
			w, err := src.Word(ctx)
			So(err, ShouldBeNil)
			So(w, ShouldEqual, "arvore")
		})

		Convey("When no entry has the right length", func() {
			path := writeList(dir, "casa\nsol\n")
			_, err := words.FromFile(path, 5)

			Convey("Then loading fails fast", func() {
				So(errors.Is(err, words.ErrEmptyWordList), ShouldBeTrue)
			})
		})

		Convey("When the file does not exist", func() {
			_, err := words.FromFile(filepath.Join(dir, "missing.txt"), 5)
			So(errors.Is(err, words.ErrLoadWords), ShouldBeTrue)
			So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)
		})
	})
}
