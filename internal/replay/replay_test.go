package replay_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	service "github.com/okian/tuiermo/internal/app"
	"github.com/okian/tuiermo/internal/adapters/words"
	"github.com/okian/tuiermo/internal/domain/scoring"
	"github.com/okian/tuiermo/internal/replay"
	"github.com/okian/tuiermo/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func started(target string) *service.Service {
	svc := service.New(
		service.WithLogger(logger.Nop()),
		service.WithWordSource(words.Fixed(target)),
	)
	So(svc.Start(context.Background()), ShouldBeNil)
	return svc
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun(t *testing.T) {
	ctx := context.Background()

	Convey("Given a session for acaso", t, func() {
		svc := started("acaso")

		Convey("When a mix of guesses is replayed", func() {
			in := strings.NewReader("alibi\n\ncasa\n  ÁCASO  \n")
			var out bytes.Buffer
			err := replay.Run(ctx, svc, in, &out)

			Convey("Then accepted rows are numbered and rejected lines are marked", func() {
				So(err, ShouldBeNil)
				lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
				So(lines, ShouldResemble, []string{
					"0: alibi =....",
					"rejected: casa",
					"1: acaso ===== ✔",
				})
			})

			Convey("Then the session keeps only accepted guesses", func() {
				snap := svc.Snapshot()
				So(len(snap.History), ShouldEqual, 2)
				So(snap.Buffer, ShouldEqual, "")
				So(snap.Solved, ShouldBeTrue)
			})
		})

		Convey("When the writer fails", func() {
			err := replay.Run(ctx, svc, strings.NewReader("alibi\n"), failingWriter{})

			Convey("Then the error is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "disk full")
			})
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			err := replay.Run(cctx, svc, strings.NewReader("alibi\n"), &bytes.Buffer{})

			Convey("Then replay stops", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(svc.Snapshot().History, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a service that was never started", t, func() {
		svc := service.New(service.WithLogger(logger.Nop()))
		err := replay.Run(ctx, svc, strings.NewReader("alibi\n"), &bytes.Buffer{})

		Convey("Then replay fails", func() {
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
		})
	})
}

func TestMask(t *testing.T) {
	Convey("Given scored guesses with repeated letters", t, func() {
		Convey("Then the mask follows the letter classes", func() {
			So(replay.Mask(scoring.Evaluate("speed", "erase")), ShouldEqual, "~..~~")
			So(replay.Mask(scoring.Evaluate("speed", "eeeee")), ShouldEqual, "..==.")
			So(replay.Mask(scoring.Evaluate("hello", "level")), ShouldEqual, "~=..~")
		})

		Convey("Then a solved row carries the check mark", func() {
			So(replay.FormatGuess(3, scoring.Evaluate("hello", "hello")), ShouldEqual, "3: hello ===== ✔")
		})
	})
}
