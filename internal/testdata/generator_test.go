package testdata_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/jamhacks/jamsched/internal/testdata"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRows(t *testing.T) {
	Convey("Given a generator with a fixed seed", t, func() {
		gen := testdata.New(testdata.WithSeed(7), testdata.WithTeamCount(10))

		Convey("Rows returns the header plus one row per team", func() {
			rows := gen.Rows()
			So(rows, ShouldHaveLength, 11)
			So(rows[0], ShouldResemble, []string{
				"BUIDL ID", "BUIDL name", "Contact email",
				"Team members", "Track", "Bounties",
			})

			Convey("And team ids count up from the base", func() {
				So(rows[1][0], ShouldEqual, "101")
				So(rows[10][0], ShouldEqual, "110")
			})

			Convey("And every row has six cells", func() {
				for _, row := range rows[1:] {
					So(row, ShouldHaveLength, 6)
					So(row[1], ShouldNotBeEmpty)
				}
			})
		})

		Convey("The same seed reproduces the same export", func() {
			again := testdata.New(testdata.WithSeed(7), testdata.WithTeamCount(10))
			So(gen.Rows(), ShouldResemble, again.Rows())
		})

		Convey("A different seed produces a different export", func() {
			other := testdata.New(testdata.WithSeed(8), testdata.WithTeamCount(10))
			So(gen.Rows(), ShouldNotResemble, other.Rows())
		})
	})

	Convey("Given a custom header and category lists", t, func() {
		gen := testdata.New(
			testdata.WithSeed(7),
			testdata.WithTeamCount(5),
			testdata.WithHeader([]string{"ID", "Name", "Email", "Members", "Track", "Prizes"}),
			testdata.WithTracks([]string{"General"}),
			testdata.WithMLHCategories([]string{"MLH || Best GenAI"}),
			testdata.WithSponsorCategories([]string{"Best Use of Warp"}),
		)

		rows := gen.Rows()
		So(rows[0][5], ShouldEqual, "Prizes")

		Convey("Tracks come only from the configured list", func() {
			for _, row := range rows[1:] {
				So(row[4], ShouldBeIn, "", "General")
			}
		})
	})
}

func TestWriteCSV(t *testing.T) {
	Convey("WriteCSV produces a parseable export", t, func() {
		path := filepath.Join(t.TempDir(), "teams.csv")
		gen := testdata.New(testdata.WithSeed(7), testdata.WithTeamCount(8))

		So(gen.WriteCSV(path), ShouldBeNil)

		f, err := os.Open(path)
		So(err, ShouldBeNil)
		defer f.Close()

		r := csv.NewReader(f)
		r.FieldsPerRecord = -1
		r.LazyQuotes = true
		records, err := r.ReadAll()
		So(err, ShouldBeNil)
		So(records, ShouldHaveLength, 9)
	})
}
