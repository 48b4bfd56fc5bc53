package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/carpilot/carpilot/internal/adapters/repository"
	"github.com/carpilot/carpilot/internal/domain/weights"
	. "github.com/smartystreets/goconvey/convey"
)

const datasetHeader = "name,brand,price_min_lakh,seats,mileage_kmpl,power_bhp," +
	"safety_rating,fuel_type,body_type,resale_value_5yr,year," +
	"price_min_lakh_norm,mileage_kmpl_norm,power_bhp_norm,safety_rating_norm,resale_value_5yr_norm"

func writeDataset(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cars.csv")
	content := datasetHeader + "\n"
	for _, row := range rows {
		content += row + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVStoreLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given a well-formed dataset file", t, func() {
		path := writeDataset(t,
			"Swift Vxi,Maruti,6.5,5,22.4,89,2,Petrol,Hatchback,55,2023,0.1,0.9,0.2,0.25,0.5",
			"Nexon EV,Tata,14.5,5,,129,5,EV,SUV,60,2024,0.3,,0.4,1,0.7",
		)

		Convey("When the store is built from it", func() {
			store, err := repository.NewCSVStore(ctx, repository.WithPath(path))
			So(err, ShouldBeNil)

			Convey("Then every row is loaded in file order", func() {
				So(store.Count(ctx), ShouldEqual, 2)
				cars := store.Cars(ctx)
				So(cars[0].Name, ShouldEqual, "Swift Vxi")
				So(cars[1].Name, ShouldEqual, "Nexon EV")
			})

			Convey("And typed fields parse as expected", func() {
				cars := store.Cars(ctx)
				So(cars[0].PriceMinLakh, ShouldEqual, 6.5)
				So(cars[0].Seats, ShouldEqual, 5)
				So(*cars[0].MileageKMPL, ShouldEqual, 22.4)
				So(*cars[0].Year, ShouldEqual, 2023)
			})

			Convey("And blank optional cells stay nil", func() {
				ev := store.Cars(ctx)[1]
				So(ev.MileageKMPL, ShouldBeNil)
			})

			Convey("And blank norm cells are absent from the map, not zero", func() {
				ev := store.Cars(ctx)[1]
				_, ok := ev.Norms[weights.FeatMileageNorm]
				So(ok, ShouldBeFalse)
				So(ev.Norms[weights.FeatSafetyNorm], ShouldEqual, 1.0)
			})
		})
	})

	Convey("Given no path", t, func() {
		Convey("When the store is built", func() {
			store, err := repository.NewCSVStore(ctx)

			Convey("Then the embedded sample dataset is served", func() {
				So(err, ShouldBeNil)
				So(store.Count(ctx), ShouldBeGreaterThan, 0)
			})
		})
	})

	Convey("Given a dataset missing a norm column", t, func() {
		path := filepath.Join(t.TempDir(), "cars.csv")
		header := "name,brand,price_min_lakh,seats,mileage_kmpl,power_bhp," +
			"safety_rating,fuel_type,body_type,resale_value_5yr,year"
		err := os.WriteFile(path, []byte(header+"\nA,B,5,5,,,,Petrol,SUV,,\n"), 0o600)
		So(err, ShouldBeNil)

		Convey("When the store is built", func() {
			_, err := repository.NewCSVStore(ctx, repository.WithPath(path))

			Convey("Then loading fails with a column error", func() {
				So(errors.Is(err, repository.ErrMissingColumn), ShouldBeTrue)
			})
		})
	})

	Convey("Given a header-only dataset", t, func() {
		path := writeDataset(t)

		Convey("When the store is built", func() {
			_, err := repository.NewCSVStore(ctx, repository.WithPath(path))

			So(errors.Is(err, repository.ErrEmptyDataset), ShouldBeTrue)
		})
	})

	Convey("Given a row with a malformed price", t, func() {
		path := writeDataset(t,
			"Broken,Nobody,cheap,5,,,,Petrol,SUV,,,,,,,",
		)

		Convey("When the store is built", func() {
			_, err := repository.NewCSVStore(ctx, repository.WithPath(path))

			So(errors.Is(err, repository.ErrBadRow), ShouldBeTrue)
		})
	})

	Convey("Given a missing file", t, func() {
		_, err := repository.NewCSVStore(ctx, repository.WithPath(filepath.Join(t.TempDir(), "absent.csv")))

		So(err, ShouldNotBeNil)
	})
}

func TestCSVStoreReload(t *testing.T) {
	ctx := context.Background()

	Convey("Given a loaded store", t, func() {
		path := writeDataset(t,
			"Swift Vxi,Maruti,6.5,5,22.4,89,2,Petrol,Hatchback,55,2023,0.1,0.9,0.2,0.25,0.5",
		)
		store, err := repository.NewCSVStore(ctx, repository.WithPath(path))
		So(err, ShouldBeNil)
		So(store.Count(ctx), ShouldEqual, 1)

		Convey("When the file grows and Reload runs", func() {
			content := datasetHeader + "\n" +
				"Swift Vxi,Maruti,6.5,5,22.4,89,2,Petrol,Hatchback,55,2023,0.1,0.9,0.2,0.25,0.5\n" +
				"Creta SX,Hyundai,11,5,17,113,3,Petrol,SUV,58,2024,0.2,0.5,0.3,0.5,0.6\n"
			So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)
			So(store.Reload(ctx), ShouldBeNil)

			Convey("Then the new table is visible", func() {
				So(store.Count(ctx), ShouldEqual, 2)
			})
		})

		Convey("When the file turns invalid and Reload runs", func() {
			So(os.WriteFile(path, []byte("junk\n"), 0o600), ShouldBeNil)
			err := store.Reload(ctx)

			Convey("Then the reload fails and the old table survives", func() {
				So(err, ShouldNotBeNil)
				So(store.Count(ctx), ShouldEqual, 1)
				So(store.Cars(ctx)[0].Name, ShouldEqual, "Swift Vxi")
			})
		})
	})
}
