package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/gameday/containers"
	"github.com/mww/gameday/db"
	"github.com/mww/gameday/model"
)

// A small league the db tests share: four teams across two divisions
// with enough spread in record and point differential to make rankings
// and probabilities interesting.
var (
	Hawks   = &model.Standing{Team: "North Hawks", Division: "North A", Wins: 3, Losses: 0, PointDiff: 30}
	Giants  = &model.Standing{Team: "North Giants", Division: "North B", Wins: 2, Losses: 1, PointDiff: 10}
	Rhinos  = &model.Standing{Team: "South Rhinos", Division: "South A", Wins: 1, Losses: 2, PointDiff: -10}
	Mudcats = &model.Standing{Team: "South Mudcats", Division: "South B", Wins: 0, Losses: 3, PointDiff: -30}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestStandings(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestStandings(db db.DB) error {
	standings := []*model.Standing{
		Hawks,
		Giants,
		Rhinos,
		Mudcats,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, s := range standings {
		err := db.SaveStanding(ctx, s)
		if err != nil {
			return err
		}
	}

	return nil
}
