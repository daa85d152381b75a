package repository_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iliyamo/hbnb-api/internal/database"
	"github.com/iliyamo/hbnb-api/internal/model"
	"github.com/iliyamo/hbnb-api/internal/repository"
)

// Tables in delete order: links and children before their parents.
var truncateOrder = []string{"place_amenity", "reviews", "places", "cities", "countries", "amenities", "users"}

func openSQLiteStore() *repository.GormStore {
	db, err := database.OpenDSN("sqlite", filepath.Join(GinkgoT().TempDir(), "hbnb.db"))
	Expect(err).NotTo(HaveOccurred())
	store := repository.NewGormStore(db)
	Expect(store.Migrate(context.Background())).To(Succeed())
	return store
}

var _ = Describe("GormStore", func() {
	Describe("store contract on SQLite", func() {
		storeContract(func() repository.Store {
			return openSQLiteStore()
		})
	})

	Describe("store contract on an external server", func() {
		dialect := os.Getenv("TEST_DB_DIALECT")
		dsn := os.Getenv("TEST_DB_DSN")

		storeContract(func() repository.Store {
			if dialect == "" || dsn == "" {
				Skip("TEST_DB_DIALECT and TEST_DB_DSN are not set")
			}
			db, err := database.OpenDSN(dialect, dsn)
			Expect(err).NotTo(HaveOccurred())
			store := repository.NewGormStore(db)
			Expect(store.Migrate(context.Background())).To(Succeed())
			for _, table := range truncateOrder {
				Expect(db.Exec("DELETE FROM " + table).Error).To(Succeed())
			}
			return store
		})
	})

	Context("when the schema already exists", func() {
		It("migrates again without losing records", func() {
			// ARRANGE
			path := filepath.Join(GinkgoT().TempDir(), "hbnb.db")
			db, err := database.OpenDSN("sqlite", path)
			Expect(err).NotTo(HaveOccurred())
			store := repository.NewGormStore(db)
			Expect(store.Migrate(context.Background())).To(Succeed())
			country := newCountry("PT")
			_, err = store.Add(context.Background(), country)
			Expect(err).NotTo(HaveOccurred())
			Expect(store.Close()).To(Succeed())

			// ACT
			db, err = database.OpenDSN("sqlite", path)
			Expect(err).NotTo(HaveOccurred())
			reopened := repository.NewGormStore(db)
			defer reopened.Close()
			err = reopened.Migrate(context.Background())

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			got, err := reopened.FindBy(context.Background(), model.KindCountry, "country_code", "PT")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(1))
			Expect(got[0].Key()).To(Equal(country.ID))
		})
	})

	Context("when the database rejects a duplicate the checks missed", func() {
		It("reports a conflict instead of a driver error", func() {
			store := openSQLiteStore()
			defer store.Close()
			first := newCountry("NL")
			_, err := store.Add(context.Background(), first)
			Expect(err).NotTo(HaveOccurred())

			// Only the primary key collides, and checkWrite never looks at ids.
			second := newCountry("BE")
			second.ID = first.ID
			_, err = store.Add(context.Background(), second)

			Expect(err).To(MatchError(repository.ErrConflict))
		})
	})
})
