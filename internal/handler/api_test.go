package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iliyamo/hbnb-api/internal/config"
	"github.com/iliyamo/hbnb-api/internal/handler"
	"github.com/iliyamo/hbnb-api/internal/queue"
	"github.com/iliyamo/hbnb-api/internal/repository"
	"github.com/iliyamo/hbnb-api/internal/router"
	"github.com/iliyamo/hbnb-api/internal/service"
	"github.com/iliyamo/hbnb-api/internal/testutil/stubs"
	"github.com/iliyamo/hbnb-api/internal/utils"
)

const timestampPattern = `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}$`

var _ = Describe("API", func() {
	var e *echo.Echo

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		store, err := repository.NewFileStore("", logger)
		Expect(err).NotTo(HaveOccurred())
		svc := service.New(store, queue.NopPublisher{}, utils.Hasher(4), logger)
		e = echo.New()
		router.Use(e, logger)
		router.RegisterRoutes(e)
		router.RegisterAPI(e, handler.NewHandler(svc, logger), nil, config.CacheConfig{}, config.RateLimitConfig{}, logger)
	})

	do := func(method, path string, body any) (int, map[string]any) {
		var reader io.Reader
		if body != nil {
			raw, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = strings.NewReader(string(raw))
		}
		req := httptest.NewRequest(method, path, reader)
		if body != nil {
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		out := map[string]any{}
		if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(Succeed())
		}
		return rec.Code, out
	}

	create := func(path string, body any) map[string]any {
		code, out := do(http.MethodPost, path, body)
		Expect(code).To(Equal(http.StatusCreated), "%v", out)
		return out
	}

	country := func() string {
		return create("/api/v1/countries", stubs.NewCountryStub().With("country_code", "US").Get())["id"].(string)
	}

	It("answers the health check", func() {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(Equal("ok"))
	})

	Context("when creating a city", func() {
		It("returns 201 with an id, then 409 for the same name", func() {
			// ARRANGE
			body := map[string]any{"name": "Metropolis", "country_id": country()}

			// ACT
			code, first := do(http.MethodPost, "/api/v1/cities", body)
			againCode, again := do(http.MethodPost, "/api/v1/cities", body)

			// ASSERT
			Expect(code).To(Equal(http.StatusCreated))
			Expect(first["id"]).NotTo(BeEmpty())
			Expect(first["name"]).To(Equal("Metropolis"))
			Expect(first["created_at"]).To(MatchRegexp(timestampPattern))
			Expect(againCode).To(Equal(http.StatusConflict))
			Expect(again["error"]).To(ContainSubstring("'Metropolis' already exists"))

			_, list := do(http.MethodGet, "/api/v1/cities", nil)
			Expect(list["items"]).To(HaveLen(1))
		})

		It("rejects an unknown country with 400", func() {
			code, out := do(http.MethodPost, "/api/v1/cities", map[string]any{"name": "Gotham", "country_id": "nope"})

			Expect(code).To(Equal(http.StatusBadRequest))
			Expect(out["error"]).To(Equal("Invalid country_id specified: nope"))
		})

		It("reports the missing field", func() {
			code, out := do(http.MethodPost, "/api/v1/cities", map[string]any{"country_id": country()})

			Expect(code).To(Equal(http.StatusBadRequest))
			Expect(out["error"]).To(Equal("Missing name"))
		})
	})

	Context("when the body is not JSON", func() {
		It("rejects another content type", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/amenities", strings.NewReader("name=Wifi"))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("Not a JSON"))
		})

		It("rejects a malformed document", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/amenities", strings.NewReader(`{"name":`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("Not a JSON"))
		})

		DescribeTable("rejects anything after the document",
			func(body string) {
				req := httptest.NewRequest(http.MethodPost, "/api/v1/amenities", strings.NewReader(body))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				rec := httptest.NewRecorder()

				e.ServeHTTP(rec, req)

				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				Expect(rec.Body.String()).To(ContainSubstring("Not a JSON"))
				_, list := do(http.MethodGet, "/api/v1/amenities", nil)
				Expect(list["items"]).To(BeEmpty())
			},
			Entry("a bare word", `{"name":"Wifi"} trailing`),
			Entry("a second object", `{"name":"Wifi"}{"name":"Pool"}`),
			Entry("a stray brace", `{"name":"Wifi"} }`),
		)

		It("accepts trailing whitespace", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/amenities", strings.NewReader("{\"name\":\"Wifi\"}\n  "))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
		})
	})

	Context("when creating a review", func() {
		var placeID, userID string

		BeforeEach(func() {
			cityID := create("/api/v1/cities", stubs.NewCityStub(country()).Get())["id"].(string)
			userID = create("/api/v1/users", stubs.NewUserStub().Get())["id"].(string)
			placeID = create("/api/v1/places", stubs.NewPlaceStub(cityID, userID).Get())["id"].(string)
		})

		It("rejects a rating of 7", func() {
			code, out := do(http.MethodPost, "/api/v1/reviews", stubs.NewReviewStub(placeID, userID).With("rating", 7).Get())

			Expect(code).To(Equal(http.StatusBadRequest))
			Expect(out["error"]).To(Equal("rating must be an integer between 0 and 5"))
			_, list := do(http.MethodGet, "/api/v1/reviews", nil)
			Expect(list["items"]).To(BeEmpty())
		})

		It("exposes the review through its place and author", func() {
			review := create("/api/v1/reviews", stubs.NewReviewStub(placeID, userID).With("rating", 5).Get())

			_, byPlace := do(http.MethodGet, "/api/v1/places/"+placeID+"/review", nil)
			code, author := do(http.MethodGet, "/api/v1/reviews/"+review["id"].(string)+"/users", nil)

			Expect(byPlace["items"]).To(HaveLen(1))
			Expect(code).To(Equal(http.StatusOK))
			Expect(author["id"]).To(Equal(userID))
		})
	})

	Context("when creating a user", func() {
		It("rejects a password longer than bcrypt accepts with 400", func() {
			code, out := do(http.MethodPost, "/api/v1/users", stubs.NewUserStub().With("password", strings.Repeat("p", 80)).Get())

			Expect(code).To(Equal(http.StatusBadRequest))
			Expect(out["error"]).To(Equal("password must be at most 72 characters"))
			_, list := do(http.MethodGet, "/api/v1/users", nil)
			Expect(list["items"]).To(BeEmpty())
		})

		It("rejects a name wider than its column with 400", func() {
			code, _ := do(http.MethodPost, "/api/v1/users", stubs.NewUserStub().With("first_name", strings.Repeat("a", 200)).Get())

			Expect(code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("when reading users", func() {
		It("never returns the password", func() {
			user := create("/api/v1/users", stubs.NewUserStub().Get())

			_, got := do(http.MethodGet, "/api/v1/users/"+user["id"].(string), nil)

			Expect(got).To(HaveKey("email"))
			Expect(got).NotTo(HaveKey("password"))
			Expect(got).NotTo(HaveKey("password_hash"))
		})

		It("updates through PATCH as well as PUT", func() {
			user := create("/api/v1/users", stubs.NewUserStub().Get())
			path := "/api/v1/users/" + user["id"].(string)

			patchCode, patched := do(http.MethodPatch, path, map[string]any{"first_name": "Ada"})
			putCode, put := do(http.MethodPut, path, map[string]any{"last_name": "Lovelace"})

			Expect(patchCode).To(Equal(http.StatusOK))
			Expect(patched["first_name"]).To(Equal("Ada"))
			Expect(putCode).To(Equal(http.StatusOK))
			Expect(put["first_name"]).To(Equal("Ada"))
			Expect(put["last_name"]).To(Equal("Lovelace"))
		})
	})

	Context("when linking amenities", func() {
		It("returns 201 then 409", func() {
			cityID := create("/api/v1/cities", stubs.NewCityStub(country()).Get())["id"].(string)
			userID := create("/api/v1/users", stubs.NewUserStub().Get())["id"].(string)
			placeID := create("/api/v1/places", stubs.NewPlaceStub(cityID, userID).Get())["id"].(string)
			amenityID := create("/api/v1/amenities", stubs.NewAmenityStub().Get())["id"].(string)
			path := "/api/v1/places/" + placeID + "/amenities/" + amenityID

			first, _ := do(http.MethodPost, path, nil)
			second, _ := do(http.MethodPost, path, nil)
			_, list := do(http.MethodGet, "/api/v1/places/"+placeID+"/places_amenities", nil)

			Expect(first).To(Equal(http.StatusCreated))
			Expect(second).To(Equal(http.StatusConflict))
			Expect(list["items"]).To(HaveLen(1))
		})
	})

	Context("when a record does not exist", func() {
		DescribeTable("answers 404 naming the kind",
			func(path, message string) {
				code, out := do(http.MethodGet, path, nil)

				Expect(code).To(Equal(http.StatusNotFound))
				Expect(out["error"]).To(Equal(message))
			},
			Entry("city", "/api/v1/cities/missing", "City not found"),
			Entry("country", "/api/v1/countries/ZZ", "Country not found"),
			Entry("place host", "/api/v1/places/missing/user", "Place not found"),
			Entry("unknown route", "/api/v1/spaceships", "Not Found"),
		)
	})

	It("addresses countries by code", func() {
		create("/api/v1/countries", map[string]any{"name": "Japan", "country_code": "jp"})

		code, got := do(http.MethodGet, "/api/v1/countries/JP", nil)
		_, cities := do(http.MethodGet, "/api/v1/countries/jp/cities", nil)

		Expect(code).To(Equal(http.StatusOK))
		Expect(got["country_code"]).To(Equal("JP"))
		Expect(cities["items"]).To(BeEmpty())
	})
})
