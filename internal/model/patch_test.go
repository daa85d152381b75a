package model_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iliyamo/hbnb-api/internal/model"
	"github.com/iliyamo/hbnb-api/internal/testutil/stubs"
)

var _ = Describe("Patch", func() {
	var user *model.User

	BeforeEach(func() {
		var err error
		user, err = model.NewUser(stubs.NewUserStub().Get(), plainHash)
		Expect(err).NotTo(HaveOccurred())
	})

	It("applies only whitelisted fields", func() {
		// ACT
		next, err := user.Patch(model.Attrs{
			"first_name": "Grace",
			"email":      "other@example.com",
			"id":         "forged",
		}, []string{"first_name", "last_name"})

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		patched := next.(*model.User)
		Expect(patched.FirstName).To(Equal("Grace"))
		Expect(patched.LastName).To(Equal(user.LastName))
		Expect(patched.Email).To(Equal(user.Email))
		Expect(patched.ID).To(Equal(user.ID))
	})

	It("leaves the receiver untouched", func() {
		before := user.FirstName

		_, err := user.Patch(model.Attrs{"first_name": "Grace"}, []string{"first_name"})

		Expect(err).NotTo(HaveOccurred())
		Expect(user.FirstName).To(Equal(before))
	})

	It("fails without a partial change when one field is invalid", func() {
		_, err := user.Patch(model.Attrs{"first_name": "Grace", "last_name": "H0pper"}, []string{"first_name", "last_name"})

		Expect(err).To(HaveOccurred())
		Expect(user.FirstName).NotTo(Equal("Grace"))
	})

	It("refreshes updated_at through Touched only", func() {
		at := user.UpdatedAt.Add(time.Minute)

		touched := user.Touched(at).(*model.User)

		created, updated := touched.Timestamps()
		Expect(created).To(Equal(user.CreatedAt))
		Expect(updated).To(Equal(at))
		Expect(user.UpdatedAt).NotTo(Equal(at))
	})

	It("updates every place field", func() {
		p, err := model.NewPlace(stubs.NewPlaceStub("city", "host").Get())
		Expect(err).NotTo(HaveOccurred())

		next, err := p.Patch(model.Attrs{"max_guests": 3.0, "latitude": -12.5}, model.PlaceFields)

		Expect(err).NotTo(HaveOccurred())
		Expect(next.(*model.Place).MaxGuests).To(Equal(3))
		Expect(next.(*model.Place).Latitude).To(Equal(-12.5))
	})
})

var _ = Describe("Registry", func() {
	It("builds a blank record of every kind", func() {
		for _, k := range model.Kinds() {
			e, err := model.New(k)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Kind()).To(Equal(k))
		}
	})

	It("rejects unknown kinds", func() {
		_, err := model.New("Spaceship")
		Expect(err).To(MatchError(ContainSubstring("unknown kind")))
	})

	It("decodes a persisted country", func() {
		e, err := model.Decode(model.KindCountry, []byte(`{"id":"c1","name":"France","country_code":"FR","created_at":"2024-01-02T03:04:05.000006Z","updated_at":"2024-01-02T03:04:05.000006Z"}`))

		Expect(err).NotTo(HaveOccurred())
		c := e.(*model.Country)
		Expect(c.Code).To(Equal("FR"))
		Expect(c.CreatedAt.Nanosecond()).To(Equal(6000))
	})
})
