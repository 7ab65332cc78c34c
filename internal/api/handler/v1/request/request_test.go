package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPurchase() PurchaseRequest {
	return PurchaseRequest{
		SeatIDs:       []string{"R1-1", "R1-3"},
		CustomerName:  "Ana García",
		CustomerEmail: "ana@example.com",
		CustomerPhone: "600123456",
	}
}

func TestPurchaseRequest_Validate(t *testing.T) {
	valid := validPurchase()
	assert.NoError(t, valid.Validate())

	noSeats := validPurchase()
	noSeats.SeatIDs = nil
	assert.Error(t, noSeats.Validate())

	tooMany := validPurchase()
	tooMany.SeatIDs = make([]string, 11)
	assert.Error(t, tooMany.Validate())

	badEmail := validPurchase()
	badEmail.CustomerEmail = "not-an-email"
	assert.Error(t, badEmail.Validate())

	doubled := validPurchase()
	doubled.SeatIDs = []string{"R1-1", "R1-1"}
	assert.Error(t, doubled.Validate())
}

func TestCreateCouponRequest_Validate(t *testing.T) {
	valid := CreateCouponRequest{Code: "DANCE10", DiscountType: "percentage", DiscountValue: 10}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.DiscountType = "bogo"
	assert.Error(t, badType.Validate())

	over100 := valid
	over100.DiscountValue = 120
	assert.Error(t, over100.Validate())

	fixedOver100 := CreateCouponRequest{Code: "BIG", DiscountType: "fixed", DiscountValue: 120}
	assert.NoError(t, fixedOver100.Validate())

	zeroUses := valid
	zero := 0
	zeroUses.MaxUses = &zero
	assert.Error(t, zeroUses.Validate())
}

func validRegistration() SaveRegistrationRequest {
	return SaveRegistrationRequest{
		GroupName:  "Las Estrellas",
		Category:   "Juvenil",
		SchoolName: "Escuela Danza Madrid",
		Responsibles: []ResponsibleRow{
			{RowKey: "r-1", Name: "Ana", Surnames: "García López", Phone: "600123456", Email: "ana@example.com"},
		},
		Participants: []ParticipantRow{
			{RowKey: "p-1", Name: "Lucía", Surnames: "Martín Ruiz", DOB: "2010-04-02", NumTickets: 2},
		},
	}
}

func TestSaveRegistrationRequest_Validate(t *testing.T) {
	valid := validRegistration()
	assert.NoError(t, valid.Validate())

	badCategory := validRegistration()
	badCategory.Category = "Senior"
	assert.Error(t, badCategory.Validate())

	noResponsibles := validRegistration()
	noResponsibles.Responsibles = nil
	assert.Error(t, noResponsibles.Validate())

	badDOB := validRegistration()
	badDOB.Participants[0].DOB = "02/04/2010"
	assert.Error(t, badDOB.Validate())
}

func TestSaveRegistrationRequest_ToDomain(t *testing.T) {
	src := validRegistration()
	reg := src.ToDomain()

	assert.Equal(t, "Las Estrellas", reg.GroupName)
	assert.Len(t, reg.Responsibles, 1)
	assert.Equal(t, "r-1", reg.Responsibles[0].RowKey)
	assert.Len(t, reg.Participants, 1)
	assert.Equal(t, 2, reg.Participants[0].NumTickets)
}

func TestAssignSeatsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&AssignSeatsRequest{SessionID: "morning", SeatIDs: []string{"R1-1"}}).Validate())
	assert.Error(t, (&AssignSeatsRequest{SeatIDs: []string{"R1-1"}}).Validate())
	assert.Error(t, (&AssignSeatsRequest{SessionID: "morning"}).Validate())
	assert.Error(t, (&AssignSeatsRequest{SessionID: "morning", SeatIDs: []string{"R1-1", "R1-1"}}).Validate())
}
