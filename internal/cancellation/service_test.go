package cancellation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(record *Cancellation) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockRepository) GetByBookingID(bookingID uuid.UUID) (*Cancellation, error) {
	args := m.Called(bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cancellation), args.Error(1)
}

func TestRecordCancellation_FreezesQuote(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	bookingID := uuid.New()

	repo.On("GetByBookingID", bookingID).Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.MatchedBy(func(r *Cancellation) bool {
		return r.BookingID == bookingID &&
			r.RefundPercentage == 90 &&
			r.RefundAmount == 9000 &&
			r.PenaltyAmount == 1000
	})).Return(nil)

	record, err := svc.RecordCancellation(bookingID, ActorUser, "change of plans", 10000, 80)

	require.NoError(t, err)
	assert.Equal(t, 9000.0, record.RefundAmount)
	assert.Equal(t, ActorUser, record.CancelledBy)
}

func TestRecordCancellation_RetryReturnsExistingRecord(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	bookingID := uuid.New()

	frozen := &Cancellation{
		BookingID:        bookingID,
		CancelledBy:      ActorUser,
		RefundPercentage: 90,
		RefundAmount:     9000,
		PenaltyAmount:    1000,
	}
	repo.On("GetByBookingID", bookingID).Return(frozen, nil)

	// A second call, even at a different moment, must not requote.
	record, err := svc.RecordCancellation(bookingID, ActorAdmin, "retry", 10000, 3)

	require.NoError(t, err)
	assert.Equal(t, frozen, record)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}
