package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, a Appointment) (Appointment, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(Appointment), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID string) ([]Appointment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Appointment), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]Appointment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Appointment), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Appointment), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, a Appointment) (Appointment, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(Appointment), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id string, status Status) (Appointment, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(Appointment), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func validInput() Input {
	return Input{
		FullName:      "Jane",
		Email:         "jane@example.com",
		DeviceType:    "Laptop",
		Issue:         "No display",
		PreferredDate: "2025-03-10",
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(a Appointment) bool {
			return a.UserID == "u1" && a.Status == StatusPending &&
				a.PreferredDate.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
		})).Return(Appointment{ID: "a1", Status: StatusPending}, nil)

		a, err := svc.Create(ctx, "u1", validInput())
		require.NoError(t, err)
		assert.Equal(t, "a1", a.ID)
	})

	t.Run("Missing fields are listed", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, "u1", Input{FullName: "Jane"})
		assert.ErrorIs(t, err, ErrInvalidAppointment)
		assert.Contains(t, err.Error(), "email, deviceType, issue, preferredDate")
	})

	t.Run("Bad date", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		in := validInput()
		in.PreferredDate = "10/03/2025"

		_, err := svc.Create(ctx, "u1", in)
		assert.ErrorIs(t, err, ErrInvalidAppointment)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner while pending", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("GetByID", ctx, "a1").Return(&Appointment{ID: "a1", UserID: "u1", Status: StatusPending}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(a Appointment) bool { return a.ID == "a1" })).
			Return(Appointment{ID: "a1"}, nil)

		_, err := svc.Update(ctx, "a1", "u1", false, validInput())
		assert.NoError(t, err)
	})

	t.Run("Owner after confirmation", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("GetByID", ctx, "a1").Return(&Appointment{ID: "a1", UserID: "u1", Status: StatusConfirmed}, nil)

		_, err := svc.Update(ctx, "a1", "u1", false, validInput())
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Admin on confirmed", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("GetByID", ctx, "a1").Return(&Appointment{ID: "a1", UserID: "u1", Status: StatusConfirmed}, nil)
		repo.On("Update", ctx, mock.Anything).Return(Appointment{ID: "a1"}, nil)

		_, err := svc.Update(ctx, "a1", "admin", true, validInput())
		assert.NoError(t, err)
	})

	t.Run("Other user", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("GetByID", ctx, "a1").Return(&Appointment{ID: "a1", UserID: "u1", Status: StatusPending}, nil)

		_, err := svc.Update(ctx, "a1", "u2", false, validInput())
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	_, err := svc.UpdateStatus(ctx, "a1", Status("Lost"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	repo.On("UpdateStatus", ctx, "a1", StatusCompleted).Return(Appointment{ID: "a1", Status: StatusCompleted}, nil)
	a, err := svc.UpdateStatus(ctx, "a1", StatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, a.Status)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Not found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("GetByID", ctx, "a1").Return(nil, ErrAppointmentNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, "a1", "u1", false), ErrAppointmentNotFound)
	})

	t.Run("Owner", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("GetByID", ctx, "a1").Return(&Appointment{ID: "a1", UserID: "u1", Status: StatusPending}, nil)
		repo.On("Delete", ctx, "a1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "a1", "u1", false))
	})
}
