package api

import (
	"context"

	"pcstore-be/internal/build"
	"pcstore-be/internal/compare"
	"pcstore-be/internal/inquiry"
	"pcstore-be/internal/order"
	"pcstore-be/internal/prebuild"
	"pcstore-be/internal/product"
	"pcstore-be/internal/user"

	"github.com/stretchr/testify/mock"
)

type MockProductService struct{ mock.Mock }

func (m *MockProductService) List(ctx context.Context, category string) ([]product.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Lookup(ctx context.Context, ids []string) ([]product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, input product.ProductInput) (product.Product, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, input product.ProductInput) (product.Product, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockPrebuildService struct{ mock.Mock }

func (m *MockPrebuildService) List(ctx context.Context) ([]prebuild.Prebuild, error) {
	args := m.Called(ctx)
	return args.Get(0).([]prebuild.Prebuild), args.Error(1)
}

func (m *MockPrebuildService) ListByCategory(ctx context.Context, category string) ([]prebuild.Prebuild, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]prebuild.Prebuild), args.Error(1)
}

func (m *MockPrebuildService) Get(ctx context.Context, id string) (*prebuild.Detail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prebuild.Detail), args.Error(1)
}

func (m *MockPrebuildService) Create(ctx context.Context, input prebuild.PrebuildInput) (prebuild.Prebuild, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(prebuild.Prebuild), args.Error(1)
}

func (m *MockPrebuildService) Update(ctx context.Context, id string, input prebuild.PrebuildInput) (prebuild.Prebuild, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(prebuild.Prebuild), args.Error(1)
}

func (m *MockPrebuildService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPrebuildService) Compatibility(ctx context.Context, id string) (build.Options, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(build.Options), args.Error(1)
}

func (m *MockPrebuildService) Customize(ctx context.Context, id string, sel build.Selection) (build.Quote, error) {
	args := m.Called(ctx, id, sel)
	return args.Get(0).(build.Quote), args.Error(1)
}

func (m *MockPrebuildService) Compare(ctx context.Context, ids []string) (compare.Chart, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(compare.Chart), args.Error(1)
}

type MockInquiryService struct{ mock.Mock }

func (m *MockInquiryService) Create(ctx context.Context, userID string, input inquiry.CreateInput) (inquiry.Inquiry, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(inquiry.Inquiry), args.Error(1)
}

func (m *MockInquiryService) MyInquiries(ctx context.Context, userID string) ([]inquiry.Inquiry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]inquiry.Inquiry), args.Error(1)
}

func (m *MockInquiryService) List(ctx context.Context) ([]inquiry.Inquiry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]inquiry.Inquiry), args.Error(1)
}

func (m *MockInquiryService) Update(ctx context.Context, userID, id string, input inquiry.UpdateInput) (inquiry.Inquiry, error) {
	args := m.Called(ctx, userID, id, input)
	return args.Get(0).(inquiry.Inquiry), args.Error(1)
}

func (m *MockInquiryService) UpdateStatus(ctx context.Context, id string, status inquiry.Status) (inquiry.Inquiry, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(inquiry.Inquiry), args.Error(1)
}

func (m *MockInquiryService) Delete(ctx context.Context, userID, id string, isAdmin bool) error {
	return m.Called(ctx, userID, id, isAdmin).Error(0)
}

func (m *MockInquiryService) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) Create(ctx context.Context, customerID string, input order.CreateInput) (*order.Order, error) {
	args := m.Called(ctx, customerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) MyOrders(ctx context.Context, customerID string) ([]order.Order, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id, userID string, isAdmin bool) (*order.Order, error) {
	args := m.Called(ctx, id, userID, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Register(ctx context.Context, input user.RegisterInput) (string, *user.User, error) {
	args := m.Called(ctx, input)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*user.User), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*user.User), args.Error(2)
}

func (m *MockUserService) Me(ctx context.Context, userID string) (*user.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) GetOrCreateProfile(ctx context.Context, userID string) (*user.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Profile), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, params user.UpdateProfileParams) (*user.Profile, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Profile), args.Error(1)
}

type fakeDescriber struct {
	text string
	err  error
}

func (f fakeDescriber) GenerateDescription(ctx context.Context, deviceType, issue string) (string, error) {
	return f.text, f.err
}
