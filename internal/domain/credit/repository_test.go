package credit

import (
	"context"

	"credit-engine/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCreditRepository struct {
	mock.Mock
}

var _ CreditRepository = (*MockCreditRepository)(nil)

func (_m *MockCreditRepository) Save(ctx context.Context, credit *Credit) error {
	ret := _m.Called(ctx, credit)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Credit) error); ok {
		r0 = rf(ctx, credit)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockCreditRepository) FindByCreditCode(ctx context.Context, code uuid.UUID) (*Credit, error) {
	ret := _m.Called(ctx, code)

	var r0 *Credit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Credit)
	}

	return r0, ret.Error(1)
}

func (_m *MockCreditRepository) FindAllByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []*Credit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Credit)
	}

	return r0, ret.Error(1)
}

func (_m *MockCreditRepository) CountByStatus(ctx context.Context) (map[Status]int64, error) {
	ret := _m.Called(ctx)

	var r0 map[Status]int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[Status]int64)
	}

	return r0, ret.Error(1)
}

func (_m *MockCreditRepository) DeleteAll(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

type MockCustomerFinder struct {
	mock.Mock
}

var _ CustomerFinder = (*MockCustomerFinder)(nil)

func (_m *MockCustomerFinder) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}

	return r0, ret.Error(1)
}
