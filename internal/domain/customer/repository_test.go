package customer

import (
	"context"
	"customers-service/internal/event"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (_m *MockCustomerRepository) ExistsActiveByDocument(ctx context.Context, doc Document) (bool, error) {
	ret := _m.Called(ctx, doc)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MockCustomerRepository) ExistsActiveByDocumentExcludingID(ctx context.Context, doc Document, excludeID string) (bool, error) {
	ret := _m.Called(ctx, doc, excludeID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MockCustomerRepository) FindAllActiveByDocument(ctx context.Context, doc Document) ([]Customer, error) {
	ret := _m.Called(ctx, doc)

	var r0 []Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) FindByDocumentNumberActive(ctx context.Context, documentNumber string) ([]Customer, error) {
	ret := _m.Called(ctx, documentNumber)

	var r0 []Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) FindByID(ctx context.Context, id string) (Customer, error) {
	ret := _m.Called(ctx, id)

	var r0 Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) FindFiltered(ctx context.Context, filter Filter, sort Sort) ([]Customer, error) {
	ret := _m.Called(ctx, filter, sort)

	var r0 []Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) Save(ctx context.Context, c Customer) (Customer, error) {
	ret := _m.Called(ctx, c)

	var r0 Customer
	if rf, ok := ret.Get(0).(func(context.Context, Customer) Customer); ok {
		r0 = rf(ctx, c)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) FindDuplicateActiveDocuments(ctx context.Context) ([]DuplicateDocument, error) {
	ret := _m.Called(ctx)

	var r0 []DuplicateDocument
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]DuplicateDocument)
	}
	return r0, ret.Error(1)
}

var _ CustomerRepository = (*MockCustomerRepository)(nil)

type MockEventPublisher struct {
	mock.Mock
}

func (_m *MockEventPublisher) PublishCustomerCreated(ctx context.Context, ev event.CustomerCreatedEvent) error {
	return _m.Called(ctx, ev).Error(0)
}

func (_m *MockEventPublisher) PublishCustomerUpdated(ctx context.Context, ev event.CustomerUpdatedEvent) error {
	return _m.Called(ctx, ev).Error(0)
}

func (_m *MockEventPublisher) PublishCustomerDeleted(ctx context.Context, ev event.CustomerDeletedEvent) error {
	return _m.Called(ctx, ev).Error(0)
}

var _ event.EventPublisher = (*MockEventPublisher)(nil)
