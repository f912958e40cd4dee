package api_test

import (
	"context"

	"github.com/UnknownOlympus/meridian/internal/input"
	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/stretchr/testify/mock"
)

// converterMock is a testify mock of service.Converter.
type converterMock struct {
	mock.Mock
}

func newConverterMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *converterMock {
	m := &converterMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *converterMock) ToCartesian(
	ctx context.Context,
	fields input.GeodeticFields,
	unit input.AngleUnit,
) (models.Cartesian, error) {
	args := m.Called(ctx, fields, unit)
	return args.Get(0).(models.Cartesian), args.Error(1)
}

func (m *converterMock) ToGeodetic(ctx context.Context, fields input.CartesianFields) (models.Geodetic, error) {
	args := m.Called(ctx, fields)
	return args.Get(0).(models.Geodetic), args.Error(1)
}
