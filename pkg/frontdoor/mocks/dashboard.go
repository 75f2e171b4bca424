package mocks

import (
	"net/http"

	"github.com/bosco-l/multipage-dashboard/pkg/page"
	"github.com/stretchr/testify/mock"
)

// Dashboard mock
type Dashboard struct {
	mock.Mock
}

// Pages provides a mock function with given fields:
func (_m *Dashboard) Pages() []page.Descriptor {
	ret := _m.Called()

	var r0 []page.Descriptor
	if rf, ok := ret.Get(0).(func() []page.Descriptor); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]page.Descriptor)
		}
	}

	return r0
}

// ServeHTTP provides a mock function with given fields: w, r
func (_m *Dashboard) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_m.Called(w, r)
}
