// Package mocks provides shared test doubles for the store, auth and service
// interfaces.
//
// Store and service doubles are testify mocks: set expectations with On and
// check them with AssertExpectations. The JWT service and password verifier
// doubles use function fields with fixed fallback values, which keeps
// middleware and handler tests short.
//
//	users := &mocks.MockUserStore{}
//	users.On("FindByKey", mock.Anything, id).Return(user, nil)
//	defer users.AssertExpectations(t)
package mocks
