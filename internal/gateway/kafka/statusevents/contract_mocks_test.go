// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statusevents_test
//

// Package statusevents_test is a generated GoMock package.
package statusevents_test

import (
	context "context"
	reflect "reflect"

	sarama "github.com/IBM/sarama"
	gomock "go.uber.org/mock/gomock"
)

// Mockproducer is a mock of producer interface.
type Mockproducer struct {
	ctrl     *gomock.Controller
	recorder *MockproducerMockRecorder
	isgomock struct{}
}

// MockproducerMockRecorder is the mock recorder for Mockproducer.
type MockproducerMockRecorder struct {
	mock *Mockproducer
}

// NewMockproducer creates a new mock instance.
func NewMockproducer(ctrl *gomock.Controller) *Mockproducer {
	mock := &Mockproducer{ctrl: ctrl}
	mock.recorder = &MockproducerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Mockproducer) EXPECT() *MockproducerMockRecorder {
	return m.recorder
}

// SendMessage mocks base method.
func (m *Mockproducer) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendMessage", msg)
	ret0, _ := ret[0].(int32)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// SendMessage indicates an expected call of SendMessage.
func (mr *MockproducerMockRecorder) SendMessage(msg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMessage", reflect.TypeOf((*Mockproducer)(nil).SendMessage), msg)
}

// Mockretrier is a mock of retrier interface.
type Mockretrier struct {
	ctrl     *gomock.Controller
	recorder *MockretrierMockRecorder
	isgomock struct{}
}

// MockretrierMockRecorder is the mock recorder for Mockretrier.
type MockretrierMockRecorder struct {
	mock *Mockretrier
}

// NewMockretrier creates a new mock instance.
func NewMockretrier(ctrl *gomock.Controller) *Mockretrier {
	mock := &Mockretrier{ctrl: ctrl}
	mock.recorder = &MockretrierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Mockretrier) EXPECT() *MockretrierMockRecorder {
	return m.recorder
}

// ExecuteWithContext mocks base method.
func (m *Mockretrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExecuteWithContext", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// ExecuteWithContext indicates an expected call of ExecuteWithContext.
func (mr *MockretrierMockRecorder) ExecuteWithContext(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteWithContext", reflect.TypeOf((*Mockretrier)(nil).ExecuteWithContext), ctx, fn)
}
