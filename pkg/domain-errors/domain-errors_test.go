package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives.
//
// Justification: These are core error primitives used at every trust boundary.
// Unit tests ensure invariants like "wrapped domain errors preserve original code"
// and "errors.Is matches by code" are maintained.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "book not found"}
		s.Equal("book not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeNotFound}
		s.Equal("not_found", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	s.Run("returns wrapped error", func() {
		inner := errors.New("database connection failed")
		err := &Error{Code: CodeInternal, Message: "service error", Err: inner}
		s.Equal(inner, err.Unwrap())
	})

	s.Run("returns nil when no wrapped error", func() {
		err := &Error{Code: CodeNotFound, Message: "not found"}
		s.Nil(err.Unwrap())
	})

	s.Run("works with errors.Unwrap", func() {
		inner := errors.New("root cause")
		err := &Error{Code: CodeInternal, Err: inner}
		s.Equal(inner, errors.Unwrap(err))
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeConflict, Message: "book is already borrowed"}
		err2 := &Error{Code: CodeConflict, Message: "email already registered"}
		s.True(errors.Is(err1, err2))
	})

	s.Run("does not match different codes", func() {
		err1 := &Error{Code: CodeNotFound}
		err2 := &Error{Code: CodeConflict}
		s.False(errors.Is(err1, err2))
	})

	s.Run("does not match non-domain errors", func() {
		err := &Error{Code: CodeNotFound}
		s.False(err.Is(errors.New("not found")))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves code of wrapped domain errors", func() {
		inner := New(CodeValidation, "title cannot be blank")
		wrapped := Wrap(inner, CodeInternal, "failed to register book")
		s.True(HasCode(wrapped, CodeValidation))
	})

	s.Run("applies code to plain errors", func() {
		inner := errors.New("connection refused")
		wrapped := Wrap(inner, CodeInternal, "failed to load book")
		s.True(HasCode(wrapped, CodeInternal))
		s.True(errors.Is(wrapped, inner))
	})
}

func (s *DomainErrorsSuite) TestHasCode() {
	s.Run("matches direct domain errors", func() {
		s.True(HasCode(New(CodeConflict, "conflict"), CodeConflict))
	})

	s.Run("does not match plain errors", func() {
		s.False(HasCode(errors.New("boom"), CodeConflict))
	})
}
