package service

import (
	"context"
	"errors"

	"go.uber.org/mock/gomock"

	"biblio/internal/lending/models"
	"biblio/internal/sentinel"
	"biblio/pkg/domain"
	dErrors "biblio/pkg/domain-errors"
)

func (s *ServiceSuite) TestRegisterBorrower() {
	s.borrowers.EXPECT().
		ExistsByEmail(gomock.Any(), domain.EmailAddress("john.doe@example.com")).
		Return(false, nil)
	s.idgen.EXPECT().NewID().Return("MEMBER-1")
	s.borrowers.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Borrower) error {
			s.Equal(domain.BorrowerID("MEMBER-1"), b.ID)
			s.Equal("John Doe", b.Name)
			return nil
		})

	borrower, err := s.service.RegisterBorrower(s.ctx, RegisterBorrowerCommand{
		Name:  "John Doe",
		Email: "JOHN.DOE@EXAMPLE.COM",
	})
	s.Require().NoError(err)
	s.Equal(domain.EmailAddress("john.doe@example.com"), borrower.EmailAddress)
}

func (s *ServiceSuite) TestRegisterBorrowerInvalidEmail() {
	_, err := s.service.RegisterBorrower(s.ctx, RegisterBorrowerCommand{
		Name:  "John Doe",
		Email: "invalidemail.com",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestRegisterBorrowerDuplicateEmail() {
	// The uniqueness check runs first: no identifier is generated and
	// nothing is staged when the email is taken.
	s.borrowers.EXPECT().
		ExistsByEmail(gomock.Any(), domain.EmailAddress("john.doe@example.com")).
		Return(true, nil)

	_, err := s.service.RegisterBorrower(s.ctx, RegisterBorrowerCommand{
		Name:  "John Doe",
		Email: "john.doe@example.com",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.ErrorContains(err, "already registered")
}

func (s *ServiceSuite) TestRegisterBorrowerDuplicateEmailWinsOverBlankName() {
	s.borrowers.EXPECT().
		ExistsByEmail(gomock.Any(), gomock.Any()).
		Return(true, nil)

	_, err := s.service.RegisterBorrower(s.ctx, RegisterBorrowerCommand{
		Name:  "   ",
		Email: "john.doe@example.com",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceSuite) TestRegisterBorrowerBlankName() {
	s.borrowers.EXPECT().
		ExistsByEmail(gomock.Any(), gomock.Any()).
		Return(false, nil)
	s.idgen.EXPECT().NewID().Return("MEMBER-1")

	_, err := s.service.RegisterBorrower(s.ctx, RegisterBorrowerCommand{
		Name:  "   ",
		Email: "john.doe@example.com",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.ErrorContains(err, "name cannot be blank")
}

func (s *ServiceSuite) TestRegisterBorrowerLostRace() {
	// A concurrent registration slips in between the uniqueness check and
	// the insert; the unique index converts it to the same conflict.
	s.borrowers.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
	s.idgen.EXPECT().NewID().Return("MEMBER-1")
	s.borrowers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sentinel.ErrAlreadyUsed)

	_, err := s.service.RegisterBorrower(s.ctx, RegisterBorrowerCommand{
		Name:  "John Doe",
		Email: "john.doe@example.com",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.ErrorContains(err, "already registered")
}

func (s *ServiceSuite) TestListBorrowers() {
	borrower := &models.Borrower{
		ID:           "MEMBER-1",
		Name:         "John Doe",
		EmailAddress: "john.doe@example.com",
	}
	s.borrowers.EXPECT().FindAll(gomock.Any()).Return([]*models.Borrower{borrower}, nil)

	borrowers, err := s.service.ListBorrowers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(borrowers, 1)
	s.Equal(borrower, borrowers[0])
}

func (s *ServiceSuite) TestListBorrowersEmpty() {
	s.borrowers.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

	borrowers, err := s.service.ListBorrowers(s.ctx)
	s.Require().NoError(err)
	s.NotNil(borrowers)
	s.Empty(borrowers)
}

func (s *ServiceSuite) TestListBorrowersStoreFailure() {
	s.borrowers.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := s.service.ListBorrowers(s.ctx)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}
