package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"biblio/internal/lending/service/mocks"
)

type ServiceSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	catalog   *mocks.MockCatalogEntryStore
	books     *mocks.MockBookStore
	borrowers *mocks.MockBorrowerStore
	idgen     *mocks.MockIDGenerator
	service   *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.catalog = mocks.NewMockCatalogEntryStore(s.ctrl)
	s.books = mocks.NewMockBookStore(s.ctrl)
	s.borrowers = mocks.NewMockBorrowerStore(s.ctrl)
	s.idgen = mocks.NewMockIDGenerator(s.ctrl)
	s.service = New(s.catalog, s.books, s.borrowers, WithIDGenerator(s.idgen))
}
