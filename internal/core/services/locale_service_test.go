package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LocaleServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettingsRepository
	service  *services.LocaleService
}

func (suite *LocaleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.service = services.NewLocaleService(suite.mockRepo, nil)
}

func (suite *LocaleServiceTestSuite) TestCurrentLocale_Stored() {
	ctx := context.Background()
	suite.mockRepo.On("GetLocale", ctx).Return(domain.LocaleEN, nil).Once()

	suite.Equal(domain.LocaleEN, suite.service.CurrentLocale(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LocaleServiceTestSuite) TestCurrentLocale_Fallbacks() {
	ctx := context.Background()
	cases := map[string]struct {
		stored domain.Locale
		err    error
	}{
		"absent":        {"", apperrors.ErrNotFound},
		"storage error": {"", errors.New("disk on fire")},
		"unsupported":   {domain.Locale("de"), nil},
	}
	for name, tc := range cases {
		suite.Run(name, func() {
			repo := new(MockSettingsRepository)
			repo.On("GetLocale", ctx).Return(tc.stored, tc.err).Once()

			locale := services.NewLocaleService(repo, nil).CurrentLocale(ctx)

			suite.Equal(domain.LocalePL, locale)
			repo.AssertExpectations(suite.T())
		})
	}
}

func (suite *LocaleServiceTestSuite) TestSaveLocale_Success() {
	ctx := context.Background()
	suite.mockRepo.On("SetLocale", ctx, domain.LocaleEN).Return(nil).Once()

	suite.NoError(suite.service.SaveLocale(ctx, domain.LocaleEN))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LocaleServiceTestSuite) TestSaveLocale_Unsupported() {
	err := suite.service.SaveLocale(context.Background(), domain.Locale("fr"))

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetLocale", mock.Anything, mock.Anything)
}

func (suite *LocaleServiceTestSuite) TestSaveLocale_RepositoryError() {
	ctx := context.Background()
	repoErr := errors.New("read-only file system")
	suite.mockRepo.On("SetLocale", ctx, domain.LocalePL).Return(repoErr).Once()

	err := suite.service.SaveLocale(ctx, domain.LocalePL)

	suite.ErrorIs(err, repoErr)
}

func TestLocaleService(t *testing.T) {
	suite.Run(t, new(LocaleServiceTestSuite))
}
