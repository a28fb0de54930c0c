//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"venue-scheduler/internal/domain/venue"
	"venue-scheduler/internal/infra"
	"venue-scheduler/internal/usecase"
	"venue-scheduler/internal/usecase/shared"
	"venue-scheduler/tests/common/builder"
	sharedmock "venue-scheduler/tests/mock/shared"
	usecasemock "venue-scheduler/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VenueUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	venues   *sharedmock.MockVenueRepository
	reads    *usecasemock.MockVenueReadStore
	uc       usecase.VenueUseCase
}

func (s *VenueUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.venues = sharedmock.NewMockVenueRepository(s.mockCtrl)
	s.reads = usecasemock.NewMockVenueReadStore(s.mockCtrl)

	s.tx.EXPECT().Venues().Return(s.venues).AnyTimes()

	s.uc = usecase.NewVenueUseCase(s.uow, s.reads)
}

func (s *VenueUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVenueUseCaseSuite(t *testing.T) {
	suite.Run(t, new(VenueUseCaseTestSuite))
}

func (s *VenueUseCaseTestSuite) expectWithin() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func (s *VenueUseCaseTestSuite) TestCreate() {
	s.Run("成功時は挿入して読み取りモデルを返す", func() {
		b := builder.NewVenueBuilder()
		expected := b.BuildReadModel()

		s.expectWithin()
		s.venues.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		s.reads.EXPECT().FindByID(gomock.Any(), b.ID).Return(expected, nil)

		actual, err := s.uc.Create(context.Background(), b.BuildParams())
		s.Require().NoError(err)
		s.Equal(expected, actual)
	})

	s.Run("識別子が重複した場合はErrVenueAlreadyExists", func() {
		b := builder.NewVenueBuilder()

		s.expectWithin()
		s.venues.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate venue id", nil, infra.KindDuplicateKey))

		_, err := s.uc.Create(context.Background(), b.BuildParams())
		s.ErrorIs(err, usecase.ErrVenueAlreadyExists)
	})

	s.Run("不正なパラメータはドメインエラーで拒否される", func() {
		params := builder.NewVenueBuilder().With(func(b *builder.VenueBuilder) { b.Capacity = 0 }).BuildParams()

		_, err := s.uc.Create(context.Background(), params)
		s.ErrorIs(err, venue.ErrInvalidCapacity)
	})
}

func (s *VenueUseCaseTestSuite) TestUpdate() {
	s.Run("存在しない会場はErrVenueNotFound", func() {
		b := builder.NewVenueBuilder()

		s.expectWithin()
		s.venues.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("venue not found", nil, infra.KindNotFound))

		_, err := s.uc.Update(context.Background(), b.BuildParams())
		s.ErrorIs(err, usecase.ErrVenueNotFound)
	})
}

func (s *VenueUseCaseTestSuite) TestDelete() {
	s.Run("予約が紐付く会場の削除はErrVenueInUse", func() {
		s.expectWithin()
		s.venues.EXPECT().Delete(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("venue has reservations", nil, infra.KindForeignKeyViolated))

		s.ErrorIs(s.uc.Delete(context.Background(), "grand-hall"), usecase.ErrVenueInUse)
	})

	s.Run("存在しない会場はErrVenueNotFound", func() {
		s.expectWithin()
		s.venues.EXPECT().Delete(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("venue not found", nil, infra.KindNotFound))

		s.ErrorIs(s.uc.Delete(context.Background(), "grand-hall"), usecase.ErrVenueNotFound)
	})
}
