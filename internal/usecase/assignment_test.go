//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"venue-scheduler/internal/infra"
	"venue-scheduler/internal/usecase"
	"venue-scheduler/internal/usecase/readmodel"
	"venue-scheduler/internal/usecase/shared"
	"venue-scheduler/tests/common/builder"
	sharedmock "venue-scheduler/tests/mock/shared"
	usecasemock "venue-scheduler/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssignmentUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reservations *sharedmock.MockReservationRepository
	assignments  *sharedmock.MockAssignmentRepository
	workerReads  *usecasemock.MockWorkerReadStore
	uc           usecase.AssignmentUseCase
}

func (s *AssignmentUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reservations = sharedmock.NewMockReservationRepository(s.mockCtrl)
	s.assignments = sharedmock.NewMockAssignmentRepository(s.mockCtrl)
	s.workerReads = usecasemock.NewMockWorkerReadStore(s.mockCtrl)

	s.tx.EXPECT().Reservations().Return(s.reservations).AnyTimes()
	s.tx.EXPECT().Assignments().Return(s.assignments).AnyTimes()

	s.uc = usecase.NewAssignmentUseCase(s.uow, s.workerReads)
}

func (s *AssignmentUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAssignmentUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AssignmentUseCaseTestSuite))
}

func (s *AssignmentUseCaseTestSuite) expectWithin() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func workerPair() ([]uuid.UUID, []*readmodel.WorkerRM) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	return ids, []*readmodel.WorkerRM{
		{ID: ids[0], Name: "Tanaka"},
		{ID: ids[1], Name: "Suzuki"},
	}
}

func (s *AssignmentUseCaseTestSuite) TestAssign() {
	s.Run("成功時は担当者セットを置き換えて返す", func() {
		snap := builder.NewReservationBuilder().BuildSnapshot()
		ids, workers := workerPair()

		s.workerReads.EXPECT().FindWorkers(gomock.Any(), ids).Return(workers, nil)
		s.expectWithin()
		s.reservations.EXPECT().PendingByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.assignments.EXPECT().ConflictingWorkers(gomock.Any(), snap.Date, snap.ID, ids).Return(nil, nil)
		s.assignments.EXPECT().Replace(gomock.Any(), snap.ID, snap.Date, ids).Return(nil)

		assigned, err := s.uc.Assign(context.Background(), snap.ID, ids)
		s.Require().NoError(err)
		s.Len(assigned, 2)
		s.Equal("Tanaka", assigned[0].Name)
	})

	s.Run("2名以外の割当はErrInvalidAssignmentSize", func() {
		id := uuid.New()

		_, err := s.uc.Assign(context.Background(), id, []uuid.UUID{uuid.New()})
		s.ErrorIs(err, usecase.ErrInvalidAssignmentSize)

		_, err = s.uc.Assign(context.Background(), id, []uuid.UUID{uuid.New(), uuid.New(), uuid.New()})
		s.ErrorIs(err, usecase.ErrInvalidAssignmentSize)
	})

	s.Run("同一人物2回はErrInvalidAssignmentSize", func() {
		dup := uuid.New()

		_, err := s.uc.Assign(context.Background(), uuid.New(), []uuid.UUID{dup, dup})
		s.ErrorIs(err, usecase.ErrInvalidAssignmentSize)
	})

	s.Run("登録済みワーカーでない候補はErrWorkerNotFound", func() {
		ids, workers := workerPair()

		s.workerReads.EXPECT().FindWorkers(gomock.Any(), ids).Return(workers[:1], nil)

		_, err := s.uc.Assign(context.Background(), uuid.New(), ids)
		s.ErrorIs(err, usecase.ErrWorkerNotFound)
	})

	s.Run("同日に別予約へ割当済みの候補は全体を拒否し名前を報告する", func() {
		snap := builder.NewReservationBuilder().BuildSnapshot()
		ids, workers := workerPair()

		s.workerReads.EXPECT().FindWorkers(gomock.Any(), ids).Return(workers, nil)
		s.expectWithin()
		s.reservations.EXPECT().PendingByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.assignments.EXPECT().ConflictingWorkers(gomock.Any(), snap.Date, snap.ID, ids).
			Return([]uuid.UUID{ids[1]}, nil)

		_, err := s.uc.Assign(context.Background(), snap.ID, ids)
		s.ErrorIs(err, usecase.ErrWorkerConflict)

		var conflict *usecase.WorkerConflictError
		s.Require().ErrorAs(err, &conflict)
		s.Require().Len(conflict.Workers, 1)
		s.Equal("Suzuki", conflict.Workers[0].Name)
	})

	s.Run("並行割当との競合で一意制約に負けた場合もErrWorkerConflict", func() {
		snap := builder.NewReservationBuilder().BuildSnapshot()
		ids, workers := workerPair()

		s.workerReads.EXPECT().FindWorkers(gomock.Any(), ids).Return(workers, nil)
		s.expectWithin()
		s.reservations.EXPECT().PendingByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.assignments.EXPECT().ConflictingWorkers(gomock.Any(), snap.Date, snap.ID, ids).Return(nil, nil)
		s.assignments.EXPECT().Replace(gomock.Any(), snap.ID, snap.Date, ids).
			Return(infra.WrapRepoErr("worker already committed", nil, infra.KindDuplicateKey))

		_, err := s.uc.Assign(context.Background(), snap.ID, ids)
		s.ErrorIs(err, usecase.ErrWorkerConflict)
	})

	s.Run("決定済みの予約への割当はErrAlreadyDecided", func() {
		snap := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Status = "denied" }).BuildSnapshot()
		ids, workers := workerPair()

		s.workerReads.EXPECT().FindWorkers(gomock.Any(), ids).Return(workers, nil)
		s.expectWithin()
		s.reservations.EXPECT().PendingByID(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.uc.Assign(context.Background(), snap.ID, ids)
		s.ErrorIs(err, usecase.ErrAlreadyDecided)
	})
}

func (s *AssignmentUseCaseTestSuite) TestClear() {
	s.Run("割当を解除できる", func() {
		snap := builder.NewReservationBuilder().BuildSnapshot()

		s.expectWithin()
		s.reservations.EXPECT().PendingByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.assignments.EXPECT().Clear(gomock.Any(), snap.ID).Return(nil)

		s.NoError(s.uc.Clear(context.Background(), snap.ID))
	})

	s.Run("存在しない予約はErrReservationNotFound", func() {
		id := uuid.New()

		s.expectWithin()
		s.reservations.EXPECT().PendingByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("pending reservation not found", nil, infra.KindNotFound))

		s.ErrorIs(s.uc.Clear(context.Background(), id), usecase.ErrReservationNotFound)
	})
}
