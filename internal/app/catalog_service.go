package app

import (
	"context"

	"github.com/Coderush2004/railway-desk/internal/domain"
)

// CatalogRepository is the train registry surface the catalog needs.
type CatalogRepository interface {
	InsertTrain(ctx context.Context, t domain.Train) error
	GetTrain(ctx context.Context, trainNo int) (domain.Train, error)
	ListTrains(ctx context.Context) ([]domain.Train, error)
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

type AddTrainInput struct {
	TrainNo     int
	Name        string
	Source      string
	Destination string
	TotalSeats  int
	FarePerSeat float64
}

func (s *CatalogService) AddTrain(ctx context.Context, in AddTrainInput) (domain.Train, error) {
	if in.TrainNo <= 0 {
		return domain.Train{}, domain.ErrInvalidTrainNo
	}
	if in.Name == "" {
		return domain.Train{}, domain.ErrTrainNameRequired
	}
	if in.TotalSeats <= 0 {
		return domain.Train{}, domain.ErrInvalidSeatCount
	}
	if in.FarePerSeat < 0 {
		return domain.Train{}, domain.ErrInvalidFare
	}

	train := domain.Train{
		TrainNo:     in.TrainNo,
		Name:        in.Name,
		Source:      in.Source,
		Destination: in.Destination,
		TotalSeats:  in.TotalSeats,
		FarePerSeat: in.FarePerSeat,
	}
	if err := s.repo.InsertTrain(ctx, train); err != nil {
		return domain.Train{}, err
	}
	train.AvailableSeats = train.TotalSeats
	return train, nil
}

func (s *CatalogService) GetTrain(ctx context.Context, trainNo int) (domain.Train, error) {
	if trainNo <= 0 {
		return domain.Train{}, domain.ErrInvalidTrainNo
	}
	return s.repo.GetTrain(ctx, trainNo)
}

// ListTrains returns the catalog in ascending train number.
func (s *CatalogService) ListTrains(ctx context.Context) ([]domain.Train, error) {
	return s.repo.ListTrains(ctx)
}

// SeedTrains loads the startup catalog. Any duplicate train number in the
// seed aborts the load.
func (s *CatalogService) SeedTrains(ctx context.Context, trains []AddTrainInput) error {
	for _, in := range trains {
		if _, err := s.AddTrain(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
