package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedTrain is one catalog entry loaded at startup.
type SeedTrain struct {
	TrainNo     int     `yaml:"train_no"`
	Name        string  `yaml:"name"`
	Source      string  `yaml:"source"`
	Destination string  `yaml:"destination"`
	TotalSeats  int     `yaml:"total_seats"`
	FarePerSeat float64 `yaml:"fare_per_seat"`
}

type seedFile struct {
	Trains []SeedTrain `yaml:"trains"`
}

// DefaultSeed is the built-in startup catalog.
func DefaultSeed() []SeedTrain {
	return []SeedTrain{
		{TrainNo: 11001, Name: "Kolkata Express", Source: "Kolkata", Destination: "Delhi", TotalSeats: 100, FarePerSeat: 750.0},
		{TrainNo: 12002, Name: "Duronto Express", Source: "Mumbai", Destination: "Pune", TotalSeats: 80, FarePerSeat: 300.0},
		{TrainNo: 13003, Name: "Shatabdi Express", Source: "Chennai", Destination: "Bangalore", TotalSeats: 120, FarePerSeat: 600.0},
	}
}

// LoadSeed reads a YAML seed catalog. An empty path returns the built-in
// default.
func LoadSeed(path string) ([]SeedTrain, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(f.Trains) == 0 {
		return nil, fmt.Errorf("seed file %s lists no trains", path)
	}
	for i, t := range f.Trains {
		if t.TrainNo <= 0 {
			return nil, fmt.Errorf("seed train %d: train_no must be positive", i)
		}
		if t.Name == "" {
			return nil, fmt.Errorf("seed train %d: name is required", i)
		}
		if t.TotalSeats <= 0 {
			return nil, fmt.Errorf("seed train %d: total_seats must be positive", i)
		}
		if t.FarePerSeat < 0 {
			return nil, fmt.Errorf("seed train %d: fare_per_seat must not be negative", i)
		}
	}
	return f.Trains, nil
}
