package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/padraicbc/umaplan/schedule"
)

// DecodeRaces reads a JSON array of races.
func DecodeRaces(r io.Reader) ([]schedule.Race, error) {
	var races []schedule.Race
	if err := json.NewDecoder(r).Decode(&races); err != nil {
		return nil, fmt.Errorf("decode races: %w", err)
	}
	for i := range races {
		if races[i].Distance == "" && races[i].Meters != nil {
			races[i].Distance = DistanceCategory(*races[i].Meters)
		}
	}
	return races, nil
}

// DecodeCharacters reads a JSON array of characters.
func DecodeCharacters(r io.Reader) ([]schedule.Character, error) {
	var chars []schedule.Character
	if err := json.NewDecoder(r).Decode(&chars); err != nil {
		return nil, fmt.Errorf("decode characters: %w", err)
	}
	return chars, nil
}

// LoadFiles reads the races and characters JSON files into a Catalog.
func LoadFiles(racesPath, charactersPath string) (*Catalog, error) {
	races, err := readFile(racesPath, DecodeRaces)
	if err != nil {
		return nil, err
	}
	chars, err := readFile(charactersPath, DecodeCharacters)
	if err != nil {
		return nil, err
	}
	return &Catalog{Races: races, Characters: chars}, nil
}

func readFile[T any](path string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	out, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// MemorySource serves a Catalog that is already loaded.
type MemorySource struct {
	cat *Catalog
}

// NewMemorySource wraps cat as a Source.
func NewMemorySource(cat *Catalog) *MemorySource {
	return &MemorySource{cat: cat}
}

// Catalog returns the wrapped catalog.
func (s *MemorySource) Catalog() *Catalog { return s.cat }

func (s *MemorySource) Races(context.Context) ([]schedule.Race, error) {
	return s.cat.Races, nil
}

func (s *MemorySource) Characters(context.Context) ([]schedule.Character, error) {
	return s.cat.Characters, nil
}

func (s *MemorySource) Character(_ context.Context, key string) (*schedule.Character, error) {
	ch, ok := s.cat.Character(key)
	if !ok {
		return nil, fmt.Errorf("character %q: %w", key, ErrNotFound)
	}
	return ch, nil
}
