package testdata

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jask/buscacep/internal/database/repository"
)

// Sample is a known address used for demo and test history.
type Sample struct {
	Query        string
	CEP          string
	Street       string
	Neighborhood string
	City         string
	State        string
}

var Samples = []Sample{
	{"59040240", "59040-240", "Rua Coronel Joaquim Manoel", "Petrópolis", "Natal", "RN"},
	{"01001000", "01001-000", "Praça da Sé", "Sé", "São Paulo", "SP"},
	{"20040002", "20040-002", "Rua da Assembleia", "Centro", "Rio de Janeiro", "RJ"},
	{"30130010", "30130-010", "Praça Sete de Setembro", "Centro", "Belo Horizonte", "MG"},
	{"40020000", "40020-000", "Praça da Sé", "Sé", "Salvador", "BA"},
	{"70040010", "70040-010", "SBN Quadra 1", "Asa Norte", "Brasília", "DF"},
	{"80010000", "80010-000", "Praça Tiradentes", "Centro", "Curitiba", "PR"},
	{"90010000", "90010-000", "Rua dos Andradas", "Centro Histórico", "Porto Alegre", "RS"},
}

// Seed inserts n lookups drawn from Samples, one minute apart and ending at now.
// The same seed always yields the same history.
func Seed(ctx context.Context, repo *repository.LookupRepo, n int, seed int64, now time.Time) ([]repository.Lookup, error) {
	rng := rand.New(rand.NewSource(seed))
	out := make([]repository.Lookup, 0, n)
	for i := 0; i < n; i++ {
		s := Samples[rng.Intn(len(Samples))]
		l := repository.Lookup{
			ID:           uuid.NewString(),
			Query:        s.Query,
			CEP:          s.CEP,
			Street:       s.Street,
			Neighborhood: s.Neighborhood,
			City:         s.City,
			State:        s.State,
			LookedUpAt:   now.Add(-time.Duration(n-1-i) * time.Minute),
		}
		if err := repo.Insert(ctx, l); err != nil {
			return out, err
		}
		out = append(out, l)
	}
	return out, nil
}
