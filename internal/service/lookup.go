package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/buscacep/internal/database"
	"github.com/jask/buscacep/internal/database/repository"
	"github.com/jask/buscacep/internal/viacep"
)

// recentPool is how many distinct past queries are considered for suggestions.
const recentPool = 50

// AddressLookuper is the API client contract.
type AddressLookuper interface {
	Lookup(ctx context.Context, code string) (viacep.Address, error)
}

// LookupService runs lookups and records successful ones in the history.
// History is optional: with a nil repo nothing is recorded.
type LookupService struct {
	Client  AddressLookuper
	History *repository.LookupRepo
	Log     *slog.Logger
}

// Lookup performs exactly one client call. A failed history write is logged
// and does not fail the lookup.
func (s *LookupService) Lookup(ctx context.Context, code string) (viacep.Address, error) {
	addr, err := s.Client.Lookup(ctx, code)
	if err != nil {
		return viacep.Address{}, err
	}
	if s.History != nil {
		row := repository.Lookup{
			ID:           uuid.NewString(),
			Query:        strings.TrimSpace(code),
			CEP:          addr.CEP,
			Street:       addr.Street,
			Neighborhood: addr.Neighborhood,
			City:         addr.City,
			State:        addr.State,
			LookedUpAt:   database.Now(),
		}
		if herr := s.History.Insert(ctx, row); herr != nil {
			s.logger().Warn("record lookup history", "cep", code, "error", herr)
		}
	}
	return addr, nil
}

// Recent returns past queries, newest first.
func (s *LookupService) Recent(ctx context.Context) ([]string, error) {
	if s.History == nil {
		return nil, nil
	}
	rows, err := s.History.Recent(ctx, recentPool)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Query)
	}
	return out, nil
}

// HistorySize returns the number of recorded lookups.
func (s *LookupService) HistorySize(ctx context.Context) (int, error) {
	if s.History == nil {
		return 0, nil
	}
	return s.History.Count(ctx)
}

func (s *LookupService) logger() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}
