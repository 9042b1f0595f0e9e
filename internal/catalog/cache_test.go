package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/tutorhub/client/internal/models"
)

type countingProvider struct {
	calls  int
	tutors []models.Tutor
}

func (p *countingProvider) Tutors(context.Context) ([]models.Tutor, error) {
	p.calls++
	return p.tutors, nil
}

func TestCachingProviderServesFromCache(t *testing.T) {
	base := &countingProvider{tutors: sampleCatalog()}
	cached := NewCachingProvider(base, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		tutors, err := cached.Tutors(ctx)
		if err != nil {
			t.Fatalf("tutors: %v", err)
		}
		if len(tutors) != 2 {
			t.Fatalf("expected 2 tutors got %d", len(tutors))
		}
	}

	if base.calls != 1 {
		t.Fatalf("expected a single upstream fetch got %d", base.calls)
	}
}

func TestCachingProviderInvalidate(t *testing.T) {
	base := &countingProvider{tutors: sampleCatalog()}
	cached := NewCachingProvider(base, time.Minute)
	ctx := context.Background()

	if _, err := cached.Tutors(ctx); err != nil {
		t.Fatalf("tutors: %v", err)
	}
	cached.Invalidate()
	if _, err := cached.Tutors(ctx); err != nil {
		t.Fatalf("tutors after invalidate: %v", err)
	}

	if base.calls != 2 {
		t.Fatalf("expected refetch after invalidate, got %d calls", base.calls)
	}
}

func TestCachingProviderWithoutBase(t *testing.T) {
	var cached *CachingProvider
	if _, err := cached.Tutors(context.Background()); err == nil {
		t.Fatal("expected error from nil provider")
	}
}
