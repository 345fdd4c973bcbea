package sim_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/netsim/sim"
)

func BenchmarkRun_Reference(b *testing.B) {
	s, err := sim.New(sim.WithLogger(zerolog.Nop()))
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()

	params := referenceParams(4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Run(context.Background(), params); err != nil {
			b.Fatal(err)
		}
	}
}
