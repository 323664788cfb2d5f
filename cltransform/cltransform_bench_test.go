package cltransform

import (
	"strconv"
	"testing"
)

func BenchmarkRoundTrip(b *testing.B) {
	sizes := []int{16, 64, 256, 1024}
	for _, n := range sizes {
		b.Run("n_"+strconv.Itoa(n), func(b *testing.B) {
			cl := make([]float64, n)
			for l := range cl {
				cl[l] = 1 / float64(l+1)
			}

			plan, err := NewPlan(n)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				corr, _ := plan.CltoCorr(cl)
				_, _ = plan.CorrToCl(corr)
			}
		})
	}
}
