package gaussiancl

import (
	"strconv"
	"testing"
)

func BenchmarkSolve(b *testing.B) {
	sizes := []int{8, 32, 128}
	for _, m := range sizes {
		b.Run("m_"+strconv.Itoa(m), func(b *testing.B) {
			gl := make([]float64, m)
			for l := range gl {
				gl[l] = 0.5 / float64(l+1) / float64(l+1)
			}

			tfm := Lognormal{Alpha: 1.2}

			target, err := Lim(gl, tfm, WithPadding(3*m))
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				if _, _, err := Solve(target, tfm); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
