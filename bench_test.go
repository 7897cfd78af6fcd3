package intset

import (
	"math/rand"
	"testing"
)

type distributionKind int

const (
	distUniform distributionKind = iota
	distAscending
	distZipf
)

func BenchmarkSetWorkloads(b *testing.B) {
	distributions := []struct {
		name string
		kind distributionKind
	}{
		{name: "Uniform", kind: distUniform},
		{name: "Ascending", kind: distAscending},
		{name: "Zipfian", kind: distZipf},
	}

	workloads := []struct {
		name          string
		insertPercent int
	}{
		{name: "LookupMostly", insertPercent: 5},
		{name: "InsertHeavy", insertPercent: 90},
		{name: "Mixed", insertPercent: 50},
	}

	const keyRange = 1 << 12

	for _, dist := range distributions {
		dist := dist
		b.Run(dist.name, func(b *testing.B) {
			for _, workload := range workloads {
				workload := workload
				b.Run(workload.name, func(b *testing.B) {
					s := New()
					for i := 0; i < keyRange/2; i++ {
						s.Insert(int32(i))
					}

					r := rand.New(rand.NewSource(1_000_003))
					var zipf *rand.Zipf
					if dist.kind == distZipf {
						zipf = rand.NewZipf(r, 1.2, 1, uint64(keyRange-1))
					}

					var ascending int32

					b.ReportAllocs()
					b.ResetTimer()

					for i := 0; i < b.N; i++ {
						var value int32
						switch dist.kind {
						case distUniform:
							value = int32(r.Intn(keyRange))
						case distAscending:
							value = ascending % keyRange
							ascending++
						case distZipf:
							value = int32(zipf.Uint64())
						}

						if r.Intn(100) < workload.insertPercent {
							s.Insert(value)
						} else {
							_ = s.Contains(value)
						}
					}
				})
			}
		})
	}
}

func BenchmarkInsertDistinct(b *testing.B) {
	s := New()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s.Insert(int32(i))
	}
}
