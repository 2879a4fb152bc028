package toll_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/tollnet/distance"
	"github.com/katalvlaran/tollnet/toll"
)

var sinkRecords []toll.Record

func BenchmarkCalculate(b *testing.B) {
	in := make([]distance.Record, 2000)
	for i := range in {
		in[i] = distance.Record{Start: distance.ID(i), End: distance.ID(i + 1), Distance: float64(i%97) + 0.5}
	}
	for _, workers := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			c := toll.NewCalculator(toll.WithWorkers(workers))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := c.Calculate(context.Background(), in)
				if err != nil {
					b.Fatal(err)
				}
				sinkRecords = out
			}
		})
	}
}
