package vista_test

import (
	"testing"

	"github.com/samber/lo"

	"vista/views"
)

// heavyCalc simulates a CPU intensive operation
func heavyCalc(x int) int {
	for i := 0; i < 1000; i++ {
		x = (x + i*i) % 10000
	}
	return x
}

// BenchmarkUnified_Map compares Map operations across different implementations and workloads.
func BenchmarkUnified_Map(b *testing.B) {
	size := 1_000_000
	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = i
	}

	workloads := []struct {
		name      string
		transform func(int) int
	}{
		{name: "Light", transform: func(x int) int { return x * 2 }},
		{name: "Heavy", transform: heavyCalc},
	}

	for _, wl := range workloads {
		b.Run(wl.name, func(b *testing.B) {
			b.Run("Loop", func(b *testing.B) {
				for b.Loop() {
					out := make([]int, len(input))
					for i, x := range input {
						out[i] = wl.transform(x)
					}
				}
			})

			b.Run("Lo_Eager", func(b *testing.B) {
				for b.Loop() {
					_ = lo.Map(input, func(x int, _ int) int { return wl.transform(x) })
				}
			})

			b.Run("View_Lazy", func(b *testing.B) {
				v := views.Map(views.FromSlice(input), wl.transform)
				for b.Loop() {
					for range v.Values() {
					}
				}
			})

			b.Run("View_Collect", func(b *testing.B) {
				v := views.Map(views.FromSlice(input), wl.transform)
				for b.Loop() {
					_ = v.Collect()
				}
			})
		})
	}
}

// BenchmarkUnified_Filter compares Filter operations across different implementations and workloads.
func BenchmarkUnified_Filter(b *testing.B) {
	size := 1_000_000
	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = i
	}

	workloads := []struct {
		name      string
		predicate func(int) bool
	}{
		{name: "Light", predicate: func(x int) bool { return x%2 == 0 }},
		{name: "Heavy", predicate: func(x int) bool { return heavyCalc(x)%2 == 0 }},
	}

	for _, wl := range workloads {
		b.Run(wl.name, func(b *testing.B) {
			b.Run("Loop", func(b *testing.B) {
				for b.Loop() {
					out := input[:0:0]
					for _, x := range input {
						if wl.predicate(x) {
							out = append(out, x)
						}
					}
				}
			})

			b.Run("Lo_Eager", func(b *testing.B) {
				for b.Loop() {
					_ = lo.Filter(input, func(x int, _ int) bool { return wl.predicate(x) })
				}
			})

			b.Run("View_Lazy", func(b *testing.B) {
				v := views.Filter[int](views.FromSlice(input), wl.predicate)
				for b.Loop() {
					for range v.Values() {
					}
				}
			})

			b.Run("View_Count", func(b *testing.B) {
				// Size re-scans the predicate, no materialization.
				v := views.Filter[int](views.FromSlice(input), wl.predicate)
				for b.Loop() {
					_ = v.Size()
				}
			})
		})
	}
}

// BenchmarkPipeline_FilterMap measures a two-stage pipeline against fused
// and eager equivalents. The eager chain allocates an intermediate slice,
// the view chain allocates nothing.
func BenchmarkPipeline_FilterMap(b *testing.B) {
	size := 1_000_000
	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = i
	}
	even := func(x int) bool { return x%2 == 0 }
	double := func(x int) int { return x * 2 }

	b.Run("Loop_Fused", func(b *testing.B) {
		for b.Loop() {
			sum := 0
			for _, x := range input {
				if even(x) {
					sum += double(x)
				}
			}
		}
	})

	b.Run("Lo_Chained", func(b *testing.B) {
		for b.Loop() {
			kept := lo.Filter(input, func(x int, _ int) bool { return even(x) })
			mapped := lo.Map(kept, func(x int, _ int) int { return double(x) })
			sum := 0
			for _, x := range mapped {
				sum += x
			}
		}
	})

	b.Run("View_Chained", func(b *testing.B) {
		v := views.FromSlice(input).Filter(even).Map(double)
		for b.Loop() {
			_ = views.Sum[int](v)
		}
	})
}

// BenchmarkBackward compares reversed traversal through a view against an
// index loop.
func BenchmarkBackward(b *testing.B) {
	size := 1_000_000
	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = i
	}

	b.Run("Loop_Index", func(b *testing.B) {
		for b.Loop() {
			sum := 0
			for i := len(input) - 1; i >= 0; i-- {
				sum += input[i]
			}
		}
	})

	b.Run("View_Reverse", func(b *testing.B) {
		v := views.FromSlice(input).Reverse()
		for b.Loop() {
			_ = views.Sum[int](v)
		}
	})
}
