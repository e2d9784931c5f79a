package toolkit

// Fibonacci returns the nth Fibonacci number with f(0)=0 and f(1)=1.
// Negative n behaves as 0.
func Fibonacci(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	var a, b uint64 = 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// Sequence returns the Fibonacci numbers f(0)..f(n).
// Returns nil for negative n.
func Sequence(n int) []uint64 {
	if n < 0 {
		return nil
	}
	seq := make([]uint64, n+1)
	for i := range seq {
		if i >= 2 {
			seq[i] = seq[i-1] + seq[i-2]
			continue
		}
		seq[i] = uint64(i)
	}
	return seq
}
