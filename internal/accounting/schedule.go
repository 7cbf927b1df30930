package accounting

import "fmt"

// InstallmentsByCount splits total into n installments. The first n-1 get the
// rounded-down share, the last one the remainder, so the sum is exactly total.
func InstallmentsByCount(total int64, n int) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("installment count must be positive, got %d", n)
	}
	if total < 0 {
		return nil, fmt.Errorf("total must not be negative, got %d", total)
	}
	out := make([]int64, n)
	share := total / int64(n)
	for i := 0; i < n-1; i++ {
		out[i] = share
	}
	out[n-1] = total - share*int64(n-1)
	return out, nil
}

// InstallmentsByAmount splits total into installments of the given amount,
// with the remainder on the last one. The number of installments is the
// ceiling of total/amount.
func InstallmentsByAmount(total, amount int64) ([]int64, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("installment amount must be positive, got %d", amount)
	}
	if total < 0 {
		return nil, fmt.Errorf("total must not be negative, got %d", total)
	}
	if total == 0 {
		return nil, nil
	}
	n := int((total + amount - 1) / amount)
	out := make([]int64, n)
	for i := 0; i < n-1; i++ {
		out[i] = amount
	}
	out[n-1] = total - amount*int64(n-1)
	return out, nil
}
