package service

// CodeCounts is the mapped/unmapped split computed once at generation time.
// Counts are never recomputed after creation.
type CodeCounts struct {
	Total    int
	Mapped   int
	Unmapped int
}

// ProductCodeCounts splits a requested quantity by the rejection percentage:
// unmapped = floor(quantity * pct / 100), mapped = quantity - unmapped.
// Bounds on pct are a caller concern; this stays a pure function.
func ProductCodeCounts(quantity int, rejectionPercentage float64) CodeCounts {
	rejected := int(float64(quantity) * rejectionPercentage / 100)
	return CodeCounts{
		Total:    quantity,
		Mapped:   quantity - rejected,
		Unmapped: rejected,
	}
}

// FirstLevelCounts has no rejection concept: everything is mapped
func FirstLevelCounts(quantity int) CodeCounts {
	return CodeCounts{Total: quantity, Mapped: quantity, Unmapped: 0}
}

// ShipperTotals aggregates an ordered list of entry quantities into the
// container totals: count of entries and sum of quantities.
func ShipperTotals(quantities []int) (totalProducts, totalQuantity int) {
	totalProducts = len(quantities)
	for _, q := range quantities {
		totalQuantity += q
	}
	return totalProducts, totalQuantity
}
