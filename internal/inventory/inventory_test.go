package inventory_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"BeanLedger/internal/inventory"
	"BeanLedger/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func usdCost(number string, date model.Date) model.Cost {
	return model.Cost{Number: dec(number), Currency: "USD", Date: date}
}

// twoLotHOOL builds the ledger from the worked examples:
// [10 HOOL {100 USD, 2020-01-01}, 5 HOOL {110 USD, 2020-02-01}].
func twoLotHOOL(t *testing.T) *inventory.Registry {
	t.Helper()
	r := inventory.NewRegistry()
	r.AddLot("Assets:Stock", hool("10"), usdCost("100", model.NewDate(2020, 1, 1)))
	r.AddLot("Assets:Stock", hool("5"), usdCost("110", model.NewDate(2020, 2, 1)))
	return r
}

func hool(number string) model.Amount {
	return model.NewAmount(dec(number), "HOOL")
}

// ============================================================================
// Test: augmentation
// ============================================================================

func TestAddLot_MergesOnMatchingCostKey(t *testing.T) {
	r := inventory.NewRegistry()
	cost := usdCost("100", model.NewDate(2020, 1, 1))

	r.AddLot("Assets:Stock", hool("10"), cost)
	r.AddLot("Assets:Stock", hool("7"), cost)

	lots := r.Lots("Assets:Stock")
	if len(lots) != 1 {
		t.Fatalf("matching cost keys should merge, got %d lots", len(lots))
	}
	if !lots[0].Units.Equal(dec("17")) {
		t.Errorf("merged units = %s, want 17", lots[0].Units)
	}
}

func TestAddLot_DistinctKeysStayApart(t *testing.T) {
	r := twoLotHOOL(t)

	lots := r.Lots("Assets:Stock")
	if len(lots) != 2 {
		t.Fatalf("got %d lots, want 2", len(lots))
	}
	// Acquisition order: oldest first.
	if !lots[0].Cost.Number.Equal(dec("100")) || !lots[1].Cost.Number.Equal(dec("110")) {
		t.Errorf("lots out of acquisition order: %v", lots)
	}
}

func TestAddLot_OrderedByAcquisitionDate(t *testing.T) {
	r := inventory.NewRegistry()
	// Inserted out of date order; the book keeps acquisition order.
	r.AddLot("Assets:Stock", hool("5"), usdCost("110", model.NewDate(2020, 2, 1)))
	r.AddLot("Assets:Stock", hool("10"), usdCost("100", model.NewDate(2020, 1, 1)))

	lots := r.Lots("Assets:Stock")
	if !lots[0].Cost.Date.Before(lots[1].Cost.Date) {
		t.Errorf("lots should be ordered oldest acquisition first: %v, %v",
			lots[0].Cost.Date, lots[1].Cost.Date)
	}
}

func TestAddUnits_NetPosition(t *testing.T) {
	r := inventory.NewRegistry()
	r.AddUnits("Assets:Cash", model.NewAmount(dec("100.00"), "USD"))
	r.AddUnits("Assets:Cash", model.NewAmount(dec("-30.00"), "USD"))

	if got := r.NetPosition("Assets:Cash", "USD"); !got.Equal(dec("70.00")) {
		t.Errorf("net position = %s, want 70.00", got)
	}
}

// ============================================================================
// Test: FIFO (Example 2)
// ============================================================================

func TestReduce_FIFO_ConsumesOldestFirst(t *testing.T) {
	r := twoLotHOOL(t)

	breakdown, err := r.Reduce("Assets:Stock", hool("-12"), nil, model.BookingFIFO)
	if err != nil {
		t.Fatalf("FIFO reduce failed: %v", err)
	}

	if len(breakdown) != 2 {
		t.Fatalf("got %d reductions, want 2", len(breakdown))
	}
	if !breakdown[0].Units.Equal(dec("10")) || !breakdown[0].Cost.Number.Equal(dec("100")) {
		t.Errorf("first reduction should take 10 from the 100 USD lot, got %s at %s",
			breakdown[0].Units, breakdown[0].Cost.Number)
	}
	if !breakdown[1].Units.Equal(dec("2")) || !breakdown[1].Cost.Number.Equal(dec("110")) {
		t.Errorf("second reduction should take 2 from the 110 USD lot, got %s at %s",
			breakdown[1].Units, breakdown[1].Cost.Number)
	}

	lots := r.Lots("Assets:Stock")
	if len(lots) != 1 {
		t.Fatalf("got %d remaining lots, want 1", len(lots))
	}
	if !lots[0].Units.Equal(dec("3")) || !lots[0].Cost.Number.Equal(dec("110")) {
		t.Errorf("remaining lot = %s at %s, want 3 at 110", lots[0].Units, lots[0].Cost.Number)
	}
}

func TestReduce_FIFO_Insufficient(t *testing.T) {
	r := twoLotHOOL(t)

	_, err := r.Reduce("Assets:Stock", hool("-16"), nil, model.BookingFIFO)

	var insufficient *inventory.InsufficientLotError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientLotError, got %v", err)
	}
	if !insufficient.Available.Equal(dec("15")) {
		t.Errorf("available = %s, want 15", insufficient.Available)
	}

	// Failed reduction must not consume anything.
	if got := r.NetPosition("Assets:Stock", "HOOL"); !got.Equal(dec("15")) {
		t.Errorf("net position after failed reduce = %s, want 15", got)
	}
}

// ============================================================================
// Test: LIFO (Example 3)
// ============================================================================

func TestReduce_LIFO_ConsumesNewestFirst(t *testing.T) {
	r := twoLotHOOL(t)

	breakdown, err := r.Reduce("Assets:Stock", hool("-3"), nil, model.BookingLIFO)
	if err != nil {
		t.Fatalf("LIFO reduce failed: %v", err)
	}
	if len(breakdown) != 1 || !breakdown[0].Cost.Number.Equal(dec("110")) {
		t.Fatalf("LIFO should consume the 110 USD lot, got %v", breakdown)
	}

	lots := r.Lots("Assets:Stock")
	if len(lots) != 2 {
		t.Fatalf("got %d lots, want 2", len(lots))
	}
	if !lots[0].Units.Equal(dec("10")) || !lots[1].Units.Equal(dec("2")) {
		t.Errorf("remaining = [%s, %s], want [10, 2]", lots[0].Units, lots[1].Units)
	}
}

// ============================================================================
// Test: AVERAGE (Example 4)
// ============================================================================

func TestReduce_Average_CollapsesToWeightedMean(t *testing.T) {
	r := twoLotHOOL(t)

	breakdown, err := r.Reduce("Assets:Stock", hool("-2"), nil, model.BookingAverage)
	if err != nil {
		t.Fatalf("AVERAGE reduce failed: %v", err)
	}

	// (10*100 + 5*110) / 15 = 103.33
	mean := dec("103.33")
	if !breakdown[0].Cost.Number.Equal(mean) {
		t.Errorf("mean cost = %s, want 103.33", breakdown[0].Cost.Number)
	}

	lots := r.Lots("Assets:Stock")
	if len(lots) != 1 {
		t.Fatalf("AVERAGE should leave a single lot, got %d", len(lots))
	}
	if !lots[0].Units.Equal(dec("13")) {
		t.Errorf("remaining units = %s, want 13", lots[0].Units)
	}
	if !lots[0].Cost.Number.Equal(mean) {
		t.Errorf("remaining cost = %s, want 103.33", lots[0].Cost.Number)
	}
}

func TestReduce_Average_Insufficient(t *testing.T) {
	r := twoLotHOOL(t)

	_, err := r.Reduce("Assets:Stock", hool("-20"), nil, model.BookingAverage)

	var insufficient *inventory.InsufficientLotError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientLotError, got %v", err)
	}
}

// ============================================================================
// Test: STRICT (Example 5)
// ============================================================================

func TestReduce_Strict_NoSpecIsAmbiguous(t *testing.T) {
	r := twoLotHOOL(t)

	_, err := r.Reduce("Assets:Stock", hool("-2"), nil, model.BookingStrict)

	var ambiguous *inventory.AmbiguousMatchError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected AmbiguousMatchError, got %v", err)
	}
	if ambiguous.Matches != 2 {
		t.Errorf("matches = %d, want 2", ambiguous.Matches)
	}
}

func TestReduce_Strict_ZeroMatchesIsAmbiguous(t *testing.T) {
	r := twoLotHOOL(t)

	n := dec("999")
	_, err := r.Reduce("Assets:Stock", hool("-2"), &model.CostSpec{Number: &n}, model.BookingStrict)

	var ambiguous *inventory.AmbiguousMatchError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected AmbiguousMatchError, got %v", err)
	}
	if ambiguous.Matches != 0 {
		t.Errorf("matches = %d, want 0", ambiguous.Matches)
	}
}

func TestReduce_Strict_UniqueMatch(t *testing.T) {
	r := twoLotHOOL(t)

	n := dec("100")
	breakdown, err := r.Reduce("Assets:Stock", hool("-4"), &model.CostSpec{Number: &n}, model.BookingStrict)
	if err != nil {
		t.Fatalf("strict reduce with unique match failed: %v", err)
	}
	if !breakdown[0].Cost.Number.Equal(dec("100")) {
		t.Errorf("consumed wrong lot: %s", breakdown[0].Cost.Number)
	}

	lots := r.Lots("Assets:Stock")
	if !lots[0].Units.Equal(dec("6")) {
		t.Errorf("remaining in matched lot = %s, want 6", lots[0].Units)
	}
}

func TestReduce_Strict_RemovesLotAtZero(t *testing.T) {
	r := twoLotHOOL(t)

	n := dec("110")
	if _, err := r.Reduce("Assets:Stock", hool("-5"), &model.CostSpec{Number: &n}, model.BookingStrict); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}

	lots := r.Lots("Assets:Stock")
	if len(lots) != 1 {
		t.Fatalf("fully consumed lot should be removed, got %d lots", len(lots))
	}
}

// ============================================================================
// Test: NONE
// ============================================================================

func TestReduce_None_PermitsMixedSigns(t *testing.T) {
	r := inventory.NewRegistry()

	spec := &model.CostSpec{Currency: "USD"}
	if _, err := r.Reduce("Assets:Short", hool("-5"), spec, model.BookingNone); err != nil {
		t.Fatalf("NONE reduce on empty account failed: %v", err)
	}

	r.AddLot("Assets:Short", hool("3"), usdCost("90", model.NewDate(2020, 3, 1)))

	if got := r.NetPosition("Assets:Short", "HOOL"); !got.Equal(dec("-5")) {
		t.Errorf("net HOOL position = %s, want -5", got)
	}
}

// ============================================================================
// Test: short positions
// ============================================================================

// shortHOOL opens a short book: a single lot of -10 HOOL {100 USD}.
func shortHOOL(t *testing.T) *inventory.Registry {
	t.Helper()
	r := inventory.NewRegistry()
	r.AddLot("Liabilities:Short", hool("-10"), usdCost("100", model.NewDate(2020, 1, 1)))
	return r
}

func TestReduce_Strict_PartialCoverOfShortLot(t *testing.T) {
	r := shortHOOL(t)

	n := dec("100")
	breakdown, err := r.Reduce("Liabilities:Short", hool("3"), &model.CostSpec{Number: &n}, model.BookingStrict)
	if err != nil {
		t.Fatalf("covering part of a short lot failed: %v", err)
	}
	if !breakdown[0].Units.Equal(dec("-3")) {
		t.Errorf("reduction units = %s, want -3", breakdown[0].Units)
	}

	lots := r.Lots("Liabilities:Short")
	if len(lots) != 1 || !lots[0].Units.Equal(dec("-7")) {
		t.Fatalf("remaining short lot = %v, want -7 at 100", lots)
	}
}

func TestReduce_FIFO_OverCoverOfShortIsInsufficient(t *testing.T) {
	r := shortHOOL(t)

	_, err := r.Reduce("Liabilities:Short", hool("12"), nil, model.BookingFIFO)

	var insufficient *inventory.InsufficientLotError
	if !errors.As(err, &insufficient) {
		t.Fatalf("covering -10 with 12 should fail, got err=%v", err)
	}
	if !insufficient.Available.Equal(dec("-10")) {
		t.Errorf("available = %s, want -10", insufficient.Available)
	}

	// The short lot must be untouched; its sign never flips.
	lots := r.Lots("Liabilities:Short")
	if len(lots) != 1 || !lots[0].Units.Equal(dec("-10")) {
		t.Fatalf("short lot after failed cover = %v, want -10 at 100", lots)
	}
}

func TestReduce_FIFO_CoversShortLotsOldestFirst(t *testing.T) {
	r := shortHOOL(t)
	r.AddLot("Liabilities:Short", hool("-5"), usdCost("110", model.NewDate(2020, 2, 1)))

	breakdown, err := r.Reduce("Liabilities:Short", hool("12"), nil, model.BookingFIFO)
	if err != nil {
		t.Fatalf("FIFO cover failed: %v", err)
	}
	if len(breakdown) != 2 {
		t.Fatalf("got %d reductions, want 2", len(breakdown))
	}
	if !breakdown[0].Units.Equal(dec("-10")) || !breakdown[0].Cost.Number.Equal(dec("100")) {
		t.Errorf("first cover = %s at %s, want -10 at 100", breakdown[0].Units, breakdown[0].Cost.Number)
	}
	if !breakdown[1].Units.Equal(dec("-2")) || !breakdown[1].Cost.Number.Equal(dec("110")) {
		t.Errorf("second cover = %s at %s, want -2 at 110", breakdown[1].Units, breakdown[1].Cost.Number)
	}

	lots := r.Lots("Liabilities:Short")
	if len(lots) != 1 || !lots[0].Units.Equal(dec("-3")) {
		t.Fatalf("remaining short = %v, want -3 at 110", lots)
	}
}

func TestReduce_Average_CoversShortAtWeightedMean(t *testing.T) {
	r := shortHOOL(t)
	r.AddLot("Liabilities:Short", hool("-5"), usdCost("110", model.NewDate(2020, 2, 1)))

	breakdown, err := r.Reduce("Liabilities:Short", hool("2"), nil, model.BookingAverage)
	if err != nil {
		t.Fatalf("AVERAGE cover failed: %v", err)
	}
	// (-10*100 + -5*110) / -15 = 103.33
	if !breakdown[0].Cost.Number.Equal(dec("103.33")) {
		t.Errorf("mean cost = %s, want 103.33", breakdown[0].Cost.Number)
	}

	lots := r.Lots("Liabilities:Short")
	if len(lots) != 1 || !lots[0].Units.Equal(dec("-13")) {
		t.Fatalf("remaining short = %v, want -13 at 103.33", lots)
	}
}

// ============================================================================
// Test: InvalidBooking
// ============================================================================

func TestReduce_NoLots_InvalidBooking(t *testing.T) {
	r := inventory.NewRegistry()

	for _, method := range []model.Booking{
		model.BookingStrict, model.BookingAverage, model.BookingFIFO, model.BookingLIFO,
	} {
		_, err := r.Reduce("Assets:Empty", hool("-1"), nil, method)
		var invalid *inventory.InvalidBookingError
		if !errors.As(err, &invalid) {
			t.Errorf("%s on empty account: expected InvalidBookingError, got %v", method, err)
		}
	}
}

func TestReduce_UnknownMethodWithLots_InvalidBooking(t *testing.T) {
	r := twoLotHOOL(t)

	_, err := r.Reduce("Assets:Stock", hool("-1"), nil, model.BookingUnknown)

	var invalid *inventory.InvalidBookingError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidBookingError, got %v", err)
	}
}

// ============================================================================
// Test: snapshot / restore
// ============================================================================

func TestSnapshotRestore_RollsBackMutations(t *testing.T) {
	r := twoLotHOOL(t)

	snap := r.Snapshot([]string{"Assets:Stock"})

	if _, err := r.Reduce("Assets:Stock", hool("-12"), nil, model.BookingFIFO); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}
	r.AddLot("Assets:Stock", hool("1"), usdCost("120", model.NewDate(2020, 3, 1)))

	r.Restore(snap)

	lots := r.Lots("Assets:Stock")
	if len(lots) != 2 {
		t.Fatalf("restore should bring back 2 lots, got %d", len(lots))
	}
	if got := r.NetPosition("Assets:Stock", "HOOL"); !got.Equal(dec("15")) {
		t.Errorf("net position after restore = %s, want 15", got)
	}
}

// ============================================================================
// Test: net position invariant
// ============================================================================

func TestNetPosition_EqualsSumOfSignedQuantities(t *testing.T) {
	r := inventory.NewRegistry()

	applied := []string{"10", "5", "-12", "4", "-3"}
	expected := decimal.Zero
	for _, q := range applied {
		n := dec(q)
		expected = expected.Add(n)
		if n.Sign() > 0 {
			r.AddLot("Assets:Stock", model.NewAmount(n, "HOOL"), usdCost("100", model.NewDate(2020, 1, 1)))
		} else {
			if _, err := r.Reduce("Assets:Stock", model.NewAmount(n, "HOOL"), nil, model.BookingFIFO); err != nil {
				t.Fatalf("reduce %s failed: %v", q, err)
			}
		}
	}

	if got := r.NetPosition("Assets:Stock", "HOOL"); !got.Equal(expected) {
		t.Errorf("net position = %s, want %s", got, expected)
	}
}

// ============================================================================
// Test: cost key uniqueness invariant
// ============================================================================

func TestLots_NeverDuplicateCostKeys(t *testing.T) {
	r := inventory.NewRegistry()
	cost := usdCost("100", model.NewDate(2020, 1, 1))

	r.AddLot("Assets:Stock", hool("10"), cost)
	r.AddLot("Assets:Stock", hool("5"), cost)
	r.AddLot("Assets:Stock", hool("2"), usdCost("100", model.NewDate(2020, 1, 2)))

	seen := make(map[model.CostKey]bool)
	for _, lot := range r.Lots("Assets:Stock") {
		key := lot.Cost.Key()
		if seen[key] {
			t.Fatalf("duplicate cost key %+v", key)
		}
		seen[key] = true
	}
}
