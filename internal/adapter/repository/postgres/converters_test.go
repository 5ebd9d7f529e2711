package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	values := []string{"0", "100", "-250.75", "0.0000000001", "99999999999999999999.99"}

	for _, v := range values {
		d := decimal.RequireFromString(v)
		got := numericToDecimal(decimalToNumeric(d))
		if !got.Equal(d) {
			t.Fatalf("round trip of %s: got %s", v, got)
		}
	}
}

func TestNumericToDecimalInvalid(t *testing.T) {
	got := numericToDecimal(pgtype.Numeric{})
	if !got.IsZero() {
		t.Fatalf("expected zero for an invalid numeric, got %s", got)
	}
}

func TestTimeToPgDate(t *testing.T) {
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	pgDate := timeToPgDate(day)
	if !pgDate.Valid || !pgDate.Time.Equal(day) {
		t.Fatalf("unexpected pg date: %+v", pgDate)
	}
}
