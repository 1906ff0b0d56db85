package derive

import (
	"testing"
	"time"

	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
)

func TestWarrantyStatusOn(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  time.Time
		want domain.WarrantyStatus
	}{
		{"ended yesterday", now.AddDate(0, 0, -1), domain.WarrantyStatusExpired},
		{"ends today is already expired", now, domain.WarrantyStatusExpired},
		{"ends tomorrow", now.AddDate(0, 0, 1), domain.WarrantyStatusExpiringSoon},
		{"ends in exactly thirty days", now.AddDate(0, 0, 30), domain.WarrantyStatusExpiringSoon},
		{"ends in thirty-one days", now.AddDate(0, 0, 31), domain.WarrantyStatusActive},
		{"ended a year ago", now.AddDate(-1, 0, 0), domain.WarrantyStatusExpired},
		{"ends in a year", now.AddDate(1, 0, 0), domain.WarrantyStatusActive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WarrantyStatusOn(tc.end, now, 30); got != tc.want {
				t.Fatalf("WarrantyStatusOn(%s) = %q, want %q", tc.end.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestWarrantyStatusOnTimeOfDayIrrelevant(t *testing.T) {
	t.Parallel()

	// only the calendar date matters, not the clock time
	end := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	morning := time.Date(2025, 3, 15, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC)

	if got := WarrantyStatusOn(end, morning, 30); got != domain.WarrantyStatusExpiringSoon {
		t.Fatalf("morning evaluation = %q, want %q", got, domain.WarrantyStatusExpiringSoon)
	}
	if got := WarrantyStatusOn(end, night, 30); got != domain.WarrantyStatusExpiringSoon {
		t.Fatalf("night evaluation = %q, want %q", got, domain.WarrantyStatusExpiringSoon)
	}
}

func TestWarrantyStatusOnDefaultHorizon(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	if got := WarrantyStatusOn(now.AddDate(0, 0, 30), now, 0); got != domain.WarrantyStatusExpiringSoon {
		t.Fatalf("zero horizon should fall back to %d days, got %q", DefaultExpiryHorizonDays, got)
	}
	if got := WarrantyStatusOn(now.AddDate(0, 0, 31), now, -5); got != domain.WarrantyStatusActive {
		t.Fatalf("negative horizon should fall back to the default, got %q", got)
	}
}

func TestExpiringAssets(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	assets := []*domain.Asset{
		{AssetCode: "A-1", WarrantyEndDate: now.AddDate(0, 0, 10)},
		{AssetCode: "A-2", WarrantyEndDate: now.AddDate(0, 0, 90)},
		{AssetCode: "A-3", WarrantyEndDate: now.AddDate(0, 0, -3)},
		{AssetCode: "A-4", WarrantyEndDate: now.AddDate(0, 0, 5), Status: domain.AssetStatusRemoved},
	}

	expiring := ExpiringAssets(assets, now, 30)
	if len(expiring) != 2 {
		t.Fatalf("len(expiring) = %d, want 2", len(expiring))
	}
	if expiring[0].AssetCode != "A-1" || expiring[1].AssetCode != "A-3" {
		t.Fatalf("expiring = [%s, %s], want [A-1, A-3]", expiring[0].AssetCode, expiring[1].AssetCode)
	}
}
