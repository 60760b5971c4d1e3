package domain

import (
	"testing"
	"time"
)

func TestOrderStatusProgression(t *testing.T) {
	placedAt := time.Date(2026, 1, 7, 20, 0, 0, 0, time.UTC)
	order := &Order{OrderID: "o1", PlacedAt: placedAt}

	cases := []struct {
		elapsed time.Duration
		want    OrderStatus
	}{
		{0, OrderStatusPreparing},
		{14 * time.Minute, OrderStatusPreparing},
		{15 * time.Minute, OrderStatusOnTheWay},
		{44 * time.Minute, OrderStatusOnTheWay},
		{45 * time.Minute, OrderStatusDelivered},
		{3 * time.Hour, OrderStatusDelivered},
	}

	for _, tc := range cases {
		if got := order.StatusAt(placedAt.Add(tc.elapsed)); got != tc.want {
			t.Errorf("StatusAt(+%v) = %q, want %q", tc.elapsed, got, tc.want)
		}
	}
}

func TestDefaultAddress(t *testing.T) {
	home := Address{AddressID: "a2", Label: "Home"}
	work := Address{AddressID: "a1", Label: "Work"}

	if got := DefaultAddress([]Address{work, home}); got == nil || got.AddressID != "a2" {
		t.Errorf("default = %+v, want the Home address", got)
	}
	if got := DefaultAddress([]Address{work}); got == nil || got.AddressID != "a1" {
		t.Errorf("default = %+v, want the first saved address", got)
	}
	if got := DefaultAddress(nil); got != nil {
		t.Errorf("default = %+v, want nil for no addresses", got)
	}
}
