package domain

import "testing"

func TestCartAddMergesExistingLine(t *testing.T) {
	// build test data
	pizza := MenuItem{ItemID: "heat1", Name: "Peri Peri Pizza", PricePKR: 1500}
	meal := MenuItem{ItemID: "zalmi1", Name: "Zalmi Meal Deal", PricePKR: 2500, DrinkOptions: []string{"Cola Next"}}

	cart := &Cart{CartID: "c1"}

	// call the methods under test
	if err := cart.Add(pizza, 1, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cart.Add(meal, 1, "Cola Next"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cart.Add(pizza, 2, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// verify behavior
	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("pizza quantity = %d, want 3", cart.Items[0].Quantity)
	}
	if cart.Items[1].SelectedDrink != "Cola Next" {
		t.Errorf("meal drink = %q, want Cola Next", cart.Items[1].SelectedDrink)
	}

	if got := cart.TotalPKR(); got != 3*1500+2500 {
		t.Errorf("total = %d, want %d", got, 3*1500+2500)
	}
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	cart := &Cart{CartID: "c1"}
	if err := cart.Add(MenuItem{ItemID: "x"}, 0, ""); err == nil {
		t.Fatal("expected error for zero quantity")
	}
}

func TestCartUpdateQuantityClampsToOne(t *testing.T) {
	cart := &Cart{CartID: "c1"}
	if err := cart.Add(MenuItem{ItemID: "heat1", PricePKR: 1500}, 2, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cart.UpdateQuantity("heat1", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Items[0].Quantity != 1 {
		t.Errorf("quantity = %d, want 1", cart.Items[0].Quantity)
	}

	if err := cart.UpdateQuantity("missing", 2); err == nil {
		t.Fatal("expected error for missing item")
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := &Cart{CartID: "c1"}
	_ = cart.Add(MenuItem{ItemID: "a", PricePKR: 100}, 1, "")
	_ = cart.Add(MenuItem{ItemID: "b", PricePKR: 200}, 1, "")

	cart.Remove("a")
	if len(cart.Items) != 1 || cart.Items[0].ItemID != "b" {
		t.Fatalf("unexpected items after remove: %+v", cart.Items)
	}

	// removing an absent item is a no-op
	cart.Remove("a")
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Items))
	}

	cart.Clear()
	if !cart.Empty() {
		t.Error("cart should be empty after Clear")
	}
	if cart.TotalPKR() != 0 {
		t.Errorf("total = %d, want 0", cart.TotalPKR())
	}
}
