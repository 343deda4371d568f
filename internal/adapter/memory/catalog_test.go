package memory

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"icpc-contest/internal/apperrors"
	"icpc-contest/internal/domain/model"
)

func TestCatalogExistsIgnoresCase(t *testing.T) {
	c := NewCatalog(10)
	if _, err := c.Add(model.Problem{Statement: "Two Sum"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	for _, s := range []string{"Two Sum", "two sum", "TWO SUM", "tWo SuM"} {
		if !c.Exists(s) {
			t.Errorf("Exists(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"Two Sums", "Two  Sum", ""} {
		if c.Exists(s) {
			t.Errorf("Exists(%q) = true, want false", s)
		}
	}
}

func TestCatalogAddAppendsInOrder(t *testing.T) {
	c := NewCatalog(10)

	for i, s := range []string{"A", "B", "C"} {
		before := c.Len()
		added, err := c.Add(model.Problem{Statement: s})
		if err != nil {
			t.Fatalf("Add(%q): %v", s, err)
		}
		if c.Len() != before+1 {
			t.Fatalf("Len after add %d = %d, want %d", i, c.Len(), before+1)
		}
		all := c.Problems()
		if all[len(all)-1].ID != added.ID || all[len(all)-1].Statement != s {
			t.Fatalf("last problem = %+v, want %+v", all[len(all)-1], added)
		}
	}

	got := c.Problems()
	want := []model.Problem{{Statement: "A"}, {Statement: "B"}, {Statement: "C"}}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(model.Problem{}, "ID")); diff != "" {
		t.Errorf("problems mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalogAddAssignsID(t *testing.T) {
	c := NewCatalog(10)

	added, err := c.Add(model.Problem{Statement: "A"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected generated ID")
	}

	kept, err := c.Add(model.Problem{ID: "p-1", Statement: "B"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if kept.ID != "p-1" {
		t.Errorf("ID = %q, want p-1", kept.ID)
	}
}

func TestCatalogCapacity(t *testing.T) {
	c := NewCatalog(2)
	for _, s := range []string{"A", "B"} {
		if _, err := c.Add(model.Problem{Statement: s}); err != nil {
			t.Fatalf("Add(%q): %v", s, err)
		}
	}

	_, err := c.Add(model.Problem{Statement: "C"})
	if !errors.Is(err, apperrors.ErrCapacityExceeded) {
		t.Fatalf("Add over capacity err = %v, want ErrCapacityExceeded", err)
	}
	_, err = c.AddIfAbsent(model.Problem{Statement: "D"})
	if !errors.Is(err, apperrors.ErrCapacityExceeded) {
		t.Fatalf("AddIfAbsent over capacity err = %v, want ErrCapacityExceeded", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestNewCatalogDefaultCapacity(t *testing.T) {
	for _, capacity := range []int{0, -5} {
		if got := NewCatalog(capacity).Capacity(); got != DefaultCapacity {
			t.Errorf("NewCatalog(%d).Capacity() = %d, want %d", capacity, got, DefaultCapacity)
		}
	}
}

func TestCatalogAddIfAbsentRejectsDuplicate(t *testing.T) {
	c := NewCatalog(10)
	if _, err := c.AddIfAbsent(model.Problem{Statement: "Two Sum"}); err != nil {
		t.Fatalf("AddIfAbsent: %v", err)
	}

	_, err := c.AddIfAbsent(model.Problem{Statement: "two sum"})
	if !errors.Is(err, apperrors.ErrDuplicateProblem) {
		t.Fatalf("err = %v, want ErrDuplicateProblem", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCatalogAddIfAbsentConcurrent(t *testing.T) {
	c := NewCatalog(50)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			statement := "Shared Problem"
			if i%2 == 0 {
				statement = "shared problem"
			}
			_, _ = c.AddIfAbsent(model.Problem{Statement: statement})
			_, _ = c.AddIfAbsent(model.Problem{Statement: fmt.Sprintf("unique %d", i)})
		}(i)
	}
	wg.Wait()

	if c.Len() != 21 {
		t.Fatalf("Len = %d, want 21", c.Len())
	}
}

func TestCatalogProblemsReturnsCopy(t *testing.T) {
	c := NewCatalog(10)
	if _, err := c.Add(model.Problem{Statement: "A"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got := c.Problems()
	got[0].Statement = "changed"

	if c.Problems()[0].Statement != "A" {
		t.Error("Problems exposed internal storage")
	}
}
