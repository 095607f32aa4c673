package inner

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/ib-77/inner/pkg/inner/flow"
)

type fruit interface{ isFruit() }

type apple struct{ weight int }

func (apple) isFruit() {}

type orange struct{ peel int16 }

func (orange) isFruit() {}

var asApple = Field[fruit](func(a apple) int { return a.weight })

func panicMessage(t *testing.T, fn func()) string {
	t.Helper()
	var msg string
	func() {
		defer func() {
			if r := recover(); r != nil {
				msg = fmt.Sprint(r)
			}
		}()
		fn()
	}()
	if msg == "" {
		t.Fatalf("expected a panic")
	}
	return msg
}

func TestExtract_Some(t *testing.T) {
	t.Parallel()
	if got := Extract(Some(7)); got != 7 {
		t.Fatalf("expected 7, got %v", got)
	}
}

func TestExtract_Ok(t *testing.T) {
	t.Parallel()
	if got := Extract(Ok[int, Unit](2)); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}

func TestExtract_NonePanicsWithExpression(t *testing.T) {
	t.Parallel()
	z := None[int]()
	msg := panicMessage(t, func() {
		Extract(z)
	})
	if !strings.Contains(msg, "unexpected value") || !strings.Contains(msg, "'z'") {
		t.Fatalf("expected message naming 'z', got: %s", msg)
	}
}

func TestExtractOr_DiscardsFailurePayload(t *testing.T) {
	t.Parallel()
	x := Err[string, int](7)
	if got := ExtractOr(x, func() string { return "fallback" }); got != "fallback" {
		t.Fatalf("expected 'fallback', got %v", got)
	}

	ok := Ok[string, int]("kept")
	called := false
	got := ExtractOr(ok, func() string {
		called = true
		return "fallback"
	})
	if got != "kept" || called {
		t.Fatalf("expected 'kept' without fallback, got %v (called=%v)", got, called)
	}
}

func TestExtractOrElse_BindsFailurePayload(t *testing.T) {
	t.Parallel()
	x := Err[string, int](7)
	y := ExtractOrElse(x, func(e int) string {
		if e != 7 {
			t.Fatalf("expected failure payload 7, got %v", e)
		}
		return strconv.Itoa(e + 2)
	})
	if y != "9" {
		t.Fatalf("expected \"9\", got %q", y)
	}
}

func TestExtractIf_Match(t *testing.T) {
	t.Parallel()
	var z fruit = apple{weight: 15}
	if got := ExtractIf(z, asApple); got != 15 {
		t.Fatalf("expected 15, got %v", got)
	}
}

func TestExtractIf_MismatchPanicsWithExpression(t *testing.T) {
	t.Parallel()
	var z fruit = orange{peel: 15}
	msg := panicMessage(t, func() {
		ExtractIf(z, asApple)
	})
	if !strings.Contains(msg, "'z'") {
		t.Fatalf("expected message naming 'z', got: %s", msg)
	}
}

func TestExtractIfOr_Mismatch(t *testing.T) {
	t.Parallel()
	var z fruit = orange{peel: 15}
	if got := ExtractIfOr(z, asApple, func() int { return 0 }); got != 0 {
		t.Fatalf("expected fallback 0, got %v", got)
	}
}

func TestExtractIfOrElse_BindsWholeValue(t *testing.T) {
	t.Parallel()
	var z fruit = orange{peel: 15}
	got := ExtractIfOrElse(z, asApple, func(e fruit) int {
		if e != z {
			t.Fatalf("expected the entire original value, got %v", e)
		}
		return 9
	})
	if got != 9 {
		t.Fatalf("expected 9, got %v", got)
	}
}

func TestExtractIfOrElse_EarlyExit(t *testing.T) {
	t.Parallel()
	var z fruit = orange{peel: 15}
	reached := false
	flow.Boundary(func() {
		ExtractIfOrElse(z, asApple, func(e fruit) int {
			if e != z {
				t.Errorf("expected the entire original value, got %v", e)
			}
			flow.Exit()
			return 0
		})
		reached = true
	})
	if reached {
		t.Fatalf("statements after the extraction were reached")
	}
}

func TestCase_YieldsWholeVariant(t *testing.T) {
	t.Parallel()
	var z fruit = orange{peel: 4}
	o := ExtractIf(z, Case[fruit, orange]())
	if o.peel != 4 {
		t.Fatalf("expected peel 4, got %v", o.peel)
	}
}

func TestField_MultiFieldVariant(t *testing.T) {
	t.Parallel()
	type box struct {
		label string
		count int
	}
	type parcel interface{}

	both := Field[parcel](func(b box) box { return b })
	var p parcel = box{label: "x", count: 2}
	got := ExtractIf(p, both)
	if got.label != "x" || got.count != 2 {
		t.Fatalf("expected whole box back, got %+v", got)
	}
}
