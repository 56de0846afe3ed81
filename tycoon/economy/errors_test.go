package economy

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "insufficient funds", err: ErrInsufficientFunds(100, 500), want: KindInsufficientFunds},
		{name: "self trade", err: ErrSelfTrade(7), want: KindSelfTrade},
		{name: "wrapped", err: fmt.Errorf("settle: %w", ErrNotOwner("property", 3)), want: KindNotOwner},
		{name: "deeply wrapped", err: fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrAlreadyCollectedToday(1))), want: KindAlreadyCollectedToday},
		{name: "plain error", err: errors.New("boom"), want: ""},
		{name: "nil", err: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorCarriesAmounts(t *testing.T) {
	err := ErrInsufficientFunds(100, 500)
	if err.Have != 100 || err.Need != 500 {
		t.Errorf("have/need = %d/%d, want 100/500", err.Have, err.Need)
	}
	if err.Error() != "insufficient balance (has 100, needs 500)" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestErrorsIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("purchase: %w", ErrInsufficientFunds(0, 50000))
	if !errors.Is(err, &Error{Kind: KindInsufficientFunds}) {
		t.Error("errors.Is should match on kind")
	}
	if errors.Is(err, &Error{Kind: KindSelfTrade}) {
		t.Error("errors.Is matched the wrong kind")
	}
}
