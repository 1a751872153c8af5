package layout

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	if p.LineOverlap != 0.5 {
		t.Errorf("LineOverlap = %v, want 0.5", p.LineOverlap)
	}
	if p.CharMargin != 2.0 {
		t.Errorf("CharMargin = %v, want 2.0", p.CharMargin)
	}
	if p.CharMarginForWord != 0.05 {
		t.Errorf("CharMarginForWord = %v, want 0.05", p.CharMarginForWord)
	}
	if p.WordMargin != 0.1 {
		t.Errorf("WordMargin = %v, want 0.1", p.WordMargin)
	}
	if p.LineMargin != 0.5 {
		t.Errorf("LineMargin = %v, want 0.5", p.LineMargin)
	}
	if p.BoxesFlow == nil || *p.BoxesFlow != 0.5 {
		t.Errorf("BoxesFlow = %v, want 0.5", p.BoxesFlow)
	}
	if p.DetectVertical {
		t.Error("DetectVertical = true, want false")
	}
	if p.AllTexts {
		t.Error("AllTexts = true, want false")
	}

	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestParamsValidate(t *testing.T) {
	flow := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		flow    *float64
		wantErr bool
	}{
		{"nil disables clustering", nil, false},
		{"zero", flow(0), false},
		{"half", flow(0.5), false},
		{"lower bound", flow(-1), false},
		{"upper bound", flow(1), false},
		{"too large", flow(1.5), true},
		{"too small", flow(-2), true},
		{"nan", flow(math.NaN()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.BoxesFlow = tt.flow

			err := p.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBoxesFlow) {
					t.Errorf("Validate() = %v, want ErrInvalidBoxesFlow", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
