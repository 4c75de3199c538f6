package verifier

import "testing"

func TestLayoutSize(t *testing.T) {
	tests := []struct {
		name       string
		layout     Layout
		n          int
		wantWidth  int
		wantHeight int
	}{
		{"Default six slots", DefaultLayout(), 6, 35, 4},
		{"Default one slot", DefaultLayout(), 1, 5, 4},
		{"Wide spacing", Layout{SlotWidth: 7, SlotSpacing: 3, LabelHeight: 3, LineHeight: 1, CarrierSpacing: 1}, 4, 37, 5},
		{"No slots", DefaultLayout(), 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.layout.Size(tt.n)
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("Size(%d) = (%d, %d), want (%d, %d)", tt.n, w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Layout)
		wantErr bool
	}{
		{"Default", func(l *Layout) {}, false},
		{"Slot too narrow", func(l *Layout) { l.SlotWidth = 2 }, true},
		{"Label too short", func(l *Layout) { l.LabelHeight = 1 }, true},
		{"Negative spacing", func(l *Layout) { l.SlotSpacing = -1 }, true},
		{"Negative line height", func(l *Layout) { l.LineHeight = -1 }, true},
		{"Negative carrier spacing", func(l *Layout) { l.CarrierSpacing = -2 }, true},
		{"Zero spacing allowed", func(l *Layout) { l.SlotSpacing = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.mutate(&l)
			err := l.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsConfigError(err) {
				t.Errorf("Expected config error, got %T", err)
			}
		})
	}
}

func TestSessionSize(t *testing.T) {
	s, err := New(Config{Code: MustCode("123456")})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w, h := s.Size(DefaultLayout())
	if w != 35 || h != 4 {
		t.Errorf("Size() = (%d, %d), want (35, 4)", w, h)
	}
}
