package domain

import (
	"errors"
	"testing"
)

func TestColorAndNumberBands(t *testing.T) {
	tests := []struct {
		code   int
		color  Color
		number int
	}{
		{0, ColorYellow, 1},
		{12, ColorYellow, 13},
		{13, ColorBlue, 1},
		{25, ColorBlue, 13},
		{26, ColorBlack, 1},
		{38, ColorBlack, 13},
		{39, ColorRed, 1},
		{51, ColorRed, 13},
		{FakeOkeyCode, ColorNone, 0},
	}

	for _, tt := range tests {
		if got := ColorOf(tt.code); got != tt.color {
			t.Errorf("ColorOf(%d) = %v, want %v", tt.code, got, tt.color)
		}
		if got := NumberOf(tt.code); got != tt.number {
			t.Errorf("NumberOf(%d) = %d, want %d", tt.code, got, tt.number)
		}
	}
}

func TestCodeOfRoundTrip(t *testing.T) {
	for code := 0; code < FakeOkeyCode; code++ {
		if got := CodeOf(ColorOf(code), NumberOf(code)); got != code {
			t.Fatalf("CodeOf(ColorOf, NumberOf) = %d, want %d", got, code)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		code  int
		jc    JokerContext
		want  Tile
	}{
		{
			name: "RegularTile",
			code: 14,
			jc:   JokerContext{OkeyCode: 1, IndicatorCode: 5},
			want: Tile{Number: 2, Color: ColorBlue},
		},
		{
			name: "RealOkeyBecomesJoker",
			code: 1,
			jc:   JokerContext{OkeyCode: 1, IndicatorCode: 0},
			want: Tile{Number: 2, Color: ColorYellow, IsJoker: true},
		},
		{
			name: "FakeOkeyLiveWhenIndicatorMatchesFace",
			code: FakeOkeyCode,
			jc:   JokerContext{OkeyCode: 1, IndicatorCode: 0, FakeFaceCode: 0},
			want: Tile{Number: 2, Color: ColorYellow, IsJoker: true},
		},
		{
			name: "FakeOkeyInertWhenIndicatorDiffers",
			code: FakeOkeyCode,
			jc:   JokerContext{OkeyCode: 1, IndicatorCode: 7, FakeFaceCode: 0},
			want: Tile{Number: 1, Color: ColorYellow},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.code, 0, tt.jc)
			if err != nil {
				t.Fatalf("Normalize error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Normalize(%d) = %+v, want %+v", tt.code, got, tt.want)
			}
		})
	}
}

func TestNormalizeRejectsOutOfRangeCodes(t *testing.T) {
	for _, code := range []int{-1, 53, 1000} {
		if _, err := Normalize(code, 0, JokerContext{}); !errors.Is(err, ErrInvalidTileCode) {
			t.Errorf("Normalize(%d) error = %v, want ErrInvalidTileCode", code, err)
		}
	}
}

func TestValidateHand(t *testing.T) {
	tests := []struct {
		name    string
		codes   []int
		wantErr error
	}{
		{"FourteenTiles", make([]int, 14), nil},
		{"FifteenTiles", make([]int, 15), nil},
		{"TooShort", make([]int, 13), ErrInvalidHandSize},
		{"TooLong", make([]int, 16), ErrInvalidHandSize},
		{"BadCode", append(make([]int, 13), 99), ErrInvalidTileCode},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHand(tt.codes)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("ValidateHand error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateHand error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCodeString(t *testing.T) {
	if got := CodeString(20); got != "blue-8" {
		t.Errorf("CodeString(20) = %q, want %q", got, "blue-8")
	}
	if got := CodeString(FakeOkeyCode); got != "fake" {
		t.Errorf("CodeString(fake) = %q, want %q", got, "fake")
	}
}
