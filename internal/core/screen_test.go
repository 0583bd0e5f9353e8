package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)
	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 80)
	for y := 0; y < s.Height(); y++ {
		if got := s.Row(y); got != want {
			t.Fatalf("row %d = %q, expected blanks", y, got)
		}
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(5, 5, 'X', ColorRed)

	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", got)
	}

	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.Set(p[0], p[1], 'A')
		if got := s.GetCell(p[0], p[1]); got.Rune != ' ' {
			t.Errorf("GetCell(%d, %d) = %q, expected blank", p[0], p[1], got.Rune)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(0, 0, 4, 3), 'X', ColorGreen)
	s.Clear()

	if got := s.String(); got != "    \n    \n    " {
		t.Errorf("String() after Clear = %q", got)
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(12, 2)
	s.DrawText(1, 0, "Score: 100")
	s.DrawTextCentered(1, "GO", ColorBrightRed)

	if got := s.Row(0); got != " Score: 100 " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "     GO     " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.GetCell(5, 1).Color; got != ColorBrightRed {
		t.Errorf("centred text colour = %v, expected bright red", got)
	}

	s.DrawText(9, 0, "clipped")
	if got := s.Row(0); got != " Score: 1cli" {
		t.Errorf("clipped Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 4, 2), '.', ColorDefault)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorWhite)

	want := strings.Join([]string{
		"┌────┐",
		"│....│",
		"│....│",
		"└────┘",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nexpected\n%s", got, want)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawHLine(2, 0, 4, '─', ColorGray)
	s.DrawHLine(0, 0, -3, 'x', ColorGray)

	if got := s.Row(0); got != "  ────  " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(0, 0, "abcde")
	s.DrawText(0, 1, "fghij")

	s.Resize(3, 3)
	if got := s.String(); got != "abc\nfgh\n   " {
		t.Errorf("after shrink = %q", got)
	}

	s.Resize(4, 1)
	if got := s.String(); got != "abc " {
		t.Errorf("after reshape = %q", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
