package extract

import "testing"

func TestCleanIDText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"abcde1234f", "ABCDE1234F"},
		{" AB CD-E12.34F ", "ABCDE1234F"},
		{"$1234567", "$1234567"},
		{"12/05/1990", "12/05/1990"},
	}
	for _, c := range cases {
		if got := CleanIDText(c.in); got != c.want {
			t.Errorf("CleanIDText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanNameField(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  John   Doe ", "John Doe"},
		{"J0hn D*oe", "Jhn Doe"},
		{"MARY-ANN", "MARYANN"},
	}
	for _, c := range cases {
		if got := CleanNameField(c.in); got != c.want {
			t.Errorf("CleanNameField(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCorrectDateString(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"42/05/1990", "12/05/1990"}, // day 4 -> 1
		{"92/05/1990", "22/05/1990"}, // day 9 -> 2
		{"61/05/1990", "01/05/1990"}, // day 6 -> 0
		{"12/41/1990", "12/11/1990"}, // month 4 -> 1
		{"12/05/4990", "12/05/1990"}, // year 4 -> 1
		{"12/05/7990", "12/05/1990"}, // year 7 -> 1
		{"12/05/9025", "12/05/2025"}, // year 9 -> 2
		{"12/05/1990", "12/05/1990"}, // already fine
		{"not a date", "not a date"},
	}
	for _, c := range cases {
		if got := CorrectDateString(c.in); got != c.want {
			t.Errorf("CorrectDateString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCorrectToLayout(t *testing.T) {
	cases := []struct {
		in, layout, want string
	}{
		{"ABCDE1234F", "AAAAANNNNA", "ABCDE1234F"},
		{"A8CDE1234F", "AAAAANNNNA", "ABCDE1234F"}, // 8 -> B in letter slot
		{"ABCDEIZ34F", "AAAAANNNNA", "ABCDE1234F"}, // I -> 1, Z -> 2 in digit slots
		{"ABCDE1234F", "AAAA", "ABCDE1234F"},       // length mismatch untouched
	}
	for _, c := range cases {
		if got := CorrectToLayout(c.in, c.layout); got != c.want {
			t.Errorf("CorrectToLayout(%q, %q) = %q, want %q", c.in, c.layout, got, c.want)
		}
	}
}

func TestCorrectPassportNumber(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"$1234567", "S1234567"},
		{"A1234567", "A1234567"},
		{"AIZ34567", "A1234567"}, // confusables in digit slots
		{"51234567", "S1234567"}, // 5 -> S in the letter slot
		{"a1234567", "A1234567"},
	}
	for _, c := range cases {
		if got := CorrectPassportNumber(c.in); got != c.want {
			t.Errorf("CorrectPassportNumber(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCorrectVoterID(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"ABC1234567", "ABC1234567"},             // old layout, already fine
		{"A8CIZ34567", "ABC1234567"},             // 8 -> B, I -> 1, Z -> 2
		{"A8C/IZ34567", "ABC/1234567"},           // separator preserved on repair
		{"AB/1Z/345/678901", "AB/12/345/678901"}, // new layout, Z -> 2
		{"A812345678901", "AB12345678901"},       // new layout without separators
		{"ABCD123", "ABCD123"},                   // unknown length untouched
	}
	for _, c := range cases {
		if got := CorrectVoterID(c.in); got != c.want {
			t.Errorf("CorrectVoterID(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeGender(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"F", "Female"},
		{"Female", "Female"},
		{"f/emale", "Female"},
		{"M", "Male"},
		{"Male", "Male"},
	}
	for _, c := range cases {
		if got := NormalizeGender(c.in); got != c.want {
			t.Errorf("NormalizeGender(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsValidDateFormat(t *testing.T) {
	if !IsValidDateFormat("12/05/1990") {
		t.Error("IsValidDateFormat(12/05/1990) = false, want true")
	}
	if IsValidDateFormat("1990-05-12") {
		t.Error("IsValidDateFormat(1990-05-12) = true, want false")
	}
	if IsValidDateFormat("2/5/1990") {
		t.Error("IsValidDateFormat(2/5/1990) = true, want false")
	}
}
