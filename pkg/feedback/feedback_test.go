package feedback

import "testing"

func TestCompare(t *testing.T) {
	testCases := []struct {
		guess       string
		target      string
		want        string
		description string
	}{
		{"адрес", "адрес", "+++++", "identical words are all correct"},
		{"адрес", "образ", "?-+--", "'а' present elsewhere, 'р' pinned"},
		{"мотор", "адрес", "----?", "single present letter"},
		{"канат", "тоска", "??-??", "duplicate guess letters both marked present"},
		{"ааааа", "образ", "???+?", "single target letter satisfies several positions"},
	}

	for _, tc := range testCases {
		got := Compare(tc.guess, tc.target).String()
		if got != tc.want {
			t.Errorf("%s: Compare(%q, %q) = %q, want %q",
				tc.description, tc.guess, tc.target, got, tc.want)
		}
	}
}

func TestCompareSelfIsAllCorrect(t *testing.T) {
	for _, w := range []string{"адрес", "запас", "образ", "насос"} {
		seq := Compare(w, w)
		if !seq.AllCorrect() {
			t.Errorf("Compare(%q, %q) = %q, want all correct", w, w, seq)
		}
	}
}

func TestCompareIsDeterministic(t *testing.T) {
	first := Compare("адрес", "образ").String()
	for i := 0; i < 10; i++ {
		if got := Compare("адрес", "образ").String(); got != first {
			t.Fatalf("Compare not reproducible: %q vs %q", got, first)
		}
	}
}

func TestParseMarks(t *testing.T) {
	testCases := []struct {
		input       string
		want        string
		wantErr     bool
		description string
	}{
		{"+м?о-т+р-а", "+?-+-", false, "marks interleaved with letters"},
		{"+?---", "+?---", false, "bare marks"},
		{"++ ?- -", "++?--", false, "whitespace between marks is skipped"},
		{"++++++", "+++++", false, "extra marks past the length are ignored"},
		{"+?--", "", true, "too few marks"},
		{"адрес", "", true, "no marks at all"},
		{"", "", true, "empty input"},
	}

	for _, tc := range testCases {
		seq, err := ParseMarks(tc.input, 5)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: ParseMarks(%q) should fail, got %q", tc.description, tc.input, seq)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: ParseMarks(%q) failed: %v", tc.description, tc.input, err)
			continue
		}
		if seq.String() != tc.want {
			t.Errorf("%s: ParseMarks(%q) = %q, want %q", tc.description, tc.input, seq, tc.want)
		}
	}
}

func TestVerdictMarks(t *testing.T) {
	if Correct.Mark() != '+' || Present.Mark() != '?' || Absent.Mark() != '-' {
		t.Error("verdict mark symbols changed; the interactive protocol depends on + ? -")
	}
}
