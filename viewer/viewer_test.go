package viewer

import "testing"

func TestFitWindow(t *testing.T) {
	cases := []struct {
		w, h, max    int
		wantW, wantH int
	}{
		{1800, 1800, 720, 720, 720},
		{1800, 900, 720, 720, 360},
		{900, 1800, 720, 360, 720},
		{400, 300, 720, 400, 300},
		{1800, 1800, 0, 1800, 1800},
		{3000, 1, 600, 600, 1},
	}
	for _, tc := range cases {
		w, h := fitWindow(tc.w, tc.h, tc.max)
		if w != tc.wantW || h != tc.wantH {
			t.Errorf("fitWindow(%d, %d, %d) = %d, %d, want %d, %d",
				tc.w, tc.h, tc.max, w, h, tc.wantW, tc.wantH)
		}
	}
}

func TestTitle(t *testing.T) {
	g := &viewGame{pages: []Page{{Title: "Speed"}, {Title: "BOOST"}, {Title: "Engine"}}}
	if got := g.title(); got != "Speed (1/3)" {
		t.Errorf("title %q", got)
	}
	g.current = 2
	if got := g.title(); got != "Engine (3/3)" {
		t.Errorf("title %q", got)
	}

	single := &viewGame{pages: []Page{{Title: "Engine"}}}
	if got := single.title(); got != "Engine" {
		t.Errorf("title %q", got)
	}
}

func TestShowRejectsEmptyPage(t *testing.T) {
	if err := Show(nil, 720); err != nil {
		t.Errorf("no pages: %v", err)
	}
	if err := Show([]Page{{Title: "blank"}}, 720); err == nil {
		t.Error("page without an image accepted")
	}
}
