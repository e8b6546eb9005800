package pitch

import (
	"strings"
	"testing"
)

func TestRender_UnknownWord(t *testing.T) {
	d := mustParse(t, sampleTable)
	got := Render("存在しない", d)
	want := `<div style="text-align: center"></div>`
	if got != want {
		t.Errorf("unknown word = %q, want empty wrapper %q", got, want)
	}
}

func TestRender_NakadakaExact(t *testing.T) {
	d := mustParse(t, "あの方\tあのかた\t3\n")

	want := `<div style="text-align: center">` +
		`<span style="BORDER-BOTTOM: #FF6633 medium solid;">あ</span>` +
		`<span style="BORDER-TOP: #FF6633 medium solid;BORDER-LEFT: #FF6633 medium solid;">の</span>` +
		`<span style="BORDER-TOP: #FF6633 medium solid;">か</span>` +
		`<span style="BORDER-BOTTOM: #FF6633 medium solid;BORDER-LEFT: #FF6633 medium solid;">た</span>` +
		`<span style="BORDER-BOTTOM: #FF6633 medium solid;">…</span>` +
		`</div>`

	if got := Render("あの方", d); got != want {
		t.Errorf("Render(あの方) =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_OdakaExact(t *testing.T) {
	d := mustParse(t, "川\tかわ\t2\n")

	want := `<div style="text-align: center">` +
		`<span style="BORDER-BOTTOM: #FF6633 medium solid;">か</span>` +
		`<span style="BORDER-TOP: #FF6633 medium solid;BORDER-LEFT: #FF6633 medium solid;">わ</span>` +
		`<span style="BORDER-BOTTOM: #FF6633 medium solid;BORDER-LEFT: #FF6633 medium solid;">…</span>` +
		`</div>`

	if got := Render("川", d); got != want {
		t.Errorf("Render(川) =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_EntrySeparator(t *testing.T) {
	d := mustParse(t, "映画\tえいが\t1,0\n")
	got := Render("映画", d)

	if strings.Count(got, "・") != 1 {
		t.Errorf("two accent entries should be joined by one ・: %s", got)
	}
	// Four positions per entry (3 morae + particle), two entries.
	if n := strings.Count(got, "<span"); n != 8 {
		t.Errorf("got %d spans, want 8: %s", n, got)
	}
}

func TestRender_RowSeparator(t *testing.T) {
	d := mustParse(t, "生物\tせいぶつ\t1\n生物\tなまもの\t2\n")
	got := Render("生物", d)

	sep := `<div style="line-height:100%;"><br></div>`
	if strings.Count(got, sep) != 1 {
		t.Errorf("two rows should be joined by one row separator: %s", got)
	}
	if !strings.HasPrefix(got, `<div style="text-align: center">`) || !strings.HasSuffix(got, `</div>`) {
		t.Errorf("result should stay inside the centered wrapper: %s", got)
	}
}

func TestRender_NoteLabel(t *testing.T) {
	d := mustParse(t, "方\tかた\t(名)2\n")
	got := Render("方", d)

	if !strings.Contains(got, `<span style="font-weight: bold;">名: </span>`) {
		t.Errorf("note should render as a bold label: %s", got)
	}
	if !strings.HasPrefix(got, `<div style="text-align: center"><span style="font-weight: bold;">`) {
		t.Errorf("note label should precede the mora spans: %s", got)
	}
}

func TestRender_GeminationMoraRendersWhole(t *testing.T) {
	d := mustParse(t, "列車\tれっしゃ\t0\n")
	got := Render("列車", d)

	if !strings.Contains(got, ">れっ</span>") || !strings.Contains(got, ">しゃ</span>") {
		t.Errorf("morae should render as whole units: %s", got)
	}
	// 2 morae + particle mark.
	if n := strings.Count(got, "<span"); n != 3 {
		t.Errorf("got %d spans, want 3: %s", n, got)
	}
}

func TestRender_TotalOverEmbeddedTable(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, word := range d.Words() {
		got := Render(word, d)
		if !strings.HasPrefix(got, `<div style="text-align: center">`) {
			t.Fatalf("%s: malformed wrapper: %s", word, got)
		}
		if !strings.Contains(got, "…") {
			t.Fatalf("%s: missing particle mark: %s", word, got)
		}
	}
}
