package cssinline

import (
	"strings"
	"testing"

	"github.com/matzehuels/xqboard/pkg/board"
	"github.com/matzehuels/xqboard/pkg/board/sink"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unreserved", "AZaz09_.-~", "AZaz09_.-~"},
		{"extra safe set", "/ =:;", "/ =:;"},
		{"angle brackets", "<line/>", "%3Cline/%3E"},
		{"double quote", `x1="50"`, "x1='50'"},
		{"apostrophe", "it's", "it's"},
		{"hash", "fill:#FDD775", "fill:%23FDD775"},
		{"percent", "100%", "100%25"},
		{"newline", "a\nb", "a%0Ab"},
		{"comma and parens", "rgb(1,2)", "rgb%281%2C2%29"},
		{"utf8", "é", "%C3%A9"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape([]byte(tt.in)); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeApostropheStaysLiteral(t *testing.T) {
	got := Escape([]byte(`<text font-family="Kai'sFont">'</text>`))
	if strings.Contains(got, "%22") || strings.Contains(got, "%27") {
		t.Errorf("Escape() = %q, quotes must not be percent-encoded", got)
	}
	if !strings.Contains(got, "'") {
		t.Errorf("Escape() = %q, want a literal apostrophe", got)
	}
}

func TestEscapeNeverEmitsUnsafeBytes(t *testing.T) {
	var all []byte
	for b := 0; b < 256; b++ {
		all = append(all, byte(b))
	}
	got := Escape(all)
	for i := 0; i < len(got); i++ {
		c := got[i]
		if c == '%' || c == '\'' || isSafe(c) {
			continue
		}
		t.Errorf("Escape() emitted raw byte %q", c)
	}
	if strings.Contains(got, `"`) {
		t.Error("Escape() emitted a double quote")
	}
}

func TestDataURI(t *testing.T) {
	got := DataURI([]byte(`<svg width="9"/>`))
	want := "data:image/svg+xml;charset=utf8,%3Csvg width='9'/%3E"
	if got != want {
		t.Errorf("DataURI() = %q, want %q", got, want)
	}
}

func TestURL(t *testing.T) {
	got := URL([]byte("<g/>"))
	want := `url("data:image/svg+xml;charset=utf8,%3Cg/%3E")`
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestSentinel(t *testing.T) {
	got := Sentinel("./assets/boards/xiangqiPlain.svg")
	want := `"SVG-REPLACE ./assets/boards/xiangqiPlain.svg"`
	if got != want {
		t.Errorf("Sentinel() = %q, want %q", got, want)
	}
}

func TestInline(t *testing.T) {
	const asset = "./assets/boards/xiangqiPlain.svg"
	doc := []byte(`<svg/>`)
	token := Sentinel(asset)
	uri := URL(doc)

	tests := []struct {
		name     string
		template string
		want     string
		wantN    int
	}{
		{
			name:     "single",
			template: ".board { background-image: " + token + "; }\n",
			want:     ".board { background-image: " + uri + "; }\n",
			wantN:    1,
		},
		{
			name:     "every occurrence",
			template: "a{b:" + token + "}\nc{d:" + token + "}\n" + token,
			want:     "a{b:" + uri + "}\nc{d:" + uri + "}\n" + uri,
			wantN:    3,
		},
		{
			name:     "no sentinel",
			template: "body { margin: 0; }\n",
			want:     "body { margin: 0; }\n",
			wantN:    0,
		},
		{
			name:     "other asset untouched",
			template: `x{y:"SVG-REPLACE ./other.svg"}`,
			want:     `x{y:"SVG-REPLACE ./other.svg"}`,
			wantN:    0,
		},
		{
			name:     "unquoted sentinel untouched",
			template: "x{y:SVG-REPLACE " + asset + "}",
			want:     "x{y:SVG-REPLACE " + asset + "}",
			wantN:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := Inline(tt.template, asset, doc)
			if got != tt.want {
				t.Errorf("Inline() = %q, want %q", got, tt.want)
			}
			if n != tt.wantN {
				t.Errorf("Inline() replacements = %d, want %d", n, tt.wantN)
			}
		})
	}
}

func TestInlineBoard(t *testing.T) {
	const asset = "./assets/boards/xiangqiPlain.svg"
	doc := sink.RenderSVG(board.Xiangqi())
	template := "/* board */\n.xq-board {\n  background-image: " + Sentinel(asset) + ";\n}\n"

	out, n := Inline(template, asset, doc)
	if n != 1 {
		t.Fatalf("replacements = %d, want 1", n)
	}

	prefix := "/* board */\n.xq-board {\n  background-image: url(\"" + DataURIPrefix
	if !strings.HasPrefix(out, prefix) {
		t.Errorf("output does not start with the expected rule: %q", out[:min(len(out), len(prefix))])
	}
	if !strings.HasSuffix(out, "\");\n}\n") {
		t.Error("output should keep the rest of the rule")
	}
	// Only the url() delimiters may use double quotes.
	if got := strings.Count(out, `"`); got != 2 {
		t.Errorf("double quotes = %d, want 2", got)
	}
	if strings.Contains(out, "SVG-REPLACE") {
		t.Error("sentinel still present")
	}
}
