package cities

import "testing"

func TestResolveExact(t *testing.T) {
	t.Parallel()
	for _, e := range table {
		if got := Resolve(e.Name); got != e.Code {
			t.Errorf("Resolve(%q) = %q, want %q", e.Name, got, e.Code)
		}
	}
}

func TestResolveFuzzy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"table name contained in input", "北京市朝阳区", "101010100"},
		{"input contained in table name", "乌鲁木", "101130101"},
		{"county suffix", "灵山县", "101301103"},
		{"prefecture suffix", "钦州市", "101301101"},
		// 宁波 precedes 南宁 and 西宁 in the table, so a bare 宁 hits it first.
		{"first match wins in table order", "宁", "101210401"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.input); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveUnmatched(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"东京", "Paris", "不存在的地方"} {
		if got := Resolve(input); got != DefaultCode {
			t.Errorf("Resolve(%q) = %q, want default %q", input, got, DefaultCode)
		}
	}
}

func TestNames(t *testing.T) {
	t.Parallel()
	names := Names()
	if len(names) != len(table) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(table))
	}
	if names[0] != "北京" {
		t.Errorf("Names()[0] = %q, want 北京", names[0])
	}
	for i, e := range table {
		if names[i] != e.Name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], e.Name)
		}
	}
}
