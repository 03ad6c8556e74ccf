package killicons

import (
	"testing"
)

func testDefs(names ...string) map[string]Definition {
	defs := make(map[string]Definition, len(names))
	for i, name := range names {
		defs[name] = Definition{Name: name, Sheet: "d_images", X: i * 32, Width: 32, Height: 32}
	}
	return defs
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		name string
		defs map[string]Definition
		in   string
		want string
		ok   bool
	}{
		{
			name: "exact match",
			defs: testDefs("scattergun", "skull"),
			in:   "scattergun",
			want: "scattergun",
			ok:   true,
		},
		{
			name: "mapping translation",
			defs: testDefs("skull"),
			in:   "world",
			want: "skull",
			ok:   true,
		},
		{
			name: "kill suffix",
			defs: testDefs("fireaxe_kill"),
			in:   "fireaxe",
			want: "fireaxe_kill",
			ok:   true,
		},
		{
			name: "death suffix",
			defs: testDefs("pumpkindeath"),
			in:   "pumpkin",
			want: "pumpkindeath",
			ok:   true,
		},
		{
			name: "substring in definition",
			defs: testDefs("unique_pickaxe"),
			in:   "pickaxe",
			want: "unique_pickaxe",
			ok:   true,
		},
		{
			name: "definition in substring",
			defs: testDefs("obj_sentrygun"),
			in:   "obj_sentrygun3",
			want: "obj_sentrygun",
			ok:   true,
		},
		{
			name: "alias fallback",
			defs: testDefs("sniperrifle"),
			in:   "awper_hand",
			want: "sniperrifle",
			ok:   true,
		},
		{
			name: "no match",
			defs: testDefs("skull"),
			in:   "zzz",
			ok:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def, ok := Resolve(tc.in, tc.defs)
			if ok != tc.ok {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if ok && def.Name != tc.want {
				t.Errorf("Resolve(%q) = %q, want %q", tc.in, def.Name, tc.want)
			}
		})
	}
}

func TestResolve_SubstringOrderIsDeterministic(t *testing.T) {
	// Both names are substring compatible with the input; the scan runs in
	// sorted name order so the first one always wins.
	defs := testDefs("ze_club", "za_club")

	for i := 0; i < 10; i++ {
		def, ok := Resolve("club", defs)
		if !ok {
			t.Fatalf("Expected a substring match")
		}
		if def.Name != "za_club" {
			t.Errorf("Expected the first name in sorted order, got %q", def.Name)
		}
	}
}

func TestResolve_AliasCycleTerminates(t *testing.T) {
	defs := testDefs("unrelated")
	aliases := map[string]string{"cycle_a": "cycle_b", "cycle_b": "cycle_a"}

	if _, ok := resolve("cycle_a", defs, nil, aliases, 0); ok {
		t.Errorf("An alias cycle should resolve to a miss, not to a definition")
	}
}

func TestResolve_AliasChainDepth(t *testing.T) {
	defs := testDefs("target")
	aliases := map[string]string{
		"hop1": "hop2",
		"hop2": "hop3",
		"hop3": "target_kill",
	}

	def, ok := resolve("hop1", defs, nil, aliases, 0)
	if !ok {
		t.Fatalf("A short alias chain should resolve")
	}
	if def.Name != "target" {
		t.Errorf("Expected target via the suffix stage, got %q", def.Name)
	}
}

func TestResolve_Total(t *testing.T) {
	// Any string input returns a result or a miss, never panics. The empty
	// string matches the first definition in sorted order through the
	// substring stage.
	defs := testDefs("ax", "bx")

	def, ok := Resolve("", defs)
	if !ok || def.Name != "ax" {
		t.Errorf("Resolve(\"\") = %q, %v; want ax, true", def.Name, ok)
	}

	if _, ok := Resolve("no_such_icon_anywhere", map[string]Definition{}); ok {
		t.Errorf("Resolving against an empty table should miss")
	}
}
