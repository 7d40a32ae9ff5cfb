package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- Get / Names / Register ---

func TestGetToolbox(t *testing.T) {
	th, ok := Get("toolbox")
	if !ok {
		t.Fatal("Get(\"toolbox\") not found")
	}
	if th.Panel != "#a06de4" {
		t.Errorf("toolbox Panel = %q, want %q", th.Panel, "#a06de4")
	}
	if th.Border != "#5021d4" {
		t.Errorf("toolbox Border = %q, want %q", th.Border, "#5021d4")
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	th, ok := Get("ToolBox")
	if !ok || th.Name != "toolbox" {
		t.Errorf("Get(\"ToolBox\") = %+v, %v", th, ok)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, ok := Get("unknown-theme-xyz"); ok {
		t.Error("Get(\"unknown-theme-xyz\") should not be found")
	}
}

func TestDefaultIsToolbox(t *testing.T) {
	if got := Default().Name; got != DefaultName {
		t.Errorf("Default().Name = %q, want %q", got, DefaultName)
	}
}

func TestNamesContainsBuiltins(t *testing.T) {
	names := Names()
	for _, want := range []string{"dark", "light", "sapphire", "toolbox"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Names() = %v, missing %q", names, want)
		}
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Names() not sorted: %v", names)
		}
	}
}

func TestAllBuiltinsValid(t *testing.T) {
	for _, name := range Names() {
		th, _ := Get(name)
		t.Run(name, func(t *testing.T) {
			if err := Validate(th); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestRegisterRejectsInvalid(t *testing.T) {
	err := Register(Theme{Name: "broken", Panel: "purple", Border: "#000000", Label: "#000000"})
	if err == nil {
		t.Fatal("Register with invalid color should fail")
	}
	if _, ok := Get("broken"); ok {
		t.Error("invalid theme must not be registered")
	}
}

func TestRegisterCustom(t *testing.T) {
	custom := Theme{Name: "Custom-Test", Panel: "#112233", Border: "#445566", Label: "#778899"}
	if err := Register(custom); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, ok := Get("custom-test")
	if !ok || got != custom {
		t.Errorf("Get(\"custom-test\") = %+v, %v; want %+v", got, ok, custom)
	}
}

// --- Hex helpers ---

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#a06de4", true},
		{"#A06DE4", true},
		{"a06de4", false},
		{"#a06de", false},
		{"#a06de4ff", false},
		{"#g06de4", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsHexColor(tt.in); got != tt.want {
			t.Errorf("IsHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// --- TOML ---

const thValidTOML = `
name = "ocean"

[colors]
panel = "#0a2540"
border = "#00d4ff"
label = "#ffffff"
`

func TestLoadFromTOMLValid(t *testing.T) {
	th, err := LoadFromTOML([]byte(thValidTOML))
	if err != nil {
		t.Fatalf("LoadFromTOML: %v", err)
	}
	want := Theme{Name: "ocean", Panel: "#0a2540", Border: "#00d4ff", Label: "#ffffff"}
	if th != want {
		t.Errorf("LoadFromTOML = %+v, want %+v", th, want)
	}
}

func TestLoadFromTOMLMissingFieldsError(t *testing.T) {
	_, err := LoadFromTOML([]byte("name = \"partial\"\n[colors]\npanel = \"#000000\"\n"))
	if err == nil {
		t.Fatal("expected error for missing fields")
	}
	if !strings.Contains(err.Error(), "missing required field") {
		t.Errorf("error = %v, want missing required field", err)
	}
}

func TestLoadFromTOMLInvalidHexColor(t *testing.T) {
	bad := strings.Replace(thValidTOML, "#00d4ff", "cyan", 1)
	_, err := LoadFromTOML([]byte(bad))
	if err == nil || !strings.Contains(err.Error(), "invalid hex color") {
		t.Errorf("error = %v, want invalid hex color", err)
	}
}

func TestLoadFromTOMLSyntaxError(t *testing.T) {
	if _, err := LoadFromTOML([]byte("name = ")); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveToTOMLRoundtrip(t *testing.T) {
	orig := Default()
	data, err := SaveToTOML(orig)
	if err != nil {
		t.Fatalf("SaveToTOML: %v", err)
	}
	back, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML(SaveToTOML(x)): %v\n%s", err, data)
	}
	if back != orig {
		t.Errorf("roundtrip = %+v, want %+v", back, orig)
	}
}

func TestLoadFileRegisters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ocean.toml")
	if err := os.WriteFile(path, []byte(thValidTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if _, ok := Get("ocean"); !ok {
		t.Error("LoadFile did not register the theme")
	}
}
