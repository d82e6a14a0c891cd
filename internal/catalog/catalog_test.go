package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_LoadsAllElements(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}
	if c.Len() != 118 {
		t.Fatalf("Len() = %d, want 118", c.Len())
	}

	elements := c.Elements()
	for i, el := range elements {
		if el.AtomicNumber != i+1 {
			t.Fatalf("elements[%d].AtomicNumber = %d, want %d", i, el.AtomicNumber, i+1)
		}
		if Label(el.Category) == string(el.Category) {
			t.Fatalf("element %s has unlabelled category %q", el.Symbol, el.Category)
		}
	}

	if got := elements[0]; got.Symbol != "H" || got.Name != "Hydrogen" || got.Phase != PhaseGas {
		t.Fatalf("first element = %#v, want Hydrogen gas", got)
	}
	if got := elements[56]; got.Position.Period != 8 || got.Category != Lanthanide {
		t.Fatalf("Lanthanum = %#v, want lanthanide on period 8", got)
	}
	if got := elements[88]; got.Position.Period != 9 || got.Category != Actinide {
		t.Fatalf("Actinium = %#v, want actinide on period 9", got)
	}
}

func TestElements_ReturnsCopy(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}
	first := c.Elements()
	first[0].Symbol = "X"
	if got := c.Elements()[0].Symbol; got != "H" {
		t.Fatalf("Elements()[0].Symbol = %q after mutation, want H", got)
	}
}

func TestParse_RejectsDuplicates(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{
			"number",
			`elements = [
  { number = 1, symbol = "H", name = "Hydrogen", period = 1, group = 1 },
  { number = 1, symbol = "He", name = "Helium", period = 1, group = 18 },
]`,
			"duplicate atomic number",
		},
		{
			"symbol",
			`elements = [
  { number = 1, symbol = "H", name = "Hydrogen", period = 1, group = 1 },
  { number = 2, symbol = "h", name = "Helium", period = 1, group = 18 },
]`,
			"duplicate symbol",
		},
		{
			"name",
			`elements = [
  { number = 1, symbol = "H", name = "Hydrogen", period = 1, group = 1 },
  { number = 2, symbol = "He", name = "hydrogen", period = 1, group = 18 },
]`,
			"duplicate name",
		},
		{
			"non-positive",
			`elements = [ { number = 0, symbol = "Nn", name = "Nothing", period = 1, group = 1 } ]`,
			"atomic number 0",
		},
		{"empty", `elements = []`, "no elements"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("Parse error = %v, want ErrInvalidCatalog", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Parse error = %q, want it to mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestParse_KeepsOutOfRangePositions(t *testing.T) {
	data := `elements = [
  { number = 1, symbol = "H", name = "Hydrogen", period = 1, group = 1 },
  { number = 2, symbol = "Zz", name = "Nowhere", period = 12, group = 40 },
]`
	c, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
}

func TestParse_InvalidTOMLFails(t *testing.T) {
	_, err := Parse([]byte(`elements = [`))
	if err == nil || !strings.Contains(err.Error(), "parse catalog") {
		t.Fatalf("Parse error = %v, want parse catalog error", err)
	}
}

func TestParse_NormalizesPhase(t *testing.T) {
	data := `elements = [ { number = 1, symbol = "H", name = "Hydrogen", phase = " GAS ", period = 1, group = 1 },
  { number = 2, symbol = "Qq", name = "Mystery", phase = "plasma", period = 1, group = 2 } ]`
	c, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	els := c.Elements()
	if els[0].Phase != PhaseGas {
		t.Fatalf("Phase = %q, want gas", els[0].Phase)
	}
	if els[1].Phase != PhaseUnknown {
		t.Fatalf("Phase = %q, want unknown", els[1].Phase)
	}
}

func TestLoad_ReadsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elements.toml")
	data := `elements = [ { number = 7, symbol = "N", name = "Nitrogen", category = "nonmetal", period = 2, group = 15 } ]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Len() != 1 || c.Elements()[0].Symbol != "N" {
		t.Fatalf("Load = %#v, want Nitrogen only", c.Elements())
	}
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	c, err := Load("  ")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Len() != 118 {
		t.Fatalf("Len() = %d, want 118", c.Len())
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "read catalog") {
		t.Fatalf("Load error = %v, want read catalog error", err)
	}
}

func TestLookup(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}
	cases := []struct {
		query string
		want  string
	}{
		{"26", "Fe"},
		{"fe", "Fe"},
		{" IRON ", "Fe"},
		{"og", "Og"},
	}
	for _, tc := range cases {
		got, err := c.Lookup(tc.query)
		if err != nil {
			t.Fatalf("Lookup(%q) returned error: %v", tc.query, err)
		}
		if got.Symbol != tc.want {
			t.Fatalf("Lookup(%q) = %s, want %s", tc.query, got.Symbol, tc.want)
		}
	}

	for _, q := range []string{"", "999", "Unobtainium"} {
		if _, err := c.Lookup(q); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Lookup(%q) error = %v, want ErrNotFound", q, err)
		}
	}
}

func TestCountByCategory(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}
	counts := c.CountByCategory()
	if counts[Lanthanide] != 15 {
		t.Fatalf("lanthanides = %d, want 15", counts[Lanthanide])
	}
	if counts[Actinide] != 15 {
		t.Fatalf("actinides = %d, want 15", counts[Actinide])
	}
	if counts[NobleGas] != 7 {
		t.Fatalf("noble gases = %d, want 7", counts[NobleGas])
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 118 {
		t.Fatalf("total = %d, want 118", total)
	}
}

func TestLabel_FallsBackToTag(t *testing.T) {
	if got := Label(NobleGas); got != "Noble Gas" {
		t.Fatalf("Label(noble-gas) = %q, want Noble Gas", got)
	}
	if got := Label(Category("superheavy")); got != "superheavy" {
		t.Fatalf("Label(superheavy) = %q, want superheavy", got)
	}
}

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"":            CategoryAll,
		"all":         CategoryAll,
		"Noble Gas":   NobleGas,
		"HALOGEN":     Halogen,
		" metalloid ": Metalloid,
		"Superheavy":  Category("superheavy"),
	}
	for in, want := range cases {
		if got := ParseCategory(in); got != want {
			t.Fatalf("ParseCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := Categories()
	if len(cats) != 10 {
		t.Fatalf("len(Categories()) = %d, want 10", len(cats))
	}
	cats[0] = "changed"
	if Categories()[0] != AlkaliMetal {
		t.Fatalf("Categories() should return a copy")
	}
}

func TestSummary(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}
	el, _ := c.Lookup("Ne")
	got := el.Summary()
	for _, want := range []string{"Neon (Ne)", "atomic number 10", "Noble Gas"} {
		if !strings.Contains(got, want) {
			t.Fatalf("Summary() = %q, want it to contain %q", got, want)
		}
	}
}
