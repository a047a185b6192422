package sensors

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDomain(t *testing.T, dir, name, energy, maxRange string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for file, contents := range map[string]string{
		"name":                name + "\n",
		"energy_uj":           energy + "\n",
		"max_energy_range_uj": maxRange + "\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return filepath.Join(dir, "energy_uj")
}

func TestFindRAPL(t *testing.T) {
	root := t.TempDir()
	counter := writeDomain(t, filepath.Join(root, "intel-rapl:0"), "package-0", "1000000", "5000000")
	found, err := findRAPL(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected one domain, got %d", len(found))
	}
	s := found[0]
	if s.Name() != "package-0" || s.Unit() != Joules {
		t.Errorf("unexpected sensor %q (%s)", s.Name(), s.Unit())
	}

	type step struct {
		counter  string
		expected float64
	}
	for i, st := range []step{
		{counter: "3000000", expected: 2},
		{counter: "3500000", expected: 0.5},
		// The counter wrapped.
		{counter: "500000", expected: 2},
	} {
		if err := os.WriteFile(counter, []byte(st.counter+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		v, err := s.Read()
		if err != nil {
			t.Fatalf("[%d] unexpected error: %v", i, err)
		}
		if v != st.expected {
			t.Errorf("[%d] expected %v J, got %v", i, st.expected, v)
		}
	}
}

func TestFindRAPLMissing(t *testing.T) {
	if _, err := findRAPL(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("expected a missing root to fail")
	}
}
