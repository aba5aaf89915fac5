package translate

import (
	"fmt"
	"testing"
)

func TestFrench(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"كابل 2.5 مم", "Câble 2.5 mm"},
		{"كابل الهاتف", "Câble téléphonique"},
		{"قاطع ثلاثي الطور", "Disjoncteur triphasé"},
		{"لوح شمسي 300W", "Panneau solaire 300W"},
		{"مصباح LED", "Ampoule LED"},
		{"شيء غريب", Fallback},
		{"Gaine ICTA 20", "Gaine ICTA 20"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := French(tt.in); got != tt.want {
				t.Errorf("French(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCustomDictionary(t *testing.T) {
	tr := New(map[string]string{"ab": "X", "abc": "Y", "c": "Z"})
	if got := tr.Translate("abcab c"); got != "YX Z" {
		t.Errorf("Translate = %q, want %q", got, "YX Z")
	}
}

func ExampleFrench() {
	fmt.Println(French("سلك نحاسي 1.5 مم"))
	// Output: Fil cuivre 1.5 mm
}
