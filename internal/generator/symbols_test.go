package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"logo.png", "logo_png"},
		{"My Logo.PNG", "my_logo_png"},
		{"icon-small.png", "iconsmall_png"},
		{"data_01.bin", "data_01_bin"},
		{"weird(name)!.txt", "weirdname_txt"},
		{"UPPER.TXT", "upper_txt"},
		{"..", "__"},
		{"ünïcode.dat", "ncode_dat"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SymbolName(tt.in), "SymbolName(%q)", tt.in)
	}
}
