package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jérôme", "Jerome"},
		{"O'Neil-123", "Oneil"},
		{"  maría  josé ", "Mariajose"},
		{"GARCIA", "Garcia"},
		{"élodie", "Elodie"},
		{"van der Berg", "Vanderberg"},
		{"123-!?", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.in), "Name(%q)", tt.in)
	}
}

func TestNameIdempotent(t *testing.T) {
	inputs := []string{"jérôme", "O'Neil-123", "Smith", "  déjà-vu  ", ""}
	for _, in := range inputs {
		once := Name(in)
		assert.Equal(t, once, Name(once), "Name(Name(%q))", in)
	}
}
